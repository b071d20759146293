package id3

import (
	"encoding/json"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// Snapshot is a plain structural copy of a trained classifier: the tree,
// the training dataset, the target attribute, and the feature list. It is
// sufficient to reconstruct an equivalent classifier without retraining,
// and it marshals to a self-describing JSON document with no binary or
// versioned framing.
type Snapshot struct {
	Tree     *Node           `json:"tree"`
	Dataset  dataset.Dataset `json:"dataset"`
	Target   string          `json:"target"`
	Features []string        `json:"features"`
}

// Export returns a snapshot of the trained model. The snapshot shares no
// mutable state with the classifier: exporting twice without an
// intervening Fit or Import yields structurally identical, independent
// copies.
func (c *Classifier) Export() (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.state.RequireFitted(modelName, "Export"); err != nil {
		return nil, err
	}

	features := make([]string, len(c.features))
	copy(features, c.features)

	return &Snapshot{
		Tree:     c.tree.clone(),
		Dataset:  c.data.Clone(),
		Target:   c.target,
		Features: features,
	}, nil
}

// Import replaces the classifier's tree, dataset, target, and feature list
// atomically from the snapshot. It is a full-barrier mutation: no Predict,
// Evaluate, or Export may run concurrently with it.
//
// Only the snapshot's outer shape is validated (non-nil snapshot, non-nil
// tree). A structurally deeper inconsistency, such as edges referring to
// attributes no record carries, surfaces later as a prediction-time
// failure, not here.
func (c *Classifier) Import(snapshot *Snapshot) error {
	if snapshot == nil {
		return errors.NewValidationError("snapshot", "must not be nil", nil)
	}
	if snapshot.Tree == nil {
		return errors.NewValidationError("snapshot", "tree must not be nil", snapshot)
	}

	features := make([]string, len(snapshot.Features))
	copy(features, snapshot.Features)

	c.mu.Lock()
	c.tree = snapshot.Tree.clone()
	c.data = snapshot.Dataset.Clone()
	c.target = snapshot.Target
	c.features = features
	c.mu.Unlock()

	c.state.SetDimensions(len(features), len(snapshot.Dataset))
	c.state.SetFitted()
	return nil
}

// ToJSON marshals the snapshot to its interchange form.
func (s *Snapshot) ToJSON() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "ToJSON: marshal snapshot")
	}
	return data, nil
}

// SnapshotFromJSON unmarshals a snapshot from its interchange form.
//
// JSON has a single number type, so numeric attribute values round-trip as
// float64. Models whose values are strings and booleans round-trip exactly.
func SnapshotFromJSON(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "SnapshotFromJSON: unmarshal snapshot")
	}
	return &s, nil
}

// JSON node tags. The kind discriminator keeps the document
// self-describing without positional or versioned framing.
const (
	jsonKindResult  = "result"
	jsonKindFeature = "feature"
)

// jsonNode is the interchange form of a Node. Value carries no omitempty:
// a result node may legitimately predict false or 0, which must survive
// the round trip.
type jsonNode struct {
	Kind    string        `json:"kind"`
	Value   dataset.Value `json:"value"`
	Feature string        `json:"feature,omitempty"`
	Edges   []jsonEdge    `json:"edges,omitempty"`
}

type jsonEdge struct {
	Value dataset.Value `json:"value"`
	Child *Node         `json:"child"`
}

// MarshalJSON encodes the node in its tagged interchange form.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{}
	switch n.Kind {
	case ResultNode:
		out.Kind = jsonKindResult
		out.Value = n.Value
	case FeatureNode:
		out.Kind = jsonKindFeature
		out.Feature = n.Feature
		out.Edges = make([]jsonEdge, len(n.Edges))
		for i, e := range n.Edges {
			out.Edges[i] = jsonEdge{Value: e.Value, Child: e.Child}
		}
	default:
		return nil, errors.Newf("marshal node: unknown kind %d", n.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a node from its tagged interchange form, rejecting
// unknown kind tags and feature nodes without edges.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in jsonNode
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Kind {
	case jsonKindResult:
		n.Kind = ResultNode
		n.Value = in.Value
		n.Feature = ""
		n.Edges = nil
	case jsonKindFeature:
		if len(in.Edges) == 0 {
			return errors.Newf("unmarshal node: feature node %q has no edges", in.Feature)
		}
		n.Kind = FeatureNode
		n.Value = nil
		n.Feature = in.Feature
		n.Edges = make([]Edge, len(in.Edges))
		for i, e := range in.Edges {
			if e.Child == nil {
				return errors.Newf("unmarshal node: feature node %q has a nil child", in.Feature)
			}
			n.Edges[i] = Edge{Value: e.Value, Child: e.Child}
		}
	default:
		return errors.Newf("unmarshal node: unknown kind %q", in.Kind)
	}
	return nil
}
