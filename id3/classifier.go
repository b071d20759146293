// Package id3 implements ID3 decision-tree induction over categorical data.
//
// The classifier follows the estimator pattern used across the library:
// construct with New, train with Fit, then Predict, Evaluate, and Export.
// Load reconstructs a classifier from a previously exported snapshot
// without retraining.
//
// All features are treated as discrete categorical values. Numeric
// thresholds, missing-value imputation, and pruning are out of scope.
package id3

import (
	"sync"
	"time"

	"github.com/YuminosukeSato/goid3/core/model"
	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/metrics"
	"github.com/YuminosukeSato/goid3/pkg/errors"
	"github.com/YuminosukeSato/goid3/pkg/log"
)

const modelName = "ID3Classifier"

var _ model.Classifier = (*Classifier)(nil)

// Classifier is an ID3 decision-tree classifier for categorical records.
//
// A trained classifier is safe for concurrent read-only use (Predict,
// Evaluate, Export); Fit and Import take a full write barrier and must not
// run concurrently with readers.
type Classifier struct {
	mu    sync.RWMutex
	state *model.StateManager

	logger       log.Logger
	warnOnUnseen bool

	// Model fields, replaced atomically by Fit and Import.
	tree     *Node
	data     dataset.Dataset
	target   string
	features []string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for training and prediction diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// WithUnseenValueWarnings controls whether the predictor emits an
// UnseenValueWarning when it falls back to the first branch for a value
// never observed during training. The fallback itself always happens;
// only the warning is optional. Enabled by default.
func WithUnseenValueWarnings(enabled bool) Option {
	return func(c *Classifier) {
		c.warnOnUnseen = enabled
	}
}

// New returns an untrained classifier. Call Fit before Predict, Evaluate,
// or Export.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		state:        model.NewStateManager(),
		logger:       log.GetLoggerWithName("id3.classifier"),
		warnOnUnseen: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reconstructs a classifier directly from a previously exported
// snapshot, with no training performed. It is equivalent to New followed
// by Import.
func Load(snapshot *Snapshot, opts ...Option) (*Classifier, error) {
	c := New(opts...)
	if err := c.Import(snapshot); err != nil {
		return nil, err
	}
	return c, nil
}

// Fit builds a fresh decision tree from ds using the given target attribute
// and candidate feature list. The dataset is snapshotted at call time; later
// mutations of ds do not affect the model.
//
// Fit fails with ErrEmptyData for an empty dataset and with a
// ValidationError when features contains the target attribute, a duplicate,
// or an attribute absent from every record.
func (c *Classifier) Fit(ds dataset.Dataset, target string, features []string) error {
	if err := ds.Validate(target, features); err != nil {
		return errors.Wrap(err, "Fit")
	}

	start := time.Now()

	data := ds.Clone()
	feats := make([]string, len(features))
	copy(feats, features)

	tree := buildNode(data, target, feats)

	c.mu.Lock()
	c.tree = tree
	c.data = data
	c.target = target
	c.features = feats
	c.mu.Unlock()

	c.state.SetDimensions(len(feats), len(data))
	c.state.SetFitted()

	c.logger.Info("training completed",
		log.ModelNameKey, modelName,
		log.OperationKey, "fit",
		log.TargetKey, target,
		log.SamplesKey, len(data),
		log.FeaturesKey, len(feats),
		log.TreeDepthKey, tree.Depth(),
		log.TreeLeavesKey, tree.Leaves(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict walks the tree from the root to a result node for the given
// record and returns the predicted target value.
//
// When a feature node has no edge matching the record's value for that
// attribute (an unseen value, or the attribute is absent), Predict
// deterministically descends the first edge instead of failing. This
// fallback is part of the model's observable behavior: changing it would
// change predictions for out-of-vocabulary records.
func (c *Classifier) Predict(r dataset.Record) (dataset.Value, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.predictLocked(r)
}

// PredictBatch predicts every record in order.
func (c *Classifier) PredictBatch(records []dataset.Record) ([]dataset.Value, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]dataset.Value, len(records))
	for i, r := range records {
		v, err := c.predictLocked(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *Classifier) predictLocked(r dataset.Record) (dataset.Value, error) {
	if err := c.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}

	node := c.tree
	for node != nil && !node.IsLeaf() {
		if len(node.Edges) == 0 {
			return nil, errors.Wrapf(errors.ErrMalformedTree,
				"Predict: feature node %q has no edges", node.Feature)
		}

		value, present := r[node.Feature]

		var next *Node
		if present {
			for _, e := range node.Edges {
				if e.Value == value {
					next = e.Child
					break
				}
			}
		}
		if next == nil {
			first := node.Edges[0]
			if c.warnOnUnseen {
				errors.Warn(errors.NewUnseenValueWarning(node.Feature, value, first.Value))
			}
			next = first.Child
		}
		node = next
	}

	if node == nil {
		return nil, errors.Wrap(errors.ErrMalformedTree, "Predict: reached nil node")
	}
	return node.Value, nil
}

// Evaluate predicts every sample and returns the fraction whose prediction
// equals the sample's own target value. It fails with ErrEmptyData for an
// empty sample list: accuracy over zero samples is undefined.
func (c *Classifier) Evaluate(samples dataset.Dataset) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.state.RequireFitted(modelName, "Evaluate"); err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "Evaluate: no samples")
	}

	yTrue := make([]dataset.Value, len(samples))
	yPred := make([]dataset.Value, len(samples))
	for i, s := range samples {
		v, err := c.predictLocked(s)
		if err != nil {
			return 0, err
		}
		yTrue[i] = s[c.target]
		yPred[i] = v
	}

	return metrics.Accuracy(yTrue, yPred)
}

// Score is an alias for Evaluate, matching the estimator surface used by
// the rest of the library.
func (c *Classifier) Score(samples dataset.Dataset) (float64, error) {
	return c.Evaluate(samples)
}

// Target returns the target attribute the classifier was trained on.
func (c *Classifier) Target() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target
}

// Features returns a copy of the candidate feature list used for training.
func (c *Classifier) Features() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.features))
	copy(out, c.features)
	return out
}

// Depth returns the depth of the induced tree, 0 if untrained.
func (c *Classifier) Depth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Depth()
}

// Leaves returns the number of leaves in the induced tree, 0 if untrained.
func (c *Classifier) Leaves() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Leaves()
}

// String renders the induced tree as an indented outline.
func (c *Classifier) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tree == nil {
		return "<not fitted>"
	}
	return c.tree.String()
}
