package id3

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/goid3/dataset"
)

// NodeKind tags the variant of a tree node.
type NodeKind int

const (
	// ResultNode is a terminal node carrying a predicted target value.
	ResultNode NodeKind = iota
	// FeatureNode is an internal node splitting on one attribute.
	FeatureNode
)

// Edge is one outgoing branch of a feature node. There is exactly one edge
// per distinct value the splitting attribute took in the partition that
// reached the node, in first-occurrence order.
type Edge struct {
	Value dataset.Value
	Child *Node
}

// Node is a node of an induced decision tree. A tree is immutable once
// built: result nodes have no edges, feature nodes have at least one edge,
// sibling edge values are unique, and the depth never exceeds the number
// of candidate features plus one.
type Node struct {
	Kind    NodeKind
	Value   dataset.Value // predicted target value (result nodes only)
	Feature string        // splitting attribute (feature nodes only)
	Edges   []Edge        // outgoing branches (feature nodes only)
}

// IsLeaf reports whether the node is a result node.
func (n *Node) IsLeaf() bool {
	return n.Kind == ResultNode
}

// Depth returns the number of node levels in the subtree rooted at n.
// A single result node has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, e := range n.Edges {
		if d := e.Child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Leaves returns the number of result nodes in the subtree rooted at n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, e := range n.Edges {
		total += e.Child.Leaves()
	}
	return total
}

// clone returns a deep copy of the subtree rooted at n.
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Kind:    n.Kind,
		Value:   n.Value,
		Feature: n.Feature,
	}
	if len(n.Edges) > 0 {
		cp.Edges = make([]Edge, len(n.Edges))
		for i, e := range n.Edges {
			cp.Edges[i] = Edge{Value: e.Value, Child: e.Child.clone()}
		}
	}
	return cp
}

// String renders the subtree as an indented outline, one branch per line.
// Intended for debugging and logging, not for persistence.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) render(b *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	if n == nil {
		fmt.Fprintf(b, "%s<nil>\n", pad)
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(b, "%s-> %v\n", pad, n.Value)
		return
	}
	fmt.Fprintf(b, "%s[%s]\n", pad, n.Feature)
	for _, e := range n.Edges {
		fmt.Fprintf(b, "%s  = %v\n", pad, e.Value)
		e.Child.render(b, indent+2)
	}
}
