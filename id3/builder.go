package id3

import (
	"github.com/YuminosukeSato/goid3/dataset"
)

// buildNode runs one level of ID3 induction on a non-empty dataset:
//
//  1. if every record shares the same target value, emit a pure result leaf;
//  2. if no candidate features remain, emit a majority-vote result leaf;
//  3. otherwise split on the maximum-gain feature and recurse per observed
//     value with that feature removed from the candidate set.
//
// Callers guarantee ds is non-empty; every recursive partition is non-empty
// by construction because it is keyed on an observed value. The feature set
// shrinks by one per level, so recursion terminates within len(features)+1
// levels.
func buildNode(ds dataset.Dataset, target string, features []string) *Node {
	targets := ds.Column(target)

	if allEqual(targets) {
		return &Node{Kind: ResultNode, Value: targets[0]}
	}

	if len(features) == 0 {
		return &Node{Kind: ResultNode, Value: majority(targets)}
	}

	best := MaxGain(ds, target, features)
	remaining := without(features, best)

	values := ds.DistinctValues(best)
	edges := make([]Edge, 0, len(values))
	for _, v := range values {
		child := buildNode(ds.Filter(best, v), target, remaining)
		edges = append(edges, Edge{Value: v, Child: child})
	}

	return &Node{Kind: FeatureNode, Feature: best, Edges: edges}
}

// allEqual reports whether every value in a non-empty sequence is the same.
func allEqual(values []dataset.Value) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// majority returns the most frequent value. Ties are broken by scan order:
// the first value to reach the maximum frequency wins, which keeps
// majority-vote leaves reproducible for a given record order.
func majority(values []dataset.Value) dataset.Value {
	counts := make(map[dataset.Value]int, 4)
	var best dataset.Value
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// without returns a fresh feature list with one name removed.
func without(features []string, name string) []string {
	out := make([]string, 0, len(features)-1)
	for _, f := range features {
		if f != name {
			out = append(out, f)
		}
	}
	return out
}
