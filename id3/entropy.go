package id3

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/goid3/dataset"
)

// Entropy returns the Shannon entropy, in bits, of a sequence of target
// values: -Σ p(v)·log2(p(v)) over the distinct values v, where p(v) is the
// relative frequency of v. The entropy of an empty sequence or of a
// sequence with a single distinct value is 0; both cases are guarded
// explicitly so no division by zero can occur.
func Entropy(values []dataset.Value) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	counts := make(map[dataset.Value]int, 4)
	for _, v := range values {
		counts[v]++
	}
	if len(counts) == 1 {
		return 0
	}

	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		p = append(p, float64(c)/float64(n))
	}

	// stat.Entropy works in nats; convert to bits.
	return stat.Entropy(p) / math.Ln2
}

// Gain returns the information gain of splitting ds on feature with respect
// to the target attribute:
//
//	Entropy(target values) - Σ_v (|ds_v| / |ds|) · Entropy(target values of ds_v)
//
// where ds_v is the subset of records with feature == v. No gain-ratio
// normalization is applied. The gain of an empty dataset is 0.
func Gain(ds dataset.Dataset, target, feature string) float64 {
	total := float64(len(ds))
	if total == 0 {
		return 0
	}

	g := Entropy(ds.Column(target))
	for _, v := range ds.DistinctValues(feature) {
		sub := ds.Filter(feature, v)
		g -= float64(len(sub)) / total * Entropy(sub.Column(target))
	}
	return g
}

// MaxGain returns the candidate feature with the highest information gain.
// Ties are broken by caller-supplied order: the first candidate achieving
// the maximum wins. This ordering sensitivity is part of the contract; it
// keeps induction reproducible for a given feature list.
//
// MaxGain returns "" when candidates is empty.
func MaxGain(ds dataset.Dataset, target string, candidates []string) string {
	best := ""
	bestGain := math.Inf(-1)
	for _, f := range candidates {
		if g := Gain(ds, target, f); g > bestGain {
			best = f
			bestGain = g
		}
	}
	return best
}
