// Package dataset provides the tabular data model consumed by the id3 package.
//
// A Dataset is an ordered sequence of Records; each Record maps attribute
// names to discrete categorical values. Order never affects correctness,
// only deterministic tie-breaking during induction.
package dataset

import (
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// Value is a discrete attribute value. Values must be equality-comparable
// scalars (string, bool, or a numeric type); they are compared with ==.
type Value = any

// Record maps attribute names to values. All records in a dataset share
// the same attribute set, which includes the target attribute.
type Record map[string]Value

// Dataset is an ordered sequence of records.
type Dataset []Record

// Column returns the values of attr across the dataset, in record order.
// Records missing the attribute are skipped.
func (d Dataset) Column(attr string) []Value {
	values := make([]Value, 0, len(d))
	for _, r := range d {
		if v, ok := r[attr]; ok {
			values = append(values, v)
		}
	}
	return values
}

// DistinctValues returns the distinct values attr takes across the dataset,
// in first-occurrence order. The ordering is load-bearing: it fixes the
// edge order of induced tree nodes and therefore the fallback branch used
// for unseen values at prediction time.
func (d Dataset) DistinctValues(attr string) []Value {
	seen := make(map[Value]struct{}, 4)
	var distinct []Value
	for _, r := range d {
		v, ok := r[attr]
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	return distinct
}

// Filter returns a fresh dataset holding the records where attr == v,
// preserving record order. The records themselves are shared, not copied;
// callers must treat them as immutable.
func (d Dataset) Filter(attr string, v Value) Dataset {
	var sub Dataset
	for _, r := range d {
		if rv, ok := r[attr]; ok && rv == v {
			sub = append(sub, r)
		}
	}
	return sub
}

// HasAttribute reports whether attr is present in at least one record.
func (d Dataset) HasAttribute(attr string) bool {
	for _, r := range d {
		if _, ok := r[attr]; ok {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the dataset. Snapshots use it so that an
// exported model shares no mutable state with the live instance.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	for i, r := range d {
		cp := make(Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// Validate checks that the dataset and the requested target/feature schema
// are usable for training. It rejects an empty dataset, a feature list that
// contains the target attribute, duplicated feature names, and attribute
// names absent from every record.
func (d Dataset) Validate(target string, features []string) error {
	if len(d) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "dataset: no records")
	}
	if !d.HasAttribute(target) {
		return errors.NewValidationError("target", "attribute not present in the dataset schema", target)
	}
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if f == target {
			return errors.NewValidationError("features", "must not contain the target attribute", f)
		}
		if _, dup := seen[f]; dup {
			return errors.NewValidationError("features", "duplicate feature name", f)
		}
		seen[f] = struct{}{}
		if !d.HasAttribute(f) {
			return errors.NewValidationError("features", "attribute not present in the dataset schema", f)
		}
	}
	return nil
}
