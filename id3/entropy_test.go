package id3

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/goid3/dataset"
)

const tol = 1e-6

func TestEntropy(t *testing.T) {
	tests := []struct {
		name   string
		values []dataset.Value
		want   float64
	}{
		{
			name:   "empty sequence",
			values: nil,
			want:   0,
		},
		{
			name:   "single value",
			values: []dataset.Value{"Yes"},
			want:   0,
		},
		{
			name:   "one distinct value",
			values: []dataset.Value{"Yes", "Yes", "Yes", "Yes"},
			want:   0,
		},
		{
			name:   "uniform two-class split",
			values: []dataset.Value{"Yes", "No", "Yes", "No"},
			want:   1.0,
		},
		{
			name:   "9/5 split",
			values: append(repeat("Yes", 9), repeat("No", 5)...),
			want:   0.940286,
		},
		{
			name:   "uniform four-class split",
			values: []dataset.Value{"a", "b", "c", "d"},
			want:   2.0,
		},
		{
			name:   "boolean values",
			values: []dataset.Value{true, false},
			want:   1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.values)
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGain_WeatherValues(t *testing.T) {
	ds := weatherData()

	tests := []struct {
		feature string
		want    float64
	}{
		{"outlook", 0.246750},
		{"humidity", 0.151836},
		{"windy", 0.048127},
	}

	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			got := Gain(ds, "play", tt.feature)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Gain(%q) = %v, want %v", tt.feature, got, tt.want)
			}
		})
	}
}

func TestGain_NonNegative(t *testing.T) {
	ds := weatherData()
	for _, f := range []string{"outlook", "humidity", "windy"} {
		if g := Gain(ds, "play", f); g < 0 {
			t.Errorf("Gain(%q) = %v, information gain must never be negative", f, g)
		}
	}
}

func TestGain_PerfectSeparator(t *testing.T) {
	// humidity perfectly separates the labels here, so its gain must equal
	// the full-set entropy.
	ds := dataset.Dataset{
		{"humidity": "High", "windy": false, "play": "No"},
		{"humidity": "High", "windy": true, "play": "No"},
		{"humidity": "Normal", "windy": false, "play": "Yes"},
		{"humidity": "Normal", "windy": true, "play": "Yes"},
		{"humidity": "High", "windy": true, "play": "No"},
	}

	base := Entropy(ds.Column("play"))
	if base <= 0 {
		t.Fatalf("base entropy should be positive, got %v", base)
	}

	if g := Gain(ds, "play", "humidity"); math.Abs(g-base) > tol {
		t.Errorf("Gain(humidity) = %v, want full-set entropy %v", g, base)
	}
}

func TestMaxGain_SelectsBestFeature(t *testing.T) {
	ds := weatherData()

	got := MaxGain(ds, "play", []string{"humidity", "windy", "outlook"})
	if got != "outlook" {
		t.Errorf("MaxGain = %q, want outlook", got)
	}
}

func TestMaxGain_TieBreakByCallerOrder(t *testing.T) {
	// a and b are identical columns, so their gains tie exactly. The first
	// candidate in the supplied order must win.
	ds := dataset.Dataset{
		{"a": "x", "b": "x", "label": "p"},
		{"a": "y", "b": "y", "label": "q"},
		{"a": "x", "b": "x", "label": "p"},
		{"a": "y", "b": "y", "label": "q"},
	}

	if got := MaxGain(ds, "label", []string{"a", "b"}); got != "a" {
		t.Errorf("MaxGain([a b]) = %q, want a", got)
	}
	if got := MaxGain(ds, "label", []string{"b", "a"}); got != "b" {
		t.Errorf("MaxGain([b a]) = %q, want b", got)
	}
}

func TestMaxGain_EmptyCandidates(t *testing.T) {
	if got := MaxGain(weatherData(), "play", nil); got != "" {
		t.Errorf("MaxGain(nil) = %q, want empty string", got)
	}
}

func repeat(v dataset.Value, n int) []dataset.Value {
	out := make([]dataset.Value, n)
	for i := range out {
		out[i] = v
	}
	return out
}
