package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		yTrue    []dataset.Value
		yPred    []dataset.Value
		want     float64
		wantErr  bool
		emptyErr bool
	}{
		{
			name:  "perfect predictions",
			yTrue: []dataset.Value{"Yes", "No", "Yes"},
			yPred: []dataset.Value{"Yes", "No", "Yes"},
			want:  1.0,
		},
		{
			name:  "all wrong",
			yTrue: []dataset.Value{"Yes", "Yes"},
			yPred: []dataset.Value{"No", "No"},
			want:  0.0,
		},
		{
			name:  "half correct",
			yTrue: []dataset.Value{"Yes", "No", "Yes", "No"},
			yPred: []dataset.Value{"Yes", "Yes", "No", "No"},
			want:  0.5,
		},
		{
			name:  "mixed value types",
			yTrue: []dataset.Value{true, false, true},
			yPred: []dataset.Value{true, true, true},
			want:  2.0 / 3.0,
		},
		{
			name:     "empty input",
			yTrue:    []dataset.Value{},
			yPred:    []dataset.Value{},
			wantErr:  true,
			emptyErr: true,
		},
		{
			name:    "length mismatch",
			yTrue:   []dataset.Value{"Yes", "No"},
			yPred:   []dataset.Value{"Yes"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.emptyErr && !errors.Is(err, errors.ErrEmptyData) {
				t.Errorf("expected ErrEmptyData, got %v", err)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorRate(t *testing.T) {
	yTrue := []dataset.Value{"Yes", "No", "Yes", "No"}
	yPred := []dataset.Value{"Yes", "Yes", "No", "No"}

	got, err := ErrorRate(yTrue, yPred)
	if err != nil {
		t.Fatalf("ErrorRate() error = %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ErrorRate() = %v, want 0.5", got)
	}

	if _, err := ErrorRate(nil, nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData for empty input, got %v", err)
	}
}

func TestNewConfusionMatrix(t *testing.T) {
	yTrue := []dataset.Value{"Yes", "Yes", "No", "No", "Yes"}
	yPred := []dataset.Value{"Yes", "No", "No", "Yes", "Yes"}

	cm, err := NewConfusionMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("NewConfusionMatrix() error = %v", err)
	}

	// Labels collected in first-occurrence order.
	if len(cm.Labels) != 2 || cm.Labels[0] != "Yes" || cm.Labels[1] != "No" {
		t.Fatalf("Labels = %v, want [Yes No]", cm.Labels)
	}

	// Rows are true labels, columns are predictions.
	want := [][]int{
		{2, 1}, // Yes -> Yes x2, Yes -> No x1
		{1, 1}, // No -> Yes x1, No -> No x1
	}
	for i := range want {
		for j := range want[i] {
			if cm.Counts[i][j] != want[i][j] {
				t.Errorf("Counts[%d][%d] = %d, want %d", i, j, cm.Counts[i][j], want[i][j])
			}
		}
	}

	// Diagonal sum must agree with Accuracy.
	acc, _ := Accuracy(yTrue, yPred)
	diag := cm.Counts[0][0] + cm.Counts[1][1]
	if math.Abs(acc-float64(diag)/5.0) > 1e-9 {
		t.Errorf("accuracy %v inconsistent with confusion matrix diagonal %d", acc, diag)
	}
}
