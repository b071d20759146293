package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "goid3: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "goid3: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Classifier", "Predict")

	want := "goid3: Classifier: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
	if nfErr.ModelName != "Classifier" || nfErr.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfErr)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("features", "must not contain the target attribute", "play")

	want := "goid3: validation failed for parameter 'features': must not contain the target attribute (got: play)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestErrEmptyDataSentinel(t *testing.T) {
	err := Wrap(ErrEmptyData, "Fit: training dataset is empty")

	if !Is(err, ErrEmptyData) {
		t.Error("wrapped error should match ErrEmptyData sentinel")
	}
	if !strings.Contains(err.Error(), "empty data") {
		t.Errorf("Error() = %v, want it to mention the sentinel", err.Error())
	}
}

func TestUnseenValueWarning(t *testing.T) {
	w := NewUnseenValueWarning("outlook", "Foggy", "Sunny")

	msg := w.Error()
	if !strings.Contains(msg, "outlook") || !strings.Contains(msg, "Foggy") {
		t.Errorf("warning message should name the feature and value, got %q", msg)
	}

	// カスタムハンドラで警告を捕捉できるか確認
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	Warn(w)
	if captured != w {
		t.Errorf("Warn should deliver the warning to the handler, got %v", captured)
	}
}
