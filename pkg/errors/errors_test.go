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
			wantMsg:  "scival: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "scival: Predict: not fitted",
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

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 10, 7, 0)

	// 基本的なエラーメッセージの確認
	want := "scival: Predict: dimension mismatch on axis 0 (rows). Expected 10, got 7"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("validationSize", "should be more than 0 and less than 1", 1.5)

	want := "scival: validation failed for parameter 'validationSize': should be more than 0 and less than 1 (got: 1.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "validationSize" {
		t.Errorf("ParamName = %v, want validationSize", valErr.ParamName)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Holdout", "Model")

	if !strings.Contains(err.Error(), "Holdout") || !strings.Contains(err.Error(), "Model()") {
		t.Errorf("Error() = %v, should mention model name and method", err.Error())
	}

	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("MSE", "empty vector")

	want := "scival: MSE: empty vector"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestWrap(t *testing.T) {
	base := New("base error")
	wrapped := Wrap(base, "context")

	if !Is(wrapped, base) {
		t.Error("wrapped error should match the base error via Is")
	}
	if !strings.Contains(wrapped.Error(), "context") {
		t.Errorf("Error() = %v, should contain the wrap message", wrapped.Error())
	}
}
