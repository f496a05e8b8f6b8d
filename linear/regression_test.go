package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scival/pkg/errors"
)

func TestLinearRegressionFit(t *testing.T) {
	// y = 2x + 1
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	if !lr.IsFitted() {
		t.Error("Fit() did not mark the model as fitted")
	}

	weights := lr.GetWeights()
	if len(weights) != 1 {
		t.Fatalf("GetWeights() length = %d, want 1", len(weights))
	}
	if math.Abs(weights[0]-2.0) > 1e-8 {
		t.Errorf("weight = %v, want 2.0", weights[0])
	}
	if math.Abs(lr.GetIntercept()-1.0) > 1e-8 {
		t.Errorf("intercept = %v, want 1.0", lr.GetIntercept())
	}
}

func TestLinearRegressionPredict(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	XTest := mat.NewDense(2, 1, []float64{5, 6})
	pred, err := lr.Predict(XTest)
	if err != nil {
		t.Fatalf("Predict() unexpected error: %v", err)
	}

	want := []float64{11, 13}
	for i, w := range want {
		if got := pred.At(i, 0); math.Abs(got-w) > 1e-8 {
			t.Errorf("Predict()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLinearRegressionPredictNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	_, err := lr.Predict(mat.NewDense(1, 1, []float64{1}))
	if err == nil {
		t.Fatal("Predict() on unfitted model should fail")
	}

	var nferr *errors.NotFittedError
	if !errors.As(err, &nferr) {
		t.Errorf("Predict() error = %v, want NotFittedError", err)
	}
}

func TestLinearRegressionFitWeighted(t *testing.T) {
	t.Run("uniform weights match unweighted fit", func(t *testing.T) {
		X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
		y := mat.NewDense(5, 1, []float64{2.9, 5.1, 7.0, 9.2, 10.8})
		w := mat.NewVecDense(5, []float64{1, 1, 1, 1, 1})

		plain := NewLinearRegression()
		if err := plain.Fit(X, y); err != nil {
			t.Fatalf("Fit() unexpected error: %v", err)
		}

		weighted := NewLinearRegression()
		if err := weighted.FitWeighted(X, y, w); err != nil {
			t.Fatalf("FitWeighted() unexpected error: %v", err)
		}

		if math.Abs(plain.GetWeights()[0]-weighted.GetWeights()[0]) > 1e-8 {
			t.Errorf("weighted slope %v != unweighted slope %v",
				weighted.GetWeights()[0], plain.GetWeights()[0])
		}
		if math.Abs(plain.GetIntercept()-weighted.GetIntercept()) > 1e-8 {
			t.Errorf("weighted intercept %v != unweighted intercept %v",
				weighted.GetIntercept(), plain.GetIntercept())
		}
	})

	t.Run("zero-weight points are ignored", func(t *testing.T) {
		// 最後の点は外れ値だが重み0なので適合に影響しない
		X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
		y := mat.NewDense(5, 1, []float64{3, 5, 7, 9, 100})
		w := mat.NewVecDense(5, []float64{1, 1, 1, 1, 0})

		lr := NewLinearRegression()
		if err := lr.FitWeighted(X, y, w); err != nil {
			t.Fatalf("FitWeighted() unexpected error: %v", err)
		}

		if math.Abs(lr.GetWeights()[0]-2.0) > 1e-8 {
			t.Errorf("slope = %v, want 2.0", lr.GetWeights()[0])
		}
		if math.Abs(lr.GetIntercept()-1.0) > 1e-8 {
			t.Errorf("intercept = %v, want 1.0", lr.GetIntercept())
		}
	})

	t.Run("weight length mismatch", func(t *testing.T) {
		X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
		y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
		w := mat.NewVecDense(3, []float64{1, 1, 1})

		lr := NewLinearRegression()
		err := lr.FitWeighted(X, y, w)
		if err == nil {
			t.Fatal("FitWeighted() with mismatched weights should fail")
		}

		var derr *errors.DimensionError
		if !errors.As(err, &derr) {
			t.Errorf("FitWeighted() error = %v, want DimensionError", err)
		}
	})

	t.Run("nil weights rejected", func(t *testing.T) {
		X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
		y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

		lr := NewLinearRegression()
		if err := lr.FitWeighted(X, y, nil); err == nil {
			t.Fatal("FitWeighted() with nil weights should fail")
		}
	})
}

func TestLinearRegressionScore(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	score, err := lr.Score(X, y)
	if err != nil {
		t.Fatalf("Score() unexpected error: %v", err)
	}
	if math.Abs(score-1.0) > 1e-8 {
		t.Errorf("Score() = %v, want 1.0", score)
	}
}

func TestTrainer(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{3, 5, 7, 9})

	t.Run("Train returns a fresh fitted model", func(t *testing.T) {
		m1, err := Trainer{}.Train(X, y)
		if err != nil {
			t.Fatalf("Train() unexpected error: %v", err)
		}
		m2, err := Trainer{}.Train(X, y)
		if err != nil {
			t.Fatalf("Train() unexpected error: %v", err)
		}

		if m1 == m2 {
			t.Error("Train() should return a new model instance per call")
		}
		if !m1.IsFitted() {
			t.Error("Train() returned an unfitted model")
		}
	})

	t.Run("TrainWeighted forwards the weights", func(t *testing.T) {
		// 外れ値を重み0で無効化
		Xo := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
		yo := mat.NewVecDense(5, []float64{3, 5, 7, 9, 100})
		w := mat.NewVecDense(5, []float64{1, 1, 1, 1, 0})

		m, err := Trainer{}.TrainWeighted(Xo, yo, w)
		if err != nil {
			t.Fatalf("TrainWeighted() unexpected error: %v", err)
		}

		if math.Abs(m.GetWeights()[0]-2.0) > 1e-8 {
			t.Errorf("slope = %v, want 2.0", m.GetWeights()[0])
		}
	})
}
