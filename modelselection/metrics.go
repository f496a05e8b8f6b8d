package modelselection

import (
	"github.com/YuminosukeSato/scival/core/model"
	"github.com/YuminosukeSato/scival/metrics"
	"gonum.org/v1/gonum/mat"
)

// Metric adapters bridging yTrue/yPred metrics from the metrics package to
// the model-facing Metric interface used by Holdout. Each adapter predicts on
// the held-out features and delegates the comparison.

// predictVec runs the model on X and flattens the n×1 prediction into a vector.
func predictVec[M model.Predictor](m M, X mat.Matrix) (*mat.VecDense, error) {
	yPred, err := m.Predict(X)
	if err != nil {
		return nil, err
	}
	r, _ := yPred.Dims()
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, yPred.At(i, 0))
	}
	return v, nil
}

// MSE scores a predictor by mean squared error (lower is better).
type MSE[M model.Predictor] struct{}

func (MSE[M]) Evaluate(m M, X mat.Matrix, y *mat.VecDense) (float64, error) {
	yPred, err := predictVec(m, X)
	if err != nil {
		return 0, err
	}
	return metrics.MSE(y, yPred)
}

// RMSE scores a predictor by root mean squared error (lower is better).
type RMSE[M model.Predictor] struct{}

func (RMSE[M]) Evaluate(m M, X mat.Matrix, y *mat.VecDense) (float64, error) {
	yPred, err := predictVec(m, X)
	if err != nil {
		return 0, err
	}
	return metrics.RMSE(y, yPred)
}

// R2 scores a predictor by the coefficient of determination (higher is better).
type R2[M model.Predictor] struct{}

func (R2[M]) Evaluate(m M, X mat.Matrix, y *mat.VecDense) (float64, error) {
	yPred, err := predictVec(m, X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}

// Accuracy scores a classifier by the fraction of correctly predicted labels
// (higher is better). Continuous predictions are rounded to the nearest label.
type Accuracy[M model.Predictor] struct{}

func (Accuracy[M]) Evaluate(m M, X mat.Matrix, y *mat.VecDense) (float64, error) {
	yPred, err := predictVec(m, X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, yPred)
}
