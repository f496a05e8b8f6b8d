// Package scival provides single-holdout model validation for Go,
// designed for backend services that need to train and score models
// against a fixed train/validation partition.
//
// The dataset is split once into a contiguous training prefix and a
// validation suffix; a model is trained on the prefix and scored on the
// suffix with a pluggable metric. Datasets with per-point sample weights
// are supported: the weights are partitioned alongside the data and used
// for training only, never for scoring.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/scival/linear"
//	    "github.com/YuminosukeSato/scival/modelselection"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(10, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	    y := mat.NewVecDense(10, []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20})
//
//	    // Reserve 30% of the points for validation.
//	    holdout, err := modelselection.NewHoldout[*linear.LinearRegression](
//	        linear.Trainer{},
//	        modelselection.MSE[*linear.LinearRegression]{},
//	        0.3, X, y,
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score, err := holdout.Evaluate()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("validation MSE:", score)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - modelselection: the holdout splitter and evaluator, plus metric adapters
//   - linear: a linear regression model with weighted least squares support
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², accuracy)
//   - core/model: core interfaces and base types
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging for training and validation runs
//
// # Design
//
// The evaluator is generic over the model type. Training and scoring are
// narrow interfaces (modelselection.Trainer, modelselection.Metric) so any
// model/metric combination can be validated without adapters beyond a
// function value. Whether training receives sample weights is decided by the
// constructor, not by inspecting weight values at evaluation time.
//
// # License
//
// scival is released under the MIT License.
package scival
