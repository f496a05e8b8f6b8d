package modelselection

import (
	"github.com/YuminosukeSato/scival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// checkDataConsistency verifies that the feature matrix, the target vector
// and the optional sample-weight vector agree on the number of data points.
// It is run before any splitting so the splitter can assume aligned inputs.
func checkDataConsistency(op string, X mat.Matrix, y, sampleWeight *mat.VecDense) error {
	if X == nil {
		return errors.NewValueError(op, "feature matrix must not be nil")
	}
	if y == nil {
		return errors.NewValueError(op, "target vector must not be nil")
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewValueError(op, "empty feature matrix")
	}

	if y.Len() != r {
		return errors.NewDimensionError(op, r, y.Len(), 0)
	}

	if sampleWeight != nil && sampleWeight.Len() != y.Len() {
		return errors.NewDimensionError(op, y.Len(), sampleWeight.Len(), 0)
	}

	return nil
}

// subsetMatrix copies rows [from, to) of X into a fresh dense matrix.
// The input matrix is left untouched.
func subsetMatrix(X mat.Matrix, from, to int) *mat.Dense {
	_, c := X.Dims()
	sub := mat.NewDense(to-from, c, nil)
	for i := from; i < to; i++ {
		for j := 0; j < c; j++ {
			sub.Set(i-from, j, X.At(i, j))
		}
	}
	return sub
}

// subsetVector copies elements [from, to) of v into a fresh vector.
func subsetVector(v *mat.VecDense, from, to int) *mat.VecDense {
	sub := mat.NewVecDense(to-from, nil)
	for i := from; i < to; i++ {
		sub.SetVec(i-from, v.AtVec(i))
	}
	return sub
}
