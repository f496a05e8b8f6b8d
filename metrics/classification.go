package metrics

import (
	"math"

	"github.com/YuminosukeSato/scival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は正解率を計算する。
// 連続値の予測は最近傍の整数ラベルに丸めてから比較する。
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if math.Round(yPred.AtVec(i)) == math.Round(yTrue.AtVec(i)) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}
