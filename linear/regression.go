package linear

import (
	"github.com/YuminosukeSato/scival/core/model"
	"github.com/YuminosukeSato/scival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression は線形回帰モデル
type LinearRegression struct {
	model.BaseEstimator               // BaseEstimatorを埋め込み
	Weights             *mat.VecDense // 重み（係数）
	Intercept           float64       // 切片
	NFeatures           int           // 特徴量の数
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X^T * X)^(-1) * X^T * y を使用
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	return lr.fit(X, y, nil)
}

// FitWeighted はサンプル重み付きでモデルを学習させる。
// 重み付き最小二乗法 w = (X^T * W * X)^(-1) * X^T * W * y を使用
func (lr *LinearRegression) FitWeighted(X, y mat.Matrix, sampleWeight *mat.VecDense) error {
	if sampleWeight == nil {
		return errors.NewValueError("LinearRegression.FitWeighted", "sampleWeight must not be nil")
	}

	r, _ := X.Dims()
	if sampleWeight.Len() != r {
		return errors.NewDimensionError("LinearRegression.FitWeighted", r, sampleWeight.Len(), 0)
	}

	return lr.fit(X, y, sampleWeight)
}

// fit は正規方程式を解く。sampleWeight が nil の場合は通常の最小二乗法。
func (lr *LinearRegression) fit(X, y mat.Matrix, sampleWeight *mat.VecDense) error {
	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}

	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}

	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	// 切片項のために X に 1 の列を追加
	// X_with_intercept = [1, X]
	XWithIntercept := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		XWithIntercept.Set(i, 0, 1.0) // 切片項
		for j := 0; j < c; j++ {
			XWithIntercept.Set(i, j+1, X.At(i, j))
		}
	}

	// 重み付きの場合は各行を w_i でスケールした WX を作る
	WX := XWithIntercept
	if sampleWeight != nil {
		WX = mat.NewDense(r, c+1, nil)
		for i := 0; i < r; i++ {
			wi := sampleWeight.AtVec(i)
			for j := 0; j < c+1; j++ {
				WX.Set(i, j, wi*XWithIntercept.At(i, j))
			}
		}
	}

	// 正規方程式を解く
	// (X^T * W * X)^(-1) * X^T * W * y
	var XT mat.Dense
	XT.CloneFrom(XWithIntercept.T())

	var XTX mat.Dense
	XTX.Mul(&XT, WX)

	// 逆行列を計算
	var XTXInv mat.Dense
	err := XTXInv.Inverse(&XTX)
	if err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	// W * y を VecDense に変換
	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yi := y.At(i, 0)
		if sampleWeight != nil {
			yi *= sampleWeight.AtVec(i)
		}
		yVec.SetVec(i, yi)
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	// 重みを計算: (X^T * W * X)^(-1) * X^T * W * y
	weights := mat.NewVecDense(c+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	// 切片と重みを分離
	lr.Intercept = weights.AtVec(0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, weights.AtVec(i+1))
	}

	// モデルを学習済み状態に設定
	lr.SetFitted()

	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	// 予測: y = X * weights + intercept
	predictions := mat.NewDense(r, 1, nil)

	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// GetWeights は学習された重み（係数）を返す
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept は学習された切片を返す
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	// 予測値を計算
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()

	// y の平均を計算
	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	// 全変動 (TSS) と残差変動 (RSS) を計算
	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)

		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	// R² = 1 - RSS/TSS
	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}
