package linear

import (
	"gonum.org/v1/gonum/mat"
)

// Trainer は modelselection の学習インターフェースに LinearRegression を適合させる。
// 呼び出しごとに新しいモデルインスタンスを生成して学習させる。
// 線形回帰にハイパーパラメータはないため、追加引数は無視される。
type Trainer struct{}

// Train は訓練データで新しい線形回帰モデルを学習させて返す
func (Trainer) Train(X mat.Matrix, y *mat.VecDense, _ ...any) (*LinearRegression, error) {
	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		return nil, err
	}
	return lr, nil
}

// TrainWeighted はサンプル重み付きで新しい線形回帰モデルを学習させて返す
func (Trainer) TrainWeighted(X mat.Matrix, y, sampleWeight *mat.VecDense, _ ...any) (*LinearRegression, error) {
	lr := NewLinearRegression()
	if err := lr.FitWeighted(X, y, sampleWeight); err != nil {
		return nil, err
	}
	return lr, nil
}
