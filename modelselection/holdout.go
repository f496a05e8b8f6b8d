// Package modelselection provides single-holdout validation: the dataset is
// partitioned once into a training prefix and a validation suffix, a model is
// trained on the training partition and scored on the validation partition.
//
// The package deliberately implements only the single-split case. K-fold and
// repeated resampling, stratification and pre-split shuffling are out of
// scope; the split is always a contiguous prefix/suffix partition.
package modelselection

import (
	"math"

	"github.com/YuminosukeSato/scival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Trainer fits a fresh model instance to a training partition.
// Extra args are forwarded verbatim from Holdout.Evaluate; their meaning is
// defined entirely by the implementation (hyperparameters, options, ...).
type Trainer[M any] interface {
	Train(X mat.Matrix, y *mat.VecDense, args ...any) (M, error)
}

// WeightedTrainer fits a fresh model instance using per-point sample weights.
type WeightedTrainer[M any] interface {
	TrainWeighted(X mat.Matrix, y, sampleWeight *mat.VecDense, args ...any) (M, error)
}

// Metric scores a trained model against held-out data. Whether higher or
// lower is better is metric-defined; the harness does not interpret scores.
type Metric[M any] interface {
	Evaluate(model M, X mat.Matrix, y *mat.VecDense) (float64, error)
}

// TrainerFunc adapts a plain function to the Trainer interface.
type TrainerFunc[M any] func(X mat.Matrix, y *mat.VecDense, args ...any) (M, error)

func (f TrainerFunc[M]) Train(X mat.Matrix, y *mat.VecDense, args ...any) (M, error) {
	return f(X, y, args...)
}

// WeightedTrainerFunc adapts a plain function to the WeightedTrainer interface.
type WeightedTrainerFunc[M any] func(X mat.Matrix, y, sampleWeight *mat.VecDense, args ...any) (M, error)

func (f WeightedTrainerFunc[M]) TrainWeighted(X mat.Matrix, y, sampleWeight *mat.VecDense, args ...any) (M, error) {
	return f(X, y, sampleWeight, args...)
}

// MetricFunc adapts a plain function to the Metric interface.
type MetricFunc[M any] func(model M, X mat.Matrix, y *mat.VecDense) (float64, error)

func (f MetricFunc[M]) Evaluate(model M, X mat.Matrix, y *mat.VecDense) (float64, error) {
	return f(model, X, y)
}

// Split is a single contiguous holdout partition of a dataset: the first k
// points form the training partition, the remaining points the validation
// partition. When the dataset carries sample weights, TrainWeights holds the
// weights aligned with the training partition; validation weights are never
// kept because scoring is weight-agnostic.
//
// All partitions are copies; the input data stays valid and unmodified.
// A Split is immutable after construction and safe for concurrent reads.
type Split struct {
	TrainX       *mat.Dense
	TrainY       *mat.VecDense
	ValidationX  *mat.Dense
	ValidationY  *mat.VecDense
	TrainWeights *mat.VecDense // nil for unweighted datasets
}

// NewSplit partitions X and y with the first round(N*(1-validationSize))
// points as training data and the rest as validation data. Rounding is half
// away from zero (math.Round), matching C round semantics.
//
// It fails with a ValidationError when validationSize is outside (0, 1),
// when the dataset has fewer than 2 points, or when the rounded boundary
// would leave either partition empty.
func NewSplit(X mat.Matrix, y *mat.VecDense, validationSize float64) (*Split, error) {
	return newSplit("NewSplit", X, y, nil, validationSize)
}

// NewWeightedSplit is NewSplit for datasets with per-point sample weights.
// The weight vector is partitioned alongside the data; only the training
// portion is retained.
func NewWeightedSplit(X mat.Matrix, y, sampleWeight *mat.VecDense, validationSize float64) (*Split, error) {
	if sampleWeight == nil {
		return nil, errors.NewValueError("NewWeightedSplit", "sampleWeight must not be nil")
	}
	return newSplit("NewWeightedSplit", X, y, sampleWeight, validationSize)
}

func newSplit(op string, X mat.Matrix, y, sampleWeight *mat.VecDense, validationSize float64) (*Split, error) {
	if err := checkDataConsistency(op, X, y, sampleWeight); err != nil {
		return nil, err
	}

	n, _ := X.Dims()
	k, err := trainingPoints(validationSize, n)
	if err != nil {
		return nil, err
	}

	s := &Split{
		TrainX:      subsetMatrix(X, 0, k),
		TrainY:      subsetVector(y, 0, k),
		ValidationX: subsetMatrix(X, k, n),
		ValidationY: subsetVector(y, k, n),
	}
	if sampleWeight != nil {
		s.TrainWeights = subsetVector(sampleWeight, 0, k)
	}
	return s, nil
}

// trainingPoints computes the training partition size k = round(N*(1-v)) and
// rejects degenerate splits where one partition would be empty.
func trainingPoints(validationSize float64, n int) (int, error) {
	if validationSize <= 0.0 || validationSize >= 1.0 {
		return 0, errors.NewValidationError("validationSize",
			"should be more than 0 and less than 1", validationSize)
	}

	if n < 2 {
		return 0, errors.NewValidationError("X",
			"2 or more data points are expected", n)
	}

	k := int(math.Round(float64(n) * (1.0 - validationSize)))

	if k == 0 || k == n {
		return 0, errors.NewValidationError("validationSize",
			"is either too small or too big: one partition would be empty", validationSize)
	}

	return k, nil
}

// TrainSize returns the number of points in the training partition.
func (s *Split) TrainSize() int {
	r, _ := s.TrainX.Dims()
	return r
}

// ValidationSize returns the number of points in the validation partition.
func (s *Split) ValidationSize() int {
	r, _ := s.ValidationX.Dims()
	return r
}

// Weighted reports whether the split carries training sample weights.
func (s *Split) Weighted() bool {
	return s.TrainWeights != nil
}

// Holdout runs train-and-score cycles against a fixed Split. The split is
// computed once at construction; Evaluate may be called repeatedly to retrain
// and rescore without re-splitting.
//
// Whether training is invoked with or without sample weights is fixed by the
// constructor (NewHoldout vs NewWeightedHoldout), never by inspecting weight
// values at evaluation time.
//
// A Holdout is not safe for concurrent use: Evaluate replaces the stored
// model and Model reads it without synchronization. Share the Split across
// goroutines instead, one Holdout each.
type Holdout[M any] struct {
	split  *Split
	metric Metric[M]
	train  func(args ...any) (M, error)

	model    M
	hasModel bool
}

// NewHoldout builds a holdout evaluator for an unweighted dataset.
// validationSize is the fraction of points reserved for scoring; see NewSplit
// for the parameter constraints.
func NewHoldout[M any](trainer Trainer[M], metric Metric[M], validationSize float64, X mat.Matrix, y *mat.VecDense) (*Holdout[M], error) {
	if trainer == nil {
		return nil, errors.NewValueError("NewHoldout", "trainer must not be nil")
	}
	if metric == nil {
		return nil, errors.NewValueError("NewHoldout", "metric must not be nil")
	}

	split, err := NewSplit(X, y, validationSize)
	if err != nil {
		return nil, err
	}

	h := &Holdout[M]{split: split, metric: metric}
	h.train = func(args ...any) (M, error) {
		return trainer.Train(split.TrainX, split.TrainY, args...)
	}
	return h, nil
}

// NewWeightedHoldout builds a holdout evaluator for a dataset with per-point
// sample weights. Training always receives the training-weight partition;
// scoring never sees weights.
func NewWeightedHoldout[M any](trainer WeightedTrainer[M], metric Metric[M], validationSize float64, X mat.Matrix, y, sampleWeight *mat.VecDense) (*Holdout[M], error) {
	if trainer == nil {
		return nil, errors.NewValueError("NewWeightedHoldout", "trainer must not be nil")
	}
	if metric == nil {
		return nil, errors.NewValueError("NewWeightedHoldout", "metric must not be nil")
	}

	split, err := NewWeightedSplit(X, y, sampleWeight, validationSize)
	if err != nil {
		return nil, err
	}

	h := &Holdout[M]{split: split, metric: metric}
	h.train = func(args ...any) (M, error) {
		return trainer.TrainWeighted(split.TrainX, split.TrainY, split.TrainWeights, args...)
	}
	return h, nil
}

// Evaluate trains one fresh model on the training partition, forwarding args
// to the trainer, and returns the metric computed on the validation
// partition. The trained model replaces the previously stored one only after
// both training and scoring succeed, so Model keeps returning the last model
// from a fully successful evaluation. Trainer and metric errors propagate
// unwrapped.
func (h *Holdout[M]) Evaluate(args ...any) (float64, error) {
	model, err := h.train(args...)
	if err != nil {
		return 0, err
	}

	score, err := h.metric.Evaluate(model, h.split.ValidationX, h.split.ValidationY)
	if err != nil {
		return 0, err
	}

	h.model = model
	h.hasModel = true
	return score, nil
}

// Model returns the model trained by the most recent successful Evaluate
// call. It fails with a NotFittedError when no evaluation has succeeded yet;
// the check is an explicit state flag, independent of the model type's zero
// value.
func (h *Holdout[M]) Model() (M, error) {
	if !h.hasModel {
		var zero M
		return zero, errors.NewNotFittedError("Holdout", "Model")
	}
	return h.model, nil
}

// Split returns the fixed partitions the evaluator was built with.
func (h *Holdout[M]) Split() *Split {
	return h.split
}
