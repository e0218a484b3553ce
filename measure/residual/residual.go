package residual

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by residual comparisons.
var (
	ErrEmptyInput     = errors.New("residual: empty input")
	ErrLengthMismatch = errors.New("residual: length mismatch")
	ErrInvalidPeriod  = errors.New("residual: period must be finite and > 0")
)

// Result holds reconstruction error metrics.
type Result struct {
	Samples   int
	MSE       float64
	RMS       float64
	MaxAbs    float64 // largest |approx - target|
	MaxPos    int     // sample index of MaxAbs
	Overshoot float64 // max(approx) - max(target)
}

// CompareSlices measures approx against target sample by sample.
func CompareSlices(target, approx []float64) (Result, error) {
	n := len(target)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(approx) != n {
		return Result{}, fmt.Errorf("%w: target %d, approx %d", ErrLengthMismatch, n, len(approx))
	}

	diff := make([]float64, n)
	vecmath.ScaleBlock(diff, target, -1)
	vecmath.AddBlockInPlace(diff, approx)

	sq := make([]float64, n)
	vecmath.MulBlock(sq, diff, diff)

	mse := floats.Sum(sq) / float64(n)
	pos := floats.MaxIdx(sq)

	return Result{
		Samples:   n,
		MSE:       mse,
		RMS:       math.Sqrt(mse),
		MaxAbs:    math.Abs(diff[pos]),
		MaxPos:    pos,
		Overshoot: floats.Max(approx) - floats.Max(target),
	}, nil
}

// Compare samples target and approx at uniformly spaced points over
// [start, start+period) and measures the difference.
func Compare(target, approx func(float64) float64, start, period float64, samples int) (Result, error) {
	if target == nil || approx == nil {
		return Result{}, fmt.Errorf("residual: nil function")
	}
	if !(period > 0) || math.IsInf(period, 1) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPeriod, period)
	}
	if samples <= 0 {
		return Result{}, fmt.Errorf("%w: %d samples", ErrEmptyInput, samples)
	}

	want := make([]float64, samples)
	got := make([]float64, samples)
	step := period / float64(samples)
	for i := range want {
		t := start + float64(i)*step
		want[i] = target(t)
		got[i] = approx(t)
	}
	return CompareSlices(want, got)
}
