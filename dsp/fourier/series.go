package fourier

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by series construction and evaluation.
var (
	ErrInvalidArgument     = errors.New("fourier: invalid argument")
	ErrNumericIntegration  = errors.New("fourier: numeric integration failed")
	ErrLengthMismatch      = errors.New("fourier: buffer length mismatch")
	ErrInsufficientSamples = errors.New("fourier: insufficient samples")
)

// Series is a truncated Fourier series over a fixed period.
// A Series is immutable once built.
type Series struct {
	fn     func(float64) float64
	period float64
	omega  float64
	a      []float64 // cosine coefficients, harmonics 0..N
	b      []float64 // sine coefficients, b[0] == 0
}

// NewFromCoefficients builds a series from known coefficients.
// cosine and sine must have equal, non-zero length and sine[0] must be 0.
// The slices are copied.
func NewFromCoefficients(cosine, sine []float64, period float64) (*Series, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(cosine) == 0 || len(cosine) != len(sine) {
		return nil, fmt.Errorf("%w: coefficient lengths %d and %d", ErrInvalidArgument, len(cosine), len(sine))
	}
	if sine[0] != 0 {
		return nil, fmt.Errorf("%w: sine[0] must be 0, got %v", ErrInvalidArgument, sine[0])
	}

	s := newSeries(nil, period, len(cosine)-1)
	copy(s.a, cosine)
	copy(s.b[1:], sine[1:])
	return s, nil
}

func newSeries(fn func(float64) float64, period float64, order int) *Series {
	return &Series{
		fn:     fn,
		period: period,
		omega:  2 * math.Pi / period,
		a:      make([]float64, order+1),
		b:      make([]float64, order+1),
	}
}

func validatePeriod(period float64) error {
	if !(period > 0) || math.IsInf(period, 1) {
		return fmt.Errorf("%w: period must be finite and > 0, got %v", ErrInvalidArgument, period)
	}
	return nil
}

func validateOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: order must be >= 0, got %d", ErrInvalidArgument, order)
	}
	return nil
}

// Period returns the fundamental period T.
func (s *Series) Period() float64 { return s.period }

// AngularFrequency returns w = 2*pi/T.
func (s *Series) AngularFrequency() float64 { return s.omega }

// Order returns the truncation order N.
func (s *Series) Order() int { return len(s.a) - 1 }

// Cosine returns a copy of the cosine coefficients A[0..N].
func (s *Series) Cosine() []float64 {
	return append([]float64(nil), s.a...)
}

// Sine returns a copy of the sine coefficients B[0..N]. B[0] is always 0.
func (s *Series) Sine() []float64 {
	return append([]float64(nil), s.b...)
}

// Coefficient returns A[n] and B[n]. ok is false when n is out of range.
func (s *Series) Coefficient(n int) (a, b float64, ok bool) {
	if n < 0 || n >= len(s.a) {
		return 0, 0, false
	}
	return s.a[n], s.b[n], true
}

// Eval reconstructs the approximated signal at t.
// A non-finite t yields NaN for any series with N >= 1.
func (s *Series) Eval(t float64) float64 {
	sum := s.a[0] / 2
	wt := s.omega * t
	for n := 1; n < len(s.a); n++ {
		sin, cos := math.Sincos(float64(n) * wt)
		sum += s.a[n]*cos + s.b[n]*sin
	}
	return sum
}

// EvalSlice evaluates the series at every element of ts.
func (s *Series) EvalSlice(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = s.Eval(t)
	}
	return out
}

// EvalInto evaluates the series at every element of ts into dst.
func (s *Series) EvalInto(dst, ts []float64) error {
	if len(dst) != len(ts) {
		return fmt.Errorf("%w: dst %d, ts %d", ErrLengthMismatch, len(dst), len(ts))
	}
	for i, t := range ts {
		dst[i] = s.Eval(t)
	}
	return nil
}
