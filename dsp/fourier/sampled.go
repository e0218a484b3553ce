package fourier

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// SamplePoints returns the m uniformly spaced times t_k = -T/2 + k*T/m
// expected by [FromSamples].
func SamplePoints(period float64, m int) []float64 {
	if m <= 0 {
		return nil
	}
	out := make([]float64, m)
	step := period / float64(m)
	for k := range out {
		out[k] = -period/2 + float64(k)*step
	}
	return out
}

// FromSamples estimates an order-N series from one period of uniformly
// spaced samples taken at [SamplePoints].
//
// The sample count must be a power of two and at least 2N+2 so every
// harmonic lies below Nyquist. The returned series evaluates exactly like
// an integrated one but holds no target function.
func FromSamples(samples []float64, period float64, order int, opts ...Option) (*Series, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	m := len(samples)
	if m < 2*order+2 {
		return nil, fmt.Errorf("%w: order %d needs at least %d samples, got %d",
			ErrInsufficientSamples, order, 2*order+2, m)
	}
	if m&(m-1) != 0 {
		return nil, fmt.Errorf("%w: sample count must be a power of two, got %d", ErrInvalidArgument, m)
	}

	cfg := ApplyOptions(opts...)

	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, m)
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is not finite", ErrInvalidArgument, i)
		}
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, m)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("fourier: forward FFT failed: %w", err)
	}

	// Samples start at -T/2, which shifts harmonic n by (-1)^n.
	s := newSeries(nil, period, order)
	scale := 2 / float64(m)
	for n := 0; n <= order; n++ {
		sign := 1.0
		if n%2 == 1 {
			sign = -1
		}
		s.a[n] = sign * scale * real(bins[n])
		if n > 0 {
			s.b[n] = -sign * scale * imag(bins[n])
		}
	}

	cfg.Logger.Debug().
		Int("samples", m).
		Int("order", order).
		Float64("period", period).
		Msg("fourier coefficients estimated from samples")
	return s, nil
}
