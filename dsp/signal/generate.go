package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Generator samples continuous waveforms and adds deterministic noise.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sample evaluates fn at every time in ts.
func (g *Generator) Sample(fn func(float64) float64, ts []float64) ([]float64, error) {
	if fn == nil {
		return nil, fmt.Errorf("sample function must not be nil")
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("sample times must not be empty")
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = fn(t)
	}
	return out, nil
}

// AddNoise returns a copy of data with zero-mean Gaussian noise of the
// given standard deviation added. The same seed always yields the same
// noise.
func (g *Generator) AddNoise(data []float64, stddev float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("noise input must not be empty")
	}
	if stddev < 0 {
		return nil, fmt.Errorf("noise stddev must be >= 0: %f", stddev)
	}
	out := make([]float64, len(data))
	rng := rand.New(rand.NewSource(g.seed))
	for i, v := range data {
		out[i] = v + stddev*rng.NormFloat64()
	}
	return out, nil
}

// Linspace returns n evenly spaced values over [start, stop], inclusive.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := math.Max(floats.Max(data), -floats.Min(data))

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}
