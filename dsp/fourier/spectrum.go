package fourier

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// dcScaled returns the cosine coefficients with A[0] halved, so that index
// 0 holds the DC level of the reconstructed signal.
func (s *Series) dcScaled() []float64 {
	re := s.Cosine()
	re[0] /= 2
	return re
}

// Amplitudes returns the magnitude of each harmonic, sqrt(A[n]^2 + B[n]^2).
// Index 0 holds |A[0]/2|, the DC level.
func (s *Series) Amplitudes() []float64 {
	out := make([]float64, len(s.a))
	vecmath.Magnitude(out, s.dcScaled(), s.b)
	return out
}

// Power returns the squared magnitude of each harmonic. Index 0 holds
// (A[0]/2)^2.
func (s *Series) Power() []float64 {
	out := make([]float64, len(s.a))
	vecmath.Power(out, s.dcScaled(), s.b)
	return out
}

// Phases returns the phase of each harmonic in radians, chosen so that
// A[n] cos(x) + B[n] sin(x) = M[n] cos(x + phase[n]).
func (s *Series) Phases() []float64 {
	out := make([]float64, len(s.a))
	for n := range out {
		out[n] = math.Atan2(-s.b[n], s.a[n])
	}
	return out
}

// MeanSquare returns the mean of s(t)^2 over one period using Parseval's
// identity: (A[0]/2)^2 + 1/2 * sum_{n>=1} (A[n]^2 + B[n]^2).
func (s *Series) MeanSquare() float64 {
	p := s.Power()
	ms := p[0]
	for _, v := range p[1:] {
		ms += v / 2
	}
	return ms
}
