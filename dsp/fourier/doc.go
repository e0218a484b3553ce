// Package fourier approximates periodic functions with truncated
// trigonometric series.
//
// A [Series] is built once from a target function, its period T and a
// truncation order N. Construction integrates the target against the
// cosine and sine basis over [-T/2, T/2]:
//
//	A[n] = (2/T) * integral f(t) cos(n w t) dt,  n = 0..N
//	B[n] = (2/T) * integral f(t) sin(n w t) dt,  n = 1..N, B[0] = 0
//
// with w = 2*pi/T. The built series is immutable and evaluates
//
//	s(t) = A[0]/2 + sum_{n=1..N} A[n] cos(n w t) + B[n] sin(n w t)
//
// for scalars ([Series.Eval]) or slices ([Series.EvalSlice]). Evaluation
// is safe for concurrent use.
//
// Coefficients can alternatively be estimated from one uniformly sampled
// period with [FromSamples], which uses an FFT instead of quadrature.
//
// # Usage
//
//	s, err := fourier.New(signal.Square(2*math.Pi), 2*math.Pi, 5)
//	if err != nil {
//	    return err
//	}
//	y := s.EvalSlice(signal.Linspace(0, 2*math.Pi, 1000))
package fourier
