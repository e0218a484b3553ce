// Package quad provides adaptive numeric integration over finite intervals.
//
// The integrator follows the global adaptive scheme popularized by
// QUADPACK's QAG routine: the interval with the largest error estimate is
// bisected until the summed estimate meets the requested tolerance or the
// interval budget is exhausted. Each interval is evaluated with a 15-point
// and a 7-point Gauss-Legendre rule (gonum's integrate/quad); their
// difference serves as the local error estimate.
//
// Gauss-Legendre nodes never touch interval endpoints, and bisection
// isolates jumps quickly, so piecewise-continuous integrands such as square
// waves integrate without special handling. Every jump costs a few dozen
// intervals, so integrands with many jumps may exhaust the budget before the
// tolerance is met. Such an estimate is still returned without error when
// its error estimate lies within the acceptance bound (see [WithAcceptance]).
//
//	res, err := quad.Integrate(math.Sin, 0, math.Pi)
//	// res.Value ~ 2
package quad
