package quad

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	gonumquad "gonum.org/v1/gonum/integrate/quad"
)

const (
	highOrder = 15
	lowOrder  = 7

	// Intervals narrower than this fraction of the full range are final.
	minWidthRatio = 1e-12
)

// Errors returned by the integrator.
var (
	ErrNilIntegrand  = errors.New("quad: nil integrand")
	ErrInvalidBounds = errors.New("quad: integration bounds must be finite")
	ErrNonFinite     = errors.New("quad: integrand produced a non-finite value")
	ErrNoConvergence = errors.New("quad: subdivision limit reached before convergence")
)

// Result holds an integral estimate and its bookkeeping.
type Result struct {
	Value       float64
	AbsErr      float64
	Intervals   int
	Evaluations int
}

// Integrator performs adaptive Gauss-Legendre integration.
// An Integrator is immutable and safe for concurrent use.
type Integrator struct {
	cfg Config
}

// New creates an integrator from the given options.
func New(opts ...Option) *Integrator {
	return &Integrator{cfg: ApplyOptions(opts...)}
}

// Config returns the integrator configuration.
func (in *Integrator) Config() Config {
	return in.cfg
}

// Integrate is a one-shot integration of f over [a, b] with default settings.
func Integrate(f func(float64) float64, a, b float64) (Result, error) {
	return New().Integrate(f, a, b)
}

// Integrate estimates the integral of f over [a, b].
//
// When the subdivision limit is reached before the tolerance is met, the
// best estimate so far is returned. It carries an error wrapping
// [ErrNoConvergence] only if its error estimate also exceeds the acceptance
// bound max(AcceptTol, AcceptTol*|I|). If a > b the negated integral over [b, a] is returned.
func (in *Integrator) Integrate(f func(float64) float64, a, b float64) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Result{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, a, b)
	}
	if a == b {
		return Result{}, nil
	}

	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	res, err := in.integrate(f, a, b)
	res.Value *= sign
	return res, err
}

func (in *Integrator) integrate(f func(float64) float64, a, b float64) (Result, error) {
	root, err := estimate(f, a, b)
	if err != nil {
		return Result{}, err
	}

	res := Result{Evaluations: highOrder + lowOrder}
	pending := &segmentHeap{root}
	var final []segment

	total, totalErr := root.value, root.err
	minWidth := (b - a) * minWidthRatio

	for totalErr > in.tolerance(total) && pending.Len() > 0 {
		if pending.Len()+len(final) >= in.cfg.Limit {
			res.Value, res.AbsErr = sum(pending, final)
			res.Intervals = pending.Len() + len(final)
			return res, fmt.Errorf("%w: %d intervals, error estimate %g", ErrNoConvergence, res.Intervals, res.AbsErr)
		}

		worst := heap.Pop(pending).(segment)
		if worst.hi-worst.lo <= minWidth {
			final = append(final, worst)
			continue
		}

		mid := worst.lo + (worst.hi-worst.lo)/2
		left, err := estimate(f, worst.lo, mid)
		if err != nil {
			return Result{}, err
		}
		right, err := estimate(f, mid, worst.hi)
		if err != nil {
			return Result{}, err
		}
		res.Evaluations += 2 * (highOrder + lowOrder)

		heap.Push(pending, left)
		heap.Push(pending, right)

		total += left.value + right.value - worst.value
		totalErr += left.err + right.err - worst.err
	}

	res.Value, res.AbsErr = sum(pending, final)
	res.Intervals = pending.Len() + len(final)
	return res, nil
}

// limitReached decides whether an estimate cut off by the interval budget
// is still usable.
func (in *Integrator) limitReached(res Result) error {
	bound := math.Max(in.cfg.AcceptTol, in.cfg.AcceptTol*math.Abs(res.Value))
	if !isFinite(res.AbsErr) || res.AbsErr > bound {
		return fmt.Errorf("%w: %d intervals, error estimate %g", ErrNoConvergence, res.Intervals, res.AbsErr)
	}
	in.cfg.Logger.Debug().
		Int("intervals", res.Intervals).
		Float64("abs_err", res.AbsErr).
		Float64("tolerance", in.tolerance(res.Value)).
		Float64("bound", bound).
		Msg("subdivision limit reached, estimate accepted")
	return nil
}

func (in *Integrator) tolerance(value float64) float64 {
	return math.Max(in.cfg.AbsTol, in.cfg.RelTol*math.Abs(value))
}

// estimate evaluates one interval with both Gauss-Legendre rules.
func estimate(f func(float64) float64, lo, hi float64) (segment, error) {
	high := gonumquad.Fixed(f, lo, hi, highOrder, gonumquad.Legendre{}, 1)
	low := gonumquad.Fixed(f, lo, hi, lowOrder, gonumquad.Legendre{}, 1)
	if !isFinite(high) || !isFinite(low) {
		return segment{}, fmt.Errorf("%w: on [%g, %g]", ErrNonFinite, lo, hi)
	}
	return segment{lo: lo, hi: hi, value: high, err: math.Abs(high - low)}, nil
}

// sum recomputes the totals from scratch to avoid incremental drift.
func sum(pending *segmentHeap, final []segment) (value, absErr float64) {
	for _, s := range *pending {
		value += s.value
		absErr += s.err
	}
	for _, s := range final {
		value += s.value
		absErr += s.err
	}
	return value, absErr
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
