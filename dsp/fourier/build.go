package fourier

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Kind selects the basis function of a coefficient integral.
type Kind int

const (
	Cosine Kind = iota
	Sine
)

func (k Kind) String() string {
	switch k {
	case Cosine:
		return "cosine"
	case Sine:
		return "sine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// term is the integrand f(t)*basis(n*w*t) for one coefficient.
type term struct {
	fn    func(float64) float64
	omega float64
	n     int
	kind  Kind
}

func (c term) integrand(t float64) float64 {
	x := float64(c.n) * c.omega * t
	if c.kind == Sine {
		return c.fn(t) * math.Sin(x)
	}
	return c.fn(t) * math.Cos(x)
}

// New integrates fn over one period and returns the order-N series.
func New(fn func(float64) float64, period float64, order int, opts ...Option) (*Series, error) {
	return NewContext(context.Background(), fn, period, order, opts...)
}

// NewContext is like New but stops scheduling integrals once ctx is done.
//
// Errors wrap [ErrInvalidArgument] for a nil fn, a non-positive or
// non-finite period, or a negative order, and [ErrNumericIntegration] when
// any coefficient integral fails. No series is returned on error.
func NewContext(ctx context.Context, fn func(float64) float64, period float64, order int, opts ...Option) (*Series, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidArgument)
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)
	s := newSeries(fn, period, order)

	cfg.Logger.Debug().
		Float64("period", period).
		Int("order", order).
		Int("workers", cfg.Workers).
		Msg("computing fourier coefficients")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, c := range terms(fn, s.omega, order) {
		g.Go(func() error {
			return s.integrate(gctx, cfg, c)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug().
		Float64("dc", s.a[0]/2).
		Int("harmonics", order+1).
		Msg("fourier coefficients ready")
	return s, nil
}

// terms lists the 2N+1 coefficient integrals. B[0] is zero by definition
// and has no term.
func terms(fn func(float64) float64, omega float64, order int) []term {
	out := make([]term, 0, 2*order+1)
	for n := 0; n <= order; n++ {
		out = append(out, term{fn: fn, omega: omega, n: n, kind: Cosine})
		if n > 0 {
			out = append(out, term{fn: fn, omega: omega, n: n, kind: Sine})
		}
	}
	return out
}

// integrate computes one coefficient and stores it at its own index.
func (s *Series) integrate(ctx context.Context, cfg Config, c term) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("fourier: %s harmonic %d: %w", c.kind, c.n, err)
	}

	half := s.period / 2
	res, err := cfg.Integrator.Integrate(c.integrand, -half, half)
	if err != nil {
		return fmt.Errorf("%w: %s harmonic %d: %w", ErrNumericIntegration, c.kind, c.n, err)
	}

	v := 2 * res.Value / s.period
	if c.kind == Sine {
		s.b[c.n] = v
	} else {
		s.a[c.n] = v
	}

	cfg.Logger.Debug().
		Stringer("kind", c.kind).
		Int("harmonic", c.n).
		Float64("value", v).
		Float64("abs_err", res.AbsErr).
		Int("intervals", res.Intervals).
		Msg("coefficient integrated")
	return nil
}
