package quad

import "github.com/rs/zerolog"

const (
	// DefaultAbsTol is the default absolute error tolerance.
	DefaultAbsTol = 1.49e-8
	// DefaultRelTol is the default relative error tolerance.
	DefaultRelTol = 1.49e-8
	// DefaultAcceptTol bounds the error estimate that is still accepted
	// when the subdivision limit is reached before the tolerance is met.
	DefaultAcceptTol = 1e-6
	// DefaultLimit is the default maximum number of subintervals.
	DefaultLimit = 1000
)

// Config holds integrator tolerances and the subdivision budget.
type Config struct {
	AbsTol    float64
	RelTol    float64
	AcceptTol float64
	Limit     int
	Logger    zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default integrator configuration.
func DefaultConfig() Config {
	return Config{
		AbsTol:    DefaultAbsTol,
		RelTol:    DefaultRelTol,
		AcceptTol: DefaultAcceptTol,
		Limit:     DefaultLimit,
		Logger:    zerolog.Nop(),
	}
}

// WithTolerance sets the absolute and relative error tolerances.
// Negative values are ignored; zero disables that criterion.
func WithTolerance(absTol, relTol float64) Option {
	return func(cfg *Config) {
		if absTol >= 0 {
			cfg.AbsTol = absTol
		}
		if relTol >= 0 {
			cfg.RelTol = relTol
		}
	}
}

// WithAcceptance sets the absolute and relative bound under which an
// estimate is returned without error once the subdivision limit is hit.
// Zero makes the limit strict. Negative values are ignored.
func WithAcceptance(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.AcceptTol = tol
		}
	}
}

// WithLogger sets the logger that reports accepted shortfalls.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithLimit sets the maximum number of subintervals.
func WithLimit(limit int) Option {
	return func(cfg *Config) {
		if limit > 0 {
			cfg.Limit = limit
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Both criteria disabled would never converge.
	if cfg.AbsTol == 0 && cfg.RelTol == 0 {
		cfg.AbsTol = DefaultAbsTol
	}
	return cfg
}
