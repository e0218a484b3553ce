package fourier

import (
	"github.com/cwbudde/algo-fourier/dsp/quad"
	"github.com/rs/zerolog"
)

// Integrator computes definite integrals over finite intervals.
// [quad.Integrator] is the default implementation.
type Integrator interface {
	Integrate(f func(float64) float64, a, b float64) (quad.Result, error)
}

// Config controls how series coefficients are computed.
type Config struct {
	Integrator Integrator
	Workers    int
	Logger     zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a sequential configuration with a default
// integrator and logging disabled.
func DefaultConfig() Config {
	return Config{
		Integrator: quad.New(),
		Workers:    1,
		Logger:     zerolog.Nop(),
	}
}

// WithIntegrator sets the quadrature engine used for coefficient integrals.
// A nil integrator, including a nil *quad.Integrator, keeps the default.
func WithIntegrator(in Integrator) Option {
	return func(cfg *Config) {
		if q, ok := in.(*quad.Integrator); in == nil || (ok && q == nil) {
			return
		}
		cfg.Integrator = in
	}
}

// WithWorkers sets how many coefficient integrals may run concurrently.
// With more than one worker the target function must be safe for
// concurrent calls.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
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
	return cfg
}
