package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/quad"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/measure/residual"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
)

func analyze(w io.Writer, logger zerolog.Logger, entry waveEntry, opts options) error {
	target := entry.make(opts.period)

	start := time.Now()
	s, err := build(logger, target, opts)
	if err != nil {
		return err
	}
	logger.Info().
		Str("wave", entry.name).
		Str("method", opts.method).
		Int("order", opts.order).
		Dur("elapsed", time.Since(start)).
		Msg("approximation built")

	if err := printCoefficients(w, s); err != nil {
		return err
	}

	targetMS, err := targetMeanSquare(target, opts.period)
	if err != nil {
		return err
	}

	res, err := residual.Compare(target, s.Eval, -opts.period/2, opts.period, opts.samples)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "\nMean square (series)\t%.6f\n", s.MeanSquare())
	_, _ = fmt.Fprintf(tw, "Mean square (target)\t%.6f\n", targetMS)
	_, _ = fmt.Fprintf(tw, "MSE\t%.6g\n", res.MSE)
	_, _ = fmt.Fprintf(tw, "RMS error\t%.6g\n", res.RMS)
	_, _ = fmt.Fprintf(tw, "Max error\t%.6g\n", res.MaxAbs)
	_, _ = fmt.Fprintf(tw, "Overshoot\t%.6g\n", res.Overshoot)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	if opts.plot {
		return plot(w, target, s, opts)
	}
	return nil
}

func build(logger zerolog.Logger, target func(float64) float64, opts options) (*fourier.Series, error) {
	common := []fourier.Option{fourier.WithLogger(logger)}

	switch opts.method {
	case "quad":
		in := quad.New(quad.WithTolerance(opts.tol, opts.tol), quad.WithLogger(logger))
		return fourier.New(target, opts.period, opts.order,
			append(common, fourier.WithIntegrator(in), fourier.WithWorkers(opts.workers))...)
	case "fft":
		g := signal.NewGenerator(signal.WithSeed(opts.seed))
		samples, err := g.Sample(target, fourier.SamplePoints(opts.period, opts.samples))
		if err != nil {
			return nil, err
		}
		if opts.noise > 0 {
			if samples, err = g.AddNoise(samples, opts.noise); err != nil {
				return nil, err
			}
		}
		if opts.peak > 0 {
			if samples, err = signal.Normalize(samples, opts.peak); err != nil {
				return nil, err
			}
		}
		return fourier.FromSamples(samples, opts.period, opts.order, common...)
	default:
		return nil, fmt.Errorf("unknown method %q (want quad or fft)", opts.method)
	}
}

func targetMeanSquare(target func(float64) float64, period float64) (float64, error) {
	res, err := quad.Integrate(func(t float64) float64 {
		v := target(t)
		return v * v
	}, -period/2, period/2)
	if err != nil {
		return 0, fmt.Errorf("target mean square: %w", err)
	}
	return res.Value / period, nil
}

func printCoefficients(w io.Writer, s *fourier.Series) error {
	a, b := s.Cosine(), s.Sine()
	amp, phase := s.Amplitudes(), s.Phases()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "n\tA[n]\tB[n]\tAmplitude\tPhase [rad]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t----\t----\t---------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for n := range a {
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.4f\n",
			n, clean(a[n]), clean(b[n]), clean(amp[n]), clean(phase[n])); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// clean suppresses quadrature noise so tables do not print -0.000000.
func clean(v float64) float64 {
	if math.Abs(v) < 5e-7 {
		return 0
	}
	return v
}

func plot(w io.Writer, target func(float64) float64, s *fourier.Series, opts options) error {
	ts := signal.Linspace(-opts.period/2, opts.period/2, opts.width)
	g := signal.NewGenerator()
	want, err := g.Sample(target, ts)
	if err != nil {
		return err
	}

	for _, p := range []struct {
		caption string
		data    []float64
	}{
		{"target", want},
		{fmt.Sprintf("fourier series, N=%d", s.Order()), s.EvalSlice(ts)},
	} {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(opts.height),
			asciigraph.Width(opts.width),
			asciigraph.Caption(p.caption))
		if _, err := fmt.Fprintf(w, "\n%s\n", graph); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
	}
	return nil
}
