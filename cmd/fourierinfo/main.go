// Command fourierinfo approximates a periodic waveform with a truncated
// Fourier series and prints its coefficients and reconstruction error.
//
// Usage:
//
//	fourierinfo [flags] [wave]
//
// Without arguments it approximates a square wave of period 2*pi with five
// harmonics, the classic Gibbs phenomenon demonstration.
//
// Examples:
//
//	fourierinfo square
//	fourierinfo -order 15 -plot sawtooth
//	fourierinfo -method fft -samples 1024 -noise 0.1 sine
//	fourierinfo -method fft -normalize 0.5 sine
//	fourierinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/quad"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/rs/zerolog"
)

type waveEntry struct {
	name string
	desc string
	make func(period float64) func(float64) float64
}

var registry = []waveEntry{
	{"square", "+1 where sin > 0, else -1", signal.Square},
	{"sawtooth", "linear ramp from -1 to 1", signal.Sawtooth},
	{"triangle", "peaks at +1 for t = 0", signal.Triangle},
	{"sine", "sin(2wt + 30deg), the phase-shifted demo tone", func(period float64) func(float64) float64 {
		return signal.Sine(1, 2*2*math.Pi/period, math.Pi/6)
	}},
}

type options struct {
	period  float64
	order   int
	method  string
	samples int
	noise   float64
	peak    float64
	seed    int64
	workers int
	tol     float64
	plot    bool
	width   int
	height  int
	verbose bool
	list    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("fourierinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.period, "period", 2*math.Pi, "fundamental period T")
	fs.IntVar(&opts.order, "order", 5, "truncation order N (harmonics 0..N)")
	fs.StringVar(&opts.method, "method", "quad", "coefficient estimator: quad or fft")
	fs.IntVar(&opts.samples, "samples", 1024, "samples per period for -method fft and error metrics")
	fs.Float64Var(&opts.noise, "noise", 0, "gaussian noise stddev added to fft samples")
	fs.Float64Var(&opts.peak, "normalize", 0, "scale fft samples to this peak amplitude (0 keeps them)")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed")
	fs.IntVar(&opts.workers, "workers", 1, "concurrent coefficient integrals")
	fs.Float64Var(&opts.tol, "tol", quad.DefaultRelTol, "relative and absolute quadrature tolerance")
	fs.BoolVar(&opts.plot, "plot", false, "render target and approximation as ASCII plots")
	fs.IntVar(&opts.width, "width", 72, "plot width in columns")
	fs.IntVar(&opts.height, "height", 12, "plot height in rows")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&opts.list, "list", false, "list available waveforms")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fourierinfo [flags] [wave]\n\n")
		fmt.Fprintf(stderr, "Approximates a periodic waveform with a truncated Fourier series.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fourierinfo square\n")
		fmt.Fprintf(stderr, "  fourierinfo -order 15 -plot sawtooth\n")
		fmt.Fprintf(stderr, "  fourierinfo -method fft -noise 0.1 sine\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.list {
		printList(stdout)
		return nil
	}

	name := "square"
	switch fs.NArg() {
	case 0:
	case 1:
		name = fs.Arg(0)
	default:
		return fmt.Errorf("expected at most one waveform, got %d", fs.NArg())
	}

	entry, err := resolveEntry(name)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose)
	return analyze(stdout, logger, entry, opts)
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func printList(w io.Writer) {
	entries := append([]waveEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.name, e.desc)
	}
	_ = tw.Flush()
}

func resolveEntry(name string) (waveEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return waveEntry{}, fmt.Errorf("unknown waveform %q (use -list to see available)", name)
}
