package main

import (
	"bytes"
	"errors"
	"flag"
	"regexp"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunList(t *testing.T) {
	out, _, err := runCapture(t, "-list")
	require.NoError(t, err)
	for _, name := range []string{"sawtooth", "sine", "square", "triangle"} {
		assert.Contains(t, out, name)
	}
	assert.Less(t, strings.Index(out, "sawtooth"), strings.Index(out, "triangle"))
}

func TestRunDefaultSquare(t *testing.T) {
	out, logs, err := runCapture(t)
	require.NoError(t, err)

	assert.Contains(t, out, "A[n]")
	assert.Contains(t, out, "1.273240")
	assert.Contains(t, out, "Overshoot")
	assert.Contains(t, out, "Mean square (target)")
	assert.Regexp(t, regexp.MustCompile(`(?m)^5\s+`), out)
	assert.NotRegexp(t, regexp.MustCompile(`(?m)^6\s+`), out)
	assert.Contains(t, logs, "approximation built")
	assert.NotContains(t, logs, "coefficient integrated")
}

func TestRunVerboseLogsIntegrals(t *testing.T) {
	_, logs, err := runCapture(t, "-v", "-order", "2", "-workers", "2", "triangle")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(logs, "coefficient integrated"))
}

func TestRunFFTWithNoise(t *testing.T) {
	out, _, err := runCapture(t, "-method", "fft", "-samples", "256", "-noise", "0.1", "-order", "3", "sine")
	require.NoError(t, err)
	assert.Contains(t, out, "RMS error")
}

func TestRunFFTNormalized(t *testing.T) {
	out, _, err := runCapture(t, "-method", "fft", "-samples", "256", "-normalize", "0.5", "-order", "2", "sine")
	require.NoError(t, err)
	// The demo tone lives in harmonic 2 and keeps only half its amplitude.
	assert.Regexp(t, regexp.MustCompile(`(?m)^2\s+\S+\s+\S+\s+0\.500\d+\s`), out)
}

func TestRunPlot(t *testing.T) {
	out, _, err := runCapture(t, "-plot", "-width", "40", "-height", "5", "sawtooth")
	require.NoError(t, err)
	assert.Contains(t, out, "target")
	assert.Contains(t, out, "fourier series, N=5")
}

func TestRunErrors(t *testing.T) {
	_, _, err := runCapture(t, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown waveform")

	_, _, err = runCapture(t, "-method", "nope")
	require.Error(t, err)

	_, _, err = runCapture(t, "square", "sine")
	require.Error(t, err)

	_, _, err = runCapture(t, "-order", "-1")
	assert.ErrorIs(t, err, fourier.ErrInvalidArgument)

	_, _, err = runCapture(t, "-period", "0")
	assert.ErrorIs(t, err, fourier.ErrInvalidArgument)

	_, _, err = runCapture(t, "-method", "fft", "-samples", "100")
	assert.ErrorIs(t, err, fourier.ErrInvalidArgument)

	_, _, err = runCapture(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
