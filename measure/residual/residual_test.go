package residual

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSlicesKnownValues(t *testing.T) {
	target := testutil.DC(1, 4)
	approx := []float64{1, 1.5, 0.5, 1}

	res, err := CompareSlices(target, approx)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Samples)
	assert.InDelta(t, 0.125, res.MSE, 1e-15)
	assert.InDelta(t, math.Sqrt(0.125), res.RMS, 1e-15)
	assert.InDelta(t, 0.5, res.MaxAbs, 1e-15)
	assert.Equal(t, 1, res.MaxPos)
	assert.InDelta(t, 0.5, res.Overshoot, 1e-15)
}

func TestCompareSlicesIdentical(t *testing.T) {
	x := testutil.Impulse(8, 5)
	res, err := CompareSlices(x, x)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.MSE)
	assert.Equal(t, 0.0, res.MaxAbs)
	assert.Equal(t, 0.0, res.Overshoot)
}

func TestCompareSlicesNegativeDeviation(t *testing.T) {
	res, err := CompareSlices(testutil.DC(0, 8), testutil.Impulse(8, 6))
	require.NoError(t, err)
	assert.Equal(t, 6, res.MaxPos)
	assert.InDelta(t, 1, res.MaxAbs, 1e-15)
	assert.InDelta(t, 1.0/8, res.MSE, 1e-15)
}

func TestCompareSlicesErrors(t *testing.T) {
	_, err := CompareSlices(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = CompareSlices([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCompareErrors(t *testing.T) {
	_, err := Compare(math.Sin, math.Sin, 0, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = Compare(math.Sin, math.Sin, 0, math.Inf(1), 8)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = Compare(math.Sin, math.Sin, 0, 1, 0)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Compare(nil, math.Sin, 0, 1, 4)
	require.Error(t, err)
}

func TestCompareMatchesSampledSlices(t *testing.T) {
	approx := func(t float64) float64 { return math.Sin(t) + 0.1 }

	res, err := Compare(math.Sin, approx, 0, 2*math.Pi, 64)
	require.NoError(t, err)

	_, want := testutil.SamplePeriod(math.Sin, 0, 2*math.Pi, 64)
	_, got := testutil.SamplePeriod(approx, 0, 2*math.Pi, 64)
	direct, err := CompareSlices(want, got)
	require.NoError(t, err)

	assert.Equal(t, direct, res)
	assert.InDelta(t, 0.01, res.MSE, 1e-12)
}

func TestGibbsOvershootPersists(t *testing.T) {
	const period = 2 * math.Pi
	square := signal.Square(period)

	prevMSE := math.Inf(1)
	for _, order := range []int{5, 15, 31} {
		s, err := fourier.New(square, period, order)
		require.NoError(t, err)

		res, err := Compare(square, s.Eval, -period/2, period, 4096)
		require.NoError(t, err)

		// The ~9% overshoot at the jump does not vanish as N grows.
		assert.Greater(t, res.Overshoot, 0.05, "order %d", order)
		assert.Less(t, res.Overshoot, 0.2, "order %d", order)
		assert.Less(t, res.MSE, prevMSE, "order %d", order)
		prevMSE = res.MSE
	}
}
