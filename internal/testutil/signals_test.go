package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePeriod(t *testing.T) {
	ts, ys := SamplePeriod(math.Sin, 0, 2*math.Pi, 4)
	require.Len(t, ts, 4)
	require.Len(t, ys, 4)
	assert.InDeltaSlice(t, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}, ts, 1e-15)
	assert.InDeltaSlice(t, []float64{0, 1, 0, -1}, ys, 1e-15)

	ts, ys = SamplePeriod(math.Sin, 0, 1, 0)
	assert.Nil(t, ts)
	assert.Nil(t, ys)
}

func TestImpulse(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 1, 0}, Impulse(5, 3))
	assert.Equal(t, []float64{0, 0}, Impulse(2, 10))
}

func TestDC(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, DC(0.5, 3))
}
