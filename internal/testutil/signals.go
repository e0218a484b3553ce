package testutil

// SamplePeriod evaluates fn at n uniformly spaced points covering
// [start, start+period), excluding the end point.
func SamplePeriod(fn func(float64) float64, start, period float64, n int) (ts, ys []float64) {
	if n <= 0 {
		return nil, nil
	}
	ts = make([]float64, n)
	ys = make([]float64, n)
	step := period / float64(n)
	for i := range ts {
		ts[i] = start + float64(i)*step
		ys[i] = fn(ts[i])
	}
	return ts, ys
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
