package signal

import "math"

// Sine returns t -> amplitude * sin(omega*t + phase), omega in rad/s.
func Sine(amplitude, omega, phase float64) func(float64) float64 {
	return func(t float64) float64 {
		return amplitude * math.Sin(omega*t+phase)
	}
}

// Square returns a unit square wave with the given period: +1 where
// sin(2*pi*t/period) > 0 and -1 elsewhere, including the zero crossings.
func Square(period float64) func(float64) float64 {
	w := 2 * math.Pi / period
	return func(t float64) float64 {
		if math.Sin(w*t) > 0 {
			return 1
		}
		return -1
	}
}

// Sawtooth returns a unit sawtooth rising linearly from -1 to 1 over
// [-period/2, period/2).
func Sawtooth(period float64) func(float64) float64 {
	return func(t float64) float64 {
		x := t / period
		return 2 * (x - math.Floor(x+0.5))
	}
}

// Triangle returns a unit triangle wave peaking at +1 for t = 0 and
// reaching -1 at +-period/2.
func Triangle(period float64) func(float64) float64 {
	return func(t float64) float64 {
		x := t / period
		return 1 - 4*math.Abs(x-math.Floor(x+0.5))
	}
}
