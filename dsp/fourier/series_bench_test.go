package fourier

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/signal"
)

func BenchmarkNew(b *testing.B) {
	fn := signal.Square(2 * math.Pi)
	for _, workers := range []int{1, 4} {
		b.Run(itoa(workers), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = New(fn, 2*math.Pi, 16, WithWorkers(workers))
			}
		})
	}
}

func BenchmarkEvalSlice(b *testing.B) {
	s, err := New(signal.Triangle(1), 1, 32)
	if err != nil {
		b.Fatal(err)
	}
	ts := signal.Linspace(0, 1, 1024)

	b.ReportAllocs()
	b.SetBytes(int64(len(ts) * 8))
	for range b.N {
		_ = s.EvalSlice(ts)
	}
}

func BenchmarkFromSamples(b *testing.B) {
	samples := sampleOver(signal.Sawtooth(1), 1, 4096)

	b.ReportAllocs()
	for range b.N {
		_, _ = FromSamples(samples, 1, 32)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
