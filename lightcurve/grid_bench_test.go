package lightcurve

import (
	"fmt"
	"testing"
)

func BenchmarkDeltaT(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		times := regularGrid(n, 0.1)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = DeltaT(times)
			}
		})
	}
}

func BenchmarkMaxFreq(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		times := regularGrid(n, 0.1)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = MaxFreq(times)
			}
		})
	}
}

func BenchmarkFreqGen(b *testing.B) {
	for _, n := range []int{100, 1000} {
		times := regularGrid(n, 0.1)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = FreqGen(times)
			}
		})
	}
}
