// Package spectrum extracts real-valued views from complex spectra
// produced by the irregular-sampling DFT.
//
// The functions operate on any []complex128 in frequency-grid order, so
// they work equally with FFT output from external backends. Magnitude and
// power extraction use SIMD-optimized kernels where available; scratch
// buffers are pooled, so in steady state only the output slice allocates.
package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// unpack splits a complex spectrum into pooled real and imaginary parts and
// applies kernel to them.
func unpack(in []complex128, kernel func(dst, re, im []float64)) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	kernel(out, re, im)
	putScratch(buf)
	return out
}

// Magnitude returns |X(f)| for each spectrum entry.
func Magnitude(in []complex128) []float64 {
	return unpack(in, vecmath.Magnitude)
}

// Power returns |X(f)|^2 for each spectrum entry.
func Power(in []complex128) []float64 {
	return unpack(in, vecmath.Power)
}

// Phase returns arg(X(f)) for each spectrum entry, in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Peak returns the index and value of the largest entry of x. For an empty
// slice it returns -1 and 0. Ties resolve to the first occurrence.
func Peak(x []float64) (int, float64) {
	if len(x) == 0 {
		return -1, 0
	}
	idx := 0
	max := x[0]
	for i, v := range x[1:] {
		if v > max {
			max = v
			idx = i + 1
		}
	}
	return idx, max
}
