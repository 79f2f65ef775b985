package lightcurve

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func TestGeneratorSine(t *testing.T) {
	gen := NewGenerator()

	times := []float64{0, 0.25, 0.5, 0.75}
	fluxes, err := gen.Sine(times, 1, 2, 0)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	want := []float64{0, 2, 0, -2}
	for i := range want {
		if !almostEqual(fluxes[i], want[i], 1e-12) {
			t.Fatalf("fluxes[%d]: got %g, want %g", i, fluxes[i], want[i])
		}
	}
}

func TestGeneratorSineBadArguments(t *testing.T) {
	gen := NewGenerator()

	if _, err := gen.Sine(nil, 1, 1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty times: got %v, want ErrInvalidArgument", err)
	}
	if _, err := gen.Sine([]float64{0, 1}, -1, 1, 0); !errors.Is(err, ErrNegativeFrequency) {
		t.Fatalf("negative frequency: got %v, want ErrNegativeFrequency", err)
	}
}

func TestGeneratorWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(64, 1)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	b, err := NewGenerator(WithSeed(42)).WhiteNoise(64, 1)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %g != %g", i, a[i], b[i])
		}
	}
}

func TestGeneratorWhiteNoiseSigma(t *testing.T) {
	const n = 20000
	noise, err := NewGenerator(WithSeed(7)).WhiteNoise(n, 2)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	sumSq := 0.0
	for _, v := range noise {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / n)
	if rms < 1.9 || rms > 2.1 {
		t.Fatalf("noise RMS: got %g, want ~2", rms)
	}
}

func TestGeneratorRandomTimes(t *testing.T) {
	times, err := NewGenerator(WithSeed(3)).RandomTimes(500, 100)
	if err != nil {
		t.Fatalf("RandomTimes: %v", err)
	}

	if !sort.Float64sAreSorted(times) {
		t.Fatal("epochs not sorted")
	}
	for i, v := range times {
		if v < 0 || v >= 100 {
			t.Fatalf("epoch %d out of range: %g", i, v)
		}
	}
	if _, err := MaxFreq(times); err != nil {
		t.Fatalf("generated cadence not usable: %v", err)
	}
}

func TestGeneratorBadArguments(t *testing.T) {
	gen := NewGenerator()

	if _, err := gen.WhiteNoise(0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero length: got %v, want ErrInvalidArgument", err)
	}
	if _, err := gen.WhiteNoise(10, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative sigma: got %v, want ErrInvalidArgument", err)
	}
	if _, err := gen.RandomTimes(1, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("single epoch: got %v, want ErrInvalidArgument", err)
	}
	if _, err := gen.RandomTimes(10, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero span: got %v, want ErrInvalidArgument", err)
	}
}
