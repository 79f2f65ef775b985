package lightcurve

import (
	"errors"
	"fmt"
	"sort"
)

// Failure kinds reported by lightcurve analysis routines. Every error
// returned by this module wraps exactly one of these sentinels, so callers
// can classify failures with errors.Is.
var (
	// ErrInvalidArgument marks structurally malformed input: too few
	// samples or mismatched slice lengths. It indicates a programming
	// error in the caller, not a property of the data.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateLightCurve marks input that is structurally valid but
	// numerically useless, such as a series whose timestamps all coincide.
	ErrDegenerateLightCurve = errors.New("degenerate light curve")

	// ErrNotSorted marks a violation of an ascending-order precondition.
	ErrNotSorted = errors.New("not sorted in ascending order")

	// ErrNegativeFrequency marks a frequency grid containing a
	// non-positive entry.
	ErrNegativeFrequency = errors.New("non-positive frequency")
)

// ValidateSampling checks that times holds at least two distinct values and
// is sorted in ascending order, in that order of precedence. Both
// conditions are evaluated in a single pass.
func ValidateSampling(times []float64) error {
	distinct := false
	sorted := true

	for i := range times {
		if !distinct && times[i] != times[0] {
			distinct = true
		}
		if sorted && i > 0 && times[i-1] > times[i] {
			sorted = false
		}
		if distinct && !sorted {
			break
		}
	}

	if !distinct {
		return fmt.Errorf("%w: times contains only one unique value", ErrDegenerateLightCurve)
	}
	if !sorted {
		return fmt.Errorf("%w: times", ErrNotSorted)
	}
	return nil
}

// ValidateFreqs checks that every frequency grid entry is strictly positive.
func ValidateFreqs(freqs []float64) error {
	for i, f := range freqs {
		if f <= 0 {
			return fmt.Errorf("%w: freqs[%d] = %g", ErrNegativeFrequency, i, f)
		}
	}
	return nil
}

// ValidateOffsets checks that a lag-offset grid is non-negative and sorted
// ascending, as required by the autocorrelation routines.
func ValidateOffsets(offsets []float64) error {
	if len(offsets) > 0 && offsets[0] < 0 {
		return fmt.Errorf("%w: offsets must be non-negative, got %g", ErrInvalidArgument, offsets[0])
	}
	if !sort.Float64sAreSorted(offsets) {
		return fmt.Errorf("%w: offsets", ErrNotSorted)
	}
	return nil
}
