// Package dmdt builds delta-m/delta-t pair diagrams from lightcurves.
//
// A dm-dt diagram collects every pair of observations, recording the time
// separation dt and magnitude difference dm of each. Binning the pairs in
// dt and summarizing the dm distribution per bin (quantiles, or the
// fraction of high-amplitude pairs) characterizes variability timescales
// without assuming periodicity.
package dmdt

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/astrokit/timescales/lightcurve"
)

// Pairs returns the time separation and absolute magnitude difference of
// every observation pair (i < j), sorted by increasing separation.
//
// times must be sorted ascending with at least two distinct values; mags
// must have the same length. The output slices have length n*(n-1)/2.
func Pairs(times, mags []float64) (dts, dms []float64, err error) {
	if err := lightcurve.ValidateSampling(times); err != nil {
		return nil, nil, err
	}
	if len(mags) != len(times) {
		return nil, nil, fmt.Errorf("%w: times and mags are not the same length (got %d for times and %d for mags)",
			lightcurve.ErrInvalidArgument, len(times), len(mags))
	}

	n := len(times)
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{
				dt: times[j] - times[i],
				dm: math.Abs(mags[j] - mags[i]),
			})
		}
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].dt < pairs[b].dt })

	dts = make([]float64, len(pairs))
	dms = make([]float64, len(pairs))
	for i, p := range pairs {
		dts[i] = p.dt
		dms[i] = p.dm
	}
	return dts, dms, nil
}

type pair struct {
	dt, dm float64
}

// HiAmpBinFrac returns, for each dt bin, the fraction of pairs whose
// magnitude difference is at least threshold. Bin k covers
// [binEdges[k], binEdges[k+1]); pairs outside all bins are ignored, and
// empty bins yield NaN.
//
// dts and dms must have equal length, and binEdges must hold at least two
// strictly increasing values.
func HiAmpBinFrac(dts, dms, binEdges []float64, threshold float64) ([]float64, error) {
	if err := validateBins(dts, dms, binEdges); err != nil {
		return nil, err
	}

	nBins := len(binEdges) - 1
	counts := make([]int, nBins)
	hits := make([]int, nBins)

	for i, dt := range dts {
		k, ok := binIndex(binEdges, dt)
		if !ok {
			continue
		}
		counts[k]++
		if dms[i] >= threshold {
			hits[k]++
		}
	}

	out := make([]float64, nBins)
	for k := range out {
		if counts[k] == 0 {
			out[k] = math.NaN()
			continue
		}
		out[k] = float64(hits[k]) / float64(counts[k])
	}
	return out, nil
}

// BinQuantile returns, for each dt bin, the q-quantile of the magnitude
// differences falling in that bin, using the empirical quantile
// definition. Empty bins yield NaN. q must lie in (0, 1).
func BinQuantile(dts, dms, binEdges []float64, q float64) ([]float64, error) {
	if err := validateBins(dts, dms, binEdges); err != nil {
		return nil, err
	}
	if q <= 0 || q >= 1 {
		return nil, fmt.Errorf("%w: quantile must be in (0, 1), got %g", lightcurve.ErrInvalidArgument, q)
	}

	nBins := len(binEdges) - 1
	perBin := make([][]float64, nBins)

	for i, dt := range dts {
		k, ok := binIndex(binEdges, dt)
		if !ok {
			continue
		}
		perBin[k] = append(perBin[k], dms[i])
	}

	out := make([]float64, nBins)
	for k := range out {
		if len(perBin[k]) == 0 {
			out[k] = math.NaN()
			continue
		}
		sort.Float64s(perBin[k])
		out[k] = stat.Quantile(q, stat.Empirical, perBin[k], nil)
	}
	return out, nil
}

func validateBins(dts, dms, binEdges []float64) error {
	if len(dts) != len(dms) {
		return fmt.Errorf("%w: dts and dms are not the same length (got %d and %d)",
			lightcurve.ErrInvalidArgument, len(dts), len(dms))
	}
	if len(binEdges) < 2 {
		return fmt.Errorf("%w: at least 2 bin edges required, got %d", lightcurve.ErrInvalidArgument, len(binEdges))
	}
	for i := 1; i < len(binEdges); i++ {
		if binEdges[i] <= binEdges[i-1] {
			return fmt.Errorf("%w: bin edges must be strictly increasing at index %d", lightcurve.ErrInvalidArgument, i)
		}
	}
	return nil
}

// binIndex locates the half-open bin [edges[k], edges[k+1]) containing v.
func binIndex(edges []float64, v float64) (int, bool) {
	if v < edges[0] || v >= edges[len(edges)-1] {
		return 0, false
	}
	// SearchFloat64s returns the first index with edges[i] >= v.
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i, i < len(edges)-1
	}
	return i - 1, true
}
