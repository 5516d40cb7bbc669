package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/cyclopcam/samplestat/pkg/gen"
)

// Dataset owns an immutable univariate sample, and derives every statistic from it.
// Nothing is cached. Each call recomputes from the raw sample.
type Dataset struct {
	data []float64
}

// NewDataset copies the sample. It must be non-empty and contain only finite values.
// Samples whose width or variance overflow float64 are rejected with ErrOverflow,
// so that no statistic comes out as Inf or NaN later.
func NewDataset(sample []float64) (*Dataset, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	for i, v := range sample {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: element %v is %v", ErrNonFiniteValue, i, v)
		}
	}
	d := &Dataset{data: gen.CopySlice(sample)}
	if w := d.Width(); !isFinite(w) {
		return nil, fmt.Errorf("%w: width is %v", ErrOverflow, w)
	}
	if v := d.Variance(); !isFinite(v) {
		return nil, fmt.Errorf("%w: variance is %v", ErrOverflow, v)
	}
	return d, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Sample returns a copy of the raw sample, in its original order
func (d *Dataset) Sample() []float64 {
	return gen.CopySlice(d.data)
}

func (d *Dataset) Size() int {
	return len(d.data)
}

// VariationSeries returns the sample sorted ascending
func (d *Dataset) VariationSeries() []float64 {
	s := gen.CopySlice(d.data)
	sort.Float64s(s)
	return s
}

// Width is the range of the sample (max - min)
func (d *Dataset) Width() float64 {
	lo, hi := gen.MinMax(d.data)
	return hi - lo
}

// Mode returns the most frequent value. Ties resolve to the smallest such value.
func (d *Dataset) Mode() float64 {
	return modeItem(d.StatSeries()).Value
}

// Median returns the element at index n/2 of the variation series.
// For an even sample size this is the upper of the two middle elements, not their average.
func (d *Dataset) Median() float64 {
	return d.VariationSeries()[len(d.data)/2]
}

// StatSeries groups identical values, in ascending order of value
func (d *Dataset) StatSeries() []StatItem {
	sorted := d.VariationSeries()
	n := len(sorted)
	series := []StatItem{}
	for i := 0; i < n; {
		j := i + 1
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		series = append(series, newStatItem(sorted[i], j-i, n))
		i = j
	}
	return series
}

// Mean is computed from the statistical series, weighting each value by its count
func (d *Dataset) Mean() float64 {
	return weightedMean(d.StatSeries(), len(d.data))
}

// Variance is the population (biased) variance
func (d *Dataset) Variance() float64 {
	series := d.StatSeries()
	n := len(d.data)
	return weightedVariance(series, weightedMean(series, n), n)
}

func (d *Dataset) Std() float64 {
	return math.Sqrt(d.Variance())
}

// CorrectedVariance is the unbiased sample variance, n * Variance() / (n - 1)
func (d *Dataset) CorrectedVariance() (float64, error) {
	n := len(d.data)
	if n < 2 {
		return 0, fmt.Errorf("%w: corrected variance needs at least 2 values, but sample has %v", ErrSampleTooSmall, n)
	}
	cv := float64(n) * d.Variance() / float64(n-1)
	if !isFinite(cv) {
		return 0, fmt.Errorf("%w: corrected variance is %v", ErrOverflow, cv)
	}
	return cv, nil
}

func (d *Dataset) CorrectedStd() (float64, error) {
	v, err := d.CorrectedVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// sturges returns 1 + log2(n)
func (d *Dataset) sturges() float64 {
	return 1 + math.Log2(float64(len(d.data)))
}

// BinWidth is the interval width from Sturges' rule
func (d *Dataset) BinWidth() float64 {
	return d.Width() / d.sturges()
}

// BinCount is the number of intervals from Sturges' rule
func (d *Dataset) BinCount() int {
	return int(math.Ceil(d.sturges()))
}

// CDF builds the empirical distribution function
func (d *Dataset) CDF() *EmpiricFunction {
	return newEmpiricFunction(d.StatSeries())
}

// Group partitions the statistical series into BinCount() intervals of width BinWidth().
// The first interval is centered on the smallest value.
// Interval boundaries are computed as start + i*h, so they do not drift.
//
// Sturges' rule can put the last boundary below the largest value (for example
// whenever n is a power of two). Values at or past the last boundary are counted
// in the last interval, so every observation belongs to exactly one interval,
// but such values are not inside the last interval's [Start, End).
func (d *Dataset) Group() ([]Interval, error) {
	h := d.BinWidth()
	if h == 0 {
		return nil, ErrDegenerateGrouping
	}
	series := d.StatSeries()
	m := d.BinCount()
	start := series[0].Value - h/2

	intervals := make([]Interval, m)
	for i := range intervals {
		intervals[i].Start = start + float64(i)*h
		intervals[i].End = start + float64(i+1)*h
		intervals[i].Items = []StatItem{}
	}

	for _, s := range series {
		idx := gen.Clamp(int(math.Floor((s.Value-start)/h)), 0, m-1)
		// The division and the boundary products can round differently, so
		// settle on the interval whose boundaries actually contain the value.
		if idx > 0 && s.Value < intervals[idx].Start {
			idx--
		} else if idx < m-1 && s.Value >= intervals[idx].End {
			idx++
		}
		intervals[idx].Items = append(intervals[idx].Items, s)
	}
	return intervals, nil
}
