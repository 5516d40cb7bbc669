package stats

import (
	"fmt"
	"math"
	"strings"
)

// Segment is one step of an empirical distribution function.
// F holds for Start <= x < End.
type Segment struct {
	Start float64
	End   float64
	F     float64
}

// EmpiricFunction is the step function form of a sample's cumulative distribution.
//
// The value attached to the segment that ends at item i is the sum of the relative
// frequencies of items 0..i-1, which is the probability mass strictly to the left
// of the segment's start. Report and chart output depend on exactly this shape.
type EmpiricFunction struct {
	segments []Segment
}

// NewEmpiricFunction builds the step function from an ascending statistical series
func NewEmpiricFunction(series []StatItem) (*EmpiricFunction, error) {
	if len(series) == 0 {
		return nil, ErrEmptySample
	}
	for i := 1; i < len(series); i++ {
		if series[i].Value <= series[i-1].Value {
			return nil, fmt.Errorf("Statistical series is not strictly ascending at index %v (%v after %v)", i, series[i].Value, series[i-1].Value)
		}
	}
	return newEmpiricFunction(series), nil
}

func newEmpiricFunction(series []StatItem) *EmpiricFunction {
	segs := make([]Segment, 0, len(series)+1)
	segs = append(segs, Segment{Start: math.Inf(-1), End: series[0].Value, F: 0})
	for i := 1; i < len(series); i++ {
		prev := segs[len(segs)-1]
		segs = append(segs, Segment{
			Start: prev.End,
			End:   series[i].Value,
			F:     prev.F + series[i-1].P,
		})
	}
	segs = append(segs, Segment{Start: series[len(series)-1].Value, End: math.Inf(1), F: 1})
	return &EmpiricFunction{segments: segs}
}

// Segments returns a copy of the steps, ordered from -Inf to +Inf
func (e *EmpiricFunction) Segments() []Segment {
	out := make([]Segment, len(e.segments))
	copy(out, e.segments)
	return out
}

// At evaluates the step function at x
func (e *EmpiricFunction) At(x float64) float64 {
	for _, s := range e.segments {
		if x >= s.Start && x < s.End {
			return s.F
		}
	}
	// x is +Inf, or NaN
	return e.segments[len(e.segments)-1].F
}

func (e *EmpiricFunction) String() string {
	b := strings.Builder{}
	for _, s := range e.segments {
		leftSign := "<="
		if math.IsInf(s.Start, -1) {
			leftSign = "<"
		}
		fmt.Fprintf(&b, "%v\t%v\tx\t<\t%v\t:\t%v\n", formatFloat(s.Start), leftSign, formatFloat(s.End), formatFloat(round3(s.F)))
	}
	return b.String()
}
