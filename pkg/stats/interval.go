package stats

import "fmt"

// Interval is the half-open bin [Start, End) of a grouping
type Interval struct {
	Start float64
	End   float64
	Items []StatItem
}

func (i *Interval) Width() float64 {
	return i.End - i.Start
}

func (i *Interval) Midpoint() float64 {
	return (i.Start + i.End) / 2
}

// Count returns the number of observations that fall inside the interval
func (i *Interval) Count() int {
	c := 0
	for _, s := range i.Items {
		c += s.Count
	}
	return c
}

// Contains reports whether x lies in [Start, End).
// The last interval of a grouping can hold items for which this is false. See Dataset.Group.
func (i *Interval) Contains(x float64) bool {
	return x >= i.Start && x < i.End
}

// String formats the interval as "[start; end) : count", with bounds rounded to 3 decimals
func (i *Interval) String() string {
	return fmt.Sprintf("[%v; %v) : %v", formatFloat(round3(i.Start)), formatFloat(round3(i.End)), i.Count())
}
