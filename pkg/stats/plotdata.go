package stats

// HistogramBar is one bar of a relative frequency histogram
type HistogramBar struct {
	Start     float64
	Width     float64
	Count     int
	Frequency float64 // Count / sample size
}

// PolygonPoint is one vertex of a frequency polygon
type PolygonPoint struct {
	X     float64 // Interval midpoint
	Count int
}

// Histogram returns one bar per interval of Group()
func (d *Dataset) Histogram() ([]HistogramBar, error) {
	intervals, err := d.Group()
	if err != nil {
		return nil, err
	}
	n := float64(d.Size())
	bars := make([]HistogramBar, len(intervals))
	for i := range intervals {
		c := intervals[i].Count()
		bars[i] = HistogramBar{
			Start:     intervals[i].Start,
			Width:     intervals[i].Width(),
			Count:     c,
			Frequency: float64(c) / n,
		}
	}
	return bars, nil
}

// FrequencyPolygon returns the (midpoint, count) vertex of every interval of Group()
func (d *Dataset) FrequencyPolygon() ([]PolygonPoint, error) {
	intervals, err := d.Group()
	if err != nil {
		return nil, err
	}
	points := make([]PolygonPoint, len(intervals))
	for i := range intervals {
		points[i] = PolygonPoint{
			X:     intervals[i].Midpoint(),
			Count: intervals[i].Count(),
		}
	}
	return points, nil
}
