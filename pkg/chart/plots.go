package chart

import (
	"fmt"
	"math"

	"github.com/cyclopcam/samplestat/pkg/stats"
)

// CDF draws the empirical distribution function as a staircase
func (c *Chart) CDF(ef *stats.EmpiricFunction, name string) (string, error) {
	segs := ef.Segments()
	// Every segment but the first starts at a sample value
	lo := segs[1].Start
	hi := segs[len(segs)-1].Start
	xmin, xmax := padRange(lo, hi, 0.1)

	dc := c.newContext()
	f := newFrame(dc, true, xmin, xmax, 0, 1.05)
	f.drawAxes("Empirical distribution function", "x", "F(x)")

	labels := []string{}
	colors := []string{}
	for i, s := range segs {
		color := palette[i%len(palette)]
		x1 := f.px(f.clampX(s.Start))
		x2 := f.px(f.clampX(s.End))
		y := f.py(s.F)
		dc.SetHexColor(color)
		dc.SetLineWidth(2)
		dc.DrawLine(x1, y, x2, y)
		dc.Stroke()
		if !math.IsInf(s.Start, -1) {
			// right-continuous: the step includes its left end
			dc.DrawCircle(x1, y, 3)
			dc.Fill()
		}
		labels = append(labels, fmt.Sprintf("%v <= x < %v", segmentBound(s.Start), segmentBound(s.End)))
		colors = append(colors, color)
	}
	f.drawLegend(labels, colors)

	return c.save(dc, name)
}

func segmentBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "inf"
	}
	return formatLabel(v)
}

// Histogram draws one bar per interval, with height count/n
func (c *Chart) Histogram(ds *stats.Dataset, name string) (string, error) {
	bars, err := ds.Histogram()
	if err != nil {
		return "", err
	}
	last := bars[len(bars)-1]
	maxFreq := 0.0
	for _, b := range bars {
		maxFreq = math.Max(maxFreq, b.Frequency)
	}

	dc := c.newContext()
	f := newFrame(dc, true, bars[0].Start, last.Start+last.Width, 0, maxFreq*1.1)
	f.drawAxes("Histogram", "x", "Relative frequency")

	labels := []string{}
	for i, b := range bars {
		dc.SetHexColor(palette[i%len(palette)])
		x1 := f.px(b.Start)
		x2 := f.px(b.Start + b.Width)
		y := f.py(b.Frequency)
		dc.DrawRectangle(x1, y, x2-x1, f.bottom-y)
		dc.Fill()
		labels = append(labels, fmt.Sprintf("%v : %v", formatLabel(b.Start), formatLabel(b.Start+b.Width)))
	}
	f.drawLegend(labels, palette)

	return c.save(dc, name)
}

// CountPolygon joins the (midpoint, count) vertices of the intervals
func (c *Chart) CountPolygon(ds *stats.Dataset, name string) (string, error) {
	points, err := ds.FrequencyPolygon()
	if err != nil {
		return "", err
	}
	maxCount := 0
	for _, p := range points {
		maxCount = max(maxCount, p.Count)
	}
	xmin, xmax := padRange(points[0].X, points[len(points)-1].X, 0.05)

	dc := c.newContext()
	f := newFrame(dc, false, xmin, xmax, 0, float64(maxCount)*1.1)
	f.drawAxes("Frequency polygon", "x", "Count")

	dc.SetHexColor(palette[0])
	dc.SetLineWidth(2)
	for i, p := range points {
		if i == 0 {
			dc.MoveTo(f.px(p.X), f.py(float64(p.Count)))
		} else {
			dc.LineTo(f.px(p.X), f.py(float64(p.Count)))
		}
	}
	dc.Stroke()
	for _, p := range points {
		dc.DrawCircle(f.px(p.X), f.py(float64(p.Count)), 4)
		dc.Fill()
	}

	return c.save(dc, name)
}
