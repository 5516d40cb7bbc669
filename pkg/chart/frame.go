package chart

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
)

const (
	minImageWidth  = 200
	minImageHeight = 150
	marginLeft     = 70
	marginTop      = 40
	marginBottom   = 50
	marginRight    = 30
	legendWidth    = 150
)

// tab10
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// frame maps data coordinates onto the plot area of an image
type frame struct {
	dc                       *gg.Context
	left, top, right, bottom float64
	xmin, xmax, ymin, ymax   float64
}

func newFrame(dc *gg.Context, withLegend bool, xmin, xmax, ymin, ymax float64) *frame {
	right := float64(dc.Width()) - marginRight
	if withLegend {
		right -= legendWidth
	}
	return &frame{
		dc:     dc,
		left:   marginLeft,
		top:    marginTop,
		right:  right,
		bottom: float64(dc.Height()) - marginBottom,
		xmin:   xmin,
		xmax:   xmax,
		ymin:   ymin,
		ymax:   ymax,
	}
}

func (f *frame) px(x float64) float64 {
	return f.left + (x-f.xmin)/(f.xmax-f.xmin)*(f.right-f.left)
}

func (f *frame) py(y float64) float64 {
	return f.bottom - (y-f.ymin)/(f.ymax-f.ymin)*(f.bottom-f.top)
}

// clampX limits x to the visible range, which is how the infinite ends of a step function get drawn
func (f *frame) clampX(x float64) float64 {
	return math.Max(f.xmin, math.Min(f.xmax, x))
}

// drawAxes draws the plot border, grid, tick labels, title and axis labels
func (f *frame) drawAxes(title, xlabel, ylabel string) {
	dc := f.dc

	dc.SetLineWidth(1)
	dc.SetHexColor("#e8e8e8")
	xticks := majorTicks(f.xmin, f.xmax)
	yticks := majorTicks(f.ymin, f.ymax)
	for _, t := range xticks {
		dc.DrawLine(f.px(t.Value), f.top, f.px(t.Value), f.bottom)
	}
	for _, t := range yticks {
		dc.DrawLine(f.left, f.py(t.Value), f.right, f.py(t.Value))
	}
	dc.Stroke()

	dc.SetHexColor("#000000")
	dc.DrawRectangle(f.left, f.top, f.right-f.left, f.bottom-f.top)
	dc.Stroke()

	for _, t := range xticks {
		dc.DrawLine(f.px(t.Value), f.bottom, f.px(t.Value), f.bottom+4)
		dc.DrawStringAnchored(t.Label, f.px(t.Value), f.bottom+8, 0.5, 1)
	}
	for _, t := range yticks {
		dc.DrawLine(f.left-4, f.py(t.Value), f.left, f.py(t.Value))
		dc.DrawStringAnchored(t.Label, f.left-8, f.py(t.Value), 1, 0.5)
	}
	dc.Stroke()

	dc.DrawStringAnchored(title, (f.left+f.right)/2, f.top/2, 0.5, 0.5)
	dc.DrawStringAnchored(xlabel, (f.left+f.right)/2, float64(dc.Height())-12, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 14, (f.top+f.bottom)/2)
	dc.DrawStringAnchored(ylabel, 14, (f.top+f.bottom)/2, 0.5, 0.5)
	dc.Pop()
}

// drawLegend lists labels to the right of the plot area, each with a color swatch
func (f *frame) drawLegend(labels []string, colors []string) {
	dc := f.dc
	x := f.right + 12
	y := f.top
	lineHeight := 16.0
	for i, label := range labels {
		if y+lineHeight > f.bottom {
			dc.SetHexColor("#000000")
			dc.DrawString("...", x, y+lineHeight/2)
			return
		}
		dc.SetHexColor(colors[i%len(colors)])
		dc.DrawRectangle(x, y+3, 10, 10)
		dc.Fill()
		dc.SetHexColor("#000000")
		dc.DrawStringAnchored(label, x+16, y+8, 0, 0.5)
		y += lineHeight
	}
}

// padRange widens [lo, hi] by 'fraction' on both sides, and makes sure it is not empty
func padRange(lo, hi, fraction float64) (float64, float64) {
	if hi <= lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * fraction
	return lo - pad, hi + pad
}

// majorTicks returns the labelled ticks that plot.DefaultTicks places inside [lo, hi]
func majorTicks(lo, hi float64) []plot.Tick {
	if !(hi > lo) {
		return nil
	}
	out := []plot.Tick{}
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo || t.Value > hi {
			continue
		}
		out = append(out, t)
	}
	return out
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
