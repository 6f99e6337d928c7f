package bakesale

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Region

// Region is an axis-aligned rectangle in screen pixels. (X,Y) is the top
// left corner.
type Region struct {
	X, Y, Width, Height float64
}

func (r Region) Right() float64  { return r.X + r.Width }
func (r Region) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of r.
func (r Region) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// IsEmpty reports whether r covers no area.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Overlaps reports whether r and s share a non-empty area.
func (r Region) Overlaps(s Region) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.X < s.Right() && s.X < r.Right() && r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Polygon returns the corners of r in clockwise screen order starting at
// the bottom left corner.
func (r Region) Polygon() []Point {
	return []Point{
		{r.X, r.Bottom()},
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
	}
}

func (r Region) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", r.Width, r.Height, r.X, r.Y)
}

// ----------------------------------------------------------------------------
// Layout

// A Tick is a labeled graduation on an axis.
type Tick struct {
	Value   float64
	Label   string
	Pos     float64 // screen coordinate along the axis
	LabelAt Point   // baseline start of the label
}

// BarGeometry is the screen geometry of one bar.
type BarGeometry struct {
	Slot    Region // the share of the plot width the bar is centered in
	Bar     Region
	LabelAt Point
}

// LegendEntry is the screen geometry of one line in a legend.
type LegendEntry struct {
	Box     Region
	LabelAt Point
}

// PieGeometry is the screen geometry of a pie.
type PieGeometry struct {
	Center Point
	Radius float64

	// Angles holds the cumulative wedge boundaries: wedge i spans
	// [Angles[i], Angles[i+1]). Angles[0] is 0 and the last angle is 2π.
	Angles []float64

	// Offsets is the translation of each wedge; non-zero for outset wedges.
	Offsets []Point

	// Wedges are the closed polygons approximating each wedge, offset
	// already applied.
	Wedges [][]Point

	Legend []LegendEntry
}

// A Layout is the computed geometry of one chart for one viewport size.
// A Layout is never modified after it has been handed out; a new one is
// computed whenever the viewport or the model changes.
type Layout struct {
	Viewport Region

	TitleRegion  Region
	YLabelRegion Region // rotated y-axis label
	GutterRegion Region // y tick marks and labels
	PlotRegion   Region
	XTickRegion  Region // x tick marks and labels
	XLabelRegion Region
	LegendRegion Region

	TitleAt  Point // baseline start of the title
	XLabelAt Point // baseline start of the x-axis label
	YLabelAt Point // pivot of the rotated y-axis label

	// X and Y are the axis scales. Bar charts have no X scale, pie
	// charts have neither.
	X, Y *AxisScale

	XTicks, YTicks []Tick

	// Passes is the number of layout passes done; Converged reports
	// whether the last pass reproduced the plot region of the previous one.
	Passes    int
	Converged bool

	Bars  []BarGeometry
	Lines [][]Point
	Pie   *PieGeometry

	// Recovered lists conditions like ErrDegenerateRange which did not
	// prevent the layout.
	Recovered []error
}

// Mapper returns the coordinate mapper for the plot region of l.
// A missing scale is replaced by [0,1].
func (l *Layout) Mapper() Mapper {
	x, y := AxisScale{0, 1, 1}, AxisScale{0, 1, 1}
	if l.X != nil {
		x = *l.X
	}
	if l.Y != nil {
		y = *l.Y
	}
	return NewMapper(l.PlotRegion, x, y)
}

// ----------------------------------------------------------------------------
// Resolver

// A Scaler chooses the axis scales for a given plot region. The x scale
// may be nil if the x-axis is not numeric.
type Scaler func(plot Region) (x *AxisScale, y AxisScale)

// Resolver lays out the regions of a chart with axes.
//
// The width of the y tick label gutter depends on the longest tick label
// and thus on the y scale, while the scales depend on the size of the plot
// region which in turn depends on the gutter. Resolve breaks this cycle by
// iterating: the first plot region is derived from the viewport alone, then
// scales and plot region are recomputed alternately for at most
// Style.LayoutPasses rounds or until the plot region does not change.
//
// Two passes are enough in practice as the gutter only changes when the
// number of digits of the scale changes. This is not guaranteed to be an
// exact fixed point: Layout.Converged tells. The final layout always uses
// a gutter matching its final scales.
type Resolver struct {
	Config *Config
	Fonts  Fonts
}

// Resolve lays out a chart inside viewport using scale to pick the axis
// scales.
func (r Resolver) Resolve(viewport Region, scale Scaler) *Layout {
	passes := r.Config.Style.LayoutPasses
	if passes < 1 {
		passes = 1
	}

	l := r.frame(viewport, nil, AxisScale{})
	for pass := 1; pass <= passes; pass++ {
		xs, ys := scale(l.PlotRegion)
		next := r.frame(viewport, xs, ys)
		next.Passes = pass
		converged := next.PlotRegion == l.PlotRegion
		l = next
		if converged {
			l.Converged = true
			break
		}
	}
	r.ticks(l)
	return l
}

// frame computes all regions for the given scales.
func (r Resolver) frame(vp Region, xs *AxisScale, ys AxisScale) *Layout {
	cfg, st := r.Config, r.Config.Style
	lm := r.Fonts.Label
	lh := lm.LineHeight()

	l := &Layout{Viewport: vp, Y: &ys}
	if xs != nil {
		x := *xs
		l.X = &x
	}

	left, right := vp.X+st.Margin, vp.Right()-st.Margin
	top, bottom := vp.Y+st.Margin, vp.Bottom()-st.Margin

	// Vertically: title, half a label height so that the top tick
	// label is not clipped, plot, tick band, x-axis label.
	if cfg.Title != "" {
		tm := r.Fonts.Title
		th := tm.LineHeight()
		l.TitleRegion = Region{left, top, math.Max(0, right-left), th}
		l.TitleAt = Point{
			X: l.TitleRegion.Center().X - tm.StringWidth(cfg.Title)/2,
			Y: top + tm.Ascent(),
		}
		top += th + st.TitleGap
	}
	plotTop := top + lh/2
	if cfg.XLabel != "" {
		bottom -= lh + st.XLabelGap
	}
	tickBand := st.HashMark + st.TickLabelGap + lh
	plotBottom := bottom - tickBand

	// Horizontally: rotated y-axis label, gutter, plot, overhang of the
	// last x tick label.
	if cfg.YLabel != "" {
		left += lh + st.YLabelGap
	}
	gutter := ys.LabelWidth(lm) + st.ValueGap + st.HashMark
	plotLeft := left + gutter
	plotRight := right
	if xs != nil {
		plotRight -= xs.LabelWidth(lm) / 2
	}

	plot := Region{
		X:      plotLeft,
		Y:      plotTop,
		Width:  math.Max(0, plotRight-plotLeft),
		Height: math.Max(0, plotBottom-plotTop),
	}
	l.PlotRegion = plot
	l.GutterRegion = Region{left, plot.Y, gutter, plot.Height}
	l.XTickRegion = Region{plot.X, plot.Bottom(), plot.Width, tickBand}

	if cfg.YLabel != "" {
		l.YLabelRegion = Region{vp.X + st.Margin, plot.Y, lh, plot.Height}
		l.YLabelAt = Point{
			X: l.YLabelRegion.X + lm.Ascent(),
			Y: plot.Center().Y + lm.StringWidth(cfg.YLabel)/2,
		}
	}
	if cfg.XLabel != "" {
		l.XLabelRegion = Region{plot.X, l.XTickRegion.Bottom() + st.XLabelGap, plot.Width, lh}
		l.XLabelAt = Point{
			X: plot.Center().X - lm.StringWidth(cfg.XLabel)/2,
			Y: l.XLabelRegion.Y + lm.Ascent(),
		}
	}
	return l
}

// ticks places the tick marks and labels of l's scales.
func (r Resolver) ticks(l *Layout) {
	st := r.Config.Style
	lm := r.Fonts.Label
	m := l.Mapper()
	plot := l.PlotRegion

	if l.Y != nil {
		for _, v := range l.Y.Values() {
			label := l.Y.Label(v)
			y := m.ToScreenY(v)
			l.YTicks = append(l.YTicks, Tick{
				Value: v,
				Label: label,
				Pos:   y,
				LabelAt: Point{
					X: plot.X - st.HashMark - st.ValueGap - lm.StringWidth(label),
					Y: y + lm.Ascent()/2,
				},
			})
		}
	}
	if l.X != nil {
		for _, v := range l.X.Values() {
			label := l.X.Label(v)
			x := m.ToScreenX(v)
			l.XTicks = append(l.XTicks, Tick{
				Value: v,
				Label: label,
				Pos:   x,
				LabelAt: Point{
					X: x - lm.StringWidth(label)/2,
					Y: plot.Bottom() + st.HashMark + st.TickLabelGap + lm.Ascent(),
				},
			})
		}
	}
}
