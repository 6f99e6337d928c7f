// Package data contains the model interfaces charts are drawn from and
// prototypical implementations of them.
package data

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/bakesale"
)

// ----------------------------------------------------------------------------
// Bars

// Bars wraps the methods of a bar chart model.
type Bars interface {
	// Len returns the number of bars.
	Len() int

	// Label returns the label shown below bar i.
	Label(i int) string

	// Value returns the height of bar i.
	Value(i int) float64

	// Color returns the fill color of bar i.
	Color(i int) color.Color
}

// Bar is a single labeled bar.
type Bar struct {
	Label string
	Value float64
	Color color.Color
}

// BarValues implements the Bars interface.
type BarValues []Bar

func (b BarValues) Len() int                { return len(b) }
func (b BarValues) Label(i int) string      { return b[i].Label }
func (b BarValues) Value(i int) float64     { return b[i].Value }
func (b BarValues) Color(i int) color.Color { return b[i].Color }

// BarRange returns the interval covered by the finite bar values. The
// interval is unset if there are none.
func BarRange(bars Bars) bakesale.Interval {
	r := bakesale.UnsetInterval()
	for i := 0; i < bars.Len(); i++ {
		r.Update(bars.Value(i))
	}
	return r
}

// ----------------------------------------------------------------------------
// Series

// Series is one line in a graph.
type Series interface {
	// Len returns the number of points.
	Len() int

	// XY returns the coordinates of point i.
	XY(i int) (x, y float64)

	// Color returns the line color.
	Color() color.Color
}

// XYSeries turns any plotter.XYer into a Series.
type XYSeries struct {
	plotter.XYer
	LineColor color.Color
}

// NewSeries returns xy drawn in color c.
func NewSeries(xy plotter.XYer, c color.Color) XYSeries {
	return XYSeries{XYer: xy, LineColor: c}
}

func (s XYSeries) Color() color.Color { return s.LineColor }

// SeriesRange returns the joint x and y range over all points of all
// series. Points with a NaN or infinite coordinate are skipped; n is the
// number of points taken into account.
func SeriesRange(series ...Series) (x, y bakesale.Interval, n int) {
	x, y = bakesale.UnsetInterval(), bakesale.UnsetInterval()
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			px, py := s.XY(i)
			if !finite(px) || !finite(py) {
				continue
			}
			x.Update(px)
			y.Update(py)
			n++
		}
	}
	return x, y, n
}

// ----------------------------------------------------------------------------
// Wedges

// Wedges wraps the methods of a pie chart model.
type Wedges interface {
	// Len returns the number of wedges.
	Len() int

	// Name returns the legend text of wedge i.
	Name(i int) string

	// Value returns the size of wedge i. Values must not be negative.
	Value(i int) float64

	// Outset reports whether wedge i is drawn pulled out of the pie.
	Outset(i int) bool

	// Color returns the fill color of wedge i.
	Color(i int) color.Color
}

// Slice is a single pie wedge.
type Slice struct {
	Name   string
	Value  float64
	Outset bool
	Color  color.Color
}

// PieSlices implements the Wedges interface.
type PieSlices []Slice

func (p PieSlices) Len() int                { return len(p) }
func (p PieSlices) Name(i int) string       { return p[i].Name }
func (p PieSlices) Value(i int) float64     { return p[i].Value }
func (p PieSlices) Outset(i int) bool       { return p[i].Outset }
func (p PieSlices) Color(i int) color.Color { return p[i].Color }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
