package geom

import (
	"fmt"
	"math"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
)

// ----------------------------------------------------------------------------
// Pie

// Pie draws a pie chart with a legend to its right.
//
// Wedges start at angle 0 (pointing right) and follow each other
// clockwise on screen. Outset wedges are moved away from the center by
// Config.Explode times the radius. The radius leaves room for this so
// that an outset wedge stays inside the pie area.
type Pie struct {
	Model data.Wedges
}

// WedgeAngles returns the n+1 cumulative wedge boundaries for the given
// values: wedge i spans [angles[i], angles[i+1]). The first angle is 0,
// the last exactly 2π and the sequence never decreases.
func WedgeAngles(values []float64) ([]float64, error) {
	total := 0.0
	for i, v := range values {
		if !finite(v) || v < 0 {
			return nil, fmt.Errorf("wedge %d value %g: %w", i, v, ErrNegativeValue)
		}
		total += v
	}
	if !(total > 0) {
		return nil, fmt.Errorf("%d wedges: %w", len(values), ErrZeroTotal)
	}

	angles := make([]float64, len(values)+1)
	running := 0.0
	for i, v := range values {
		running += v
		angles[i+1] = math.Min(2*math.Pi, 2*math.Pi*running/total)
	}
	angles[len(values)] = 2 * math.Pi
	return angles, nil
}

// Tessellate approximates the wedge between the angles start and end of a
// circle by a closed polygon: the center, the exact start point, points
// every step radians along the arc and the exact end point. A step which
// is not positive is replaced by the default arc step.
func Tessellate(center bakesale.Point, radius, start, end, step float64) []bakesale.Point {
	if !(step > 0) {
		step = bakesale.DefaultStyle().ArcStep
	}
	at := func(a float64) bakesale.Point {
		return bakesale.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	pts := []bakesale.Point{center, at(start)}
	for k := 1; start+float64(k)*step < end; k++ {
		pts = append(pts, at(start+float64(k)*step))
	}
	return append(pts, at(end))
}

// Outset returns the translation of a wedge between start and end pulled
// out of the pie by dist along its bisector.
func Outset(start, end, dist float64) bakesale.Point {
	mid := (start + end) / 2
	return bakesale.Point{X: dist * math.Cos(mid), Y: dist * math.Sin(mid)}
}

func (p Pie) Layout(viewport bakesale.Region, cfg *bakesale.Config, fonts bakesale.Fonts) (*bakesale.Layout, error) {
	n := 0
	if p.Model != nil {
		n = p.Model.Len()
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = p.Model.Value(i)
	}
	angles, err := WedgeAngles(values)
	if err != nil {
		return nil, err
	}

	st := cfg.Style
	lm := fonts.Label
	lh := lm.LineHeight()
	l := &bakesale.Layout{Viewport: viewport, Passes: 1, Converged: true}

	left, right := viewport.X+st.Margin, viewport.Right()-st.Margin
	top, bottom := viewport.Y+st.Margin, viewport.Bottom()-st.Margin
	if cfg.Title != "" {
		tm := fonts.Title
		th := tm.LineHeight()
		l.TitleRegion = bakesale.Region{X: left, Y: top, Width: math.Max(0, right-left), Height: th}
		l.TitleAt = bakesale.Point{
			X: l.TitleRegion.Center().X - tm.StringWidth(cfg.Title)/2,
			Y: top + tm.Ascent(),
		}
		top += th + st.TitleGap
	}

	// Legend: bottom aligned at the right edge, one line per wedge. A
	// legend taller than the space below the title starts right below it.
	box := lh + 4
	maxName := 0.0
	for i := 0; i < n; i++ {
		maxName = math.Max(maxName, lm.StringWidth(p.Model.Name(i)))
	}
	lw := st.LegendPad + box + st.LegendPad + maxName + st.LegendPad
	lgh := st.LegendMargin + float64(n)*(lh+st.LegendPad)
	l.LegendRegion = bakesale.Region{X: right - lw, Y: math.Max(top, bottom-lgh), Width: lw, Height: lgh}

	legend := make([]bakesale.LegendEntry, n)
	for i := range legend {
		y := l.LegendRegion.Y + float64(i+1)*(lh+st.LegendPad)
		legend[i] = bakesale.LegendEntry{
			Box:     bakesale.Region{X: l.LegendRegion.X + st.LegendPad, Y: y - box + 3, Width: box, Height: box},
			LabelAt: bakesale.Point{X: l.LegendRegion.X + st.LegendMargin + box + st.LegendPad, Y: y},
		}
	}

	l.PlotRegion = bakesale.Region{
		X:      left,
		Y:      top,
		Width:  math.Max(0, l.LegendRegion.X-st.LegendMargin-left),
		Height: math.Max(0, bottom-top),
	}
	center := l.PlotRegion.Center()
	radius := math.Min(l.PlotRegion.Width, l.PlotRegion.Height) / (1 + 2*cfg.Explode) / 2

	pie := &bakesale.PieGeometry{
		Center:  center,
		Radius:  radius,
		Angles:  angles,
		Offsets: make([]bakesale.Point, n),
		Wedges:  make([][]bakesale.Point, n),
		Legend:  legend,
	}
	for i := 0; i < n; i++ {
		a, b := angles[i], angles[i+1]
		if p.Model.Outset(i) {
			pie.Offsets[i] = Outset(a, b, radius*cfg.Explode)
		}
		pie.Wedges[i] = Tessellate(center.Add(pie.Offsets[i]), radius, a, b, st.ArcStep)
	}
	l.Pie = pie
	return l, nil
}

func (p Pie) Render(l *bakesale.Layout, cfg *bakesale.Config, s bakesale.Surface) error {
	if l == nil || l.Pie == nil {
		return ErrNoLayout
	}
	fg := cfg.Style.Foreground

	drawFrame(l, cfg, s)

	s.StrokePolygon(l.LegendRegion.Polygon(), fg)
	for i, e := range l.Pie.Legend {
		box := e.Box.Polygon()
		if c := p.Model.Color(i); c != nil {
			s.FillPolygon(box, c)
		}
		s.StrokePolygon(box, fg)
		s.DrawText(bakesale.LabelText, p.Model.Name(i), e.LabelAt, fg)
	}

	for i, w := range l.Pie.Wedges {
		if c := p.Model.Color(i); c != nil {
			s.FillPolygon(w, c)
		}
		s.StrokePolygon(w, fg)
	}
	return nil
}
