package geom

import (
	"fmt"
	"math"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
)

// ----------------------------------------------------------------------------
// Bar

// Bar draws one vertical bar per element of Model.
//
// The plot width is split into equal slots, one per bar; each bar is
// Config.BarWidth percent of its slot wide and centered in it. Bars grow
// from zero, so the y scale always includes 0 and negative values
// produce bars hanging down from the zero line.
type Bar struct {
	Model data.Bars
}

func (b Bar) Layout(viewport bakesale.Region, cfg *bakesale.Config, fonts bakesale.Fonts) (*bakesale.Layout, error) {
	var recovered []error
	n := 0
	if b.Model != nil {
		n = b.Model.Len()
	}

	values := bakesale.UnsetInterval()
	if n > 0 {
		values = data.BarRange(b.Model)
	}
	if !values.IsSet() {
		recovered = append(recovered, fmt.Errorf("bar chart: %w", ErrEmptyModel))
	}
	values.Update(0) // bars grow from zero
	if values.Degenerate() && n > 0 {
		recovered = append(recovered, fmt.Errorf("bar values all zero: %w", ErrDegenerateRange))
	}
	lo, hi := values.Min, values.Max

	labelSize := fonts.Label.LineHeight() + cfg.Style.LabelPad
	r := bakesale.Resolver{Config: cfg, Fonts: fonts}
	l := r.Resolve(viewport, func(plot bakesale.Region) (*bakesale.AxisScale, bakesale.AxisScale) {
		return nil, bakesale.ScaleAxis(lo, hi, plot.Height, labelSize)
	})
	l.Recovered = recovered

	if n == 0 {
		return l, nil
	}

	st := cfg.Style
	m := l.Mapper()
	plot := l.PlotRegion
	left := plot.X + st.HashMark
	slot := math.Max(0, plot.Right()-left) / float64(n)
	pad := slot * (100 - cfg.BarWidth) / 100 / 2
	zero := 0.0
	if !l.Y.Contains(zero) {
		zero = l.Y.Min
	}
	base := m.ToScreenY(zero)
	labelY := plot.Bottom() + st.HashMark + st.TickLabelGap + fonts.Label.Ascent()

	l.Bars = make([]bakesale.BarGeometry, n)
	for i := range l.Bars {
		x := left + float64(i)*slot
		top := base
		if v := b.Model.Value(i); finite(v) {
			top = m.ToScreenY(v)
		}
		label := b.Model.Label(i)
		l.Bars[i] = bakesale.BarGeometry{
			Slot: bakesale.Region{X: x, Y: plot.Y, Width: slot, Height: plot.Height},
			Bar:  CanonicRegion(x+pad, slot-2*pad, top, base),
			LabelAt: bakesale.Point{
				X: x + slot/2 - fonts.Label.StringWidth(label)/2,
				Y: labelY,
			},
		}
	}
	return l, nil
}

func (b Bar) Render(l *bakesale.Layout, cfg *bakesale.Config, s bakesale.Surface) error {
	if l == nil {
		return ErrNoLayout
	}
	fg := cfg.Style.Foreground

	drawFrame(l, cfg, s)
	drawAxes(l, cfg, s)
	for i, g := range l.Bars {
		poly := g.Bar.Polygon()
		if c := b.Model.Color(i); c != nil {
			s.FillPolygon(poly, c)
		}
		s.StrokePolygon(poly, fg)
		s.DrawText(bakesale.LabelText, b.Model.Label(i), g.LabelAt, fg)
	}
	return nil
}
