package geom

import (
	"fmt"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Graph

// Graph draws each series as a polyline connecting its points in index
// order. All series share one pair of numeric axes covering the joint
// extremes of every point. Points with a NaN or infinite coordinate are
// left out.
type Graph struct {
	Series []data.Series
}

func (g Graph) Layout(viewport bakesale.Region, cfg *bakesale.Config, fonts bakesale.Fonts) (*bakesale.Layout, error) {
	var recovered []error
	xr, yr, n := data.SeriesRange(g.Series...)
	if n == 0 {
		recovered = append(recovered, fmt.Errorf("graph: %w", ErrEmptyModel))
		xr, yr = bakesale.Interval{}, bakesale.Interval{}
	} else {
		if xr.Degenerate() {
			recovered = append(recovered, fmt.Errorf("x values all %g: %w", xr.Min, ErrDegenerateRange))
		}
		if yr.Degenerate() {
			recovered = append(recovered, fmt.Errorf("y values all %g: %w", yr.Min, ErrDegenerateRange))
		}
	}

	lm, pad := fonts.Label, cfg.Style.LabelPad
	r := bakesale.Resolver{Config: cfg, Fonts: fonts}
	l := r.Resolve(viewport, func(plot bakesale.Region) (*bakesale.AxisScale, bakesale.AxisScale) {
		x := bakesale.ScaleAxisFunc(xr.Min, xr.Max, plot.Width, func(s bakesale.AxisScale) float64 {
			return s.LabelWidth(lm) + pad
		})
		y := bakesale.ScaleAxis(yr.Min, yr.Max, plot.Height, lm.LineHeight()+pad)
		return &x, y
	})
	l.Recovered = recovered

	m := l.Mapper()
	l.Lines = make([][]bakesale.Point, len(g.Series))
	for i, s := range g.Series {
		var pts []bakesale.Point
		for j := 0; j < s.Len(); j++ {
			x, y := s.XY(j)
			if !finite(x) || !finite(y) {
				continue
			}
			pts = append(pts, m.ToScreen(x, y))
		}
		if len(pts) >= 2 {
			l.Lines[i] = pts
		}
	}
	return l, nil
}

func (g Graph) Render(l *bakesale.Layout, cfg *bakesale.Config, s bakesale.Surface) error {
	if l == nil {
		return ErrNoLayout
	}
	drawFrame(l, cfg, s)
	drawAxes(l, cfg, s)
	for i, pts := range l.Lines {
		c := colorOr(g.Series[i].Color(), cfg.Style.Foreground)
		for j := 1; j < len(pts); j++ {
			s.DrawLine(pts[j-1], pts[j], c)
		}
	}
	return nil
}

// Plot returns the graph as a gonum plot using the scales of l for both
// axes, so the plot shows the same ticks as the rendered layout.
func (g Graph) Plot(l *bakesale.Layout, cfg *bakesale.Config) (*plot.Plot, error) {
	if l == nil || l.X == nil || l.Y == nil {
		return nil, ErrNoLayout
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Min, p.X.Max = l.X.Min, l.X.Max
	p.Y.Min, p.Y.Max = l.Y.Min, l.Y.Max
	p.X.Tick.Marker = *l.X
	p.Y.Tick.Marker = *l.Y

	for i, s := range g.Series {
		if i >= len(l.Lines) || l.Lines[i] == nil {
			continue
		}
		xys := make(plotter.XYs, 0, s.Len())
		for j := 0; j < s.Len(); j++ {
			x, y := s.XY(j)
			if finite(x) && finite(y) {
				xys = append(xys, plotter.XY{X: x, Y: y})
			}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		line.Color = colorOr(s.Color(), cfg.Style.Foreground)
		p.Add(line)
	}
	return p, nil
}
