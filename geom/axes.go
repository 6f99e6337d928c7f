package geom

import (
	"math"

	"github.com/vdobler/bakesale"
)

// drawFrame paints the background and the title.
func drawFrame(l *bakesale.Layout, cfg *bakesale.Config, s bakesale.Surface) {
	st := cfg.Style
	if st.Background != nil && !l.Viewport.IsEmpty() {
		s.FillPolygon(l.Viewport.Polygon(), st.Background)
	}
	if cfg.Title != "" {
		s.DrawText(bakesale.TitleText, cfg.Title, l.TitleAt, st.Foreground)
	}
}

// drawAxes draws both axes along the left and bottom edge of the plot
// region together with their tick marks, tick labels and axis labels.
func drawAxes(l *bakesale.Layout, cfg *bakesale.Config, s bakesale.Surface) {
	st := cfg.Style
	fg := st.Foreground
	plot := l.PlotRegion
	bottomLeft := bakesale.Point{X: plot.X, Y: plot.Bottom()}

	s.DrawLine(bottomLeft, bakesale.Point{X: plot.Right(), Y: plot.Bottom()}, fg)
	s.DrawLine(bottomLeft, bakesale.Point{X: plot.X, Y: plot.Y}, fg)

	for _, t := range l.YTicks {
		s.DrawLine(
			bakesale.Point{X: plot.X - st.HashMark, Y: t.Pos},
			bakesale.Point{X: plot.X + st.HashMark, Y: t.Pos},
			fg)
		s.DrawText(bakesale.LabelText, t.Label, t.LabelAt, fg)
	}
	for _, t := range l.XTicks {
		s.DrawLine(
			bakesale.Point{X: t.Pos, Y: plot.Bottom() - st.HashMark},
			bakesale.Point{X: t.Pos, Y: plot.Bottom() + st.HashMark},
			fg)
		s.DrawText(bakesale.LabelText, t.Label, t.LabelAt, fg)
	}

	if cfg.YLabel != "" {
		s.DrawRotatedText(bakesale.LabelText, cfg.YLabel, l.YLabelAt, -math.Pi/2, fg)
	}
	if cfg.XLabel != "" {
		s.DrawText(bakesale.LabelText, cfg.XLabel, l.XLabelAt, fg)
	}
}
