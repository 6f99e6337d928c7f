package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
	"gonum.org/v1/plot/plotter"
)

func squares(n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i] = plotter.XY{X: float64(i), Y: float64(i * i)}
	}
	return xys
}

func TestGraphSquares(t *testing.T) {
	g := Graph{Series: []data.Series{
		data.NewSeries(squares(100), red),
		data.NewSeries(plotter.XYs{{X: 50, Y: 50}}, blue),
	}}
	cfg := defaultConfig()
	l, err := g.Layout(viewport(640, 480), cfg, bakesale.DefaultFonts())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if l.X == nil {
		t.Fatal("graph without x scale")
	}
	for _, tc := range []struct {
		name     string
		s        bakesale.AxisScale
		min, max float64
	}{
		{"x", *l.X, 0, 99},
		{"y", *l.Y, 0, 9801},
	} {
		if tc.s.Min > tc.min || tc.s.Max <= tc.max || tc.s.Step <= 0 {
			t.Errorf("%s scale %v does not cover [%g,%g]", tc.name, tc.s, tc.min, tc.max)
		}
		if n := (tc.s.Max - tc.s.Min) / tc.s.Step; n != math.Trunc(n) {
			t.Errorf("%s scale %v: range not a multiple of step", tc.name, tc.s)
		}
	}
	if l.X.Min != 0 || l.Y.Min != 0 {
		t.Errorf("scales %v %v do not start at 0", *l.X, *l.Y)
	}

	if len(l.Lines) != 2 {
		t.Fatalf("got %d lines", len(l.Lines))
	}
	if len(l.Lines[0]) != 100 {
		t.Errorf("squares: got %d points", len(l.Lines[0]))
	}
	origin := bakesale.Point{X: l.PlotRegion.X, Y: l.PlotRegion.Bottom()}
	if !nearPoint(l.Lines[0][0], origin) {
		t.Errorf("(0,0) mapped to %v, want %v", l.Lines[0][0], origin)
	}
	for i := 1; i < len(l.Lines[0]); i++ {
		p, q := l.Lines[0][i-1], l.Lines[0][i]
		if q.X <= p.X || q.Y >= p.Y {
			t.Errorf("point %d at %v does not rise right of %v", i, q, p)
		}
	}
	if l.Lines[1] != nil {
		t.Errorf("single point series has polyline %v", l.Lines[1])
	}

	var r recorder
	if err := g.Render(l, cfg, &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := r.count("line", red); got != 99 {
		t.Errorf("drew %d segments for 100 points", got)
	}
	if got := r.count("line", blue); got != 0 {
		t.Errorf("drew %d segments for a single point", got)
	}
}

func TestGraphXTicksFit(t *testing.T) {
	g := Graph{Series: []data.Series{data.NewSeries(squares(100), red)}}
	fonts := bakesale.DefaultFonts()
	cfg := defaultConfig()
	l, _ := g.Layout(viewport(400, 300), cfg, fonts)

	for i := 1; i < len(l.XTicks); i++ {
		prev, cur := l.XTicks[i-1], l.XTicks[i]
		right := prev.LabelAt.X + fonts.Label.StringWidth(prev.Label)
		if right > cur.LabelAt.X {
			t.Errorf("x tick labels %q and %q overlap", prev.Label, cur.Label)
		}
	}
	last := l.XTicks[len(l.XTicks)-1]
	if end := last.LabelAt.X + fonts.Label.StringWidth(last.Label); end > 400-cfg.Style.Margin+1e-9 {
		t.Errorf("last x tick label ends at %g, outside margin", end)
	}
}

func TestGraphRecovered(t *testing.T) {
	for _, tc := range []struct {
		name   string
		series []data.Series
		want   []error
	}{
		{"none", nil, []error{ErrEmptyModel}},
		{"empty", []data.Series{data.NewSeries(plotter.XYs{}, red)}, []error{ErrEmptyModel}},
		{"nan", []data.Series{data.NewSeries(plotter.XYs{{X: math.NaN(), Y: 1}, {X: 2, Y: math.Inf(1)}}, red)},
			[]error{ErrEmptyModel}},
		{"flat", []data.Series{data.NewSeries(plotter.XYs{{X: 1, Y: 3}, {X: 2, Y: 3}}, red)},
			[]error{ErrDegenerateRange}},
		{"point", []data.Series{data.NewSeries(plotter.XYs{{X: 1, Y: 3}}, red)},
			[]error{ErrDegenerateRange, ErrDegenerateRange}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Graph{Series: tc.series}.Layout(viewport(300, 200), defaultConfig(), bakesale.DefaultFonts())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(l.Recovered) != len(tc.want) {
				t.Fatalf("Recovered = %v, want %v", l.Recovered, tc.want)
			}
			for i, err := range l.Recovered {
				if !errors.Is(err, tc.want[i]) {
					t.Errorf("Recovered[%d] = %v, want %v", i, err, tc.want[i])
				}
			}
			if l.Y.Step <= 0 || l.X.Step <= 0 || l.Y.Max <= l.Y.Min || l.X.Max <= l.X.Min {
				t.Errorf("unusable scales %v %v", *l.X, *l.Y)
			}
		})
	}
}

func TestGraphPlot(t *testing.T) {
	g := Graph{Series: []data.Series{data.NewSeries(squares(100), red)}}
	cfg := defaultConfig()
	cfg.Title = "Squares"
	l, _ := g.Layout(viewport(640, 480), cfg, bakesale.DefaultFonts())

	p, err := g.Plot(l, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Title.Text != "Squares" {
		t.Errorf("Title = %q", p.Title.Text)
	}
	if p.Y.Min != l.Y.Min || p.Y.Max != l.Y.Max {
		t.Errorf("plot y range [%g,%g], want %v", p.Y.Min, p.Y.Max, *l.Y)
	}
	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	if len(ticks) != len(l.YTicks) {
		t.Errorf("plot has %d y ticks, layout %d", len(ticks), len(l.YTicks))
	}

	if _, err := g.Plot(nil, cfg); !errors.Is(err, ErrNoLayout) {
		t.Errorf("Plot(nil) = %v, want ErrNoLayout", err)
	}
}
