//go:build ignore
// +build ignore

package main

import (
	"os"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/geom"
	"github.com/vdobler/bakesale/internal/demo"
	"gonum.org/v1/plot/vg"
)

func main() {
	c := demo.Charts()[2]

	label, title, fonts, err := bakesale.CanvasFonts(&c.Config)
	if err != nil {
		panic(err)
	}
	p := bakesale.NewPanel(&c.Config, fonts)
	p.OnModelChanged(c.Chart)
	if err := p.OnViewportChanged(demo.Width, demo.Height); err != nil {
		panic(err)
	}

	w, err := os.Create("testdata/graph.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	if err := bakesale.WriteImage(w, "png", demo.Width, demo.Height, label, title, p.Render); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}

	// The same graph drawn by gonum/plot with identical ticks.
	plt, err := c.Chart.(geom.Graph).Plot(p.Layout(), &c.Config)
	if err != nil {
		panic(err)
	}
	if err := plt.Save(demo.Width*vg.Millimeter/4, demo.Height*vg.Millimeter/4, "testdata/graph-gonum.png"); err != nil {
		panic(err)
	}
}
