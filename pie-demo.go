//go:build ignore
// +build ignore

package main

import (
	"os"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/internal/demo"
)

func main() {
	c := demo.Charts()[1]

	w, err := os.Create("testdata/pie.svg")
	if err != nil {
		panic(err)
	}
	defer w.Close()

	p := bakesale.NewPanel(&c.Config, bakesale.DefaultFonts())
	p.OnModelChanged(c.Chart)
	if err := p.OnViewportChanged(demo.Width, demo.Height); err != nil {
		panic(err)
	}
	s := bakesale.NewSVGSurface(w, demo.Width, demo.Height)
	if err := p.Render(s); err != nil {
		panic(err)
	}
	s.Close()
	if err = w.Close(); err != nil {
		panic(err)
	}
}
