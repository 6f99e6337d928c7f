//go:build ignore
// +build ignore

package main

import (
	"os"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/internal/demo"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	c := demo.Charts()[0]

	label, title, fonts, err := bakesale.CanvasFonts(&c.Config)
	if err != nil {
		panic(err)
	}
	p := bakesale.NewPanel(&c.Config, fonts)
	if err := p.OnModelChanged(c.Chart); err != nil {
		panic(err)
	}
	if err := p.OnViewportChanged(demo.Width, demo.Height); err != nil {
		panic(err)
	}

	img := vgimg.NewWith(vgimg.UseWH(demo.Width, demo.Height), vgimg.UseDPI(bakesale.PixelDPI))
	dc := draw.New(img)
	if err := p.Render(bakesale.NewCanvasSurface(dc, label, title)); err != nil {
		panic(err)
	}

	w, err := os.Create("testdata/bar.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
