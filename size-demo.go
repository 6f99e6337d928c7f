//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/internal/demo"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// The bar demo laid out in panels of different sizes, all drawn onto
// one 900x600 image.
func main() {
	c := demo.Charts()[0]
	label, title, fonts, err := bakesale.CanvasFonts(&c.Config)
	if err != nil {
		panic(err)
	}
	p := bakesale.NewPanel(&c.Config, fonts)
	p.OnModelChanged(c.Chart)

	img := vgimg.NewWith(vgimg.UseWH(900, 600), vgimg.UseDPI(bakesale.PixelDPI))
	dc := draw.New(img)

	sizes := []struct{ x, y, w, h vg.Length }{
		{0, 0, 300, 200},
		{300, 0, 600, 200},
		{0, 200, 300, 400},
		{300, 200, 200, 400},
		{500, 200, 400, 400},
	}
	for _, s := range sizes {
		// Canvas y grows upward, screen y downward.
		dc.Rectangle.Min.X, dc.Rectangle.Max.X = s.x, s.x+s.w
		dc.Rectangle.Min.Y, dc.Rectangle.Max.Y = 600-s.y-s.h, 600-s.y
		if err := p.OnViewportChanged(float64(s.w), float64(s.h)); err != nil {
			panic(err)
		}
		l := p.Layout()
		fmt.Printf("%gx%g: y scale %v, %d passes, converged %t\n",
			s.w, s.h, *l.Y, l.Passes, l.Converged)
		if err := p.Render(bakesale.NewCanvasSurface(dc, label, title)); err != nil {
			panic(err)
		}
	}

	w, err := os.Create("testdata/size.png")
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
