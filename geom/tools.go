package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/bakesale"
)

// colorOr returns c or fallback if c is nil.
func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// CanonicRegion returns the region of the given width spanning vertically
// from y0 to y1, regardless of their order.
func CanonicRegion(x, width, y0, y1 float64) bakesale.Region {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return bakesale.Region{X: x, Y: y0, Width: math.Max(0, width), Height: y1 - y0}
}
