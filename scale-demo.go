//go:build ignore
// +build ignore

package main

import (
	"fmt"

	"github.com/vdobler/bakesale"
)

// Prints the axis scales chosen for the population data (0 to 1321)
// at growing plot heights with 13 pixel labels.
func main() {
	fonts := bakesale.DefaultFonts()
	size := fonts.Label.LineHeight() + bakesale.DefaultStyle().LabelPad
	for _, h := range []float64{0, 20, 50, 100, 200, 350.5, 500, 1000, 2000, 5000} {
		s := bakesale.ScaleAxis(0, 1321, h, size)
		fmt.Printf("%6g px: %-18v %3d ticks, gutter %g px\n",
			h, s, s.N()+1, s.LabelWidth(fonts.Label))
	}
}
