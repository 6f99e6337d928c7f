package demo

import (
	"testing"

	"github.com/vdobler/bakesale"
)

func TestChartsLayOut(t *testing.T) {
	fonts := bakesale.DefaultFonts()
	for _, c := range Charts() {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Config.Validate(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			l, err := c.Chart.Layout(bakesale.Region{Width: Width, Height: Height}, &c.Config, fonts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(l.Recovered) != 0 {
				t.Errorf("Recovered = %v", l.Recovered)
			}
			if l.PlotRegion.IsEmpty() {
				t.Errorf("empty plot region")
			}
		})
	}
}

func TestWedges(t *testing.T) {
	w := Wedges()
	if w.Len() != 5 {
		t.Fatalf("got %d wedges", w.Len())
	}
	for i := 0; i < w.Len(); i++ {
		if w.Value(i) != float64(5*(i+1)) {
			t.Errorf("wedge %d value %g", i, w.Value(i))
		}
		if w.Outset(i) != (i == 2) {
			t.Errorf("wedge %d outset %t", i, w.Outset(i))
		}
	}
}
