// Package demo provides the sample charts shown by the demo programs and
// the demo command.
package demo

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
	"github.com/vdobler/bakesale/geom"
)

// Width and Height are the size of the demo charts.
const (
	Width  = 600
	Height = 400
)

// A Chart is a demo chart together with its configuration.
type Chart struct {
	Name   string
	Chart  bakesale.Chart
	Config bakesale.Config
}

// Population is the population of some countries in millions.
func Population() data.BarValues {
	return data.BarValues{
		{Label: "China", Value: 1321, Color: colornames.Red},
		{Label: "India", Value: 1169, Color: colornames.Orange},
		{Label: "USA", Value: 303, Color: colornames.Blue},
		{Label: "Australia", Value: 21, Color: colornames.Lime},
	}
}

// Wedges returns five wedges of growing size with the third one outset.
func Wedges() data.PieSlices {
	colors := []color.Color{
		color.RGBA{255, 236, 0, 255},
		color.RGBA{156, 206, 46, 255},
		color.RGBA{249, 99, 13, 255},
		color.RGBA{247, 174, 22, 255},
		color.RGBA{88, 142, 3, 255},
	}
	w := make(data.PieSlices, len(colors))
	for i, c := range colors {
		w[i] = data.Slice{
			Name:   fmt.Sprintf("Wedge %d", i),
			Value:  float64(5 * (i + 1)),
			Outset: i == 2,
			Color:  c,
		}
	}
	return w
}

// Series returns a parabola over 100 points and a rising sine wave over
// 1000 points.
func Series() []data.Series {
	squares := make(plotter.XYs, 100)
	for i := range squares {
		squares[i] = plotter.XY{X: float64(i), Y: float64(i * i)}
	}
	wave := make(plotter.XYs, 1000)
	for i := range wave {
		wave[i] = plotter.XY{
			X: float64(i) / 10,
			Y: 4000 + 3000*math.Sin(float64(i)/100) + 2*float64(i),
		}
	}
	return []data.Series{
		data.NewSeries(squares, colornames.Blue),
		data.NewSeries(wave, colornames.Lime),
	}
}

// Charts returns the bar, pie and graph demo.
func Charts() []Chart {
	bar := bakesale.DefaultConfig()
	bar.Title = "Population Comparison"
	bar.YLabel = "Population (millions)"

	pie := bakesale.DefaultConfig()
	pie.Title = "Pie chart"

	graph := bakesale.DefaultConfig()
	graph.Title = "Graph Title"
	graph.XLabel = "X Axis Label"
	graph.YLabel = "Y Axis Label"

	return []Chart{
		{Name: "bar", Chart: geom.Bar{Model: Population()}, Config: bar},
		{Name: "pie", Chart: geom.Pie{Model: Wedges()}, Config: pie},
		{Name: "graph", Chart: geom.Graph{Series: Series()}, Config: graph},
	}
}
