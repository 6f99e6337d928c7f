package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/bakesale"
)

type layoutOptions struct {
	chartPath string
	width     float64
	height    float64
	strict    bool
}

// layoutView is the YAML form of a bakesale.Layout.
type layoutView struct {
	Viewport  bakesale.Region     `yaml:"viewport"`
	Plot      bakesale.Region     `yaml:"plot"`
	Gutter    bakesale.Region     `yaml:"gutter,omitempty"`
	Legend    bakesale.Region     `yaml:"legend,omitempty"`
	X         *bakesale.AxisScale `yaml:"x,omitempty"`
	Y         *bakesale.AxisScale `yaml:"y,omitempty"`
	Passes    int                 `yaml:"passes"`
	Converged bool                `yaml:"converged"`
	Bars      []bakesale.Region   `yaml:"bars,omitempty"`
	Lines     []int               `yaml:"lines,omitempty"` // points per series
	Angles    []float64           `yaml:"angles,omitempty"`
	Radius    float64             `yaml:"radius,omitempty"`
	Recovered []string            `yaml:"recovered,omitempty"`
}

func newLayoutView(l *bakesale.Layout) layoutView {
	v := layoutView{
		Viewport:  l.Viewport,
		Plot:      l.PlotRegion,
		Gutter:    l.GutterRegion,
		Legend:    l.LegendRegion,
		X:         l.X,
		Y:         l.Y,
		Passes:    l.Passes,
		Converged: l.Converged,
	}
	for _, b := range l.Bars {
		v.Bars = append(v.Bars, b.Bar)
	}
	for _, pts := range l.Lines {
		v.Lines = append(v.Lines, len(pts))
	}
	if l.Pie != nil {
		v.Angles = l.Pie.Angles
		v.Radius = l.Pie.Radius
	}
	for _, err := range l.Recovered {
		v.Recovered = append(v.Recovered, err.Error())
	}
	return v
}

func (a *App) newLayoutCmd() *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed layout of a chart file",
		Long: `Lay out the chart described in a YAML chart file and print the
resulting regions, axis scales and geometry as YAML. Text is measured
with the built-in 7x13 font unless the chart file selects fonts.

Example:
  bakesale layout -f sales.yaml --width 800 --height 600`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.layout(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chartPath, "file", "f", "", "Path to chart file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Viewport width, overrides the chart file")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Viewport height, overrides the chart file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unset environment variables")

	return cmd
}

func (a *App) layout(opts *layoutOptions) error {
	f, chart, err := a.loadChart(opts.chartPath, opts.strict)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		f.Width = opts.width
	}
	if opts.height > 0 {
		f.Height = opts.height
	}

	fonts, err := f.Config.Fonts()
	if err != nil {
		return err
	}
	panel, err := layoutPanel(&f.Config, fonts, chart, f.Width, f.Height)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(newLayoutView(panel.Layout())); err != nil {
		return err
	}
	return enc.Close()
}
