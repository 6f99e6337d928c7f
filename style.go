package bakesale

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/plot/vg"
)

// A Style controls spacing and colors of a chart. All lengths are in
// screen pixels.
type Style struct {
	Background color.Color `yaml:"-"`
	Foreground color.Color `yaml:"-"`

	Margin       float64 `yaml:"margin"`         // around the whole chart
	TitleGap     float64 `yaml:"title_gap"`      // between title and chart
	HashMark     float64 `yaml:"hash_mark"`      // half length of a tick mark
	TickLabelGap float64 `yaml:"tick_label_gap"` // between x tick marks and their labels
	ValueGap     float64 `yaml:"value_gap"`      // between y tick marks and their labels
	XLabelGap    float64 `yaml:"x_label_gap"`    // between x tick labels and x-axis label
	YLabelGap    float64 `yaml:"y_label_gap"`    // between y-axis label and y tick labels
	LabelPad     float64 `yaml:"label_pad"`      // minimum free space between two tick labels

	LegendMargin float64 `yaml:"legend_margin"`
	LegendPad    float64 `yaml:"legend_pad"`

	// LayoutPasses is the maximum number of rounds used to settle the
	// circular dependency between tick label width and axis scale.
	LayoutPasses int `yaml:"layout_passes"`

	// ArcStep is the angular distance in radians between two points
	// used to approximate the arc of a pie wedge.
	ArcStep float64 `yaml:"arc_step"`
}

// DefaultStyle returns the style of the classic bake sale charts:
// black on white, 10 pixel margin, 5 pixel tick marks.
func DefaultStyle() Style {
	return Style{
		Background:   color.White,
		Foreground:   color.Black,
		Margin:       10,
		TitleGap:     5,
		HashMark:     5,
		TickLabelGap: 5,
		ValueGap:     3,
		XLabelGap:    10,
		YLabelGap:    10,
		LabelPad:     5,
		LegendMargin: 10,
		LegendPad:    10,
		LayoutPasses: 2,
		ArcStep:      0.05,
	}
}

// FontSpec names a font and its size in pixels. The zero FontSpec denotes
// the built-in 7x13 bitmap face.
type FontSpec struct {
	Name string  `yaml:"name"`
	Size float64 `yaml:"size"`
}

// IsZero reports whether f selects the built-in face.
func (f FontSpec) IsZero() bool { return f.Name == "" }

// VGFont returns f as a gonum font.
func (f FontSpec) VGFont() (vg.Font, error) {
	size := f.Size
	if size <= 0 {
		size = 12
	}
	fnt, err := vg.MakeFont(f.Name, vg.Length(size))
	if err != nil {
		return vg.Font{}, fmt.Errorf("font %q: %w", f.Name, err)
	}
	return fnt, nil
}

// Metrics returns text metrics for f.
func (f FontSpec) Metrics() (TextMetrics, error) {
	if f.IsZero() {
		return FaceMetrics{Face: basicfont.Face7x13}, nil
	}
	fnt, err := f.VGFont()
	if err != nil {
		return nil, err
	}
	return FontMetrics{Font: fnt}, nil
}

// ----------------------------------------------------------------------------
// Config

// Config is the per chart configuration.
type Config struct {
	Title     string   `yaml:"title"`
	TitleFont FontSpec `yaml:"title_font"`
	LabelFont FontSpec `yaml:"label_font"`
	XLabel    string   `yaml:"x_label"`
	YLabel    string   `yaml:"y_label"`

	// BarWidth is the width of a bar in percent of the space available
	// to it.
	BarWidth float64 `yaml:"bar_width"`

	// Explode is the distance an outset pie wedge is moved away from the
	// center, as a fraction of the pie's radius.
	Explode float64 `yaml:"explode"`

	Style Style `yaml:"style"`
}

// DefaultConfig returns a Config without title or axis labels, 40% bar
// width, a pie explode distance of 16% and the default style.
func DefaultConfig() Config {
	return Config{
		BarWidth: 40,
		Explode:  0.16,
		Style:    DefaultStyle(),
	}
}

// Validate checks c for values no chart can be laid out with.
func (c *Config) Validate() error {
	bad := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case !(c.BarWidth > 0 && c.BarWidth <= 100):
		return bad("bar width %g%% not in (0,100]", c.BarWidth)
	case !(c.Explode >= 0 && c.Explode < 1):
		return bad("explode %g not in [0,1)", c.Explode)
	case c.Style.LayoutPasses < 1:
		return bad("%d layout passes", c.Style.LayoutPasses)
	case !(c.Style.ArcStep > 0 && c.Style.ArcStep <= math.Pi/2):
		return bad("arc step %g not in (0,π/2]", c.Style.ArcStep)
	case c.Style.Margin < 0 || c.Style.HashMark < 0:
		return bad("negative margin or hash mark")
	case c.Style.Foreground == nil:
		return bad("no foreground color")
	}
	return nil
}

// Fonts returns the text metrics for the fonts selected in c.
func (c *Config) Fonts() (Fonts, error) {
	label, err := c.LabelFont.Metrics()
	if err != nil {
		return Fonts{}, err
	}
	title, err := c.TitleFont.Metrics()
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{Label: label, Title: title}, nil
}
