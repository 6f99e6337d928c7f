package bakesale

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot/vg"
)

// TextMetrics measures text as it will be drawn by a Surface.
// All values are in screen pixels.
type TextMetrics interface {
	// StringWidth returns the advance width of s.
	StringWidth(s string) float64

	// LineHeight returns the distance between two consecutive baselines.
	LineHeight() float64

	// Ascent returns the distance from the baseline to the top of the
	// tallest glyphs.
	Ascent() float64
}

// Fonts bundles the metrics of the two fonts used in a chart.
type Fonts struct {
	Label TextMetrics // tick labels, axis labels, legend
	Title TextMetrics
}

// DefaultFonts returns Fonts which measure both label and title text
// with the fixed 7x13 bitmap face.
func DefaultFonts() Fonts {
	m := FaceMetrics{Face: basicfont.Face7x13}
	return Fonts{Label: m, Title: m}
}

// FaceMetrics implements TextMetrics for a font.Face.
type FaceMetrics struct {
	Face font.Face
}

func i26_6(x fixed.Int26_6) float64 { return float64(x) / 64 }

func (m FaceMetrics) StringWidth(s string) float64 {
	return i26_6(font.MeasureString(m.Face, s))
}

func (m FaceMetrics) LineHeight() float64 { return i26_6(m.Face.Metrics().Height) }
func (m FaceMetrics) Ascent() float64     { return i26_6(m.Face.Metrics().Ascent) }

// FontMetrics implements TextMetrics for a gonum vg.Font. One pixel is one
// vg.Length unit.
type FontMetrics struct {
	Font vg.Font
}

func (m FontMetrics) StringWidth(s string) float64 { return float64(m.Font.Width(s)) }
func (m FontMetrics) LineHeight() float64          { return float64(m.Font.Extents().Height) }
func (m FontMetrics) Ascent() float64              { return float64(m.Font.Extents().Ascent) }
