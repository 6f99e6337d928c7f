package bakesale

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVGSurface writes SVG markup. Coordinates are rounded to whole pixels.
// The surface must be closed to complete the document.
type SVGSurface struct {
	svg *svg.SVG

	// CSS font settings for label and title text.
	LabelFont string
	TitleFont string
}

// NewSVGSurface starts a width x height SVG document on w.
func NewSVGSurface(w io.Writer, width, height float64) *SVGSurface {
	s := &SVGSurface{
		svg:       svg.New(w),
		LabelFont: "font-family:monospace;font-size:12px",
		TitleFont: "font-family:monospace;font-size:13px;font-weight:bold",
	}
	s.svg.Start(px(width), px(height))
	return s
}

// Close ends the SVG document.
func (s *SVGSurface) Close() error {
	s.svg.End()
	return nil
}

func px(v float64) int { return int(math.Round(v)) }

func coords(pts []Point) (xs, ys []int) {
	xs, ys = make([]int, len(pts)), make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return xs, ys
}

// paint formats c as a CSS color for property prop ("fill" or "stroke").
func paint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	css := fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, n.R, n.G, n.B)
	if n.A != 0xff {
		css += fmt.Sprintf(";%s-opacity:%.3f", prop, float64(n.A)/0xff)
	}
	return css
}

func (s *SVGSurface) font(role TextRole) string {
	if role == TitleText {
		return s.TitleFont
	}
	return s.LabelFont
}

func (s *SVGSurface) DrawLine(a, b Point, c color.Color) {
	s.svg.Line(px(a.X), px(a.Y), px(b.X), px(b.Y), paint("stroke", c))
}

func (s *SVGSurface) FillPolygon(pts []Point, c color.Color) {
	xs, ys := coords(pts)
	s.svg.Polygon(xs, ys, paint("fill", c)+";stroke:none")
}

func (s *SVGSurface) StrokePolygon(pts []Point, c color.Color) {
	xs, ys := coords(pts)
	s.svg.Polygon(xs, ys, "fill:none;"+paint("stroke", c))
}

func (s *SVGSurface) DrawText(role TextRole, text string, baseline Point, c color.Color) {
	s.svg.Text(px(baseline.X), px(baseline.Y), text, s.font(role)+";"+paint("fill", c))
}

func (s *SVGSurface) DrawRotatedText(role TextRole, text string, pivot Point, angle float64, c color.Color) {
	x, y := px(pivot.X), px(pivot.Y)
	s.svg.Gtransform(fmt.Sprintf("rotate(%.6g,%d,%d)", angle*180/math.Pi, x, y))
	s.svg.Text(x, y, text, s.font(role)+";"+paint("fill", c))
	s.svg.Gend()
}
