package bakesale

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// CanvasSurface draws onto a gonum draw.Canvas. Screen coordinates are
// measured from the top left corner of the canvas, one pixel being one
// vg.Length.
type CanvasSurface struct {
	Canvas      draw.Canvas
	Label       vg.Font
	Title       vg.Font
	StrokeWidth vg.Length
}

// NewCanvasSurface returns a surface drawing to c with the given fonts.
func NewCanvasSurface(c draw.Canvas, label, title vg.Font) *CanvasSurface {
	return &CanvasSurface{Canvas: c, Label: label, Title: title, StrokeWidth: 1}
}

// pt converts the screen point p to a canvas point (y pointing up).
func (s *CanvasSurface) pt(p Point) vg.Point {
	return vg.Point{
		X: s.Canvas.Min.X + vg.Length(p.X),
		Y: s.Canvas.Max.Y - vg.Length(p.Y),
	}
}

func (s *CanvasSurface) pts(ps []Point) []vg.Point {
	v := make([]vg.Point, len(ps))
	for i, p := range ps {
		v[i] = s.pt(p)
	}
	return v
}

func (s *CanvasSurface) lineStyle(c color.Color) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: s.StrokeWidth}
}

func (s *CanvasSurface) font(role TextRole) vg.Font {
	if role == TitleText {
		return s.Title
	}
	return s.Label
}

func (s *CanvasSurface) DrawLine(a, b Point, c color.Color) {
	s.Canvas.StrokeLines(s.lineStyle(c), []vg.Point{s.pt(a), s.pt(b)})
}

func (s *CanvasSurface) FillPolygon(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	s.Canvas.FillPolygon(c, s.pts(pts))
}

func (s *CanvasSurface) StrokePolygon(pts []Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	closed := append(s.pts(pts), s.pt(pts[0]))
	s.Canvas.StrokeLines(s.lineStyle(c), closed)
}

func (s *CanvasSurface) DrawText(role TextRole, text string, baseline Point, c color.Color) {
	s.DrawRotatedText(role, text, baseline, 0, c)
}

func (s *CanvasSurface) DrawRotatedText(role TextRole, text string, pivot Point, angle float64, c color.Color) {
	s.Canvas.Push()
	defer s.Canvas.Pop()
	s.Canvas.SetColor(c)
	s.Canvas.Translate(s.pt(pivot))
	if angle != 0 {
		s.Canvas.Rotate(-angle) // the canvas y-axis points up
	}
	s.Canvas.FillString(s.font(role), vg.Point{}, text)
}

// ----------------------------------------------------------------------------
// Image output

// CanvasFonts returns the gonum fonts for the label and title font of cfg
// together with matching text metrics. Unset fonts default to 12 pixel
// Helvetica for labels and 16 pixel bold Helvetica for the title.
func CanvasFonts(cfg *Config) (label, title vg.Font, fonts Fonts, err error) {
	ls, ts := cfg.LabelFont, cfg.TitleFont
	if ls.IsZero() {
		ls = FontSpec{Name: "Helvetica", Size: 12}
	}
	if ts.IsZero() {
		ts = FontSpec{Name: "Helvetica-Bold", Size: 16}
	}
	if label, err = ls.VGFont(); err != nil {
		return
	}
	if title, err = ts.VGFont(); err != nil {
		return
	}
	fonts = Fonts{Label: FontMetrics{Font: label}, Title: FontMetrics{Font: title}}
	return
}

// PixelDPI is the resolution at which one vg.Length unit is one pixel.
const PixelDPI = 72

// newImage returns a raster canvas of exactly w x h pixels.
func newImage(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(PixelDPI))
}

// WriteImage creates a width x height pixel canvas in the given format
// (png, jpg, tiff, pdf or svg), lets paint draw onto it and writes the result to w.
func WriteImage(w io.Writer, format string, width, height float64, label, title vg.Font, paint func(Surface) error) error {
	W, H := vg.Length(width), vg.Length(height)

	var (
		canvas vg.CanvasSizer
		out    io.WriterTo
	)
	switch strings.ToLower(format) {
	case "png":
		img := newImage(W, H)
		canvas, out = img, vgimg.PngCanvas{Canvas: img}
	case "jpg", "jpeg":
		img := newImage(W, H)
		canvas, out = img, vgimg.JpegCanvas{Canvas: img}
	case "tif", "tiff":
		img := newImage(W, H)
		canvas, out = img, vgimg.TiffCanvas{Canvas: img}
	case "pdf":
		doc := vgpdf.New(W, H)
		canvas, out = doc, doc
	case "svg":
		doc := vgsvg.New(W, H)
		canvas, out = doc, doc
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}

	dc := draw.New(canvas)
	if err := paint(NewCanvasSurface(dc, label, title)); err != nil {
		return err
	}
	_, err := out.WriteTo(w)
	return err
}
