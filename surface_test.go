package bakesale

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"
)

func drawSample(s Surface) {
	box := Region{X: 10, Y: 10, Width: 30, Height: 20}
	s.FillPolygon(box.Polygon(), color.RGBA{0xff, 0, 0, 0xff})
	s.StrokePolygon(box.Polygon(), color.Black)
	s.DrawLine(Point{0, 50}, Point{100, 50}, color.Black)
	s.DrawText(TitleText, "Title", Point{20, 80}, color.Black)
	s.DrawRotatedText(LabelText, "Millions", Point{5, 90}, -math.Pi/2, color.Black)
}

func TestSVGSurface(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVGSurface(&buf, 120, 100)
	drawSample(s)
	if err := s.Close(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`width="120"`,
		`<polygon points="10,30 10,10 40,10 40,30"`,
		`fill:rgb(255,0,0)`,
		`<line x1="0" y1="50" x2="100" y2="50"`,
		`>Title</text>`,
		`rotate(-90,5,90)`,
		`>Millions</text>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestPaint(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want string
	}{
		{nil, "fill:none"},
		{color.Black, "fill:rgb(0,0,0)"},
		{color.NRGBA{0x10, 0x20, 0x30, 0x80}, "fill:rgb(16,32,48);fill-opacity:0.502"},
	} {
		if got := paint("fill", tc.c); got != tc.want {
			t.Errorf("paint(%v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestWriteImage(t *testing.T) {
	cfg := DefaultConfig()
	label, title, fonts, err := CanvasFonts(&cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fonts.Label.LineHeight() <= 0 {
		t.Errorf("label line height %g", fonts.Label.LineHeight())
	}

	for _, tc := range []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"pdf", "%PDF"},
		{"svg", "<?xml"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteImage(&buf, tc.format, 120, 100, label, title, func(s Surface) error {
				drawSample(s)
				return nil
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte(tc.magic)) {
				t.Errorf("output starts with %q", buf.Bytes()[:8])
			}
		})
	}

	err = WriteImage(&bytes.Buffer{}, "gif", 10, 10, label, title, func(Surface) error { return nil })
	if err == nil {
		t.Errorf("gif accepted")
	}
}

func TestWriteImagePixelSize(t *testing.T) {
	cfg := DefaultConfig()
	label, title, _, err := CanvasFonts(&cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var buf bytes.Buffer
	err = WriteImage(&buf, "png", 600, 400, label, title, func(Surface) error { return nil })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.Width != 600 || img.Height != 400 {
		t.Errorf("png is %dx%d pixels, want 600x400", img.Width, img.Height)
	}
}

func TestCanvasSurfaceFlip(t *testing.T) {
	s := &CanvasSurface{}
	s.Canvas.Max.Y = 100
	if p := s.pt(Point{5, 10}); p.X != 5 || p.Y != 90 {
		t.Errorf("pt(5,10) = %v, want (5,90)", p)
	}
}
