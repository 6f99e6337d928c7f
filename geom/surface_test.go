package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/bakesale"
)

// op is one recorded drawing call.
type op struct {
	kind  string // line, fill, stroke, text, rtext
	pts   []bakesale.Point
	text  string
	angle float64
	c     color.Color
}

// recorder is a bakesale.Surface which records all calls.
type recorder struct {
	ops []op
}

func (r *recorder) DrawLine(a, b bakesale.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: "line", pts: []bakesale.Point{a, b}, c: c})
}

func (r *recorder) FillPolygon(pts []bakesale.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: "fill", pts: pts, c: c})
}

func (r *recorder) StrokePolygon(pts []bakesale.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: "stroke", pts: pts, c: c})
}

func (r *recorder) DrawText(role bakesale.TextRole, text string, at bakesale.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", pts: []bakesale.Point{at}, text: text, c: c})
}

func (r *recorder) DrawRotatedText(role bakesale.TextRole, text string, at bakesale.Point, angle float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "rtext", pts: []bakesale.Point{at}, text: text, angle: angle, c: c})
}

// count returns the number of recorded calls of the given kind drawn in c.
func (r *recorder) count(kind string, c color.Color) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind && o.c == c {
			n++
		}
	}
	return n
}

// texts returns all horizontally drawn strings.
func (r *recorder) texts() []string {
	var s []string
	for _, o := range r.ops {
		if o.kind == "text" {
			s = append(s, o.text)
		}
	}
	return s
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(a))
}

func nearPoint(p, q bakesale.Point) bool {
	return near(p.X, q.X) && near(p.Y, q.Y)
}

func viewport(w, h float64) bakesale.Region {
	return bakesale.Region{Width: w, Height: h}
}

func defaultConfig() *bakesale.Config {
	c := bakesale.DefaultConfig()
	return &c
}

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	gray  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	pink  = color.RGBA{0xff, 0xc0, 0xcb, 0xff}
)
