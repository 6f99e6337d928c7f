package bakesale

import (
	"fmt"
	"image/color"
)

// Point is a location in screen pixels. Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// TextRole selects the font text is drawn with.
type TextRole int

const (
	LabelText TextRole = iota
	TitleText
)

// A Surface is the drawing backend charts are rendered onto.
// Coordinates are screen pixels with the origin in the top left corner.
type Surface interface {
	// DrawLine draws a straight line from a to b.
	DrawLine(a, b Point, c color.Color)

	// FillPolygon fills the closed polygon pts.
	FillPolygon(pts []Point, c color.Color)

	// StrokePolygon draws the outline of the closed polygon pts.
	StrokePolygon(pts []Point, c color.Color)

	// DrawText draws text starting at the left end of its baseline.
	DrawText(role TextRole, text string, baseline Point, c color.Color)

	// DrawRotatedText draws text with the left end of its baseline at
	// pivot, rotated by angle radians around pivot. A negative angle
	// turns the text counter-clockwise on screen, i.e. -π/2 runs it
	// bottom to top.
	DrawRotatedText(role TextRole, text string, pivot Point, angle float64, c color.Color)
}
