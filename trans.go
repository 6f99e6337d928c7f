// Coordinate Transformations
//
// Data coordinates are mapped to screen coordinates by linear
// interpolation between the scale's range and the plot rectangle.
package bakesale

// A Transformation bundles two functions Trans and Inverse. Trans maps the
// interval from onto the interval to, Inverse undoes this mapping.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to. The intervals may
// be reversed (Min > Max) which flips the direction of the mapping.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// ----------------------------------------------------------------------------
// Mapper

// A Mapper converts between data space and the screen space of a plot
// rectangle. Screen Y grows downward while data Y grows upward, so Y.Min
// is mapped to the bottom edge of Plot.
//
// The scales must not be degenerate; scales produced by ScaleAxis never are.
type Mapper struct {
	Plot  Region
	X, Y  AxisScale
	Trans Transformation
}

// NewMapper returns a linear mapper for the given plot region and scales.
func NewMapper(plot Region, x, y AxisScale) Mapper {
	return Mapper{Plot: plot, X: x, Y: y, Trans: LinearTrans}
}

func (m Mapper) xIntervals() (data, screen Interval) {
	return Interval{m.X.Min, m.X.Max}, Interval{m.Plot.X, m.Plot.Right()}
}

func (m Mapper) yIntervals() (data, screen Interval) {
	return Interval{m.Y.Min, m.Y.Max}, Interval{m.Plot.Bottom(), m.Plot.Y}
}

// ToScreenX maps the data coordinate x to a screen x coordinate.
func (m Mapper) ToScreenX(x float64) float64 {
	d, s := m.xIntervals()
	return m.Trans.Trans(d, s, x)
}

// ToScreenY maps the data coordinate y to a screen y coordinate.
func (m Mapper) ToScreenY(y float64) float64 {
	d, s := m.yIntervals()
	return m.Trans.Trans(d, s, y)
}

// ToScreen maps the data point (x,y) to a screen point.
func (m Mapper) ToScreen(x, y float64) Point {
	return Point{m.ToScreenX(x), m.ToScreenY(y)}
}

// ToDataX is the inverse of ToScreenX.
func (m Mapper) ToDataX(sx float64) float64 {
	d, s := m.xIntervals()
	return m.Trans.Inverse(d, s, sx)
}

// ToDataY is the inverse of ToScreenY.
func (m Mapper) ToDataY(sy float64) float64 {
	d, s := m.yIntervals()
	return m.Trans.Inverse(d, s, sy)
}
