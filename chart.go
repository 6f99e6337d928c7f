package bakesale

// A Chart turns a data model into a Layout and draws that layout.
//
// Layout must be a pure function of the model, the viewport, the
// configuration and the font metrics: laying out twice with the same
// input yields equal layouts. Render draws exactly what the layout
// describes and does no layout work of its own.
type Chart interface {
	Layout(viewport Region, cfg *Config, fonts Fonts) (*Layout, error)
	Render(l *Layout, cfg *Config, s Surface) error
}
