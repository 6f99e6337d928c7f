package bakesale

import (
	"fmt"

	"github.com/vdobler/bakesale/internal/logging"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel hosts one chart in a window or image of changing size.
//
// The host reports size and model changes through OnViewportChanged and
// OnModelChanged; both recompute the layout immediately. Render draws the
// most recent layout and never recomputes it.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	Config *Config
	Fonts  Fonts

	chart         Chart
	width, height float64
	layout        *Layout
}

// NewPanel returns a panel using cfg and fonts for all charts it hosts.
// A nil cfg selects DefaultConfig.
func NewPanel(cfg *Config, fonts Fonts) *Panel {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	return &Panel{Config: cfg, Fonts: fonts}
}

// OnViewportChanged records the new size of the drawing area and lays out
// the chart again. A size of zero means the host is not ready yet; the
// panel then has no layout.
func (p *Panel) OnViewportChanged(width, height float64) error {
	p.width, p.height = width, height
	return p.recompute()
}

// OnModelChanged replaces the hosted chart and lays it out again.
func (p *Panel) OnModelChanged(c Chart) error {
	p.chart = c
	return p.recompute()
}

// Layout returns the current layout or nil if there is none.
func (p *Panel) Layout() *Layout { return p.layout }

// Render draws the current layout onto s. It fails with ErrNoLayout if the
// chart has not been laid out successfully.
func (p *Panel) Render(s Surface) error {
	if p.layout == nil || p.chart == nil {
		return ErrNoLayout
	}
	return p.chart.Render(p.layout, p.Config, s)
}

func (p *Panel) recompute() error {
	p.layout = nil
	if p.chart == nil || p.width <= 0 || p.height <= 0 {
		return nil
	}
	if err := p.Config.Validate(); err != nil {
		return err
	}

	kind := fmt.Sprintf("%T", p.chart)
	l, err := p.chart.Layout(Region{Width: p.width, Height: p.height}, p.Config, p.Fonts)
	if err != nil {
		logging.Error().
			Add(logging.Chart(kind)).
			Add(logging.Viewport(p.width, p.height)).
			Add(logging.ErrorField(err)).
			Msg("layout failed")
		return err
	}
	for _, rerr := range l.Recovered {
		logging.Warn().
			Add(logging.Chart(kind)).
			Add(logging.ErrorField(rerr)).
			Msg("recovered during layout")
	}

	ev := logging.Debug().
		Add(logging.Chart(kind)).
		Add(logging.Viewport(p.width, p.height)).
		Add(logging.Passes(l.Passes, l.Converged))
	if l.Y != nil {
		ev.Add(logging.Scale("y", l.Y.Min, l.Y.Max, l.Y.Step))
	}
	ev.Msg("layout")

	p.layout = l
	return nil
}
