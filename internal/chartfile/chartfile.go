// Package chartfile reads chart definitions from YAML files.
//
// A chart file names the kind of chart, its configuration and its data:
//
//	kind: bar
//	title: World Population
//	y_label: Millions
//	width: 640
//	height: 480
//	bars:
//	  - {label: China, value: 1321, color: red}
//	  - {label: India, value: 1169, color: "#00ff00"}
//
// Colors are either hex triplets (#rgb, #rrggbb, #rrggbbaa) or SVG color
// names. Environment variables in the file are expanded before parsing.
package chartfile

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/data"
	"github.com/vdobler/bakesale/geom"
)

// ErrUnsetEnv is returned in strict mode for references to unset
// environment variables.
var ErrUnsetEnv = errors.New("environment variable not set")

// Chart kinds.
const (
	KindBar   = "bar"
	KindGraph = "graph"
	KindPie   = "pie"
)

// File is a parsed chart file.
type File struct {
	Kind       string  `yaml:"kind"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
	Foreground string  `yaml:"foreground"`

	bakesale.Config `yaml:",inline"`

	Bars   []Bar    `yaml:"bars"`
	Series []Series `yaml:"series"`
	Wedges []Wedge  `yaml:"wedges"`
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

// Series is one line of a graph given as a list of [x, y] pairs.
type Series struct {
	Color  string       `yaml:"color"`
	Points [][2]float64 `yaml:"points"`
}

// Wedge is one wedge of a pie chart.
type Wedge struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Outset bool    `yaml:"outset"`
	Color  string  `yaml:"color"`
}

// Loader loads chart files.
type Loader struct {
	// ExpandEnv enables environment variable expansion.
	ExpandEnv bool
	// StrictEnv fails if referenced env vars are missing.
	StrictEnv bool
}

// NewLoader returns a loader expanding environment variables.
func NewLoader() *Loader {
	return &Loader{ExpandEnv: true}
}

// LoadFile loads a chart file from path.
func (l *Loader) LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads, parses and validates a chart file from r. Fields missing in
// the file keep the values of bakesale.DefaultConfig; the default size is
// 640x480.
func (l *Loader) Load(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}
	text := string(raw)
	if l.ExpandEnv {
		if text, err = l.expand(text); err != nil {
			return nil, err
		}
	}

	f := &File{Width: 640, Height: 480, Config: bakesale.DefaultConfig()}
	if err := yaml.Unmarshal([]byte(text), f); err != nil {
		return nil, fmt.Errorf("%w: %v", bakesale.ErrBadConfig, err)
	}
	if err := f.resolveColors(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadString loads a chart file from a string.
func (l *Loader) LoadString(content string) (*File, error) {
	return l.Load(strings.NewReader(content))
}

func (l *Loader) expand(s string) (string, error) {
	var missing []string
	out := os.Expand(s, func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	})
	if l.StrictEnv && len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnsetEnv, strings.Join(missing, ", "))
	}
	return out, nil
}

func (f *File) resolveColors() error {
	var err error
	if f.Background != "" {
		if f.Style.Background, err = ParseColor(f.Background); err != nil {
			return err
		}
	}
	if f.Foreground != "" {
		if f.Style.Foreground, err = ParseColor(f.Foreground); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the kind, the size and the configuration of f.
func (f *File) Validate() error {
	switch f.Kind {
	case KindBar, KindGraph, KindPie:
	default:
		return fmt.Errorf("%w: unknown chart kind %q", bakesale.ErrBadConfig, f.Kind)
	}
	if !(f.Width > 0 && f.Height > 0) {
		return fmt.Errorf("%w: size %gx%g", bakesale.ErrBadConfig, f.Width, f.Height)
	}
	return f.Config.Validate()
}

// Chart builds the chart described by f.
func (f *File) Chart() (bakesale.Chart, error) {
	switch f.Kind {
	case KindBar:
		bars := make(data.BarValues, len(f.Bars))
		for i, b := range f.Bars {
			c, err := ParseColor(b.Color)
			if err != nil {
				return nil, fmt.Errorf("bar %d: %w", i, err)
			}
			bars[i] = data.Bar{Label: b.Label, Value: b.Value, Color: c}
		}
		return geom.Bar{Model: bars}, nil

	case KindGraph:
		series := make([]data.Series, len(f.Series))
		for i, s := range f.Series {
			c, err := ParseColor(s.Color)
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", i, err)
			}
			xys := make(plotter.XYs, len(s.Points))
			for j, p := range s.Points {
				xys[j] = plotter.XY{X: p[0], Y: p[1]}
			}
			series[i] = data.NewSeries(xys, c)
		}
		return geom.Graph{Series: series}, nil

	case KindPie:
		slices := make(data.PieSlices, len(f.Wedges))
		for i, w := range f.Wedges {
			c, err := ParseColor(w.Color)
			if err != nil {
				return nil, fmt.Errorf("wedge %d: %w", i, err)
			}
			slices[i] = data.Slice{Name: w.Name, Value: w.Value, Outset: w.Outset, Color: c}
		}
		return geom.Pie{Model: slices}, nil
	}
	return nil, fmt.Errorf("%w: unknown chart kind %q", bakesale.ErrBadConfig, f.Kind)
}

// ParseColor parses a hex color (#rgb, #rrggbb or #rrggbbaa) or an SVG
// color name. The empty string yields a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q", bakesale.ErrBadConfig, s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 8 || err != nil {
		return nil, fmt.Errorf("%w: bad color %q", bakesale.ErrBadConfig, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
