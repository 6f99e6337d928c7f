package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/bakesale"
	"github.com/vdobler/bakesale/internal/chartfile"
	"github.com/vdobler/bakesale/internal/logging"
)

type renderOptions struct {
	chartPath string
	output    string
	format    string
	width     float64
	height    float64
	strict    bool
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a chart file to an image",
		Long: `Draw the chart described in a YAML chart file.

The output format is taken from --format or the extension of the output
file: png, jpg, tiff and pdf are drawn with gonum's vg backends, svg with
SVGo. Without --output the image is written to stdout.

Examples:
  bakesale render -f sales.yaml -o sales.png
  bakesale render -f sales.yaml --format svg > sales.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chartPath, "file", "f", "", "Path to chart file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format (png, jpg, tiff, pdf, svg)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Image width, overrides the chart file")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Image height, overrides the chart file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unset environment variables")

	return cmd
}

func (a *App) loadChart(path string, strict bool) (*chartfile.File, bakesale.Chart, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("chart file path is required (-f flag)")
	}
	loader := chartfile.NewLoader()
	loader.StrictEnv = strict
	f, err := loader.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	chart, err := f.Chart()
	if err != nil {
		return nil, nil, err
	}
	logging.Debug().
		Add(logging.File(path)).
		Add(logging.Chart(f.Kind)).
		Add(logging.Count(len(f.Bars) + len(f.Series) + len(f.Wedges))).
		Msg("chart file loaded")
	return f, chart, nil
}

func (a *App) render(opts *renderOptions) error {
	f, chart, err := a.loadChart(opts.chartPath, opts.strict)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		f.Width = opts.width
	}
	if opts.height > 0 {
		f.Height = opts.height
	}

	format := opts.format
	if format == "" && opts.output != "" {
		format = strings.TrimPrefix(filepath.Ext(opts.output), ".")
	}
	if format == "" {
		format = "png"
	}

	var w io.Writer = a.stdout
	if opts.output != "" {
		out, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close()
		w = out
	}

	if err := drawChart(w, format, f.Width, f.Height, &f.Config, chart); err != nil {
		return err
	}
	logging.Info().Add(logging.Chart(f.Kind)).Add(logging.Viewport(f.Width, f.Height)).Msg("rendered")
	return nil
}

// drawChart lays out chart in a width x height panel and draws it to w.
func drawChart(w io.Writer, format string, width, height float64, cfg *bakesale.Config, chart bakesale.Chart) error {
	if strings.ToLower(format) == "svg" {
		fonts, err := cfg.Fonts()
		if err != nil {
			return err
		}
		panel, err := layoutPanel(cfg, fonts, chart, width, height)
		if err != nil {
			return err
		}
		s := bakesale.NewSVGSurface(w, width, height)
		if err := panel.Render(s); err != nil {
			return err
		}
		return s.Close()
	}

	label, title, fonts, err := bakesale.CanvasFonts(cfg)
	if err != nil {
		return err
	}
	panel, err := layoutPanel(cfg, fonts, chart, width, height)
	if err != nil {
		return err
	}
	return bakesale.WriteImage(w, format, width, height, label, title, panel.Render)
}

func layoutPanel(cfg *bakesale.Config, fonts bakesale.Fonts, chart bakesale.Chart, width, height float64) (*bakesale.Panel, error) {
	panel := bakesale.NewPanel(cfg, fonts)
	if err := panel.OnModelChanged(chart); err != nil {
		return nil, err
	}
	if err := panel.OnViewportChanged(width, height); err != nil {
		return nil, err
	}
	return panel, nil
}
