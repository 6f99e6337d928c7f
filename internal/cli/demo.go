package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vdobler/bakesale/internal/demo"
)

type demoOptions struct {
	dir    string
	format string
}

func (a *App) newDemoCmd() *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw the demo charts",
		Long: `Draw the bar, pie and graph demo charts into a directory.

Example:
  bakesale demo -d /tmp --format svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Output directory")
	cmd.Flags().StringVar(&opts.format, "format", "png", "Output format (png, jpg, tiff, pdf, svg)")

	return cmd
}

func (a *App) demo(opts *demoOptions) error {
	for _, c := range demo.Charts() {
		name := filepath.Join(opts.dir, c.Name+"."+opts.format)
		out, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		cfg := c.Config
		err = drawChart(out, opts.format, demo.Width, demo.Height, &cfg, c.Chart)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}
