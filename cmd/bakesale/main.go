// Command bakesale draws charts from YAML chart files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vdobler/bakesale/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
