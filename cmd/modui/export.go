package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danielnarey/modular-ui/internal/config"
	"github.com/danielnarey/modular-ui/pkg/publish"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the demo page as static HTML",
		Long: `Render the built-in demo page and write it to the output
directory as index.html.

Examples:
  modui export
  modui export --output=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from modui.json)")

	return cmd
}

func runExport(ctx context.Context, output string) error {
	cfg, err := config.LoadDir(".")
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}

	program := demoProgram()
	page := program.View(program.Init())

	publisher := publish.New(publish.NewDirStore(cfg.Output))
	if err := publisher.Page(ctx, "index.html", page); err != nil {
		return err
	}

	success("exported %s", filepath.Join(cfg.Output, "index.html"))
	return nil
}
