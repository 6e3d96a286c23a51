package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌┬┐┬ ┬┬
  ││││ │ │││ ││
  ┴ ┴└─┘─┴┘└─┘┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "modui",
		Short: "Immutable UI element builder toolchain",
		Long: `modui is the toolchain for the modular-ui element builder.

Compose immutable element descriptors in Go, compile them to a
virtual node tree, and work with the result:

  • Live preview server with event dispatch over WebSocket
  • Static HTML export
  • Publishing to S3
  • Prometheus metrics for the preview server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		exportCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the modui ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
