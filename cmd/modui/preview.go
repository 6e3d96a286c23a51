package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielnarey/modular-ui/internal/config"
	"github.com/danielnarey/modular-ui/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port   int
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the live preview server",
		Long: `Start the live preview server for the built-in demo page.

The server renders the page, keeps a WebSocket session per browser
tab, dispatches DOM events through the element bindings, and pushes
re-rendered HTML on every update.

Examples:
  modui preview
  modui preview --port=8080
  modui preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, pretty)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from modui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from modui.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the served HTML")

	return cmd
}

func runPreview(port int, host string, pretty bool) error {
	cfg, err := config.LoadDir(".")
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if pretty {
		cfg.Preview.Pretty = true
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	title := cfg.Name
	if title == "" {
		title = "modui demo"
	}

	server := preview.NewServer(demoProgram(),
		preview.WithAddr(cfg.Addr()),
		preview.WithTitle(title),
		preview.WithPretty(cfg.Preview.Pretty),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	info("serving on http://" + cfg.Preview.Host + ":" + strconv.Itoa(cfg.Preview.Port))
	info("metrics on http://" + cfg.Addr() + "/metrics")
	return server.ListenAndServe(ctx)
}
