package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blockforge-dev/blockforge/pkg/preview"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live preview server",
		Long: `Run the preview server. Editors POST documents to /render or
/render/blocks and connected browsers receive every render over the
/ws WebSocket.

Examples:
  blockforge serve
  blockforge serve --addr=:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := preview.New(preview.Config{Address: addr})
			return server.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default :8654)")

	return cmd
}
