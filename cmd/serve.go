package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP host",
		Long: `Serve the date plugin over HTTP (h2c):

  GET  /healthz          liveness
  POST /v1/commands      route a chat line, e.g. {"text":"/date"}
  POST /v1/tools/{name}  call get_date_info or date_lookup
  POST /v1/prompt        run always-on actions and the pre-inference hooks
  GET  /metrics          Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			app, err := setupApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Warnf(context.Background(), "Failed to close holiday cache: %v", err)
				}
			}()

			if addr == "" {
				addr = app.Config.Server.Addr
			}
			return server.New(app.Host, app.Metrics).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
