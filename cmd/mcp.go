package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the date tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout belongs to the protocol
			log.SetOutput(os.Stderr)

			app, err := setupApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			return mcpserver.ServeStdio(mcpserver.New(app.Plugin, version))
		},
	}
}
