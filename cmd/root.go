package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/va6996/dateaware/bootstrap"
	"github.com/va6996/dateaware/config"
	"github.com/va6996/dateaware/log"
)

var configPath string

// rootCmd represents the base command for the dateaware application
var rootCmd = &cobra.Command{
	Use:   "dateaware",
	Short: "Date and holiday awareness for chat bots",
	Long: `dateaware gives a chat bot knowledge of yesterday, today and tomorrow:
dates, weekdays and mainland China public holidays.

It can run as:
  - An HTTP service hosting the /date command, tools and prompt hook
  - An MCP (Model Context Protocol) server for AI assistants
  - A one-shot CLI printing the current date block`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present
		_ = godotenv.Load()
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dateaware version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newDateCmd())
	rootCmd.AddCommand(newHolidaysCmd())
}

// setupApp loads configuration and initializes the application components
func setupApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log.Init(cfg.Log.Level)

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	return app, nil
}
