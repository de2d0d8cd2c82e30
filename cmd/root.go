// Package cmd provides the CLI commands for bizcli.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/config"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/pubsub"
	"github.com/ovoronin/bizcli/internal/tui"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bizcli",
		Short: "Terminal client for the business assistant",
		Long: `bizcli is a terminal chat client for the business assistant.

It lets you ask questions on finances, marketing, legal matters and other
business topics, keep multiple chat sessions, and attach documents the
assistant can draw on.`,
		RunE: runTUI,
	}

	cmd.PersistentFlags().String("server", "", "Server API address (overrides config)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newLogoutCmd())

	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Enable debug logging if requested by flag or config.
	debugMode, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("getting debug flag: %w", err)
	}
	if debugMode || cfg.Debug {
		logPath := filepath.Join(xdg.DataHome, "bizcli", "debug.log")
		if debugErr := debug.Enable(logPath); debugErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to enable debug logging: %v\n", debugErr)
		} else {
			defer debug.Disable()
			fmt.Fprintf(os.Stderr, "Debug: %s\n", logPath)
		}
	}

	client := api.New(serverURL(cmd, cfg))
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	hub := pubsub.NewHub()
	defer hub.Shutdown()

	return tui.Run(cfg, client, hub)
}

// serverURL resolves the server address: flag wins over config, config over
// the built-in default.
func serverURL(cmd *cobra.Command, cfg *config.Config) string {
	if flagURL, err := cmd.Flags().GetString("server"); err == nil && flagURL != "" {
		return flagURL
	}
	if cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return config.DefaultServerURL
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
