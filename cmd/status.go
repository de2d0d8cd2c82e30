package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovoronin/bizcli/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server address, account, and configuration",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println("bizcli Status")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Println()

	fmt.Printf("Server: %s\n", serverURL(cmd, cfg))

	switch {
	case cfg.Token == "":
		fmt.Println("Account: not logged in")
	case cfg.Username != "":
		fmt.Printf("Account: %s\n", cfg.Username)
	default:
		fmt.Println("Account: logged in")
	}

	if cfg.Debug {
		fmt.Println("Debug logging: enabled")
	}

	fmt.Println()
	fmt.Printf("Config File: %s\n", config.GlobalConfigPath())

	return nil
}
