package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovoronin/bizcli/internal/config"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.ClearToken(); err != nil {
				return fmt.Errorf("clearing token: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
