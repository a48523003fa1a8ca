package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-critic/internal/client"
)

var statusTimeout time.Duration

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Checks that the review server is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), statusTimeout)
		defer cancel()

		url := resolvedServerURL()
		out := cmd.OutOrStdout()
		if err := client.New(url).Health(ctx); err != nil {
			color.New(color.FgRed).Fprintf(out, "✗ %s is not healthy\n", url)
			return fmt.Errorf("health check failed: %w", err)
		}
		color.New(color.FgGreen).Fprintf(out, "✓ %s is up\n", url)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 5*time.Second, "How long to wait for the server")
	rootCmd.AddCommand(statusCmd)
}
