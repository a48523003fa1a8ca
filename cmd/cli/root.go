package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "code-critic",
	Short: "code-critic is the command-line interface for the code review service.",
	Long:  `A CLI for sending source code to a running code review server and printing the Markdown review it returns.`,

	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "Base URL of the review server (default $REVIEW_SERVER_URL or http://localhost:8080)")

	if err := viper.BindPFlag("REVIEW_SERVER_URL", rootCmd.PersistentFlags().Lookup("server")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetDefault("REVIEW_SERVER_URL", "http://localhost:8080")
	viper.AutomaticEnv()
}

func resolvedServerURL() string {
	return strings.TrimRight(viper.GetString("REVIEW_SERVER_URL"), "/")
}
