package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/llm"
	"github.com/sevigo/code-critic/internal/review"
)

var promptLanguage string

var promptCmd = &cobra.Command{
	Use:   "prompt [file|-]",
	Short: "Prints the prompt the server would send for a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		code, detected, err := readCode(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		req := &core.ReviewRequest{Code: code, Language: promptLanguage}
		if req.Language == "" {
			req.Language = detected
		}
		if err := req.Validate(); err != nil {
			return err
		}

		pm, err := llm.NewPromptManager()
		if err != nil {
			return fmt.Errorf("failed to load prompts: %w", err)
		}
		prompt, err := review.BuildPrompt(pm, cfg.AI.GeneratorModel, req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return err
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	promptCmd.Flags().StringVarP(&promptLanguage, "language", "l", "", "Code fence language (detected from the file name if empty)")
	rootCmd.AddCommand(promptCmd)
}
