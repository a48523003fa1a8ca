package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-critic/internal/client"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/presenter"
)

const (
	outputMarkdown = "markdown"
	outputRaw      = "raw"
	outputJSON     = "json"
	outputYAML     = "yaml"
)

var errReviewFailed = errors.New("review failed")

var (
	reviewLanguage string
	reviewOutput   string
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]",
	Short: "Request a code review for a file or stdin",
	Long: `Send source code to the review server and print the Markdown review.

Examples:
  code-critic review main.go
  cat script.js | code-critic review
  code-critic review --output json handler.ts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&reviewLanguage, "language", "l", "", "Code fence language (detected from the file name if empty)")
	reviewCmd.Flags().StringVarP(&reviewOutput, "output", "o", outputMarkdown, "Output format: markdown, raw, json or yaml")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	switch reviewOutput {
	case outputMarkdown, outputRaw, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unsupported output format %q", reviewOutput)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	code, detected, err := readCode(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	language := reviewLanguage
	if language == "" {
		language = detected
	}

	url := resolvedServerURL()
	out := cmd.OutOrStdout()
	interactive := reviewOutput == outputMarkdown && isTerminal(out)

	if interactive {
		titleColor.Fprintln(out, "🔍 Code Review")
		dimColor.Fprintf(out, "   Server: %s\n", url)
		dimColor.Fprintf(out, "   %s\n\n", presenter.MsgLoading)
	}

	p := presenter.New(client.New(url), slog.Default())
	state := p.Trigger(cmd.Context(), code, language)

	if err := printReview(out, state, interactive); err != nil {
		return err
	}
	if reviewFailed(state) {
		return errReviewFailed
	}
	return nil
}

// reviewFailed reports whether state carries one of the failure messages
// rather than a review.
func reviewFailed(state presenter.State) bool {
	return state.Review == presenter.MsgNoCode || state.Review == presenter.MsgFailed
}

// response maps state to the API response shape so scripts can tell a
// failure from a review.
func response(state presenter.State) core.ReviewResponse {
	if reviewFailed(state) {
		return core.ReviewResponse{Error: state.Review}
	}
	return core.ReviewResponse{Review: state.Review}
}

func printReview(out io.Writer, state presenter.State, styled bool) error {
	switch reviewOutput {
	case outputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response(state))
	case outputYAML:
		resp := response(state)
		doc := map[string]string{}
		if resp.Error != "" {
			doc["error"] = resp.Error
		} else {
			doc["review"] = resp.Review
		}
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(doc)
	case outputRaw:
		_, err := fmt.Fprintln(out, state.Review)
		return err
	default:
		text := state.Review
		if styled {
			text = presenter.NewMarkdownRenderer(terminalWidth(out), false).Render(text)
		}
		_, err := fmt.Fprintln(out, text)
		return err
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
