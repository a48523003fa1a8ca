package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/code-critic/internal/client"
	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/llm"
	"github.com/sevigo/code-critic/internal/logger"
	"github.com/sevigo/code-critic/internal/presenter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	themeFlag := flag.String("theme", "", "UI theme (cyan, matrix, amber, cyberpunk, ice, dracula, fire)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	serverURL := flag.String("server", cfg.Client.ServerURL, "Base URL of the review server")
	language := flag.String("language", "", "Code fence language sent with the code (detected from the file name if empty)")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		return nil
	}

	selectedTheme := *themeFlag
	if selectedTheme == "" {
		selectedTheme = cfg.Client.Theme
	}
	theme := ThemeName(selectedTheme)
	if !IsTheme(theme) {
		return fmt.Errorf("invalid theme '%s', use --list-themes to see available options", theme)
	}

	var code string
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		code = string(data)
		if *language == "" {
			*language = llm.LanguageForFile(path)
		}
	}

	// The UI owns the terminal, so logs always go to the log file.
	logCfg := cfg.Logging
	logCfg.Output = "file"
	logWriter, closeLog, err := logger.OpenOutput(logCfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.NewLogger(logCfg, logWriter)
	slog.SetDefault(log)

	log.Info("code review terminal starting up", "server", *serverURL)

	p := presenter.New(client.New(*serverURL), log)
	program := tea.NewProgram(initialModel(theme, p, code, *language), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	log.Info("code review terminal shut down successfully")
	return nil
}
