package wire

import (
	"io"

	"github.com/google/wire"

	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/llm"
	"github.com/sevigo/code-critic/internal/logger"
	"github.com/sevigo/code-critic/internal/review"
	"github.com/sevigo/code-critic/internal/server"
)

// AppSet provides everything InitializeApp needs.
var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	review.NewService,
	llm.NewGenerator,
	llm.NewPromptManager,
	config.LoadConfig,
	logger.NewLogger,
	provideLoggerConfig,
	provideLogWriter,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(loggerConfig logger.Config) (io.Writer, func(), error) {
	return logger.OpenOutput(loggerConfig)
}
