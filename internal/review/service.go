// Package review turns a code snippet into a Markdown review by way of a
// single call to the configured generation service.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/llm"
)

type service struct {
	cfg       *config.Config
	promptMgr *llm.PromptManager
	generator core.Generator
	logger    *slog.Logger
}

// NewService creates the core.Reviewer backed by generator. It holds no
// mutable state and is safe for concurrent use.
func NewService(cfg *config.Config, promptMgr *llm.PromptManager, generator core.Generator, logger *slog.Logger) core.Reviewer {
	return &service{
		cfg:       cfg,
		promptMgr: promptMgr,
		generator: generator,
		logger:    logger,
	}
}

// Review validates req, renders the review prompt and calls the generator
// exactly once. The generated text is returned unmodified. Validation
// failures return core.ErrCodeRequired; everything after that is reported as
// a *core.UpstreamError.
func (s *service) Review(ctx context.Context, req *core.ReviewRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt, err := BuildPrompt(s.promptMgr, s.cfg.AI.GeneratorModel, req)
	if err != nil {
		return "", &core.UpstreamError{Op: "render prompt", Err: err}
	}

	s.logger.Info("requesting code review",
		"model", s.cfg.AI.GeneratorModel,
		"language", fenceLanguage(req),
		"code_chars", len(req.Code),
	)

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &core.UpstreamError{Op: "generate", Err: err}
	}

	s.logger.Info("code review generated",
		"chars", len(text),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return text, nil
}

// BuildPrompt renders the prompt sent for req to model without calling any
// generation service.
func BuildPrompt(pm *llm.PromptManager, model string, req *core.ReviewRequest) (string, error) {
	data := core.ReviewPromptData{
		Language: fenceLanguage(req),
		Code:     req.Code,
	}
	prompt, err := pm.Render(llm.CodeReviewPrompt, llm.ModelProvider(model), data)
	if err != nil {
		return "", fmt.Errorf("could not render code review prompt: %w", err)
	}
	return prompt, nil
}

var languagePattern = regexp.MustCompile(`^[A-Za-z0-9+#._-]{1,32}$`)

// fenceLanguage falls back to the default for anything that could break out
// of the opening code fence.
func fenceLanguage(req *core.ReviewRequest) string {
	if !languagePattern.MatchString(req.Language) {
		return core.DefaultLanguage
	}
	return req.Language
}
