// Package presenter holds the review display state shared by the terminal
// and command-line front ends, and renders reviews as styled Markdown.
package presenter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sevigo/code-critic/internal/core"
)

// User-facing strings.
const (
	MsgNoCode      = "❌ No code provided for review."
	MsgNoReview    = "⚠️ No review available."
	MsgFailed      = "❌ Failed to fetch review."
	MsgPlaceholder = "💡 Press ctrl+r to analyze your code."
	MsgLoading     = "Analyzing code..."
)

// ReviewFetcher issues the review request.
type ReviewFetcher interface {
	FetchReview(ctx context.Context, req *core.ReviewRequest) (string, error)
}

// State is what the front end renders.
type State struct {
	Review  string
	Loading bool
}

// DisplayText is the Markdown to show when not loading.
func (s State) DisplayText() string {
	if s.Review == "" {
		return MsgPlaceholder
	}
	return s.Review
}

// Ticket identifies one triggered review request.
type Ticket struct {
	ID      uint64
	Request core.ReviewRequest
}

// Presenter moves through Idle -> Loading -> Success|Failure -> Idle. Each
// trigger gets a new ticket; completions for any ticket but the latest are
// discarded so overlapping requests never overwrite a newer result.
type Presenter struct {
	fetcher ReviewFetcher
	logger  *slog.Logger

	mu     sync.Mutex
	state  State
	latest uint64
}

// New creates a Presenter that fetches reviews through fetcher.
func New(fetcher ReviewFetcher, logger *slog.Logger) *Presenter {
	return &Presenter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// State returns a snapshot of the current state.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Begin starts a review of code. With empty code it shows MsgNoCode and
// reports false: no request must be issued. Otherwise the state switches to
// loading with the previous review cleared.
func (p *Presenter) Begin(code, language string) (Ticket, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest++
	if code == "" {
		p.state = State{Review: MsgNoCode}
		return Ticket{}, false
	}

	p.state = State{Loading: true}
	return Ticket{
		ID:      p.latest,
		Request: core.ReviewRequest{Code: code, Language: language},
	}, true
}

// Fetch performs the network call for t without touching the state.
func (p *Presenter) Fetch(ctx context.Context, t Ticket) (string, error) {
	return p.fetcher.FetchReview(ctx, &t.Request)
}

// Complete records the outcome of t. It returns false when t is stale and
// the outcome was dropped.
func (p *Presenter) Complete(t Ticket, review string, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t.ID != p.latest {
		p.logger.Debug("discarding stale review response", "ticket", t.ID, "latest", p.latest)
		return false
	}

	switch {
	case err != nil:
		p.logger.Error("fetch error", "error", err)
		p.state = State{Review: MsgFailed}
	case review == "":
		p.state = State{Review: MsgNoReview}
	default:
		p.state = State{Review: review}
	}
	return true
}

// Trigger runs a full cycle synchronously and returns the resulting state.
func (p *Presenter) Trigger(ctx context.Context, code, language string) State {
	t, ok := p.Begin(code, language)
	if !ok {
		return p.State()
	}
	review, err := p.Fetch(ctx, t)
	p.Complete(t, review, err)
	return p.State()
}
