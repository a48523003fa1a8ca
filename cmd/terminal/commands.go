package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/code-critic/internal/presenter"
)

// fetchReviewCmd performs the request for ticket off the update loop.
func fetchReviewCmd(p *presenter.Presenter, ticket presenter.Ticket) tea.Cmd {
	return func() tea.Msg {
		review, err := p.Fetch(context.Background(), ticket)
		return reviewFetchedMsg{ticket: ticket, review: review, err: err}
	}
}
