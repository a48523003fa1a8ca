package main

import "github.com/sevigo/code-critic/internal/presenter"

// Carries the outcome of one review request back to the update loop.
type reviewFetchedMsg struct {
	ticket presenter.Ticket
	review string
	err    error
}
