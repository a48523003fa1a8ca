package core

import (
	"context"
	"errors"
	"fmt"
)

// DefaultLanguage is the code fence language used when a request does not name one.
const DefaultLanguage = "javascript"

// ErrCodeRequired is returned when a review request carries no code.
var ErrCodeRequired = errors.New("code is required")

// ReviewRequest is the body accepted by the review endpoint.
type ReviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// Validate reports ErrCodeRequired when the request has no code.
func (r *ReviewRequest) Validate() error {
	if r == nil || r.Code == "" {
		return ErrCodeRequired
	}
	return nil
}

// ReviewResponse is the body returned by the review endpoint. Exactly one of
// Review or Error is set.
type ReviewResponse struct {
	Review string `json:"review,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ReviewPromptData is a type-safe struct for rendering the code review prompt.
type ReviewPromptData struct {
	Language string
	Code     string
}

// Generator turns a single prompt into a single text completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Reviewer produces a Markdown review for a snippet of source code.
type Reviewer interface {
	Review(ctx context.Context, req *ReviewRequest) (string, error)
}

// UpstreamError wraps any failure while calling the generation service or
// reading its response.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
