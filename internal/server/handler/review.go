// Package handler provides HTTP handlers for the code review service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-critic/internal/core"
)

const (
	MsgCodeRequired = "Code is required"
	MsgAnalyzeFail  = "Failed to analyze code"

	maxRequestBytes = 1 << 20
)

// ReviewHandler serves POST /api/review.
type ReviewHandler struct {
	reviewer core.Reviewer
	timeout  time.Duration
	logger   *slog.Logger
}

// NewReviewHandler creates a new review handler backed by reviewer. Each
// review is bounded by timeout; zero means no deadline beyond the request's.
func NewReviewHandler(reviewer core.Reviewer, timeout time.Duration, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		timeout:  timeout,
		logger:   logger,
	}
}

// Handle decodes the review request, runs the review and writes the JSON
// response. A body that decodes without code yields 400. Anything else that
// goes wrong, including an unreadable or oversized body, yields 500 with a
// generic message.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	var req core.ReviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		h.logger.Error("failed to decode review request", "error", err, "request_id", reqID)
		writeJSON(w, http.StatusInternalServerError, core.ReviewResponse{Error: MsgAnalyzeFail})
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Debug("rejecting review request without code", "request_id", reqID)
		writeJSON(w, http.StatusBadRequest, core.ReviewResponse{Error: MsgCodeRequired})
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	review, err := h.reviewer.Review(ctx, &req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, core.ReviewResponse{Review: review})
	case errors.Is(err, core.ErrCodeRequired):
		writeJSON(w, http.StatusBadRequest, core.ReviewResponse{Error: MsgCodeRequired})
	default:
		h.logger.Error("failed to analyze code", "error", err, "request_id", reqID)
		writeJSON(w, http.StatusInternalServerError, core.ReviewResponse{Error: MsgAnalyzeFail})
	}
}

func writeJSON(w http.ResponseWriter, status int, body core.ReviewResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
