package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/mocks"
)

func TestReviewHandler_Handle(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		mockSetup  func(r *mocks.MockReviewer)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Empty code",
			body:       `{"code": ""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Code is required"}`,
		},
		{
			name:       "Missing code",
			body:       `{"language": "go"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Code is required"}`,
		},
		{
			name:       "Empty body",
			body:       ``,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
		{
			name:       "Truncated JSON",
			body:       `{"code": `,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
		{
			name:       "Not JSON",
			body:       `not json`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
		{
			name:       "Code of the wrong type",
			body:       `{"code": 42}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
		{
			name: "Success",
			body: `{"code": "let x = 1"}`,
			mockSetup: func(r *mocks.MockReviewer) {
				r.EXPECT().
					Review(gomock.Any(), &core.ReviewRequest{Code: "let x = 1"}).
					Return("## Review\n...", nil).
					Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"review":"## Review\n..."}`,
		},
		{
			name: "Upstream failure does not leak details",
			body: `{"code": "let x = 1"}`,
			mockSetup: func(r *mocks.MockReviewer) {
				r.EXPECT().
					Review(gomock.Any(), gomock.Any()).
					Return("", &core.UpstreamError{Op: "generate", Err: errors.New("API key invalid")}).
					Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
		{
			name: "Cancelled request",
			body: `{"code": "let x = 1"}`,
			mockSetup: func(r *mocks.MockReviewer) {
				r.EXPECT().Review(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to analyze code"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reviewer := mocks.NewMockReviewer(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(reviewer)
			}

			h := NewReviewHandler(reviewer, time.Minute, slog.Default())
			req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "API key")
		})
	}
}

func TestReviewHandler_OversizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)

	body := `{"code": "` + strings.Repeat("a", maxRequestBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewReviewHandler(reviewer, time.Minute, slog.Default()).Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to analyze code"}`, rec.Body.String())
}

func TestReviewHandler_Deadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)
	reviewer.EXPECT().
		Review(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *core.ReviewRequest) (string, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return "", &core.UpstreamError{Op: "generate", Err: ctx.Err()}
		})

	req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(`{"code":"slow"}`))
	rec := httptest.NewRecorder()

	NewReviewHandler(reviewer, 20*time.Millisecond, slog.Default()).Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to analyze code"}`, rec.Body.String())
}
