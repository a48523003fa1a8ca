package main

import (
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/presenter"
	"github.com/sevigo/code-critic/mocks"
)

func TestModel_EmptyEditorDoesNotFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := presenter.New(mocks.NewMockReviewFetcher(ctrl), slog.Default())
	m := initialModel(ThemeCyan, p, "", "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, cmd)
	assert.Equal(t, presenter.MsgNoCode, p.State().Review)
}

// runFetch executes the batch returned by a trigger and returns the review
// result it produced.
func runFetch(t *testing.T, cmd tea.Cmd) reviewFetchedMsg {
	t.Helper()
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "trigger should batch the spinner and the fetch")
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(reviewFetchedMsg); ok {
			return msg
		}
	}
	t.Fatal("no review fetch in batch")
	return reviewFetchedMsg{}
}

func TestModel_ReviewLifecycle(t *testing.T) {
	testCases := []struct {
		name       string
		review     string
		err        error
		wantReview string
		wantStatus string
	}{
		{
			name:       "Review rendered",
			review:     "## Code Review Report",
			wantReview: "## Code Review Report",
			wantStatus: statusReady,
		},
		{
			name:       "Fetch failure",
			err:        errors.New("error 500: boom"),
			wantReview: presenter.MsgFailed,
			wantStatus: statusFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockReviewFetcher(ctrl)
			fetcher.EXPECT().
				FetchReview(gomock.Any(), &core.ReviewRequest{Code: "let x = 1", Language: "javascript"}).
				Return(tc.review, tc.err).
				Times(1)

			p := presenter.New(fetcher, slog.Default())
			m := initialModel(ThemeCyan, p, "let x = 1", "javascript")
			m.resize(100, 40)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
			require.NotNil(t, cmd)
			assert.True(t, p.State().Loading)
			assert.Contains(t, m.View(), presenter.MsgLoading)

			m.Update(runFetch(t, cmd))

			assert.False(t, p.State().Loading)
			assert.Equal(t, tc.wantReview, p.State().Review)
			view := m.View()
			assert.NotContains(t, view, presenter.MsgLoading)
			assert.Contains(t, view, tc.wantStatus)
		})
	}
}

func TestModel_TabSwitchesFocus(t *testing.T) {
	m := initialModel(ThemeCyan, presenter.New(nil, slog.Default()), "", "")
	require.Equal(t, focusEditor, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusReview, m.focus)
	assert.False(t, m.editor.Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusEditor, m.focus)
}
