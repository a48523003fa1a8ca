package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/code-critic/internal/presenter"
)

const (
	title        = "🔍 Code Review"
	statusReady  = "✔ review ready"
	statusFailed = "✘ no review"
)

type focus int

const (
	focusEditor focus = iota
	focusReview
)

type model struct {
	styles    styles
	presenter *presenter.Presenter
	markdown  *presenter.MarkdownRenderer
	language  string

	// UI Components
	editor   textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	focus    focus

	width  int
	height int
}

func initialModel(theme ThemeName, p *presenter.Presenter, code, language string) *model {
	st := GetTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Paste or type the code to review..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetValue(code)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.spinner

	m := &model{
		styles:    st,
		presenter: p,
		markdown:  presenter.NewMarkdownRenderer(80, !lipgloss.HasDarkBackground()),
		language:  language,
		editor:    ta,
		viewport:  viewport.New(80, 10),
		spinner:   sp,
	}
	m.refreshReview()
	return m
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m, m.triggerReview()
		case tea.KeyTab:
			m.toggleFocus()
			return m, nil
		}

	case reviewFetchedMsg:
		m.presenter.Complete(msg.ticket, msg.review, msg.err)
		m.refreshReview()
		return m, nil

	case spinner.TickMsg:
		if !m.presenter.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// triggerReview starts a review of the editor contents. Empty code only
// updates the display.
func (m *model) triggerReview() tea.Cmd {
	ticket, ok := m.presenter.Begin(m.editor.Value(), m.language)
	m.refreshReview()
	if !ok {
		return nil
	}
	return tea.Batch(m.spinner.Tick, fetchReviewCmd(m.presenter, ticket))
}

func (m *model) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusReview
		m.editor.Blur()
		return
	}
	m.focus = focusEditor
	m.editor.Focus()
}

func (m *model) refreshReview() {
	m.viewport.SetContent(m.markdown.Render(m.presenter.State().DisplayText()))
	m.viewport.GotoTop()
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height

	inner := width - 6
	editorHeight := max(height/3, 5)
	reviewHeight := max(height-editorHeight-10, 5)

	m.editor.SetWidth(inner)
	m.editor.SetHeight(editorHeight)
	m.viewport.Width = inner
	m.viewport.Height = reviewHeight
	m.markdown.SetWidth(inner)
	m.refreshReview()
}

// statusLine summarizes the last outcome ahead of the key help.
func (m *model) statusLine() string {
	state := m.presenter.State()
	switch {
	case state.Loading:
		return ""
	case state.Review == presenter.MsgFailed, state.Review == presenter.MsgNoCode, state.Review == presenter.MsgNoReview:
		return m.styles.failure.Render(statusFailed) + "  "
	case state.Review != "":
		return m.styles.success.Render(statusReady) + "  "
	}
	return ""
}

func (m *model) View() string {
	editorStyle, reviewStyle := m.styles.focused, m.styles.review
	if m.focus == focusReview {
		editorStyle, reviewStyle = m.styles.editor, m.styles.focused
	}

	var body string
	if m.presenter.State().Loading {
		loading := m.spinner.View() + " " + m.styles.inactive.Render(presenter.MsgLoading)
		body = lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, loading)
	} else {
		body = m.viewport.View()
	}

	help := m.statusLine() + m.styles.prompt.Render("ctrl+r") + m.styles.inactive.Render(" get review  ") +
		m.styles.prompt.Render("tab") + m.styles.inactive.Render(" switch pane  ") +
		m.styles.prompt.Render("esc") + m.styles.inactive.Render(" quit")

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.header.Render(title),
			editorStyle.Render(m.editor.View()),
			reviewStyle.Render(body),
			m.styles.footer.Render(help),
		),
	)
}
