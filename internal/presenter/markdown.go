package presenter

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

const (
	minRenderWidth     = 40
	defaultRenderWidth = 80

	colorBody     = "250"
	colorCheck    = "42"
	colorCodeText = "254"
	colorCodeBg   = "235"
)

// ReviewStyle returns the glamour style used for reviews: level-2 headings
// render like level-3 headings, body text and lists are muted, list items get
// a green check, and code blocks sit on a dark background.
func ReviewStyle(light bool) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if light {
		cfg = styles.LightStyleConfig
	}

	cfg.H2 = cfg.H3
	cfg.H2.Bold = boolPtr(true)

	cfg.Paragraph.Color = stringPtr(colorBody)

	cfg.List.Color = stringPtr(colorBody)
	cfg.List.LevelIndent = 2

	cfg.Item = ansi.StylePrimitive{
		BlockPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colorCheck)).Render("✔") + " ",
		Color:       stringPtr(colorBody),
	}

	cfg.CodeBlock.Color = stringPtr(colorCodeText)
	cfg.CodeBlock.BackgroundColor = stringPtr(colorCodeBg)
	cfg.CodeBlock.Margin = uintPtr(1)

	return cfg
}

// MarkdownRenderer renders review Markdown, GitHub-flavored, to ANSI text.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	light    bool
}

// NewMarkdownRenderer creates a renderer wrapping at width columns.
func NewMarkdownRenderer(width int, light bool) *MarkdownRenderer {
	r := &MarkdownRenderer{light: light}
	r.SetWidth(width)
	return r
}

// SetWidth rebuilds the renderer for a new terminal width.
func (r *MarkdownRenderer) SetWidth(width int) {
	if width < minRenderWidth {
		width = defaultRenderWidth
	}
	if width == r.width && r.renderer != nil {
		return
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(ReviewStyle(r.light)),
		glamour.WithWordWrap(width-4),
		glamour.WithEmoji(),
	)
	if err != nil {
		return
	}
	r.renderer = tr
	r.width = width
}

// Render converts md to styled output, returning md unchanged if rendering fails.
func (r *MarkdownRenderer) Render(md string) string {
	if r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }
