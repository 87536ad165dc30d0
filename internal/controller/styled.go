package controller

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/scoregate/internal/model"
)

const scoreBarWidth = 40

// theme decorates text written by SimpleUI.
type theme interface {
	good(text string) string
	bad(text string) string
	muted(text string) string
	score(score m.Score) string
	bar(score m.Score) string
}

type plainTheme struct{}

func (plainTheme) good(text string) string    { return text }
func (plainTheme) bad(text string) string     { return text }
func (plainTheme) muted(text string) string   { return text }
func (plainTheme) score(score m.Score) string { return score.Percent() }
func (plainTheme) bar(m.Score) string         { return "" }

type styledTheme struct {
	goodStyle  lipgloss.Style
	badStyle   lipgloss.Style
	mutedStyle lipgloss.Style
	scoreStyle lipgloss.Style
	progress   progress.Model
}

func newStyledTheme() styledTheme {
	return styledTheme{
		goodStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		badStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		mutedStyle: lipgloss.NewStyle().Faint(true),
		scoreStyle: lipgloss.NewStyle().Bold(true),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(scoreBarWidth),
		),
	}
}

func (t styledTheme) good(text string) string  { return t.goodStyle.Render(text) }
func (t styledTheme) bad(text string) string   { return t.badStyle.Render(text) }
func (t styledTheme) muted(text string) string { return t.mutedStyle.Render(text) }

func (t styledTheme) score(score m.Score) string {
	return t.scoreStyle.Render(score.Percent())
}

// bar renders a static progress bar; no bubbletea program is started.
func (t styledTheme) bar(score m.Score) string {
	return t.progress.ViewAs(score.Ratio())
}

// NewStyledUI creates a SimpleUI that colours verdicts and draws a score bar.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, theme: newStyledTheme()}
}
