package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/themekit/internal/palette"
	"github.com/sadopc/themekit/internal/theme"
)

// Styles holds Lip Gloss styles derived from a resolved theme's system colors.
// Keys missing from the theme fall back to the terminal's own colors.
type Styles struct {
	Title  lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Error  lipgloss.Style

	// Diff markers
	Added   lipgloss.Style
	Removed lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t *theme.Theme) Styles {
	text := sysColor(t, palette.WindowText)
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(text).Bold(true),
		Normal: lipgloss.NewStyle().Foreground(text),
		Muted:  lipgloss.NewStyle().Foreground(sysColor(t, palette.GrayText)),
		Key:    lipgloss.NewStyle().Foreground(sysColor(t, palette.HotTrack)),
		Value:  lipgloss.NewStyle().Foreground(text),
		Error:  lipgloss.NewStyle().Foreground(appColor(t, palette.DiffRemoved)).Bold(true),

		Added:   lipgloss.NewStyle().Foreground(appColor(t, palette.DiffAdded)).Bold(true),
		Removed: lipgloss.NewStyle().Foreground(appColor(t, palette.DiffRemoved)).Bold(true),
	}
}

func sysColor(t *theme.Theme, c palette.SysColor) lipgloss.TerminalColor {
	if t == nil {
		return lipgloss.NoColor{}
	}
	if v, ok := t.SysColor(c); ok {
		return v.Lipgloss()
	}
	return lipgloss.NoColor{}
}

func appColor(t *theme.Theme, c palette.AppColor) lipgloss.TerminalColor {
	if t == nil {
		return lipgloss.NoColor{}
	}
	if v, ok := t.AppColor(c); ok {
		return v.Lipgloss()
	}
	return lipgloss.NoColor{}
}
