package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sadopc/themekit/internal/palette"
	"github.com/sadopc/themekit/internal/theme"
)

// Entry is one assigned color of a theme.
type Entry struct {
	Key   palette.Key
	Color palette.Color
}

// Entries lists the assigned colors of t, system colors first, each group in
// registry order.
func Entries(t *theme.Theme) []Entry {
	var out []Entry
	for _, c := range palette.SysColors() {
		if v, ok := t.SysColor(c); ok {
			out = append(out, Entry{Key: palette.Key{Namespace: palette.SysNamespace, Sys: c}, Color: v})
		}
	}
	for _, c := range palette.AppColors() {
		if v, ok := t.AppColor(c); ok {
			out = append(out, Entry{Key: palette.Key{Namespace: palette.AppNamespace, App: c}, Color: v})
		}
	}
	return out
}

// Swatch renders a short block filled with c and labelled with its hex value
// in a legible foreground.
func Swatch(c palette.Color) string {
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(contrast(c)).
		Padding(0, 1).
		Render(c.String())
}

// Table renders every assigned color of t as one swatch line.
func Table(t *theme.Theme, s Styles) string {
	entries := Entries(t)
	if len(entries) == 0 {
		return s.Muted.Render("(no colors assigned)")
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key.String()))
	}

	var b strings.Builder
	fmt.Fprintln(&b, s.Title.Render(t.ID().String()))
	for _, e := range entries {
		name := s.Key.Render(fmt.Sprintf("%-*s", width, e.Key.String()))
		fmt.Fprintf(&b, "  %s  %s\n", name, Swatch(e.Color))
	}
	return b.String()
}

// contrast picks black or white text for a background of c.
func contrast(c palette.Color) lipgloss.Color {
	cf := colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
	if l, _, _ := cf.Lab(); l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Diff renders changes one per line in the style of a unified diff.
func Diff(changes []theme.Change, s Styles) string {
	if len(changes) == 0 {
		return s.Muted.Render("(no differences)") + "\n"
	}

	var b strings.Builder
	for _, c := range changes {
		name := c.Key.String()
		switch c.Type {
		case theme.Added:
			fmt.Fprintf(&b, "%s %s  %s\n", s.Added.Render("+"), s.Key.Render(name), Swatch(c.New))
		case theme.Removed:
			fmt.Fprintf(&b, "%s %s  %s\n", s.Removed.Render("-"), s.Key.Render(name), Swatch(c.Old))
		case theme.Changed:
			fmt.Fprintf(&b, "%s %s  %s -> %s\n", s.Muted.Render("~"), s.Key.Render(name), Swatch(c.Old), Swatch(c.New))
		}
	}
	return b.String()
}
