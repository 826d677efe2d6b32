package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames command output with the current theme's border.
func Panel(body string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(body)
}

func OK(msg string) string   { return Current().Success.Render(Current().SymOK + " " + msg) }
func Fail(msg string) string { return Current().Error.Render(Current().SymFail + " " + msg) }

// Welcome is printed once when a session starts.
func Welcome(date string) string {
	t := Current()
	lines := []string{
		t.Muted.Render("Current session date: " + date),
		t.Title.Render("Welcome to SITUS!"),
		"What would you like to do first?",
		t.Muted.Render(`To see what I can do, use "help"`),
	}
	return Panel(strings.Join(lines, "\n"))
}

func Goodbye() string {
	return Panel(Current().Accent.Render("Okay, see you soon! Goodbye."))
}
