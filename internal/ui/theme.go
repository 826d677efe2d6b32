package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette and border used by Panel, OK and Fail. SetTheme
// swaps it for the whole process.
type Theme struct {
	Title, Muted, Accent, Success, Error lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor
	SymOK, SymFail, Prompt               string
}

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var current = themeFor("classic")

func SetTheme(name string) { current = themeFor(name) }

func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔",
			SymFail:     "✖",
			Prompt:      "❯ ",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title:       plain,
			Muted:       plain,
			Accent:      plain,
			Success:     plain,
			Error:       plain,
			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok:",
			SymFail:     "error:",
			Prompt:      "> ",
		}
	default: // classic
		return Theme{
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			SymOK:       "✔",
			SymFail:     "✖",
			Prompt:      "> ",
		}
	}
}
