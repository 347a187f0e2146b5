package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Service status colors, shared by both themes.
var (
	ColorRunning = lipgloss.Color("#2EC4B6")
	ColorStopped = lipgloss.Color("#E63946")
)

// Theme is one of the desktop color schemes. The palettes are the classic
// CoolWarm / DarkMode pairs of the FastOS desktop.
type Theme struct {
	Name       string
	Bg         lipgloss.Color
	Fg         lipgloss.Color
	ButtonBg   lipgloss.Color
	ButtonFg   lipgloss.Color
	LogBg      lipgloss.Color
	LogFg      lipgloss.Color
	StatusFg   lipgloss.Color
	LabelFg    lipgloss.Color
	BootTimeFg lipgloss.Color
}

var CoolWarm = Theme{
	Name:       "CoolWarm",
	Bg:         lipgloss.Color("#2B3A42"),
	Fg:         lipgloss.Color("#F4D35E"),
	ButtonBg:   lipgloss.Color("#D7263D"),
	ButtonFg:   lipgloss.Color("#FFFFFF"),
	LogBg:      lipgloss.Color("#1B263B"),
	LogFg:      lipgloss.Color("#F4D35E"),
	StatusFg:   lipgloss.Color("#E63946"),
	LabelFg:    lipgloss.Color("#E63946"),
	BootTimeFg: lipgloss.Color("#F4D35E"),
}

var DarkMode = Theme{
	Name:       "DarkMode",
	Bg:         lipgloss.Color("#1E1E1E"),
	Fg:         lipgloss.Color("#D1D1D1"),
	ButtonBg:   lipgloss.Color("#3C8DAD"),
	ButtonFg:   lipgloss.Color("#FFFFFF"),
	LogBg:      lipgloss.Color("#333333"),
	LogFg:      lipgloss.Color("#D1D1D1"),
	StatusFg:   lipgloss.Color("#E74C3C"),
	LabelFg:    lipgloss.Color("#E74C3C"),
	BootTimeFg: lipgloss.Color("#D1D1D1"),
}

// ThemeByName resolves a configured theme name, defaulting to CoolWarm.
func ThemeByName(name string) Theme {
	if name == DarkMode.Name {
		return DarkMode
	}
	return CoolWarm
}

// Toggle flips between the two desktop themes.
func (t Theme) Toggle() Theme {
	if t.Name == CoolWarm.Name {
		return DarkMode
	}
	return CoolWarm
}

// Styles provides consistent styling for the desktop shell, rebuilt whenever
// the theme changes.
type Styles struct {
	Title         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	LogPanel      lipgloss.Style
	InputLabel    lipgloss.Style
	StatusLabel   lipgloss.Style
	BootTime      lipgloss.Style
	ServiceName   lipgloss.Style
	ServiceUp     lipgloss.Style
	ServiceDown   lipgloss.Style
	Footer        lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Fg).
			Background(t.Bg).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(t.ButtonBg).
			Foreground(t.ButtonFg).
			Padding(0, 2).
			MarginRight(1),

		ButtonFocused: lipgloss.NewStyle().
			Background(t.ButtonBg).
			Foreground(t.ButtonFg).
			Bold(true).
			Underline(true).
			Padding(0, 2).
			MarginRight(1),

		LogPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Fg).
			Background(t.LogBg).
			Foreground(t.LogFg).
			Padding(0, 1),

		InputLabel: lipgloss.NewStyle().
			Foreground(t.Fg).
			Bold(true),

		StatusLabel: lipgloss.NewStyle().
			Foreground(t.StatusFg).
			Bold(true),

		BootTime: lipgloss.NewStyle().
			Foreground(t.BootTimeFg).
			Bold(true),

		ServiceName: lipgloss.NewStyle().
			Foreground(t.LabelFg),

		ServiceUp: lipgloss.NewStyle().
			Foreground(ColorRunning).
			Bold(true),

		ServiceDown: lipgloss.NewStyle().
			Foreground(ColorStopped).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.Fg).
			Faint(true).
			MarginTop(1),
	}
}
