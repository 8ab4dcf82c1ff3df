package render

import (
	"github.com/charmbracelet/lipgloss"

	"paperscreen/internal/config"
)

// Theme is the style set used by the rich renderer and the TUI.
type Theme struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Keyword lipgloss.Style
	Prompt  lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Dim     lipgloss.Style
	Border  lipgloss.Style
}

// ThemeByName returns the style set for a theme name. Unknown names fall
// back to the default theme; name validation happens in config.
func ThemeByName(name string) Theme {
	switch name {
	case config.ThemeSolarized:
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#b58900")),
			Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#268bd2")),
			Keyword: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b58900")),
			Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d33682")),
			Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#859900")),
			Bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc322f")),
			Dim:     lipgloss.NewStyle().Faint(true),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("#268bd2")),
		}
	case config.ThemeHighContrast:
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
			Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Keyword: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			Bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			Dim:     lipgloss.NewStyle().Faint(true),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		}
	default:
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Background(lipgloss.Color("4")),
			Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
			Keyword: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
			Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
			Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			Bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			Dim:     lipgloss.NewStyle().Faint(true),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		}
	}
}
