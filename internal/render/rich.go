// internal/render/rich.go
//
// The lipgloss-backed renderer: themed header rule, one bordered panel per
// text field, keyword spans emphasized inline. Panels wrap to the target
// width; long abstracts grow downward instead of being cut off.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paperscreen/internal/keywords"
)

// Rich renders records with lipgloss styling.
type Rich struct {
	theme Theme
}

// NewRich builds the rich renderer for a theme name.
func NewRich(themeName string) *Rich {
	return &Rich{theme: ThemeByName(themeName)}
}

// Theme exposes the style set, used by the TUI for its own chrome.
func (r *Rich) Theme() Theme {
	return r.theme
}

// Record renders one row as a header rule plus three titled panels.
func (r *Rich) Record(rec Record) string {
	width := TargetWidth(rec.Width)
	var b strings.Builder
	b.WriteString(r.rule(fmt.Sprintf("Row #%d • Progress: [%d / %d]", rec.Index, rec.Progress, rec.Total), width))
	b.WriteString("\n")
	b.WriteString(r.panel("Document Type", rec.DocType, rec.Matcher, width))
	b.WriteString("\n")
	b.WriteString(r.panel("Article Title", rec.Title, rec.Matcher, width))
	b.WriteString("\n")
	b.WriteString(r.panel("Abstract", rec.Abstract, rec.Matcher, width))
	return b.String()
}

func (r *Rich) panel(title, text string, m *keywords.Matcher, width int) string {
	body := text
	if m != nil {
		body = m.Stylize(text, func(s string) string { return r.theme.Keyword.Render(s) })
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border.GetForeground()).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
	return r.theme.Label.Render(title) + "\n" + box + "\n"
}

// rule draws a horizontal divider with a styled title in the middle, the
// way a console rule looks.
func (r *Rich) rule(title string, width int) string {
	label := r.theme.Header.Render(" " + title + " ")
	fill := width - lipgloss.Width(label)
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	right := fill - left
	line := func(n int) string {
		return r.theme.Border.Render(strings.Repeat("─", n))
	}
	return line(left) + label + line(right)
}

// Banner lists the active keyword terms at session start.
func (r *Rich) Banner(defaults, user []string) string {
	var b strings.Builder
	b.WriteString(r.rule("Keyword highlighting", TargetWidth(0)))
	b.WriteString("\n")
	b.WriteString(r.theme.Label.Render("Default") + ": " + strings.Join(defaults, ", ") + "\n")
	if len(user) > 0 {
		b.WriteString(r.theme.Label.Render("User") + ": " + strings.Join(user, ", ") + "\n")
	}
	b.WriteString(r.theme.Dim.Render("(Keywords are emphasized in the panels. Use --theme to change colors.)"))
	b.WriteString("\n")
	return b.String()
}

// Notice styles a one-line session message.
func (r *Rich) Notice(kind Kind, msg string) string {
	switch kind {
	case KindGood:
		return r.theme.Good.Render(msg)
	case KindBad:
		return r.theme.Bad.Render(msg)
	case KindDim:
		return r.theme.Dim.Render(msg)
	case KindPrompt:
		return r.theme.Prompt.Render(msg)
	default:
		return msg
	}
}
