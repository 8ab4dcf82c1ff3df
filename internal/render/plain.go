// internal/render/plain.go
//
// The fallback renderer: raw text with optional ANSI escape styling, for
// terminals (or pipes) where the rich UI is off. Wrapping is done with
// reflow so escape sequences never count against the line width.

package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// ANSI escape fragments used when color is on.
var ansi = map[string]string{
	"reset":   "\033[0m",
	"bold":    "\033[1m",
	"cyan":    "\033[36m",
	"magenta": "\033[35m",
	"yellow":  "\033[33m",
	"green":   "\033[32m",
	"red":     "\033[31m",
	"dim":     "\033[2m",
}

// Plain renders records as wrapped text, with ANSI color when enabled.
type Plain struct {
	colored bool
}

// NewPlain builds the plain renderer. colored enables ANSI escapes.
func NewPlain(colored bool) *Plain {
	return &Plain{colored: colored}
}

func (p *Plain) code(name string) string {
	if !p.colored {
		return ""
	}
	return ansi[name]
}

func (p *Plain) heading(s string) string {
	return p.code("bold") + p.code("cyan") + s + p.code("reset")
}

// Record renders one row as labeled, wrapped, indented text blocks.
func (p *Plain) Record(rec Record) string {
	width := TargetWidth(rec.Width)
	var b strings.Builder

	title := fmt.Sprintf(" Row #%d • Progress: [%d / %d] ", rec.Index, rec.Progress, rec.Total)
	fill := width - runewidth.StringWidth(title)
	if fill < 8 {
		fill = 8
	}
	b.WriteString(p.heading(strings.Repeat("=", fill/2) + title + strings.Repeat("=", fill-fill/2)))
	b.WriteString("\n")

	p.field(&b, "Document Type", rec, rec.DocType, width)
	b.WriteString("\n")
	p.field(&b, "Article Title", rec, rec.Title, width)
	b.WriteString("\n")
	p.field(&b, "Abstract", rec, rec.Abstract, width)

	divider := width
	if divider > 200 {
		divider = 200
	}
	b.WriteString(p.code("dim") + strings.Repeat("-", divider) + p.code("reset"))
	return b.String()
}

func (p *Plain) field(b *strings.Builder, label string, rec Record, text string, width int) {
	b.WriteString(p.heading(label + ":"))
	b.WriteString("\n")
	if p.colored && rec.Matcher != nil {
		text = rec.Matcher.Stylize(text, func(kw string) string {
			return ansi["yellow"] + ansi["bold"] + kw + ansi["reset"]
		})
	}
	wrapped := wordwrap.String(text, width-2)
	b.WriteString(indent.String(wrapped, 2))
	b.WriteString("\n")
}

// Banner lists the active keyword terms at session start.
func (p *Plain) Banner(defaults, user []string) string {
	var b strings.Builder
	if p.colored {
		b.WriteString(p.heading("Keyword highlighting"))
		b.WriteString("\n")
	}
	b.WriteString("Default: " + strings.Join(defaults, ", ") + "\n")
	if len(user) > 0 {
		b.WriteString("User: " + strings.Join(user, ", ") + "\n")
	}
	return b.String()
}

// Notice styles a one-line session message.
func (p *Plain) Notice(kind Kind, msg string) string {
	switch kind {
	case KindGood:
		return p.code("green") + msg + p.code("reset")
	case KindBad:
		return p.code("red") + msg + p.code("reset")
	case KindDim:
		return p.code("dim") + msg + p.code("reset")
	case KindPrompt:
		return p.code("magenta") + msg + p.code("reset")
	default:
		return msg
	}
}
