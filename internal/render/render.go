// internal/render/render.go
//
// Rendering contract shared by the rich (lipgloss) and plain (ANSI)
// record views. The frontend picks one implementation at startup from the
// terminal's capabilities and the color flags; call sites never branch on
// capability again.

package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"paperscreen/internal/keywords"
)

// Record carries everything needed to draw one row.
type Record struct {
	Index    int // positional row index in the working copy
	Progress int // optimistic decided count shown in the header
	Total    int
	DocType  string
	Title    string
	Abstract string
	Matcher  *keywords.Matcher
	Width    int // 0 = auto-detect terminal width
}

// Kind classifies a Notice so renderers can color it.
type Kind int

const (
	KindGood   Kind = iota // inclusion confirmations
	KindBad                // exclusion confirmations
	KindDim                // save receipts and other quiet chatter
	KindPrompt             // interactive prompt lines
	KindPlain              // unstyled informational text
)

// Renderer turns rows and session messages into printable text. Output
// always wraps to the target width; nothing is ever truncated.
type Renderer interface {
	Record(rec Record) string
	Banner(defaults, user []string) string
	Notice(kind Kind, msg string) string
}

// UseRich decides whether the lipgloss renderer should drive the session.
// Color must be permitted and stdout must look like a terminal, unless the
// user forces it either way. The NO_COLOR convention is honored alongside
// the explicit flags.
func UseRich(noColor, forceColor bool) bool {
	if noColor || noColorEnv() {
		return false
	}
	if forceColor {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func noColorEnv() bool {
	switch os.Getenv("NO_COLOR") {
	case "", "0", "false", "no":
		return false
	}
	return true
}

// Configure applies the color overrides globally so both lipgloss and the
// plain renderer's escape codes honor --no-color / --force-color.
func Configure(noColor, forceColor bool) {
	if noColor || noColorEnv() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if forceColor {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// TargetWidth resolves the wrap width: a positive request wins, otherwise
// the terminal width (less a small margin) with a floor of 40 columns.
func TargetWidth(requested int) int {
	if requested > 0 {
		return requested
	}
	cols := 120
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		cols = w
	}
	if cols-4 < 40 {
		return 40
	}
	return cols - 4
}
