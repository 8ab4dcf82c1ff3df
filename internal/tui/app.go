// internal/tui/app.go
//
// The rich frontend for a screening session. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The decision semantics live in internal/session; this file only turns
// keystrokes into session.Apply calls and paints the result with the rich
// renderer. With --pager the record sits inside a scrollable viewport so
// long abstracts never push the prompt off screen.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"paperscreen/internal/render"
	"paperscreen/internal/screening"
	"paperscreen/internal/session"
)

// appState represents which prompt we're on for the current row.
type appState int

const (
	stateDecision     appState = iota // awaiting i/e/s/q
	stateReason                       // awaiting a reason code 1-5
	stateReasonDetail                 // collecting (and discarding) code-5 detail
	stateDone                         // visit set exhausted or reviewer quit
)

// App is the bubbletea model for the screening session.
type App struct {
	session *session.Session
	rich    *render.Rich
	visit   []int
	pos     int
	state   appState

	usePager bool
	viewport viewport.Model
	detail   textinput.Model

	width  int
	height int

	status  []string // confirmation lines from the last decision
	hint    string   // invalid-input nudge, cleared on valid input
	saveErr error
}

// NewApp builds the TUI over a prepared session.
func NewApp(s *session.Session, rich *render.Rich, usePager bool) *App {
	detail := textinput.New()
	detail.Placeholder = "details (not stored)"
	detail.CharLimit = 200

	a := &App{
		session:  s,
		rich:     rich,
		visit:    s.VisitSet(),
		state:    stateDecision,
		usePager: usePager,
		viewport: viewport.New(0, 0),
		detail:   detail,
	}
	if len(a.visit) == 0 {
		a.state = stateDone
	}
	return a
}

// Err reports a working-copy save failure, checked by main after Run.
func (a *App) Err() error {
	return a.saveErr
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = maxInt(5, msg.Height-8)
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a.finish()
		}
		switch a.state {
		case stateDecision:
			return a.updateDecision(msg)
		case stateReason:
			return a.updateReason(msg)
		case stateReasonDetail:
			return a.updateReasonDetail(msg)
		case stateDone:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) updateDecision(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "i":
		return a.decide(session.Include, "")
	case "e":
		a.hint = ""
		a.state = stateReason
		return a, nil
	case "s":
		a.hint = ""
		a.status = nil
		return a.advance()
	case "q":
		return a.finish()
	}
	if a.usePager && isScrollKey(msg.String()) {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}
	a.hint = "Please enter i / e / s / q."
	return a, nil
}

// isScrollKey limits which keys the pager viewport consumes, so a typo at
// the decision prompt still gets a nudge instead of scrolling silently.
func isScrollKey(key string) bool {
	switch key {
	case "up", "down", "pgup", "pgdown", " ", "ctrl+u", "ctrl+d":
		return true
	}
	return false
}

func (a *App) updateReason(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code := msg.String()
	reason, ok := screening.ReasonByCode(code)
	if !ok {
		a.hint = "Please enter a number 1-5."
		return a, nil
	}
	a.hint = ""
	if code == "5" {
		a.state = stateReasonDetail
		a.detail.SetValue("")
		a.detail.Focus()
		return a, textinput.Blink
	}
	return a.decide(session.Exclude, reason.Label)
}

func (a *App) updateReasonDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		// The typed detail is dropped; only the label "other" persists.
		a.detail.Blur()
		return a.decide(session.Exclude, "other")
	}
	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

// decide applies a decision to the current row, records the confirmation
// lines, and moves on.
func (a *App) decide(d session.Decision, reason string) (tea.Model, tea.Cmd) {
	i := a.visit[a.pos]
	receipt, err := a.session.Apply(i, d, reason)
	if err != nil {
		a.saveErr = err
		a.state = stateDone
		return a, tea.Quit
	}
	a.status = nil
	if d == session.Include {
		a.status = append(a.status, a.rich.Notice(render.KindGood, "Included"))
	} else {
		a.status = append(a.status, a.rich.Notice(render.KindBad, fmt.Sprintf("Excluded (reason: %s)", reason)))
	}
	if receipt.Changed {
		a.status = append(a.status, a.rich.Notice(render.KindDim, a.session.SaveReceiptLine(receipt)))
	}
	return a.advance()
}

// advance moves to the next row in the visit set, or finishes the run.
func (a *App) advance() (tea.Model, tea.Cmd) {
	a.pos++
	a.state = stateDecision
	if a.pos >= len(a.visit) {
		a.state = stateDone
		return a, tea.Quit
	}
	a.refreshViewport()
	return a, nil
}

// finish ends the run early on q or ctrl+c. Pending confirmation lines
// stay in a.status so the final frame still shows them.
func (a *App) finish() (tea.Model, tea.Cmd) {
	a.status = append(a.status, a.rich.Notice(render.KindDim, "Exiting. Working copy saved."))
	a.state = stateDone
	return a, tea.Quit
}

func (a *App) refreshViewport() {
	if !a.usePager || a.pos >= len(a.visit) {
		return
	}
	a.viewport.SetContent(a.session.Renderer.Record(a.session.RecordFor(a.visit[a.pos])))
	a.viewport.GotoTop()
}

// View renders the current row plus whichever prompt is active. In the
// done state only the pending confirmation lines remain; bubbletea leaves
// that final frame on screen, so the last decision's save receipt (and the
// quit notice) are not lost.
func (a *App) View() string {
	if a.state == stateDone || a.pos >= len(a.visit) {
		if len(a.status) == 0 {
			return ""
		}
		return strings.Join(a.status, "\n") + "\n"
	}
	i := a.visit[a.pos]
	theme := a.rich.Theme()
	var b strings.Builder

	if a.usePager {
		b.WriteString(a.viewport.View())
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render(fmt.Sprintf("Scroll: up/down · %3.0f%%", a.viewport.ScrollPercent()*100)))
		b.WriteString("\n")
	} else {
		b.WriteString(a.session.Renderer.Record(a.session.RecordFor(i)))
		b.WriteString("\n")
	}

	if note := a.session.AlreadyDecidedNote(i); note != "" {
		b.WriteString(theme.Dim.Render(note))
		b.WriteString("\n")
	}
	for _, line := range a.status {
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch a.state {
	case stateDecision:
		b.WriteString(theme.Prompt.Render("(i)nclude, (e)xclude, (s)kip, (q)uit?"))
	case stateReason:
		b.WriteString(theme.Prompt.Render("Exclusion reason:"))
		b.WriteString("\n")
		for _, r := range screening.Reasons {
			b.WriteString(fmt.Sprintf("  %s %s\n", theme.Label.Render(r.Code+")"), r.Label))
		}
		b.WriteString(theme.Prompt.Render("Enter 1-5:"))
	case stateReasonDetail:
		b.WriteString(theme.Prompt.Render("Describe the 'other' reason (stored as 'other'): "))
		b.WriteString(a.detail.View())
	}

	if a.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Bad.Render(a.hint))
	}
	b.WriteString("\n")
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
