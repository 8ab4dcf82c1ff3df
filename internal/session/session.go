// internal/session/session.go
//
// The screening session: which rows get visited, how a decision mutates
// the working copy, and when the copy is flushed to disk. Both frontends
// (the plain prompt loop here and the TUI) drive the same Session so the
// semantics cannot drift apart.

package session

import (
	"fmt"
	"time"

	"golang.org/x/text/encoding"

	"paperscreen/internal/keywords"
	"paperscreen/internal/logging"
	"paperscreen/internal/render"
	"paperscreen/internal/screening"
)

// Decision is one of the four per-row actions.
type Decision int

const (
	Include Decision = iota
	Exclude
	Skip
	Quit
)

// Session holds the state of one screening run over a working copy.
type Session struct {
	Table    *screening.Table
	WorkPath string
	Encoding encoding.Encoding
	Matcher  *keywords.Matcher
	Renderer render.Renderer
	Log      *logging.Logger
	Redo     bool
	Width    int

	decidedSoFar int
}

// New prepares a session over an already-loaded working copy.
func New(t *screening.Table, workPath string, enc encoding.Encoding, m *keywords.Matcher, r render.Renderer, log *logging.Logger, redo bool, width int) *Session {
	return &Session{
		Table:        t,
		WorkPath:     workPath,
		Encoding:     enc,
		Matcher:      m,
		Renderer:     r,
		Log:          log,
		Redo:         redo,
		Width:        width,
		decidedSoFar: t.DecidedCount(),
	}
}

// VisitSet returns the row positions this run will walk, in file order:
// every row when redoing completed work, otherwise only pending rows.
func (s *Session) VisitSet() []int {
	if s.Redo {
		return s.Table.AllIndexes()
	}
	return s.Table.PendingIndexes()
}

// RecordFor builds the renderable view of row i. The progress figure is
// optimistic: a pending row counts itself as decided before the decision
// is actually made, matching the reference behavior.
func (s *Session) RecordFor(i int) render.Record {
	progress := s.decidedSoFar
	if !s.Table.Decided(i) {
		progress++
	}
	return render.Record{
		Index:    i,
		Progress: progress,
		Total:    len(s.Table.Rows),
		DocType:  s.Table.Field(i, "Document Type"),
		Title:    s.Table.Field(i, "Article Title"),
		Abstract: s.Table.Field(i, "Abstract"),
		Matcher:  s.Matcher,
		Width:    s.Width,
	}
}

// Receipt describes what Apply did to the working copy.
type Receipt struct {
	Changed bool
	SavedAt time.Time
}

// Apply records a decision on row i, persisting the working copy when the
// row actually changed. Skip and Quit never mutate. reason is only
// consulted for Exclude.
func (s *Session) Apply(i int, d Decision, reason string) (Receipt, error) {
	wasDecided := s.Table.Decided(i)
	switch d {
	case Include:
		s.Table.SetDecision(i, screening.IncludeYes, "")
	case Exclude:
		s.Table.SetDecision(i, screening.IncludeNo, reason)
	default:
		return Receipt{}, nil
	}
	if !wasDecided {
		s.decidedSoFar++
	}
	if err := s.Table.Save(s.WorkPath, s.Encoding); err != nil {
		return Receipt{}, err
	}
	now := time.Now().UTC()
	if d == Include {
		s.Log.Info("row %d included", i)
	} else {
		s.Log.Info("row %d excluded (reason: %s)", i, reason)
	}
	return Receipt{Changed: true, SavedAt: now}, nil
}

// AlreadyDecidedNote returns the dim annotation shown for a decided row
// when revisiting completed work, or "" when not applicable.
func (s *Session) AlreadyDecidedNote(i int) string {
	if !s.Redo || !s.Table.Decided(i) {
		return ""
	}
	return fmt.Sprintf("(already decided: include=%s, reason=%s)",
		s.Table.Field(i, screening.IncludeColumn),
		s.Table.Field(i, screening.ReasonColumn))
}

// Summary reports the include/exclude/pending tallies for the table.
func (s *Session) Summary() (included, excluded, pending int) {
	included = s.Table.IncludedCount()
	excluded = s.Table.DecidedCount() - included
	pending = len(s.Table.Rows) - s.Table.DecidedCount()
	return included, excluded, pending
}

// SaveReceiptLine formats the post-save confirmation with a UTC timestamp.
func (s *Session) SaveReceiptLine(r Receipt) string {
	return fmt.Sprintf("Saved to %s at %s", s.WorkPath, r.SavedAt.Format("2006-01-02T15:04:05Z"))
}
