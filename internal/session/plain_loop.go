// internal/session/plain_loop.go
//
// Line-oriented frontend used when the rich TUI is unavailable or color is
// off. Everything here is blocking reads against a scanner; invalid input
// re-prompts until the reviewer types something usable.

package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"paperscreen/internal/keywords"
	"paperscreen/internal/render"
	"paperscreen/internal/screening"
)

// RunPlain walks the visit set with line prompts on in/out. It returns
// once the visit set is exhausted, the reviewer quits, or input ends.
func (s *Session) RunPlain(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, s.Renderer.Banner(keywords.DefaultTerms, s.Matcher.User))

	for _, i := range s.VisitSet() {
		fmt.Fprintln(out, s.Renderer.Record(s.RecordFor(i)))
		if note := s.AlreadyDecidedNote(i); note != "" {
			fmt.Fprintln(out, s.Renderer.Notice(render.KindDim, note))
		}

		choice, ok := s.promptChoice(scanner, out)
		if !ok || choice == Quit {
			fmt.Fprintln(out, s.Renderer.Notice(render.KindDim, "Exiting. Working copy saved."))
			break
		}
		if choice == Skip {
			continue
		}

		reason := ""
		if choice == Exclude {
			reason, ok = s.promptReason(scanner, out)
			if !ok {
				fmt.Fprintln(out, s.Renderer.Notice(render.KindDim, "Exiting. Working copy saved."))
				break
			}
		}

		receipt, err := s.Apply(i, choice, reason)
		if err != nil {
			return err
		}
		if choice == Include {
			fmt.Fprintln(out, s.Renderer.Notice(render.KindGood, "Included"))
		} else {
			fmt.Fprintln(out, s.Renderer.Notice(render.KindBad, fmt.Sprintf("Excluded (reason: %s)", reason)))
		}
		fmt.Fprintln(out, s.Renderer.Notice(render.KindDim, s.SaveReceiptLine(receipt)))
	}

	included, excluded, pending := s.Summary()
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Renderer.Notice(render.KindPlain,
		fmt.Sprintf("Done. included=%d excluded=%d pending=%d", included, excluded, pending)))
	return nil
}

// promptChoice reads one of i/e/s/q, re-prompting on anything else.
// ok=false means the input stream ended.
func (s *Session) promptChoice(scanner *bufio.Scanner, out io.Writer) (Decision, bool) {
	for {
		fmt.Fprint(out, s.Renderer.Notice(render.KindPrompt, "[i]nclude, [e]xclude, [s]kip, [q]uit?")+" ")
		if !scanner.Scan() {
			return Quit, false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "i":
			return Include, true
		case "e":
			return Exclude, true
		case "s":
			return Skip, true
		case "q":
			return Quit, true
		}
		fmt.Fprintln(out, "Please enter i / e / s / q.")
	}
}

// promptReason walks the fixed reason table. Code 5 asks for free-text
// detail that is read and dropped; the stored label is always "other".
func (s *Session) promptReason(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Renderer.Notice(render.KindPrompt, "Exclusion reason:"))
	for _, r := range screening.Reasons {
		fmt.Fprintf(out, "  %s) %s\n", r.Code, r.Label)
	}
	for {
		fmt.Fprint(out, "Enter 1-5: ")
		if !scanner.Scan() {
			return "", false
		}
		code := strings.TrimSpace(scanner.Text())
		reason, ok := screening.ReasonByCode(code)
		if !ok {
			fmt.Fprintln(out, "Please enter a number 1-5.")
			continue
		}
		if code == "5" {
			fmt.Fprint(out, "Describe the 'other' reason (stored as 'other'): ")
			if !scanner.Scan() {
				return "", false
			}
			// detail intentionally discarded
		}
		return reason.Label, true
	}
}
