// internal/keywords/keywords.go
//
// The keyword matcher drives highlighting in both renderers. Terms are
// plain words or phrases with an optional '*' wildcard; everything compiles
// into one case-insensitive alternation queried per text field.

package keywords

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTerms are highlighted in every session, on top of whatever the
// user adds with -k.
var DefaultTerms = []string{
	"audit*", "fair*", "priva*", "explain*", "interpret*", "transparent*",
	"AI", "machine learning", "data mining",
}

// Matcher finds keyword occurrences in free text. An empty term list gives
// a matcher that matches nothing; RE2 has no lookahead, so that case is a
// flag rather than a never-matching pattern.
type Matcher struct {
	re    *regexp.Regexp
	User  []string
	empty bool
}

// Compile builds the session matcher over DefaultTerms plus userTerms.
func Compile(userTerms []string) (*Matcher, error) {
	terms := append(append([]string{}, DefaultTerms...), userTerms...)
	m, err := CompileTerms(terms)
	if err != nil {
		return nil, err
	}
	m.User = trimmed(userTerms)
	return m, nil
}

// CompileTerms builds a matcher over exactly the given terms. Each term is
// escaped, then '*' becomes `\w*` and a literal space becomes `\s+`; the
// whole term is word-boundary anchored. Note the boundary is literal:
// "audit*" compiles to `\baudit\w*\b`, which matches "auditorium" just as
// it matches "auditing". Blank terms are dropped; an empty term list yields
// a matcher that matches nothing.
func CompileTerms(terms []string) (*Matcher, error) {
	var pats []string
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		p := regexp.QuoteMeta(t)
		p = strings.ReplaceAll(p, `\*`, `\w*`)
		p = strings.ReplaceAll(p, ` `, `\s+`)
		pats = append(pats, `\b`+p+`\b`)
	}
	m := &Matcher{}
	if len(pats) == 0 {
		m.empty = true
		return m, nil
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(pats, `|`) + `)`)
	if err != nil {
		return nil, fmt.Errorf("keywords: compile pattern: %w", err)
	}
	m.re = re
	return m, nil
}

func trimmed(terms []string) []string {
	var out []string
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Spans returns the [start, end) byte ranges of every keyword occurrence.
func (m *Matcher) Spans(text string) [][2]int {
	if m == nil || m.empty || text == "" {
		return nil
	}
	locs := m.re.FindAllStringIndex(text, -1)
	spans := make([][2]int, len(locs))
	for i, l := range locs {
		spans[i] = [2]int{l[0], l[1]}
	}
	return spans
}

// Stylize rewrites text with every keyword occurrence passed through wrap.
// Renderers use this to splice in their own emphasis markup.
func (m *Matcher) Stylize(text string, wrap func(string) string) string {
	if m == nil || m.empty || text == "" {
		return text
	}
	return m.re.ReplaceAllStringFunc(text, wrap)
}

// Matches reports whether text contains any keyword at all.
func (m *Matcher) Matches(text string) bool {
	if m == nil || m.empty {
		return false
	}
	return m.re.MatchString(text)
}
