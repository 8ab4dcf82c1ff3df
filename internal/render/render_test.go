package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"paperscreen/internal/keywords"
)

func testMatcher(t *testing.T) *keywords.Matcher {
	t.Helper()
	m, err := keywords.CompileTerms([]string{"audit*", "machine learning"})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func testRecord(t *testing.T, width int) Record {
	t.Helper()
	return Record{
		Index:    4,
		Progress: 2,
		Total:    10,
		DocType:  "Article",
		Title:    "Auditing machine learning systems",
		Abstract: strings.Repeat("A very long abstract about auditing models. ", 8),
		Matcher:  testMatcher(t),
		Width:    width,
	}
}

func TestPlainRecordHeaderAndWrap(t *testing.T) {
	p := NewPlain(false)
	out := p.Record(testRecord(t, 60))
	if !strings.Contains(out, "Row #4 • Progress: [2 / 10]") {
		t.Fatalf("missing header in output:\n%s", out)
	}
	for _, label := range []string{"Document Type:", "Article Title:", "Abstract:"} {
		if !strings.Contains(out, label) {
			t.Fatalf("missing field label %q", label)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Fatal("uncolored renderer must not emit escape codes")
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 62 {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}
}

func TestPlainRecordKeepsAllText(t *testing.T) {
	p := NewPlain(false)
	rec := testRecord(t, 50)
	out := p.Record(rec)
	// Wrapping must never drop words, only move them to new lines.
	squashed := strings.Join(strings.Fields(out), " ")
	for _, word := range strings.Fields(rec.Abstract) {
		if !strings.Contains(squashed, word) {
			t.Fatalf("abstract word %q lost in rendering", word)
		}
	}
}

func TestPlainColoredHighlightsKeywords(t *testing.T) {
	p := NewPlain(true)
	out := p.Record(testRecord(t, 80))
	if !strings.Contains(out, ansi["yellow"]+ansi["bold"]+"Auditing") {
		t.Fatalf("keyword span not emphasized:\n%q", out)
	}
}

func TestPlainNoticeKinds(t *testing.T) {
	colored := NewPlain(true)
	if got := colored.Notice(KindGood, "Included"); !strings.Contains(got, ansi["green"]) {
		t.Fatalf("good notice lacks green: %q", got)
	}
	if got := colored.Notice(KindBad, "Excluded"); !strings.Contains(got, ansi["red"]) {
		t.Fatalf("bad notice lacks red: %q", got)
	}
	bare := NewPlain(false)
	if got := bare.Notice(KindGood, "Included"); got != "Included" {
		t.Fatalf("uncolored notice should be bare text, got %q", got)
	}
}

func TestPlainBannerListsTerms(t *testing.T) {
	p := NewPlain(false)
	out := p.Banner([]string{"audit*", "AI"}, []string{"neural*"})
	if !strings.Contains(out, "Default: audit*, AI") {
		t.Fatalf("banner missing defaults:\n%s", out)
	}
	if !strings.Contains(out, "User: neural*") {
		t.Fatalf("banner missing user terms:\n%s", out)
	}
	if strings.Contains(p.Banner([]string{"audit*"}, nil), "User:") {
		t.Fatal("banner must omit the user line when no user terms exist")
	}
}

func TestRichRecordContainsFields(t *testing.T) {
	r := NewRich("default")
	out := r.Record(testRecord(t, 60))
	if !strings.Contains(out, "Row #4 • Progress: [2 / 10]") {
		t.Fatalf("missing header rule:\n%s", out)
	}
	for _, want := range []string{"Document Type", "Article Title", "Abstract", "Article"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rich record missing %q", want)
		}
	}
}

func TestRichRecordHighlightsKeywords(t *testing.T) {
	// Tests run without a TTY, so force a color profile to make the
	// keyword emphasis observable in the output.
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	r := NewRich("default")
	out := r.Record(testRecord(t, 60))
	if !strings.Contains(out, "Auditing") {
		t.Fatalf("keyword text missing from output:\n%s", out)
	}
	// The span itself must open with an SGR sequence, not just sit inside
	// a styled panel.
	if !regexp.MustCompile(`\x1b\[[0-9;]+mAuditing`).MatchString(out) {
		t.Fatalf("keyword span should carry styling escape codes:\n%q", out)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	// Unknown names get the default styles rather than an error; config
	// validates the name before we ever get here.
	def := ThemeByName("default")
	unknown := ThemeByName("nope")
	if def.Keyword.GetForeground() != unknown.Keyword.GetForeground() {
		t.Fatal("unknown theme should fall back to default styles")
	}
	sol := ThemeByName("solarized")
	if sol.Label.GetForeground() == def.Label.GetForeground() {
		t.Fatal("solarized must differ from default")
	}
}

func TestTargetWidth(t *testing.T) {
	if got := TargetWidth(72); got != 72 {
		t.Fatalf("explicit width must win, got %d", got)
	}
	if got := TargetWidth(0); got < 40 {
		t.Fatalf("auto width must respect the 40-column floor, got %d", got)
	}
}

func TestUseRichHonorsFlags(t *testing.T) {
	if UseRich(true, false) {
		t.Fatal("--no-color must force the plain renderer")
	}
	if UseRich(true, true) {
		t.Fatal("--no-color wins over --force-color")
	}
	t.Setenv("NO_COLOR", "1")
	if UseRich(false, true) {
		t.Fatal("NO_COLOR env must disable the rich renderer")
	}
	t.Setenv("NO_COLOR", "")
	if !UseRich(false, true) {
		t.Fatal("--force-color must enable the rich renderer off-TTY")
	}
}
