package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFileMissingDefaultIsFine(t *testing.T) {
	fc, err := LoadFile(filepath.Join(t.TempDir(), ".paperscreen.yaml"), false)
	if err != nil {
		t.Fatalf("missing default config must not error: %v", err)
	}
	if fc.Theme != "" || len(fc.Keywords) != 0 {
		t.Fatalf("missing file should yield zero config, got %+v", fc)
	}
}

func TestLoadFileMissingExplicitErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), true); err == nil {
		t.Fatal("explicitly named missing config must error")
	}
}

func TestLoadFileParsesYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	content := strings.TrimSpace(`
theme: solarized
work: reviews/screening.csv
keywords:
  - neural*
  - deep learning
`)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if fc.Theme != "solarized" {
		t.Fatalf("theme = %q", fc.Theme)
	}
	if fc.Work != "reviews/screening.csv" {
		t.Fatalf("work = %q", fc.Work)
	}
	if len(fc.Keywords) != 2 || fc.Keywords[1] != "deep learning" {
		t.Fatalf("keywords = %v", fc.Keywords)
	}
}

func TestLoadFileRejectsBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, true); err == nil {
		t.Fatal("malformed yaml must error")
	}
}

func TestMergeFlagsWin(t *testing.T) {
	o := Options{Theme: ThemeHighContrast, WorkPath: "flagged.csv", Encoding: "utf-8", Keywords: []string{"cli*"}}
	fc := FileConfig{Theme: ThemeSolarized, Work: "file.csv", Encoding: "latin1", Keywords: []string{"standing*"}}
	flagSet := map[string]bool{"theme": true, "work": true, "encoding": true}
	if err := o.Merge(fc, flagSet); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if o.Theme != ThemeHighContrast || o.WorkPath != "flagged.csv" || o.Encoding != "utf-8" {
		t.Fatalf("flag values must win, got %+v", o)
	}
	// Standing keywords from the file come first, per-run ones after.
	if len(o.Keywords) != 2 || o.Keywords[0] != "standing*" || o.Keywords[1] != "cli*" {
		t.Fatalf("keywords = %v", o.Keywords)
	}
}

func TestMergeFileFillsGaps(t *testing.T) {
	o := Options{Theme: ThemeDefault, WorkPath: DefaultWorkPath, Encoding: "utf-8"}
	fc := FileConfig{Theme: ThemeSolarized, Work: "file.csv"}
	if err := o.Merge(fc, map[string]bool{}); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if o.Theme != ThemeSolarized {
		t.Fatalf("file theme should apply, got %q", o.Theme)
	}
	if o.WorkPath != "file.csv" {
		t.Fatalf("file work path should apply, got %q", o.WorkPath)
	}
	if o.Encoding != "utf-8" {
		t.Fatalf("empty file encoding must not clobber default, got %q", o.Encoding)
	}
}

func TestMergeRejectsUnknownTheme(t *testing.T) {
	o := Options{Theme: "neon"}
	if err := o.Merge(FileConfig{}, map[string]bool{"theme": true}); err == nil {
		t.Fatal("unknown theme must be rejected")
	}
}

func TestValidTheme(t *testing.T) {
	for _, name := range []string{ThemeDefault, ThemeHighContrast, ThemeSolarized} {
		if !ValidTheme(name) {
			t.Fatalf("%q should be valid", name)
		}
	}
	if ValidTheme("Default") || ValidTheme("") {
		t.Fatal("theme names are exact, lowercase tokens")
	}
}
