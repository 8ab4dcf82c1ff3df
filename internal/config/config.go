// internal/config/config.go
//
// Run options for a screening session. Most values come straight from
// flags; an optional YAML file can pre-seed the slow-changing ones (theme,
// standing keywords, work path) so reviewers do not retype them every run.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultWorkPath is where the resumable working copy lives unless
// overridden by --work or the config file.
const DefaultWorkPath = "screening_work.csv"

// Theme names accepted by --theme and the config file.
const (
	ThemeDefault      = "default"
	ThemeHighContrast = "high-contrast"
	ThemeSolarized    = "solarized"
)

// FileConfig models the optional YAML config file.
type FileConfig struct {
	Theme    string   `yaml:"theme,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Work     string   `yaml:"work,omitempty"`
	Encoding string   `yaml:"encoding,omitempty"`
}

// Options is the fully resolved configuration for one run.
type Options struct {
	InputPath     string
	WorkPath      string
	FromScratch   bool
	Keywords      []string
	Encoding      string
	Width         int
	Theme         string
	NoColor       bool
	ForceColor    bool
	Pager         bool
	RedoCompleted bool
	LogPath       string
}

// LoadFile reads a YAML config file. A missing file at the default location
// is not an error; an explicitly named file must exist.
func LoadFile(path string, explicit bool) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return fc, nil
		}
		return fc, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return fc, nil
}

// ValidTheme reports whether name is one of the known themes.
func ValidTheme(name string) bool {
	switch name {
	case ThemeDefault, ThemeHighContrast, ThemeSolarized:
		return true
	}
	return false
}

// Merge layers file values under flag values: anything the user set on the
// command line wins, file values only fill the gaps. File keywords are
// standing additions and always apply, ahead of per-run -k terms.
func (o *Options) Merge(fc FileConfig, flagSet map[string]bool) error {
	if !flagSet["theme"] && strings.TrimSpace(fc.Theme) != "" {
		o.Theme = strings.TrimSpace(fc.Theme)
	}
	if !flagSet["work"] && strings.TrimSpace(fc.Work) != "" {
		o.WorkPath = strings.TrimSpace(fc.Work)
	}
	if !flagSet["encoding"] && strings.TrimSpace(fc.Encoding) != "" {
		o.Encoding = strings.TrimSpace(fc.Encoding)
	}
	o.Keywords = append(append([]string{}, fc.Keywords...), o.Keywords...)
	if !ValidTheme(o.Theme) {
		return fmt.Errorf("config: unknown theme %q (want default, high-contrast, or solarized)", o.Theme)
	}
	return nil
}
