// cmd/paperscreen/main.go
//
// Entry point for the screening tool. Flow:
// 1. Parse flags and the optional YAML config file
// 2. Load or materialize the resumable working copy
// 3. Compile the keyword matcher
// 4. Hand the session to the rich TUI or the plain prompt loop
//
// Every decision is saved to the working copy before the next row is
// shown, so killing the process at any point loses at most nothing.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"paperscreen/internal/config"
	"paperscreen/internal/keywords"
	"paperscreen/internal/logging"
	"paperscreen/internal/render"
	"paperscreen/internal/screening"
	"paperscreen/internal/session"
	"paperscreen/internal/tui"
)

const version = "0.3.0"

// stringListFlag collects repeatable flag values.
type stringListFlag []string

func (s *stringListFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringListFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	var kw stringListFlag
	opts := config.Options{}
	configPath := flag.String("config", ".paperscreen.yaml", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.StringVar(&opts.WorkPath, "work", config.DefaultWorkPath, "path to the resumable WORKING copy CSV")
	flag.BoolVar(&opts.FromScratch, "from-scratch", false, "rebuild the working copy from input (overwrites existing)")
	flag.Var(&kw, "k", "add a highlighted keyword/phrase ('*' as wildcard, repeatable)")
	flag.Var(&kw, "keyword", "alias for -k")
	flag.StringVar(&opts.Encoding, "encoding", "utf-8", "CSV encoding for both files")
	flag.IntVar(&opts.Width, "width", 0, "max panel/line width (0 = auto full terminal width)")
	flag.StringVar(&opts.Theme, "theme", config.ThemeDefault, "color theme: default, high-contrast, or solarized")
	flag.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flag.BoolVar(&opts.ForceColor, "force-color", false, "force color even when stdout is not a TTY")
	flag.BoolVar(&opts.Pager, "pager", false, "show each record in a scrollable viewport (no truncation)")
	flag.BoolVar(&opts.RedoCompleted, "redo-completed", false, "also revisit rows that already have decisions")
	flag.StringVar(&opts.LogPath, "log", "", "append session events to this logfile")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("paperscreen " + version)
		return
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	opts.InputPath = flag.Arg(0)
	opts.Keywords = kw

	flagSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })
	fileCfg, err := config.LoadFile(*configPath, flagSet["config"])
	if err != nil {
		die("%v", err)
	}
	if err := opts.Merge(fileCfg, flagSet); err != nil {
		die("%v", err)
	}

	log, err := logging.New(opts.LogPath)
	if err != nil {
		die("%v", err)
	}

	enc, err := screening.ResolveEncoding(opts.Encoding)
	if err != nil {
		die("%v", err)
	}

	table, resumed, err := screening.LoadOrInit(opts.InputPath, opts.WorkPath, enc, opts.FromScratch)
	if err != nil {
		die("%v", err)
	}
	if !resumed {
		fmt.Printf("Created working copy: %s (%d rows)\n", opts.WorkPath, len(table.Rows))
	}
	log.Info("session start: input=%s work=%s rows=%d resumed=%t", opts.InputPath, opts.WorkPath, len(table.Rows), resumed)

	matcher, err := keywords.Compile(opts.Keywords)
	if err != nil {
		die("%v", err)
	}

	render.Configure(opts.NoColor, opts.ForceColor)
	useRich := render.UseRich(opts.NoColor, opts.ForceColor)

	var s *session.Session
	if useRich {
		rich := render.NewRich(opts.Theme)
		s = session.New(table, opts.WorkPath, enc, matcher, rich, log, opts.RedoCompleted, opts.Width)
		fmt.Println(rich.Banner(keywords.DefaultTerms, matcher.User))

		app := tui.NewApp(s, rich, opts.Pager)
		if _, err := tea.NewProgram(app).Run(); err != nil {
			die("run ui: %v", err)
		}
		if err := app.Err(); err != nil {
			die("%v", err)
		}
		included, excluded, pending := s.Summary()
		fmt.Printf("Done. included=%d excluded=%d pending=%d\n", included, excluded, pending)
	} else {
		plain := render.NewPlain(false)
		s = session.New(table, opts.WorkPath, enc, matcher, plain, log, opts.RedoCompleted, opts.Width)
		if err := s.RunPlain(os.Stdin, os.Stdout); err != nil {
			die("%v", err)
		}
	}
	log.Info("session end")
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: paperscreen [flags] <csv_path>

Interactive screening of systematic-review candidates. The input CSV must
carry the columns "Document Type", "Article Title", and "Abstract"; the
resumable working copy adds "include" and "reason".

Flags:
`)
	flag.PrintDefaults()
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
