package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/hunk/pkg/config"
	"github.com/Veraticus/hunk/pkg/hunk"
	"github.com/Veraticus/hunk/pkg/matcher"
	"github.com/Veraticus/hunk/pkg/trace"
)

// OpenError reports an input file that could not be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("can't open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Matchers []matcher.Matcher
	Logger   *trace.Logger
	Filter   *hunk.Filter
}

// NewDependencies compiles the rules and builds the filter writing to stdout.
// Diagnostics go to stderr.
func NewDependencies(cfg *config.Config, rules []matcher.Rule, stdout, stderr io.Writer, color bool) (*Dependencies, error) {
	matchers, err := matcher.Compile(rules, cfg.MatchRaw)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Config:   cfg,
		Matchers: matchers,
		Logger:   trace.NewLogger(stderr, progName, cfg.Verbose, color),
	}
	deps.Filter = hunk.NewFilter(stdout, matchers, cfg.HunkOptions(), deps.Logger)

	return deps, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run filters each path in order, or stdin when paths is empty. It stops at
// the first file that cannot be opened; output already written stays.
func (a *Application) Run(paths []string, stdin io.Reader) error {
	if a.deps.Logger.Enabled() {
		for i, m := range a.deps.Matchers {
			a.deps.Logger.Printf("pattern #%d %s", i, m)
		}
	}

	if len(paths) == 0 {
		return a.process("<stdin>", stdin)
	}

	for _, path := range paths {
		// #nosec G304 - Input paths are given by the user on the command line
		f, err := os.Open(path)
		if err != nil {
			return &OpenError{Path: path, Err: err}
		}
		err = a.process(path, f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// process filters one stream and logs a summary for it
func (a *Application) process(name string, r io.Reader) error {
	before := a.deps.Filter.Stats()
	if err := a.deps.Filter.Process(r); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	after := a.deps.Filter.Stats()
	a.deps.Logger.Printf("%s: %d line(s), %d hunk(s), %d kept, %d discarded",
		name,
		after.LinesRead-before.LinesRead,
		after.Hunks-before.Hunks,
		after.Kept-before.Kept,
		after.Discarded-before.Discarded)
	return nil
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty(f.Fd())
}
