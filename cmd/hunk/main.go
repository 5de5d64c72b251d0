package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/hunk/pkg/config"
	"github.com/Veraticus/hunk/pkg/matcher"
)

// Exit codes
const (
	exitOK           = 0
	exitUsage        = 1
	exitOpen         = 2
	exitBadPattern   = 3
	exitNoMatches    = 4
	exitStreamFailed = 5
)

const progName = "hunk"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		rules        []matcher.Rule
		help         bool
		matchRaw     bool
		matchContext bool
		matchHeaders bool
		verbose      bool
	)

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&help, "help", "h", false, "Display this help")
	fs.BoolVarP(&matchRaw, "match-raw", "r", false, "Don't treat patterns as regexps")
	fs.BoolVarP(&matchContext, "match-context", "c", false, "Match patterns against context lines too")
	fs.BoolVarP(&matchHeaders, "match-headers", "H", false, "Match patterns against header and range lines too")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Explain every decision on stderr")
	fs.VarP(&ruleValue{rules: &rules, polarity: matcher.Include}, "in", "i", "Keep hunks that match this pattern")
	fs.VarP(&ruleValue{rules: &rules, polarity: matcher.Exclude}, "out", "o", "Filter out hunks that match this pattern (also -d)")
	fs.VarP(&ruleValue{rules: &rules, polarity: matcher.Exclude}, "discard", "d", "Same as --out")
	_ = fs.MarkHidden("discard")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		printUsage(stderr, fs)
		return exitUsage
	}

	if help {
		printUsage(stdout, fs)
		return exitOK
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitUsage
	}

	// Command line switches can only turn options on
	cfg.MatchRaw = cfg.MatchRaw || matchRaw
	cfg.MatchContext = cfg.MatchContext || matchContext
	cfg.MatchHeaders = cfg.MatchHeaders || matchHeaders
	cfg.Verbose = cfg.Verbose || verbose

	rules = append(rules, cfg.MatcherRules()...)

	deps, err := NewDependencies(cfg, rules, stdout, stderr, isTerminal(stderr))
	if err != nil {
		switch {
		case errors.Is(err, matcher.ErrNoRules):
			fmt.Fprintln(stderr, "No matches")
			return exitNoMatches
		case errors.Is(err, matcher.ErrInvalidPattern):
			fmt.Fprintf(stderr, "Invalid regexp: %v\n", err)
			return exitBadPattern
		default:
			fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
			return exitUsage
		}
	}

	app := NewApplication(deps)
	if err := app.Run(fs.Args(), stdin); err != nil {
		var openErr *OpenError
		if errors.As(err, &openErr) {
			fmt.Fprintf(stderr, "Can't open %s for reading\n", openErr.Path)
			return exitOpen
		}
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitStreamFailed
	}

	return exitOK
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "hunk - filter diff hunks by pattern")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: hunk [OPTIONS] [FILE...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Patterns are tried in the order given; the first pattern that matches a")
	fmt.Fprintln(w, "changed line of a hunk decides whether the hunk is kept. Reads standard")
	fmt.Fprintln(w, "input when no FILE is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  HUNK_MATCH_RAW       Same as --match-raw (true/false)")
	fmt.Fprintln(w, "  HUNK_MATCH_CONTEXT   Same as --match-context (true/false)")
	fmt.Fprintln(w, "  HUNK_MATCH_HEADERS   Same as --match-headers (true/false)")
	fmt.Fprintln(w, "  HUNK_VERBOSE         Same as --verbose (true/false)")
	fmt.Fprintln(w, "  HUNK_CONFIG          Path to config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/hunk/config.yaml")
}
