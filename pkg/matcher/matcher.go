// Package matcher implements the include/exclude patterns that decide which
// hunks survive filtering.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNoRules is returned when no include or exclude rule was supplied.
	ErrNoRules = errors.New("no matches")
)

// Polarity says what happens to a hunk when a matcher hits it
type Polarity int

const (
	// Include keeps the hunk.
	Include Polarity = iota
	// Exclude drops the hunk.
	Exclude
)

// String returns the command-line flag name of the polarity
func (p Polarity) String() string {
	if p == Include {
		return "in"
	}
	return "out"
}

// Kind selects how a pattern is compared with a line
type Kind int

const (
	// Literal matches when the pattern occurs as a substring of the line.
	Literal Kind = iota
	// Regex matches when the compiled expression matches anywhere in the line.
	Regex
)

// Rule is an uncompiled matcher as given by the user
type Rule struct {
	Polarity Polarity
	Pattern  string
}

// Matcher is one compiled entry of the ordered matcher list.
// The zero value is a literal include matcher with an empty pattern.
type Matcher struct {
	Polarity Polarity
	Kind     Kind
	Pattern  string
	re       *regexp.Regexp
}

// New creates a matcher. When raw is false the pattern is compiled as a
// regular expression.
func New(polarity Polarity, pattern string, raw bool) (Matcher, error) {
	m := Matcher{
		Polarity: polarity,
		Kind:     Literal,
		Pattern:  pattern,
	}
	if raw {
		return m, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Matcher{}, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	m.Kind = Regex
	m.re = re
	return m, nil
}

// Match reports whether the line is hit by the pattern
func (m Matcher) Match(line string) bool {
	switch m.Kind {
	case Regex:
		return m.re != nil && m.re.MatchString(line)
	default:
		return strings.Contains(line, m.Pattern)
	}
}

// String returns a description of the matcher for diagnostics
func (m Matcher) String() string {
	return fmt.Sprintf("--%s=%s", m.Polarity, m.Pattern)
}

// Compile turns ordered rules into ordered matchers. Order is preserved since
// it encodes priority.
func Compile(rules []Rule, raw bool) ([]Matcher, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	matchers := make([]Matcher, 0, len(rules))
	for _, r := range rules {
		m, err := New(r.Polarity, r.Pattern, raw)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// HasInclude reports whether any matcher in the list has Include polarity
func HasInclude(matchers []Matcher) bool {
	for _, m := range matchers {
		if m.Polarity == Include {
			return true
		}
	}
	return false
}
