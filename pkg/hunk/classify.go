// Package hunk splits diff output into hunks and decides which of them are
// written back out.
//
// Unified (`---`/`+++`/`@@`), context and normal/RCS style (`1c1`, `<`, `>`)
// diffs are recognized. A hunk starts at a `--- ` line, at a line starting
// with a digit, or at any line the classifier does not recognize; it runs up
// to the next such line or the end of the stream.
package hunk

import "strings"

// LineKind is the syntactic category of a diff line
type LineKind int

const (
	// KindHunkStart is a `--- ` header or a numeric range line such as `12,14c12`.
	KindHunkStart LineKind = iota
	// KindFileHeader is a `+++ ` header.
	KindFileHeader
	// KindRangeMarker is an `@@ ... @@` line.
	KindRangeMarker
	// KindAdded is a `+` or `>` line.
	KindAdded
	// KindRemoved is a `-` or `<` line.
	KindRemoved
	// KindContext is a line starting with a space.
	KindContext
	// KindUnrecognized is anything else. It starts a new hunk.
	KindUnrecognized
)

var kindNames = map[LineKind]string{
	KindHunkStart:    "hunk-start",
	KindFileHeader:   "file-header",
	KindRangeMarker:  "range",
	KindAdded:        "added",
	KindRemoved:      "removed",
	KindContext:      "context",
	KindUnrecognized: "unrecognized",
}

func (k LineKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Boundary reports whether a line of this kind begins a new hunk
func (k LineKind) Boundary() bool {
	return k == KindHunkStart || k == KindUnrecognized
}

// Options controls which lines take part in matching
type Options struct {
	// MatchContext makes context lines significant.
	MatchContext bool
	// MatchHeaders makes header, range and unrecognized lines significant.
	MatchHeaders bool
}

// Line is one classified input line.
type Line struct {
	// Text is the raw line including its trailing newline, if any.
	Text string
	// Significant is set when Text is eligible for pattern matching.
	Significant bool
}

// Classify returns the kind of a raw line and whether it is significant
// under opts. Every line gets a kind.
func Classify(line string, opts Options) (LineKind, bool) {
	switch {
	case strings.HasPrefix(line, "--- ") || startsWithDigit(line):
		return KindHunkStart, opts.MatchHeaders
	case strings.HasPrefix(line, "+++ "):
		return KindFileHeader, opts.MatchHeaders
	case strings.HasPrefix(line, "@@ "):
		return KindRangeMarker, opts.MatchHeaders
	}

	if line == "" {
		return KindUnrecognized, opts.MatchHeaders
	}
	switch line[0] {
	case '+', '>':
		return KindAdded, true
	case '-', '<':
		return KindRemoved, true
	case ' ':
		return KindContext, opts.MatchContext
	default:
		return KindUnrecognized, opts.MatchHeaders
	}
}

func startsWithDigit(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}
