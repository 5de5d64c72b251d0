// Package trace writes filtering diagnostics to the error stream.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/hunk/pkg/interfaces"
	"github.com/Veraticus/hunk/pkg/matcher"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Logger prints prefixed diagnostic lines. A disabled Logger prints nothing.
type Logger struct {
	w       io.Writer
	prefix  string
	enabled bool
	color   bool
}

var _ interfaces.Tracer = (*Logger)(nil)

// NewLogger creates a logger writing to w. Keep/discard words are coloured
// when color is set, which callers do when w is a terminal.
func NewLogger(w io.Writer, prefix string, enabled, color bool) *Logger {
	return &Logger{
		w:       w,
		prefix:  prefix,
		enabled: enabled,
		color:   color,
	}
}

// Enabled reports whether diagnostics are written
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled && l.w != nil
}

// Printf writes one diagnostic line
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.w, "%s: %s\n", l.prefix, strings.TrimRight(msg, "\n"))
}

// HunkStart implements interfaces.Tracer
func (l *Logger) HunkStart(header string) {
	l.Printf("parsing hunk %q", strings.TrimRight(header, "\r\n"))
}

// Line implements interfaces.Tracer
func (l *Logger) Line(text string, significant bool) {
	mark := " "
	if significant {
		mark = "*"
	}
	l.Printf("  %s %q", mark, strings.TrimRight(text, "\r\n"))
}

// Match implements interfaces.Tracer
func (l *Logger) Match(m matcher.Matcher, index int, text string) {
	l.Printf("pattern #%d %s matched %q", index, m, strings.TrimRight(text, "\r\n"))
}

// Decision implements interfaces.Tracer
func (l *Logger) Decision(keep bool, reason string) {
	word, color := "discard", colorRed
	if keep {
		word, color = "keep", colorGreen
	}
	if l.color {
		word = color + word + colorReset
	}
	l.Printf("%s hunk: %s", word, reason)
}

// Preamble implements interfaces.Tracer
func (l *Logger) Preamble(lines int) {
	l.Printf("dropping %d line(s) before the first hunk", lines)
}
