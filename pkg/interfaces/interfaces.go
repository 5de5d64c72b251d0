// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "github.com/Veraticus/hunk/pkg/matcher"

// Tracer receives diagnostics while hunks are parsed and evaluated.
// Implementations must not influence filtering.
type Tracer interface {
	HunkStart(header string)
	Line(text string, significant bool)
	Match(m matcher.Matcher, index int, text string)
	Decision(keep bool, reason string)
	Preamble(lines int)
}

// NopTracer discards all diagnostics.
type NopTracer struct{}

// HunkStart implements Tracer
func (NopTracer) HunkStart(string) {}

// Line implements Tracer
func (NopTracer) Line(string, bool) {}

// Match implements Tracer
func (NopTracer) Match(matcher.Matcher, int, string) {}

// Decision implements Tracer
func (NopTracer) Decision(bool, string) {}

// Preamble implements Tracer
func (NopTracer) Preamble(int) {}

var _ Tracer = NopTracer{}
