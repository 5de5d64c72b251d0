package testutil

import (
	"errors"
	"sync"

	"github.com/Veraticus/hunk/pkg/interfaces"
	"github.com/Veraticus/hunk/pkg/matcher"
)

// TraceMatch records one Tracer.Match call
type TraceMatch struct {
	Matcher string
	Index   int
	Text    string
}

// TraceDecision records one Tracer.Decision call
type TraceDecision struct {
	Keep   bool
	Reason string
}

// RecordingTracer is a mock implementation of interfaces.Tracer for testing
type RecordingTracer struct {
	mu        sync.Mutex
	starts    []string
	lines     []string
	matches   []TraceMatch
	decisions []TraceDecision
	preamble  int
}

var _ interfaces.Tracer = (*RecordingTracer)(nil)

// NewRecordingTracer creates a new recording tracer
func NewRecordingTracer() *RecordingTracer {
	return &RecordingTracer{}
}

// HunkStart implements the Tracer interface
func (r *RecordingTracer) HunkStart(header string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, header)
}

// Line implements the Tracer interface
func (r *RecordingTracer) Line(text string, significant bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if significant {
		r.lines = append(r.lines, text)
	}
}

// Match implements the Tracer interface
func (r *RecordingTracer) Match(m matcher.Matcher, index int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, TraceMatch{Matcher: m.String(), Index: index, Text: text})
}

// Decision implements the Tracer interface
func (r *RecordingTracer) Decision(keep bool, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, TraceDecision{Keep: keep, Reason: reason})
}

// Preamble implements the Tracer interface
func (r *RecordingTracer) Preamble(lines int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preamble += lines
}

// GetStarts returns a copy of the recorded hunk headers
func (r *RecordingTracer) GetStarts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.starts...)
}

// GetSignificantLines returns a copy of the lines traced as significant
func (r *RecordingTracer) GetSignificantLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// GetMatches returns a copy of the recorded matches
func (r *RecordingTracer) GetMatches() []TraceMatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]TraceMatch(nil), r.matches...)
}

// GetDecisions returns a copy of the recorded decisions
func (r *RecordingTracer) GetDecisions() []TraceDecision {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]TraceDecision(nil), r.decisions...)
}

// GetPreamble returns the number of preamble lines reported
func (r *RecordingTracer) GetPreamble() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.preamble
}

// ErrMockWrite is returned by FailingWriter
var ErrMockWrite = errors.New("mock write error")

// FailingWriter accepts Limit bytes and then fails every write
type FailingWriter struct {
	mu      sync.Mutex
	Limit   int
	written []byte
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	room := w.Limit - len(w.written)
	if room >= len(p) {
		w.written = append(w.written, p...)
		return len(p), nil
	}
	if room > 0 {
		w.written = append(w.written, p[:room]...)
		return room, ErrMockWrite
	}
	return 0, ErrMockWrite
}

// String returns what was written before failing
func (w *FailingWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.written)
}
