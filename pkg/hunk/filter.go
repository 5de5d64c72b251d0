package hunk

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/hunk/pkg/interfaces"
	"github.com/Veraticus/hunk/pkg/matcher"
)

// ErrWrite wraps failures writing kept hunks to the output stream.
var ErrWrite = errors.New("write failed")

// Stats counts what a Filter has done so far.
type Stats struct {
	LinesRead     int
	LinesWritten  int
	PreambleLines int
	Hunks         int
	Kept          int
	Discarded     int
}

// Filter reads diff streams and writes the hunks that survive the matchers.
// A Filter handles one stream at a time; Stats accumulate across streams.
type Filter struct {
	opts      Options
	tracer    interfaces.Tracer
	evaluator *Evaluator
	stats     Stats
}

// NewFilter creates a filter writing kept hunks to out
func NewFilter(out io.Writer, matchers []matcher.Matcher, opts Options, tr interfaces.Tracer) *Filter {
	if tr == nil {
		tr = interfaces.NopTracer{}
	}
	return &Filter{
		opts:      opts,
		tracer:    tr,
		evaluator: NewEvaluator(out, matchers, tr),
	}
}

// Process filters one stream to completion. The pending hunk is always
// flushed at end of stream. Read errors stop processing; hunks already
// written stay written.
func (f *Filter) Process(r io.Reader) error {
	var buf Buffer
	br := bufio.NewReader(r)

	for {
		text, err := br.ReadString('\n')
		if text != "" {
			if ferr := f.handle(&buf, text); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
	}

	return f.emit(buf.Flush())
}

// handle classifies one raw line and routes it into the buffer
func (f *Filter) handle(buf *Buffer, text string) error {
	f.stats.LinesRead++

	kind, significant := Classify(text, f.opts)
	line := Line{Text: text, Significant: significant}

	if !kind.Boundary() {
		f.tracer.Line(text, significant)
		buf.Append(line)
		return nil
	}

	prev, wasOpen := buf.Start(line)
	f.tracer.HunkStart(text)
	f.tracer.Line(text, significant)
	if !wasOpen {
		if len(prev) > 0 {
			f.stats.PreambleLines += len(prev)
			f.tracer.Preamble(len(prev))
		}
		return nil
	}
	return f.emit(prev)
}

// emit evaluates a finished hunk
func (f *Filter) emit(lines []Line) error {
	if len(lines) == 0 {
		return nil
	}

	f.stats.Hunks++
	d, _, err := f.evaluator.Evaluate(lines)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if d.Keep {
		f.stats.Kept++
		f.stats.LinesWritten += len(lines)
	} else {
		f.stats.Discarded++
	}
	return nil
}

// Stats returns the counters accumulated so far
func (f *Filter) Stats() Stats {
	return f.stats
}
