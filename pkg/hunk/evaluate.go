package hunk

import (
	"io"

	"github.com/Veraticus/hunk/pkg/interfaces"
	"github.com/Veraticus/hunk/pkg/matcher"
)

// Decision is the outcome of evaluating one hunk.
type Decision struct {
	Keep bool
	// Matched is set when some matcher hit a significant line.
	Matched bool
	// MatchIndex is the index of the winning matcher, or len(matchers).
	MatchIndex int
	// HasInclude reports whether an include matcher was seen while scanning.
	HasInclude bool
	Reason     string
}

// Decide applies the ordered matcher list to a hunk.
//
// Significant lines are scanned in order and, for each line, matchers in list
// order. The first hit across the whole hunk wins and is never replaced by a
// later line. Without a hit the hunk is dropped if an include matcher was
// seen, and kept otherwise.
func Decide(lines []Line, matchers []matcher.Matcher, tr interfaces.Tracer) Decision {
	if tr == nil {
		tr = interfaces.NopTracer{}
	}

	d := Decision{MatchIndex: len(matchers)}
	for _, l := range lines {
		if !l.Significant || d.Matched {
			continue
		}
		for i, m := range matchers {
			if m.Polarity == matcher.Include {
				d.HasInclude = true
			}
			if m.Match(l.Text) {
				d.Matched = true
				d.MatchIndex = i
				tr.Match(m, i, l.Text)
				break
			}
		}
	}

	switch {
	case !d.Matched && d.HasInclude:
		d.Reason = "no include pattern matched"
	case d.Matched && matchers[d.MatchIndex].Polarity == matcher.Exclude:
		d.Reason = "matched " + matchers[d.MatchIndex].String()
	case d.Matched:
		d.Keep = true
		d.Reason = "matched " + matchers[d.MatchIndex].String()
	default:
		d.Keep = true
		d.Reason = "no pattern matched"
	}

	tr.Decision(d.Keep, d.Reason)
	return d
}

// Evaluator decides hunks and writes the kept ones to an output stream.
type Evaluator struct {
	out      io.Writer
	matchers []matcher.Matcher
	tracer   interfaces.Tracer
}

// NewEvaluator creates an evaluator writing kept hunks to out
func NewEvaluator(out io.Writer, matchers []matcher.Matcher, tr interfaces.Tracer) *Evaluator {
	if tr == nil {
		tr = interfaces.NopTracer{}
	}
	return &Evaluator{
		out:      out,
		matchers: matchers,
		tracer:   tr,
	}
}

// Evaluate decides the hunk and, if it is kept, writes every line verbatim in
// input order. It returns the number of bytes written.
func (e *Evaluator) Evaluate(lines []Line) (Decision, int, error) {
	d := Decide(lines, e.matchers, e.tracer)
	if !d.Keep {
		return d, 0, nil
	}

	written := 0
	for _, l := range lines {
		n, err := io.WriteString(e.out, l.Text)
		written += n
		if err != nil {
			return d, written, err
		}
	}
	return d, written, nil
}
