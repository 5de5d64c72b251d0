package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/hunk/pkg/matcher"
)

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "hunk", false, false)

	l.HunkStart("--- a/x\n")
	l.Line("+y\n", true)
	l.Decision(true, "no pattern matched")
	l.Printf("anything %d", 1)

	assert.False(t, l.Enabled())
	assert.Empty(t, buf.String())
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled())
	l.Printf("ignored")
}

func TestLogger_Events(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "hunk", true, false)
	m, err := matcher.New(matcher.Exclude, "y", true)
	require.NoError(t, err)

	l.Preamble(3)
	l.HunkStart("--- a/x\n")
	l.Line("--- a/x\n", false)
	l.Line("+y\r\n", true)
	l.Match(m, 1, "+y\r\n")
	l.Decision(false, "matched --out=y")

	want := "hunk: dropping 3 line(s) before the first hunk\n" +
		"hunk: parsing hunk \"--- a/x\"\n" +
		"hunk:     \"--- a/x\"\n" +
		"hunk:   * \"+y\"\n" +
		"hunk: pattern #1 --out=y matched \"+y\"\n" +
		"hunk: discard hunk: matched --out=y\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Color(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "hunk", true, true)

	l.Decision(true, "no pattern matched")
	l.Decision(false, "no include pattern matched")

	assert.Equal(t,
		"hunk: \033[32mkeep\033[0m hunk: no pattern matched\n"+
			"hunk: \033[31mdiscard\033[0m hunk: no include pattern matched\n",
		buf.String())
}
