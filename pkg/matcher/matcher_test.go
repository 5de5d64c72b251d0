package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		raw     bool
		line    string
		want    bool
	}{
		{name: "literal substring", pattern: "foo", raw: true, line: "+call foo()\n", want: true},
		{name: "literal no match", pattern: "foo", raw: true, line: "+call bar()\n", want: false},
		{name: "literal is not searched in pattern", pattern: "+call foo() extra", raw: true, line: "+call foo()", want: false},
		{name: "literal regex metacharacters", pattern: "a.b", raw: true, line: "+axb\n", want: false},
		{name: "literal regex metacharacters exact", pattern: "a.b", raw: true, line: "+a.b\n", want: true},
		{name: "literal empty pattern", pattern: "", raw: true, line: "-anything\n", want: true},
		{name: "regex anywhere", pattern: `fo+`, line: "+x := fooo\n", want: true},
		{name: "regex anchored", pattern: `^\+import`, line: "+import \"os\"\n", want: true},
		{name: "regex anchored miss", pattern: `^import`, line: "+import \"os\"\n", want: false},
		{name: "regex case sensitive", pattern: `TODO`, line: "+// todo later\n", want: false},
		{name: "regex alternation", pattern: `(error|failed)`, line: "-return failed\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Include, tt.pattern, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.line))
		})
	}
}

func TestMatcher_Kind(t *testing.T) {
	m, err := New(Exclude, "x", true)
	require.NoError(t, err)
	assert.Equal(t, Literal, m.Kind)

	m, err = New(Exclude, "x", false)
	require.NoError(t, err)
	assert.Equal(t, Regex, m.Kind)
}

func TestMatcher_InvalidRegex(t *testing.T) {
	_, err := New(Include, "foo(", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	// The same text is fine as a literal.
	m, err := New(Include, "foo(", true)
	require.NoError(t, err)
	assert.True(t, m.Match("+foo(1)\n"))
}

func TestMatcher_String(t *testing.T) {
	in, err := New(Include, "foo", true)
	require.NoError(t, err)
	out, err := New(Exclude, `b.r`, false)
	require.NoError(t, err)

	assert.Equal(t, "--in=foo", in.String())
	assert.Equal(t, "--out=b.r", out.String())
}

func TestCompile(t *testing.T) {
	rules := []Rule{
		{Polarity: Exclude, Pattern: "a"},
		{Polarity: Include, Pattern: "b"},
		{Polarity: Exclude, Pattern: "c"},
	}

	matchers, err := Compile(rules, false)
	require.NoError(t, err)
	require.Len(t, matchers, 3)
	for i, r := range rules {
		assert.Equal(t, r.Polarity, matchers[i].Polarity)
		assert.Equal(t, r.Pattern, matchers[i].Pattern)
	}
	assert.True(t, HasInclude(matchers))
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(nil, false)
	assert.ErrorIs(t, err, ErrNoRules)

	_, err = Compile([]Rule{{Polarity: Include, Pattern: "ok"}, {Polarity: Exclude, Pattern: "[bad"}}, false)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestHasInclude(t *testing.T) {
	assert.False(t, HasInclude(nil))
	assert.False(t, HasInclude([]Matcher{{Polarity: Exclude}, {Polarity: Exclude}}))
	assert.True(t, HasInclude([]Matcher{{Polarity: Exclude}, {Polarity: Include}}))
}
