package main

import (
	"strings"

	"github.com/Veraticus/hunk/pkg/matcher"
)

// ruleValue is a pflag.Value appending rules of one polarity to a list
// shared by all rule flags, so command-line order is kept across --in and --out.
type ruleValue struct {
	rules    *[]matcher.Rule
	polarity matcher.Polarity
}

func (v *ruleValue) String() string {
	if v.rules == nil {
		return ""
	}
	var patterns []string
	for _, r := range *v.rules {
		if r.Polarity == v.polarity {
			patterns = append(patterns, r.Pattern)
		}
	}
	return "[" + strings.Join(patterns, ",") + "]"
}

func (v *ruleValue) Set(pattern string) error {
	*v.rules = append(*v.rules, matcher.Rule{Polarity: v.polarity, Pattern: pattern})
	return nil
}

func (v *ruleValue) Type() string {
	return "pattern"
}
