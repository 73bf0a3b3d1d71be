package scope

import (
	"regexp"
	"strings"
)

// RegexList is an ordered list of compiled regular expressions used to decide
// which test cases execute. An empty list includes every test. Matching is an
// unanchored search: a pattern matching any portion of the full test name is
// sufficient.
//
// RegexList implements flag.Value so that repeated command-line options can
// accumulate patterns.
type RegexList struct {
	patterns []*regexp.Regexp
}

// NewRegexList compiles the given patterns into a list. If any pattern is
// malformed it returns nil and an error wrapping ErrBadPattern.
func NewRegexList(patterns ...string) (*RegexList, error) {
	r := &RegexList{}
	if err := r.Configure(patterns); err != nil {
		return nil, err
	}
	return r, nil
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser; it compiles one pattern and
// appends it to the list.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return newBadPatternError(value, err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Configure replaces the whole list with the given patterns. Every pattern is
// compiled before any replacement happens, so a compile failure leaves the
// previous list intact.
func (r *RegexList) Configure(patterns []string) error {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		rx, err := regexp.Compile(p)
		if err != nil {
			return newBadPatternError(p, err)
		}
		compiled = append(compiled, rx)
	}
	r.patterns = compiled
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// decide reports whether a test with the given full name should execute.
func (r RegexList) decide(fullName string) bool {
	return !r.IsDefined() || r.AnyMatch(fullName)
}
