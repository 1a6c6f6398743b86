// Package fzf decides which entry names satisfy an interactive search query.
package fzf

import (
	"fmt"
	"strings"
)

// Matcher selects the names that satisfy a query.
type Matcher interface {
	// Match returns the indices of the matching names in ascending order.
	Match(query string, names []string) []int
}

// Mode names a Matcher implementation.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeExtended  Mode = "extended"
	ModeFuzzy     Mode = "fuzzy"
)

// New returns the Matcher for mode. The empty mode is ModeSubstring.
func New(mode Mode) (Matcher, error) {
	switch Mode(strings.ToLower(string(mode))) {
	case "", ModeSubstring:
		return Substring{}, nil
	case ModeExtended:
		return Extended{}, nil
	case ModeFuzzy:
		return Fuzzy{}, nil
	}
	return nil, fmt.Errorf("unknown search mode %q (want substring, extended or fuzzy)", mode)
}

// Substring matches names containing the query, ignoring case.
type Substring struct{}

func (Substring) Match(query string, names []string) []int {
	q := strings.ToLower(query)
	var out []int
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, i)
		}
	}
	return out
}
