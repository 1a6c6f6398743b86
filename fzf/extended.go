package fzf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extended matches names against space-separated terms, all of which must
// hold. Each term is a case-insensitive substring with optional modifiers:
//
//	^foo   name starts with foo
//	foo$   name ends with foo
//	'foo   foo starts at a word boundary
//	'foo'  foo is a whole word
//
// A term that is nothing but modifiers is still being typed and matches
// everything.
type Extended struct{}

type term struct {
	text       string // lower-cased core text
	anchorHead bool
	anchorTail bool
	wordPrefix bool
	wordExact  bool
}

func (Extended) Match(query string, names []string) []int {
	terms := parseTerms(query)
	var out []int
NextName:
	for i, name := range names {
		lower := strings.ToLower(name)
		for _, t := range terms {
			if !t.matches(lower) {
				continue NextName
			}
		}
		out = append(out, i)
	}
	return out
}

func parseTerms(query string) []term {
	var terms []term
	for _, p := range strings.Fields(query) {
		var t term
		if strings.HasPrefix(p, "'") {
			p = p[1:]
			if len(p) > 1 && strings.HasSuffix(p, "'") {
				t.wordExact = true
				p = p[:len(p)-1]
			} else {
				t.wordPrefix = true
			}
		}
		if strings.HasPrefix(p, "^") {
			t.anchorHead = true
			p = p[1:]
		}
		if strings.HasSuffix(p, "$") {
			t.anchorTail = true
			p = p[:len(p)-1]
		}
		if p == "" {
			continue
		}
		t.text = strings.ToLower(p)
		terms = append(terms, t)
	}
	return terms
}

func (t term) matches(name string) bool {
	if t.anchorHead && t.anchorTail && !t.wordExact && !t.wordPrefix {
		return name == t.text
	}

	sub := name
	if t.anchorHead {
		if !strings.HasPrefix(name, t.text) {
			return false
		}
		sub = name[:len(t.text)]
	}
	if t.anchorTail {
		if !strings.HasSuffix(name, t.text) {
			return false
		}
		sub = name[len(name)-len(t.text):]
	}

	switch {
	case t.wordExact:
		return containsWord(sub, t.text, true)
	case t.wordPrefix:
		return containsWord(sub, t.text, false)
	}
	return strings.Contains(sub, t.text)
}

// containsWord reports whether needle occurs in s with a word boundary on its
// left, and also on its right when both is set.
func containsWord(s, needle string, both bool) bool {
	for start := 0; start <= len(s)-len(needle); {
		rel := strings.Index(s[start:], needle)
		if rel < 0 {
			return false
		}
		idx := start + rel
		end := idx + len(needle)
		before, _ := utf8.DecodeLastRuneInString(s[:idx])
		after, _ := utf8.DecodeRuneInString(s[end:])
		left := idx == 0 || !isWordChar(before)
		right := end == len(s) || !isWordChar(after)
		if left && (right || !both) {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
