package tree

import (
	"cmp"
	"strings"
)

// naturalCompare splits both names into runs of ASCII digits and runs of
// everything else. Digit runs compare by numeric value, other runs with text.
// A digit run sorts before a text run in the same position.
func naturalCompare(a, b string, text func(a, b string) int) int {
	for a != "" && b != "" {
		ca, restA := nextRun(a)
		cb, restB := nextRun(b)

		da, db := isDigit(ca[0]), isDigit(cb[0])
		var c int
		switch {
		case da && db:
			c = compareNumeric(ca, cb)
		case da:
			c = -1
		case db:
			c = 1
		default:
			c = text(ca, cb)
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}
	return cmp.Compare(len(a), len(b))
}

// nextRun splits s after its leading run of digits or non-digits.
func nextRun(s string) (run, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

// compareNumeric compares two digit runs of arbitrary length by value. Equal
// values with fewer leading zeros sort first.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return cmp.Compare(len(a), len(b))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
