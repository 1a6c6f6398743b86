package tree

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SortKey selects the attribute siblings are ordered by.
type SortKey int

const (
	SortName SortKey = iota
	SortSize
	SortModified
	SortExtension
)

var sortKeyNames = []string{"name", "size", "modified", "extension"}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// ErrUnknownSortKey is returned by ParseSortKey for unrecognised names.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey maps a key name to a SortKey. The empty string is SortName.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortName, nil
	case "size":
		return SortSize, nil
	case "modified", "mtime", "time":
		return SortModified, nil
	case "extension", "ext":
		return SortExtension, nil
	}
	return SortName, fmt.Errorf("%q: %w (want name, size, modified or extension)", s, ErrUnknownSortKey)
}

// SortPolicy describes how entries within one sibling group are ordered.
//
// The zero value sorts by name, ascending, case-insensitively.
type SortPolicy struct {
	Key           SortKey
	CaseSensitive bool
	Natural       bool
	Reverse       bool
	DirsFirst     bool
	// DotfilesFirst orders siblings as dot-directories, directories,
	// dot-files, files. It takes precedence over DirsFirst.
	DotfilesFirst bool
}

// Sort returns a copy of entries with every sibling group ordered by policy.
// Each entry keeps its descendants directly behind it and its depth is left
// unchanged, so a valid pre-order sequence stays valid. The sort is stable.
func Sort(entries []Entry, policy SortPolicy) []Entry {
	out := make([]Entry, 0, len(entries))
	if len(entries) == 0 {
		return out
	}

	// children[p+1] lists the children of entry p; children[0] holds the
	// root-level entries.
	children := make([][]int, len(entries)+1)
	for i, p := range Parents(entries) {
		children[p+1] = append(children[p+1], i)
	}

	for _, group := range children {
		if len(group) < 2 {
			continue
		}
		slices.SortStableFunc(group, func(a, b int) int {
			return policy.Compare(entries[a], entries[b])
		})
	}

	var emit func(parent int)
	emit = func(parent int) {
		for _, c := range children[parent+1] {
			out = append(out, entries[c])
			emit(c)
		}
	}
	emit(-1)
	return out
}

// Compare orders two siblings. Reverse applies to the whole result, tiers
// included.
func (p SortPolicy) Compare(a, b Entry) int {
	c := cmp.Compare(p.tier(a), p.tier(b))
	if c == 0 {
		c = p.compareKey(a, b)
	}
	if p.Reverse {
		c = -c
	}
	return c
}

func (p SortPolicy) tier(e Entry) int {
	dir := e.IsDir()
	switch {
	case p.DotfilesFirst:
		dot := strings.HasPrefix(e.Name(), ".")
		switch {
		case dot && dir:
			return 0
		case dir:
			return 1
		case dot:
			return 2
		default:
			return 3
		}
	case p.DirsFirst:
		if dir {
			return 0
		}
		return 1
	}
	return 0
}

func (p SortPolicy) compareKey(a, b Entry) int {
	var c int
	switch p.Key {
	case SortSize:
		c = cmp.Compare(a.Meta.Size, b.Meta.Size)
	case SortModified:
		c = a.Meta.ModTime.Compare(b.Meta.ModTime)
	case SortExtension:
		c = p.compareNames(extension(a.Name()), extension(b.Name()))
	}
	if c != 0 {
		return c
	}
	return p.compareNames(a.Name(), b.Name())
}

func (p SortPolicy) compareNames(a, b string) int {
	if p.Natural {
		return naturalCompare(a, b, p.compareText)
	}
	return p.compareText(a, b)
}

func (p SortPolicy) compareText(a, b string) int {
	if p.CaseSensitive {
		return compareByClass(a, b)
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// extension returns the name's extension without the dot. A leading dot
// marks a hidden file, not an extension.
func extension(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return strings.TrimPrefix(ext, ".")
}

// compareByClass compares rune by rune, ranking symbols before digits,
// digits before uppercase and uppercase before lowercase letters. Runes of
// the same class compare by code point.
func compareByClass(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if c := cmp.Compare(runeClass(ra), runeClass(rb)); c != 0 {
			return c
		}
		if c := cmp.Compare(ra, rb); c != 0 {
			return c
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

func runeClass(r rune) int {
	switch {
	case unicode.IsDigit(r):
		return 1
	case unicode.IsUpper(r):
		return 2
	case unicode.IsLower(r):
		return 3
	default:
		return 0
	}
}
