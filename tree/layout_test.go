package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func drawn(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, b := range Layout(entries) {
		out[i] = b.String() + entries[i].Name()
	}
	return out
}

func TestLayout_Connectors(t *testing.T) {
	assert := assert.New(t)

	entries := Sort(parseTree(`
src/
  main.rs
  lib.rs
docs/
  a.md
`), SortPolicy{})

	assert.Equal([]string{
		"├── docs",
		"│   └── a.md",
		"└── src",
		"    ├── lib.rs",
		"    └── main.rs",
	}, drawn(entries))

	var last []bool
	for _, b := range Layout(entries) {
		last = append(last, b.Last)
	}
	assert.Equal([]bool{false, true, true, false, true}, last)
}

func TestLayout_OpenAncestors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{
		"├── a",
		"│   ├── b",
		"│   │   └── c",
		"│   └── d",
		"└── e",
	}, drawn(parseTree(`
a/
  b/
    c
  d
e
`)))
}

func TestLayout_Degenerate(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(Layout(nil))
	assert.Equal([]string{"└── only"}, drawn(parseTree("only\n")))

	jump := []Entry{
		{Path: "/r/a", Depth: 1, Kind: Dir},
		{Path: "/r/a/b/c", Depth: 3},
		{Path: "/r/z", Depth: 1},
	}
	assert.Equal([]string{
		"├── a",
		"│       └── c",
		"└── z",
	}, drawn(jump))
}

func TestLayout_CustomGlyphs(t *testing.T) {
	assert := assert.New(t)

	ascii := Glyphs{Branch: "|-- ", Last: "`-- ", Pipe: "|   ", Blank: "    "}
	entries := parseTree("a/\n  b\nc\n")
	var lines []string
	for i, b := range Layout(entries) {
		lines = append(lines, b.Prefix(ascii)+b.Connector(ascii)+entries[i].Name())
	}
	assert.Equal([]string{"|-- a", "|   `-- b", "`-- c"}, lines)
}

// lastByLookahead is the direct definition: scan forward to the next entry
// at the same depth or shallower.
func lastByLookahead(entries []Entry, i int) bool {
	for j := i + 1; j < len(entries); j++ {
		if entries[j].Depth <= entries[i].Depth {
			return entries[j].Depth < entries[i].Depth
		}
	}
	return true
}

func TestLayout_MatchesLookahead(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		entries := Sort(genTree().Draw(t, "entries"), genPolicy().Draw(t, "policy"))
		branches := Layout(entries)
		base := BaseDepth(entries)
		for i, b := range branches {
			assert.Equal(lastByLookahead(entries, i), b.Last, entries[i].Path)
			assert.Len(b.Trail, entries[i].Depth-base, entries[i].Path)
		}
	})
}
