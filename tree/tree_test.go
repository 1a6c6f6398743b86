package tree

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testRoot = "/r"

// parseTree builds entries from an indented outline. Two spaces per level,
// a trailing slash marks a directory.
func parseTree(outline string) []Entry {
	var entries []Entry
	var stack []string
	for _, line := range strings.Split(outline, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		level := (len(line) - len(trimmed)) / 2
		stack = stack[:level]

		kind := File
		name := trimmed
		if strings.HasSuffix(name, "/") {
			kind = Dir
			name = strings.TrimSuffix(name, "/")
		}
		p := path.Join(append([]string{testRoot}, append(stack, name)...)...)
		entries = append(entries, Entry{Path: p, Depth: level + 1, Kind: kind})
		stack = append(stack, name)
	}
	return entries
}

// relPaths lists entries relative to the test root, dirs with a trailing slash.
func relPaths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = strings.TrimPrefix(e.Path, testRoot+"/")
		if e.IsDir() {
			out[i] += "/"
		}
	}
	return out
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestScan_Ancestors(t *testing.T) {
	assert := assert.New(t)

	entries := parseTree(`
a/
  b/
    c
  d
e
`)
	var got [][]int
	Scan(entries, func(i int, ancestors []int) {
		got = append(got, append([]int(nil), ancestors...))
	})
	assert.Equal([][]int{nil, {0}, {0, 1}, {0}, nil}, got)
	assert.Equal([]int{-1, 0, 1, 0, -1}, Parents(entries))
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Validate(nil))
	assert.NoError(Validate(parseTree("a/\n  b\nc\n")))

	bad := []Entry{
		{Path: "/r/a", Depth: 1, Kind: Dir},
		{Path: "/r/a/b/c", Depth: 3},
	}
	err := Validate(bad)
	assert.ErrorIs(err, ErrDepthJump)
	assert.Contains(err.Error(), "/r/a/b/c")
}

func TestBaseDepth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, BaseDepth(nil))
	assert.Equal(1, BaseDepth(parseTree("a/\n  b\n")))
	assert.Equal(2, BaseDepth([]Entry{{Depth: 3}, {Depth: 2}, {Depth: 4}}))
}

func TestEntry_Name(t *testing.T) {
	assert := assert.New(t)

	e := Entry{Path: "/r/src/main.go"}
	assert.Equal("main.go", e.Name())
	assert.False(e.IsDir())
	assert.Equal("symlink", Symlink.String())
}
