package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSort_SiblingOrder(t *testing.T) {
	cases := []struct {
		name     string
		outline  string
		policy   SortPolicy
		expected []string
	}{
		{
			name:     "default is case-insensitive name",
			outline:  "b\nA\nc\n",
			expected: []string{"A", "b", "c"},
		},
		{
			name:     "case-sensitive ranks symbols, digits, upper, lower",
			outline:  "b\nA\n1\na\n_x\nB\n",
			policy:   SortPolicy{CaseSensitive: true},
			expected: []string{"_x", "1", "A", "B", "a", "b"},
		},
		{
			name:     "lexical without natural",
			outline:  "file10\nfile2\nfile1\n",
			expected: []string{"file1", "file10", "file2"},
		},
		{
			name:     "natural",
			outline:  "file10\nfile2\nfile1\n",
			policy:   SortPolicy{Natural: true},
			expected: []string{"file1", "file2", "file10"},
		},
		{
			name:     "natural with leading zeros",
			outline:  "a001\na01\na1\na2\n",
			policy:   SortPolicy{Natural: true},
			expected: []string{"a1", "a01", "a001", "a2"},
		},
		{
			name:     "natural puts digits before text",
			outline:  "v1.10\nv1.9\nvx\nv1\n",
			policy:   SortPolicy{Natural: true},
			expected: []string{"v1", "v1.9", "v1.10", "vx"},
		},
		{
			name:     "dirs first",
			outline:  "a\nb/\nc\nd/\n",
			policy:   SortPolicy{DirsFirst: true},
			expected: []string{"b", "d", "a", "c"},
		},
		{
			name:     "dotfile tiers",
			outline:  "README.md\nsrc/\n.bashrc\n.config/\n",
			policy:   SortPolicy{DotfilesFirst: true},
			expected: []string{".config", "src", ".bashrc", "README.md"},
		},
		{
			name:     "dotfile tiers override dirs first",
			outline:  "README.md\nsrc/\n.bashrc\n.config/\n",
			policy:   SortPolicy{DotfilesFirst: true, DirsFirst: true},
			expected: []string{".config", "src", ".bashrc", "README.md"},
		},
		{
			name:     "reverse flips the tiers too",
			outline:  "README.md\nsrc/\n.bashrc\n.config/\n",
			policy:   SortPolicy{DotfilesFirst: true, Reverse: true},
			expected: []string{"README.md", ".bashrc", "src", ".config"},
		},
		{
			name:     "reverse dirs first puts files first",
			outline:  "a\nb/\n",
			policy:   SortPolicy{DirsFirst: true, Reverse: true},
			expected: []string{"a", "b"},
		},
		{
			name:     "extension",
			outline:  "a.txt\nb.go\nMakefile\nc.md\n.env\nd.go\n",
			policy:   SortPolicy{Key: SortExtension},
			expected: []string{".env", "Makefile", "b.go", "d.go", "c.md", "a.txt"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			got := Sort(parseTree(tc.outline), tc.policy)
			assert.Equal(tc.expected, names(got))
		})
	}
}

func TestSort_KeepsSubtreesWithParents(t *testing.T) {
	assert := assert.New(t)

	entries := parseTree(`
src/
  main.rs
  lib.rs
docs/
  a.md
`)
	sorted := Sort(entries, SortPolicy{})
	assert.Equal([]string{"docs/", "docs/a.md", "src/", "src/lib.rs", "src/main.rs"}, relPaths(sorted))
	for _, e := range sorted {
		if e.IsDir() {
			assert.Equal(1, e.Depth)
		} else {
			assert.Equal(2, e.Depth)
		}
	}
	assert.NoError(Validate(sorted))

	// the input is left alone
	assert.Equal([]string{"src/", "src/main.rs", "src/lib.rs", "docs/", "docs/a.md"}, relPaths(entries))
}

func TestSort_NestedReverse(t *testing.T) {
	assert := assert.New(t)

	entries := parseTree(`
a/
  x/
    2
    1
  y
b
`)
	sorted := Sort(entries, SortPolicy{Reverse: true})
	assert.Equal([]string{"b", "a/", "a/y", "a/x/", "a/x/2", "a/x/1"}, relPaths(sorted))
}

func TestSort_SizeAndModified(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Path: "/r/big", Depth: 1, Meta: Meta{Size: 300, ModTime: now}},
		{Path: "/r/small", Depth: 1, Meta: Meta{Size: 10, ModTime: now.Add(time.Hour)}},
		{Path: "/r/b-mid", Depth: 1, Meta: Meta{Size: 100, ModTime: now.Add(-time.Hour)}},
		{Path: "/r/a-mid", Depth: 1, Meta: Meta{Size: 100, ModTime: now.Add(-time.Hour)}},
	}

	bySize := Sort(entries, SortPolicy{Key: SortSize})
	assert.Equal([]string{"small", "a-mid", "b-mid", "big"}, names(bySize))

	byTime := Sort(entries, SortPolicy{Key: SortModified, Reverse: true})
	assert.Equal([]string{"small", "big", "b-mid", "a-mid"}, names(byTime))
}

func TestSort_StableForEqualKeys(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"A", "a"}, names(Sort(parseTree("A\na\n"), SortPolicy{})))
	assert.Equal([]string{"a", "A"}, names(Sort(parseTree("a\nA\n"), SortPolicy{})))
	assert.Equal([]string{"a", "A"}, names(Sort(parseTree("a\nA\n"), SortPolicy{Reverse: true})))
}

func TestSort_Degenerate(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(Sort(nil, SortPolicy{}))
	assert.Equal([]string{"only"}, names(Sort(parseTree("only\n"), SortPolicy{Reverse: true})))

	// a depth jump keeps the deep entry with the nearest shallower entry
	jumpy := []Entry{
		{Path: "/r/z", Depth: 1, Kind: Dir},
		{Path: "/r/z/q/deep", Depth: 3},
		{Path: "/r/a", Depth: 1},
	}
	sorted := Sort(jumpy, SortPolicy{})
	assert.Equal([]string{"a", "z", "deep"}, names(sorted))
	assert.Equal([]int{1, 1, 3}, []int{sorted[0].Depth, sorted[1].Depth, sorted[2].Depth})
}

func TestParseSortKey(t *testing.T) {
	assert := assert.New(t)

	for in, want := range map[string]SortKey{
		"":          SortName,
		"name":      SortName,
		"Size":      SortSize,
		"modified":  SortModified,
		"mtime":     SortModified,
		"extension": SortExtension,
		"ext":       SortExtension,
	} {
		got, err := ParseSortKey(in)
		assert.NoError(err, in)
		assert.Equal(want, got, in)
	}

	_, err := ParseSortKey("color")
	assert.ErrorIs(err, ErrUnknownSortKey)
	assert.Equal("modified", SortModified.String())
}
