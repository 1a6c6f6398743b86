package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// genTree draws a random, valid pre-order sequence with unique paths.
func genTree() *rapid.Generator[[]Entry] {
	return rapid.Custom(func(t *rapid.T) []Entry {
		var out []Entry
		var fill func(parent string, depth int)
		fill = func(parent string, depth int) {
			n := rapid.IntRange(0, 4).Draw(t, "children")
			seen := map[string]bool{}
			for i := 0; i < n; i++ {
				name := rapid.StringMatching(`\.?[a-zA-Z_0-9]{1,5}`).Draw(t, "name")
				if seen[name] {
					continue
				}
				seen[name] = true

				kind := File
				if depth < 4 && rapid.Bool().Draw(t, "dir") {
					kind = Dir
				}
				e := Entry{
					Path:  parent + "/" + name,
					Depth: depth,
					Kind:  kind,
					Meta: Meta{
						Size:    rapid.Int64Range(0, 4096).Draw(t, "size"),
						ModTime: time.Unix(rapid.Int64Range(0, 10).Draw(t, "mtime"), 0),
					},
				}
				out = append(out, e)
				if kind == Dir {
					fill(e.Path, depth+1)
				}
			}
		}
		fill(testRoot, 1)
		return out
	})
}

func genPolicy() *rapid.Generator[SortPolicy] {
	return rapid.Custom(func(t *rapid.T) SortPolicy {
		return SortPolicy{
			Key:           rapid.SampledFrom([]SortKey{SortName, SortSize, SortModified, SortExtension}).Draw(t, "key"),
			CaseSensitive: rapid.Bool().Draw(t, "caseSensitive"),
			Natural:       rapid.Bool().Draw(t, "natural"),
			Reverse:       rapid.Bool().Draw(t, "reverse"),
			DirsFirst:     rapid.Bool().Draw(t, "dirsFirst"),
			DotfilesFirst: rapid.Bool().Draw(t, "dotfilesFirst"),
		}
	})
}

func parentPaths(entries []Entry) map[string]string {
	out := make(map[string]string, len(entries))
	for i, p := range Parents(entries) {
		if p < 0 {
			out[entries[i].Path] = ""
			continue
		}
		out[entries[i].Path] = entries[p].Path
	}
	return out
}

func TestSort_PreservesTopology(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		entries := genTree().Draw(t, "entries")
		policy := genPolicy().Draw(t, "policy")

		sorted := Sort(entries, policy)

		assert.Len(sorted, len(entries))
		assert.NoError(Validate(sorted))
		assert.Equal(parentPaths(entries), parentPaths(sorted))

		depths := map[string]int{}
		for _, e := range entries {
			depths[e.Path] = e.Depth
		}
		for _, e := range sorted {
			assert.Equal(depths[e.Path], e.Depth, e.Path)
		}
	})
}

func TestSort_SiblingsFollowPolicy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		policy := genPolicy().Draw(t, "policy")
		sorted := Sort(genTree().Draw(t, "entries"), policy)

		last := map[int]int{}
		for i, p := range Parents(sorted) {
			if prev, ok := last[p]; ok {
				assert.LessOrEqual(policy.Compare(sorted[prev], sorted[i]), 0,
					"%s before %s", sorted[prev].Path, sorted[i].Path)
			}
			last[p] = i
		}
	})
}

func TestSort_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		policy := genPolicy().Draw(t, "policy")
		once := Sort(genTree().Draw(t, "entries"), policy)
		assert.Equal(once, Sort(once, policy))
	})
}
