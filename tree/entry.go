package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"
)

// Kind is the type of filesystem object an Entry describes.
type Kind int

const (
	File Kind = iota
	Dir
	Symlink
)

func (k Kind) String() string {
	switch k {
	case Dir:
		return "dir"
	case Symlink:
		return "symlink"
	default:
		return "file"
	}
}

// Meta holds the filesystem metadata carried through the tree untouched.
type Meta struct {
	Size    int64
	ModTime time.Time
	Mode    fs.FileMode
}

// Entry is one node of a pre-order node sequence.
//
// Depth counts from the walk root: the root's direct children are at depth 1.
// Parent and sibling relations are not stored; they follow from position and
// depth (see Scan).
type Entry struct {
	Path  string
	Depth int
	Kind  Kind
	Meta  Meta
}

// Name returns the last element of the entry's path.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

func (e Entry) IsDir() bool {
	return e.Kind == Dir
}

// ErrDepthJump is reported when an entry is more than one level deeper than
// the entry before it.
var ErrDepthJump = errors.New("depth jump")

// Validate checks that each entry is at most one level deeper than its
// predecessor. The sorter and layout tolerate sequences that fail this check.
func Validate(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.Depth > prev.Depth+1 {
			return fmt.Errorf("entry %d (%s): depth %d follows depth %d: %w", i, cur.Path, cur.Depth, prev.Depth, ErrDepthJump)
		}
	}
	return nil
}

// BaseDepth returns the smallest depth in the sequence, which is the depth of
// its root-level entries. An empty sequence has base depth 0.
func BaseDepth(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	base := entries[0].Depth
	for _, e := range entries[1:] {
		if e.Depth < base {
			base = e.Depth
		}
	}
	return base
}

// Scan visits entries in order and passes each index together with the
// indices of its ancestors, outermost first. An entry's parent is the nearest
// earlier entry with a smaller depth. The ancestors slice is reused between
// calls and must not be retained.
func Scan(entries []Entry, fn func(i int, ancestors []int)) {
	var stack []int
	for i, e := range entries {
		for len(stack) > 0 && entries[stack[len(stack)-1]].Depth >= e.Depth {
			stack = stack[:len(stack)-1]
		}
		fn(i, stack)
		stack = append(stack, i)
	}
}

// Parents returns, for every entry, the index of its parent or -1 for
// root-level entries.
func Parents(entries []Entry) []int {
	parents := make([]int, len(entries))
	Scan(entries, func(i int, ancestors []int) {
		parents[i] = -1
		if len(ancestors) > 0 {
			parents[i] = ancestors[len(ancestors)-1]
		}
	})
	return parents
}
