package tree

import "strings"

// Glyphs are the strings used to draw branches. All four should have the
// same display width.
type Glyphs struct {
	Branch string // entry with later siblings
	Last   string // last entry of its group
	Pipe   string // ancestor level with later siblings
	Blank  string // ancestor level without later siblings
}

var DefaultGlyphs = Glyphs{
	Branch: "├── ",
	Last:   "└── ",
	Pipe:   "│   ",
	Blank:  "    ",
}

// Branch describes how one entry hangs off the tree drawn above it.
type Branch struct {
	// Last is set when no later sibling follows the entry.
	Last bool
	// Trail has one element per level above the entry. An element is true
	// when a vertical line continues through that level.
	Trail []bool
}

func (b Branch) Prefix(g Glyphs) string {
	var sb strings.Builder
	for _, open := range b.Trail {
		if open {
			sb.WriteString(g.Pipe)
		} else {
			sb.WriteString(g.Blank)
		}
	}
	return sb.String()
}

func (b Branch) Connector(g Glyphs) string {
	if b.Last {
		return g.Last
	}
	return g.Branch
}

// String draws prefix and connector with DefaultGlyphs.
func (b Branch) String() string {
	return b.Prefix(DefaultGlyphs) + b.Connector(DefaultGlyphs)
}

// Layout computes the branch of every entry from the depths alone.
//
// An entry at depth d is last when the next entry at depth <= d is shallower
// than d or absent. Levels skipped by a depth jump are drawn blank.
func Layout(entries []Entry) []Branch {
	out := make([]Branch, len(entries))
	base := BaseDepth(entries)

	// later[l] records whether an entry at level l was seen to the right
	// without a shallower entry in between.
	var later []bool
	for i := len(entries) - 1; i >= 0; i-- {
		level := entries[i].Depth - base
		for len(later) <= level {
			later = append(later, false)
		}
		out[i].Last = !later[level]
		later[level] = true
		later = later[:level+1]
	}

	Scan(entries, func(i int, ancestors []int) {
		depth := entries[i].Depth
		trail := make([]bool, 0, depth-base)
		next := base
		for _, a := range ancestors {
			for ; next < entries[a].Depth; next++ {
				trail = append(trail, false)
			}
			trail = append(trail, !out[a].Last)
			next = entries[a].Depth + 1
		}
		for ; next < depth; next++ {
			trail = append(trail, false)
		}
		out[i].Trail = trail
	})
	return out
}
