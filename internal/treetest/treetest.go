// Package treetest builds node sequences for tests.
package treetest

import (
	"path"
	"strings"

	"github.com/hayeah/lstr/tree"
)

// Root is the path every parsed outline hangs from.
const Root = "/r"

// Parse builds entries from an indented outline, two spaces per level. A
// trailing slash marks a directory, an "@" prefix a symlink. An optional
// size follows the name after a space.
//
//	docs/
//	  a.md 120
//	src/
func Parse(outline string) []tree.Entry {
	var entries []tree.Entry
	var stack []string
	for _, line := range strings.Split(outline, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		level := (len(line) - len(trimmed)) / 2
		if level > len(stack) {
			level = len(stack)
		}
		stack = stack[:level]

		fields := strings.Fields(trimmed)
		name := fields[0]
		e := tree.Entry{Depth: level + 1, Kind: tree.File}
		switch {
		case strings.HasSuffix(name, "/"):
			e.Kind = tree.Dir
			name = strings.TrimSuffix(name, "/")
			e.Meta.Mode = 0755
		case strings.HasPrefix(name, "@"):
			e.Kind = tree.Symlink
			name = strings.TrimPrefix(name, "@")
			e.Meta.Mode = 0777
		default:
			e.Meta.Mode = 0644
		}
		if len(fields) > 1 {
			e.Meta.Size = parseSize(fields[1])
		}
		e.Path = path.Join(Root, path.Join(stack...), name)
		entries = append(entries, e)
		stack = append(stack, name)
	}
	return entries
}

func parseSize(s string) int64 {
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

// Rel lists entry paths relative to Root.
func Rel(entries []tree.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = strings.TrimPrefix(e.Path, Root+"/")
	}
	return out
}

// Abs turns Root-relative paths into absolute ones.
func Abs(rel ...string) []string {
	out := make([]string, len(rel))
	for i, r := range rel {
		out[i] = path.Join(Root, r)
	}
	return out
}
