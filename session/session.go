// Package session holds the state of an interactive tree browser: the full
// node set, which directories are expanded, the derived visible rows, the
// cursor and the search filter.
//
// A Session is driven one command at a time and is not safe for concurrent
// use. Every command leaves the visible rows and cursor consistent.
package session

import (
	"slices"

	"github.com/hayeah/lstr/fzf"
	"github.com/hayeah/lstr/tree"
)

// Mode is the input mode of a session.
type Mode int

const (
	Browsing Mode = iota
	Searching
)

func (m Mode) String() string {
	if m == Searching {
		return "searching"
	}
	return "browsing"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Action tells the caller what to do after a command.
type Action int

const (
	ActionNone   Action = iota
	ActionOpen          // open Path in an editor, then redraw everything
	ActionQuit          // leave without output
	ActionSelect        // leave and print Path
)

// Outcome is returned by commands that reach outside the session.
type Outcome struct {
	Action Action
	Path   string
}

// Options configures a new session.
type Options struct {
	// ExpandLevel expands every directory whose depth is below it. Root-level
	// entries are at depth 1, so 1 opens nothing and 2 opens the root-level
	// directories.
	ExpandLevel int
	Policy      tree.SortPolicy
	// Matcher filters names while searching. Nil means fzf.Substring.
	Matcher fzf.Matcher
}

// Session is the state of one interactive browser.
type Session struct {
	entries []tree.Entry
	parents []int
	byPath  map[string]int
	names   []string
	base    int

	policy   tree.SortPolicy
	matcher  fzf.Matcher
	expanded map[string]bool

	mode  Mode
	query string

	// visible holds indices into entries; pos is its inverse, -1 when hidden.
	visible  []int
	pos      []int
	hits     []bool
	branches []tree.Branch
	cursor   int
}

// New sorts entries with opts.Policy and builds the initial view.
func New(entries []tree.Entry, opts Options) *Session {
	s := &Session{
		policy:   opts.Policy,
		matcher:  opts.Matcher,
		expanded: map[string]bool{},
	}
	if s.matcher == nil {
		s.matcher = fzf.Substring{}
	}
	s.load(tree.Sort(entries, opts.Policy))

	for _, e := range s.entries {
		if e.IsDir() && e.Depth-s.base+1 < opts.ExpandLevel {
			s.expanded[e.Path] = true
		}
	}
	s.recompute()
	s.cursor = 0
	if len(s.visible) == 0 {
		s.cursor = -1
	}
	return s
}

func (s *Session) load(entries []tree.Entry) {
	s.entries = entries
	s.parents = tree.Parents(entries)
	s.base = tree.BaseDepth(entries)
	s.byPath = make(map[string]int, len(entries))
	s.names = make([]string, len(entries))
	for i, e := range entries {
		s.byPath[e.Path] = i
		s.names[i] = e.Name()
	}
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// Query returns the search text.
func (s *Session) Query() string { return s.query }

// Policy returns the sort policy in effect.
func (s *Session) Policy() tree.SortPolicy { return s.policy }

// Cursor returns the selected row, or -1 when no row is visible.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the number of visible rows.
func (s *Session) Len() int { return len(s.visible) }

// Selected returns the entry under the cursor.
func (s *Session) Selected() (tree.Entry, bool) {
	i := s.selectedIndex()
	if i < 0 {
		return tree.Entry{}, false
	}
	return s.entries[i], true
}

// IsExpanded reports whether the directory at path is in the expansion set.
func (s *Session) IsExpanded(path string) bool {
	return s.expanded[path]
}

// Visible returns the visible entries in display order.
func (s *Session) Visible() []tree.Entry {
	out := make([]tree.Entry, len(s.visible))
	for k, i := range s.visible {
		out[k] = s.entries[i]
	}
	return out
}

// MoveCursor moves the selection by delta rows, stopping at either end.
func (s *Session) MoveCursor(delta int) {
	if len(s.visible) == 0 {
		return
	}
	s.cursor = clamp(s.cursor+delta, len(s.visible))
}

func (s *Session) MoveToTop() {
	s.MoveCursor(-len(s.visible))
}

func (s *Session) MoveToBottom() {
	s.MoveCursor(len(s.visible))
}

// Activate acts on the selected entry. A directory is expanded or collapsed;
// a file or symlink is handed back to the caller to open. Directories are not
// toggled while searching.
func (s *Session) Activate() Outcome {
	e, ok := s.Selected()
	if !ok {
		return Outcome{}
	}
	switch e.Kind {
	case tree.Dir:
		if s.mode == Searching {
			return Outcome{}
		}
		s.setExpanded(e.Path, !s.expanded[e.Path])
		return Outcome{}
	case tree.File, tree.Symlink:
		return Outcome{Action: ActionOpen, Path: e.Path}
	}
	return Outcome{}
}

// Expand opens the selected directory, or moves to its first child when it
// is already open.
func (s *Session) Expand() {
	e, ok := s.Selected()
	if !ok || !e.IsDir() {
		return
	}
	if s.mode == Browsing && !s.expanded[e.Path] {
		s.setExpanded(e.Path, true)
		return
	}
	if next := s.cursor + 1; next < len(s.visible) && s.parents[s.visible[next]] == s.visible[s.cursor] {
		s.cursor = next
	}
}

// CollapseOrParent closes the selected directory, or moves to the parent
// when there is nothing to close.
func (s *Session) CollapseOrParent() {
	i := s.selectedIndex()
	if i < 0 {
		return
	}
	e := s.entries[i]
	if s.mode == Browsing && e.IsDir() && s.expanded[e.Path] {
		s.setExpanded(e.Path, false)
		return
	}
	if p := s.parents[i]; p >= 0 && s.pos[p] >= 0 {
		s.cursor = s.pos[p]
	}
}

// ExpandAll opens every directory.
func (s *Session) ExpandAll() {
	prev := s.selectedIndex()
	for _, e := range s.entries {
		if e.IsDir() {
			s.expanded[e.Path] = true
		}
	}
	s.refresh(prev, keepClamped)
}

// CollapseAll closes every directory. The selection moves to its outermost
// visible ancestor.
func (s *Session) CollapseAll() {
	prev := s.selectedIndex()
	clear(s.expanded)
	s.refresh(prev, keepAncestor)
}

func (s *Session) setExpanded(path string, open bool) {
	prev := s.selectedIndex()
	if open {
		s.expanded[path] = true
	} else {
		delete(s.expanded, path)
	}
	s.refresh(prev, keepClamped)
}

// EnterSearch switches to Searching with the given query.
func (s *Session) EnterSearch(query string) {
	prev := s.selectedIndex()
	s.mode = Searching
	s.query = query
	s.refresh(prev, keepFirst)
}

// AppendSearch adds r to the query, entering Searching if needed.
func (s *Session) AppendSearch(r rune) {
	s.EnterSearch(s.query + string(r))
}

// BackspaceSearch removes the last rune of the query. The session stays in
// Searching even when the query becomes empty.
func (s *Session) BackspaceSearch() {
	if s.mode != Searching {
		return
	}
	q := []rune(s.query)
	if len(q) > 0 {
		q = q[:len(q)-1]
	}
	s.EnterSearch(string(q))
}

// ExitSearch clears the query and returns to Browsing. The rows are derived
// from the expansion set again, which searching never touches. If the
// selected entry is hidden now, its nearest visible ancestor is selected.
func (s *Session) ExitSearch() {
	prev := s.selectedIndex()
	s.mode = Browsing
	s.query = ""
	s.refresh(prev, keepAncestor)
}

// SetPolicy re-sorts the node set and keeps the selection on the same entry.
func (s *Session) SetPolicy(policy tree.SortPolicy) {
	prevPath := ""
	if e, ok := s.Selected(); ok {
		prevPath = e.Path
	}
	s.policy = policy
	s.load(tree.Sort(s.entries, policy))

	prev := -1
	if i, ok := s.byPath[prevPath]; ok && prevPath != "" {
		prev = i
	}
	s.refresh(prev, keepClamped)
}

// Quit ends the session without output.
func (s *Session) Quit() Outcome {
	return Outcome{Action: ActionQuit}
}

// SelectAndQuit ends the session and reports the selected path. With no
// selection it behaves like Quit.
func (s *Session) SelectAndQuit() Outcome {
	e, ok := s.Selected()
	if !ok {
		return s.Quit()
	}
	return Outcome{Action: ActionSelect, Path: e.Path}
}

func (s *Session) selectedIndex() int {
	if s.cursor < 0 || s.cursor >= len(s.visible) {
		return -1
	}
	return s.visible[s.cursor]
}

func (s *Session) filtering() bool {
	return s.mode == Searching && s.query != ""
}

type keep int

const (
	keepClamped  keep = iota // same entry, else same row clamped
	keepFirst                // same entry, else the first row
	keepAncestor             // same entry, else nearest visible ancestor, else the first row
)

// refresh recomputes the visible rows and places the cursor. prev is the
// entry index selected before the change, or -1.
func (s *Session) refresh(prev int, k keep) {
	old := s.cursor
	s.recompute()

	if len(s.visible) == 0 {
		s.cursor = -1
		return
	}
	if prev >= 0 && s.pos[prev] >= 0 {
		s.cursor = s.pos[prev]
		return
	}
	switch k {
	case keepAncestor:
		for p := prev; p >= 0; p = s.parents[p] {
			if s.pos[p] >= 0 {
				s.cursor = s.pos[p]
				return
			}
		}
		s.cursor = 0
	case keepFirst:
		s.cursor = 0
	default:
		s.cursor = clamp(old, len(s.visible))
	}
}

// recompute derives visible rows from scratch.
func (s *Session) recompute() {
	n := len(s.entries)
	show := make([]bool, n)
	s.hits = nil

	if s.filtering() {
		s.hits = make([]bool, n)
		for _, i := range s.matcher.Match(s.query, s.names) {
			s.hits[i] = true
			for j := i; j >= 0 && !show[j]; j = s.parents[j] {
				show[j] = true
			}
		}
	} else {
		for i, p := range s.parents {
			show[i] = p < 0 || (show[p] && s.expanded[s.entries[p].Path])
		}
	}

	s.visible = s.visible[:0]
	s.pos = slices.Repeat([]int{-1}, n)
	for i, ok := range show {
		if ok {
			s.pos[i] = len(s.visible)
			s.visible = append(s.visible, i)
		}
	}
	s.branches = tree.Layout(s.Visible())
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
