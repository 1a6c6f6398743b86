package session

import (
	"slices"

	"github.com/hayeah/lstr/tree"
)

// Row is one visible line of the tree.
type Row struct {
	Entry  tree.Entry
	Branch tree.Branch
	// Open is set on a directory whose children are shown.
	Open bool
	// Match is set while filtering on rows whose name matched the query,
	// as opposed to ancestors kept for context.
	Match bool
}

// Frame is a snapshot of everything a display needs to draw the session.
type Frame struct {
	Rows   []Row
	Cursor int
	Mode   Mode
	Query  string
	// Total is the size of the full node set.
	Total int
}

// Frame builds a snapshot of the current state.
func (s *Session) Frame() Frame {
	rows := make([]Row, len(s.visible))
	for k, i := range s.visible {
		e := s.entries[i]
		row := Row{Entry: e, Branch: s.branches[k]}
		if e.IsDir() {
			if s.filtering() {
				row.Open = k+1 < len(s.visible) && s.parents[s.visible[k+1]] == i
			} else {
				row.Open = s.expanded[e.Path]
			}
		}
		if s.hits != nil {
			row.Match = s.hits[i]
		}
		rows[k] = row
	}
	return Frame{
		Rows:   rows,
		Cursor: s.cursor,
		Mode:   s.mode,
		Query:  s.query,
		Total:  len(s.entries),
	}
}

// State is a serializable summary of a session, used to compare sessions
// and to log them.
type State struct {
	Mode     Mode     `json:"mode"`
	Query    string   `json:"query"`
	Cursor   int      `json:"cursor"`
	Selected string   `json:"selected"`
	Expanded []string `json:"expanded"`
	Visible  []string `json:"visible"`
}

// State summarizes the session. Expanded paths are sorted.
func (s *Session) State() State {
	st := State{
		Mode:     s.mode,
		Query:    s.query,
		Cursor:   s.cursor,
		Expanded: []string{},
		Visible:  make([]string, len(s.visible)),
	}
	if e, ok := s.Selected(); ok {
		st.Selected = e.Path
	}
	for path := range s.expanded {
		st.Expanded = append(st.Expanded, path)
	}
	slices.Sort(st.Expanded)
	for k, i := range s.visible {
		st.Visible[k] = s.entries[i].Path
	}
	return st
}
