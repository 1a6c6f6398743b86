package fzf

import "github.com/sahilm/fuzzy"

// Fuzzy matches names containing the query's characters in order, ignoring
// case. Results keep the input order rather than the match score order.
type Fuzzy struct{}

func (Fuzzy) Match(query string, names []string) []int {
	matches := fuzzy.FindNoSort(query, names)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	return out
}
