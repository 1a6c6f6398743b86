package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Options selects which rules an Ignore applies.
type Options struct {
	// Gitignore honours .gitignore files under the root, .git/info/exclude
	// and the user's global excludes file. It also hides the .git directory.
	Gitignore bool
	// Patterns are doublestar globs. A pattern without a slash matches a base
	// name anywhere; otherwise it matches the slash-separated path relative
	// to the root.
	Patterns []string
}

// Ignore decides whether a path under rootPath is excluded from a listing.
type Ignore struct {
	matcher  gitignore.Matcher
	patterns []string
	rootPath string
}

// New creates an Ignore for the given root path.
func New(rootPath string, opts Options) (*Ignore, error) {
	for _, p := range opts.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("ignore pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	ig := &Ignore{
		patterns: opts.Patterns,
		rootPath: rootPath,
	}
	if !opts.Gitignore {
		return ig, nil
	}

	// global excludes come first so repository rules can override them
	global, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
	if err != nil {
		return nil, fmt.Errorf("failed to read global gitignore: %w", err)
	}
	local, err := gitignore.ReadPatterns(osfs.New(rootPath), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read gitignore patterns: %w", err)
	}
	ig.matcher = gitignore.NewMatcher(append(global, local...))
	return ig, nil
}

// IsIgnored checks if a path should be left out of the listing.
func (ig *Ignore) IsIgnored(path string, isDir bool) (bool, error) {
	relPath, err := filepath.Rel(ig.rootPath, path)
	if err != nil {
		return false, err
	}
	if relPath == "." {
		return false, nil
	}

	slashed := filepath.ToSlash(relPath)
	for _, p := range ig.patterns {
		target := slashed
		if !strings.Contains(p, "/") {
			target = filepath.Base(path)
		}
		if doublestar.MatchUnvalidated(p, target) {
			return true, nil
		}
	}

	if ig.matcher == nil {
		return false, nil
	}
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}
	parts := strings.Split(relPath, string(os.PathSeparator))
	return ig.matcher.Match(parts, isDir), nil
}
