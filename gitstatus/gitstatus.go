// Package gitstatus looks up the working tree status of files in a git
// repository.
package gitstatus

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Status is the state of one path relative to the index and HEAD.
type Status int

const (
	None Status = iota
	New
	Modified
	Deleted
	Renamed
	Typechange
	Conflicted
	Untracked
)

// Char is the single-character marker shown next to an entry.
func (s Status) Char() byte {
	switch s {
	case New:
		return 'A'
	case Modified:
		return 'M'
	case Deleted:
		return 'D'
	case Renamed:
		return 'R'
	case Typechange:
		return 'T'
	case Conflicted:
		return 'C'
	case Untracked:
		return '?'
	}
	return ' '
}

func (s Status) String() string {
	switch s {
	case New:
		return "new"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	case Typechange:
		return "typechange"
	case Conflicted:
		return "conflicted"
	case Untracked:
		return "untracked"
	}
	return "none"
}

// Map holds statuses keyed by absolute path. A nil Map is valid and empty.
type Map map[string]Status

// Lookup returns the status of path, or None.
func (m Map) Lookup(path string) Status {
	return m[path]
}

// Load reads the status of the repository containing dir. A dir outside any
// repository yields a nil Map and no error.
func Load(dir string) (Map, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read git status: %w", err)
	}

	top := wt.Filesystem.Root()
	m := make(Map, len(st))
	for rel, fs := range st {
		s := fromCodes(fs.Staging, fs.Worktree)
		if s == None {
			continue
		}
		m[filepath.Join(top, filepath.FromSlash(rel))] = s
	}
	return m, nil
}

// fromCodes folds the staging and worktree codes into one status. Conflicts
// win, then staged changes, then worktree changes.
func fromCodes(staging, worktree git.StatusCode) Status {
	if staging == git.UpdatedButUnmerged || worktree == git.UpdatedButUnmerged {
		return Conflicted
	}
	if staging == git.Untracked || worktree == git.Untracked {
		return Untracked
	}
	if s := fromCode(staging); s != None {
		return s
	}
	return fromCode(worktree)
}

func fromCode(c git.StatusCode) Status {
	switch c {
	case git.Added, git.Copied:
		return New
	case git.Modified:
		return Modified
	case git.Deleted:
		return Deleted
	case git.Renamed:
		return Renamed
	}
	return None
}
