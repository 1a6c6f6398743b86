// Package walk lists a directory tree as a pre-order node sequence.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hayeah/lstr/ignore"
	"github.com/hayeah/lstr/tree"
)

// ErrNotDirectory is returned when the walk root is not a directory.
var ErrNotDirectory = errors.New("is not a directory")

// Options controls which entries a walk produces.
type Options struct {
	All       bool     // include dotfiles
	Gitignore bool     // apply .gitignore rules
	Ignore    []string // extra exclusion globs
	MaxDepth  int      // deepest level to list, 0 for no limit
	DirsOnly  bool
}

// Walker produces node sequences for a root directory.
type Walker struct {
	Options Options
	Logger  *slog.Logger
}

// Walk lists root in pre-order. Siblings come out in lexical order; the root
// itself is not part of the result and its children are at depth 1.
//
// Unreadable directories are logged and skipped.
func (w *Walker) Walk(root string) ([]tree.Entry, error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	top, err := Root(root)
	if err != nil {
		return nil, err
	}
	root = top.Path

	ig, err := ignore.New(root, ignore.Options{
		Gitignore: w.Options.Gitignore,
		Patterns:  w.Options.Ignore,
	})
	if err != nil {
		return nil, err
	}

	var entries []tree.Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if errors.Is(err, fs.ErrPermission) {
				logger.Debug("skipping unreadable path", "path", path)
			} else {
				logger.Warn("skipping path", "path", path, "error", err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		if !w.Options.All && strings.HasPrefix(d.Name(), ".") {
			return skip(isDir)
		}
		ignored, err := ig.IsIgnored(path, isDir)
		if err != nil {
			return err
		}
		if ignored {
			return skip(isDir)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(os.PathSeparator)) + 1
		if w.Options.MaxDepth > 0 && depth > w.Options.MaxDepth {
			return skip(isDir)
		}

		kind := kindOf(d)
		if w.Options.DirsOnly && kind != tree.Dir {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			logger.Warn("skipping path", "path", path, "error", err)
			return skip(isDir)
		}
		entries = append(entries, tree.Entry{
			Path:  path,
			Depth: depth,
			Kind:  kind,
			Meta: tree.Meta{
				Size:    fi.Size(),
				ModTime: fi.ModTime(),
				Mode:    fi.Mode(),
			},
		})

		if isDir && w.Options.MaxDepth > 0 && depth == w.Options.MaxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return entries, nil
}

// Root resolves path to an absolute directory and describes it. The entry
// has depth 0.
func Root(path string) (tree.Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return tree.Entry{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return tree.Entry{}, fmt.Errorf("'%s': %w", abs, err)
	}
	if !info.IsDir() {
		return tree.Entry{}, fmt.Errorf("'%s' %w", abs, ErrNotDirectory)
	}
	return tree.Entry{
		Path: abs,
		Kind: tree.Dir,
		Meta: tree.Meta{ModTime: info.ModTime(), Mode: info.Mode()},
	}, nil
}

func kindOf(d fs.DirEntry) tree.Kind {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return tree.Symlink
	case d.IsDir():
		return tree.Dir
	default:
		return tree.File
	}
}

func skip(isDir bool) error {
	if isDir {
		return filepath.SkipDir
	}
	return nil
}
