// Package icons maps entries to Nerd Font glyphs.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/hayeah/lstr/tree"
)

const (
	folder  = ""
	symlink = ""
	file    = ""
)

var byName = map[string]string{
	".git":         "",
	".gitignore":   "",
	"dockerfile":   "",
	"makefile":     "",
	"license":      "",
	"readme.md":    "",
	"go.mod":       "",
	"go.sum":       "",
	"cargo.toml":   "",
	"package.json": "",
}

var byExt = map[string]string{
	"go":   "",
	"rs":   "",
	"py":   "",
	"js":   "",
	"ts":   "",
	"jsx":  "",
	"tsx":  "",
	"c":    "",
	"h":    "",
	"cpp":  "",
	"java": "",
	"rb":   "",
	"sh":   "",
	"md":   "",
	"json": "",
	"toml": "",
	"yaml": "",
	"yml":  "",
	"html": "",
	"css":  "",
	"lock": "",
	"txt":  "",
	"png":  "",
	"jpg":  "",
	"gif":  "",
	"svg":  "",
	"zip":  "",
	"gz":   "",
	"tar":  "",
	"pdf":  "",
}

// For returns the glyph for an entry.
func For(e tree.Entry) string {
	name := strings.ToLower(e.Name())
	if icon, ok := byName[name]; ok {
		return icon
	}
	switch e.Kind {
	case tree.Dir:
		return folder
	case tree.Symlink:
		return symlink
	}
	if icon, ok := byExt[strings.TrimPrefix(filepath.Ext(name), ".")]; ok {
		return icon
	}
	return file
}
