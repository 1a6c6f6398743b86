// Package render prints node sequences as a one-shot text tree.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/hayeah/lstr/gitstatus"
	"github.com/hayeah/lstr/internal/format"
	"github.com/hayeah/lstr/internal/icons"
	"github.com/hayeah/lstr/tree"
)

// Options selects the columns and decorations of the classic output.
type Options struct {
	Color       ColorMode
	Icons       bool
	Size        bool
	Permissions bool
	GitStatus   bool
}

// Classic writes the tree to an output stream, one line per entry.
type Classic struct {
	w       *bufio.Writer
	opts    Options
	status  gitstatus.Map
	glyphs  tree.Glyphs
	palette Palette
}

// NewClassic creates a printer writing to w. status may be nil.
func NewClassic(w io.Writer, opts Options, status gitstatus.Map) *Classic {
	return &Classic{
		w:       bufio.NewWriter(w),
		opts:    opts,
		status:  status,
		glyphs:  tree.DefaultGlyphs,
		palette: NewPalette(NewRenderer(w, opts.Color)),
	}
}

// Render prints the root line, one line per entry and a summary. entries
// must already be in display order.
func (c *Classic) Render(root tree.Entry, entries []tree.Entry) error {
	if err := c.header(root); err != nil {
		return err
	}

	var dirs, files int
	for i, b := range tree.Layout(entries) {
		e := entries[i]
		if e.IsDir() {
			dirs++
		} else {
			files++
		}
		if err := c.row(e, b); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(c.w, "\n%d directories, %d files\n", dirs, files); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *Classic) header(root tree.Entry) error {
	var sb strings.Builder
	if c.opts.GitStatus {
		sb.WriteString("  ")
	}
	if c.opts.Permissions {
		sb.WriteString(format.Permissions(tree.Dir, root.Meta.Mode))
		sb.WriteByte(' ')
	}
	sb.WriteString(c.palette.Root.Render(root.Path))
	sb.WriteByte('\n')
	_, err := c.w.WriteString(sb.String())
	return err
}

func (c *Classic) row(e tree.Entry, b tree.Branch) error {
	var sb strings.Builder
	if c.opts.GitStatus {
		st := c.status.Lookup(e.Path)
		sb.WriteString(c.palette.Status(st).Render(string(st.Char())))
		sb.WriteByte(' ')
	}
	if c.opts.Permissions {
		sb.WriteString(format.Permissions(e.Kind, e.Meta.Mode))
		sb.WriteByte(' ')
	}
	sb.WriteString(b.Prefix(c.glyphs))
	sb.WriteString(b.Connector(c.glyphs))
	if c.opts.Icons {
		sb.WriteString(icons.For(e))
		sb.WriteByte(' ')
	}
	sb.WriteString(c.palette.Name(e.Kind).Render(e.Name()))
	if c.opts.Size && !e.IsDir() {
		sb.WriteString(" (")
		sb.WriteString(format.Size(e.Meta.Size))
		sb.WriteByte(')')
	}
	sb.WriteByte('\n')
	_, err := c.w.WriteString(sb.String())
	return err
}

// IsBrokenPipe reports whether err comes from writing to a closed pipe, as
// when the output is piped into head.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
