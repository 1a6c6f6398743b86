package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hayeah/lstr/gitstatus"
	"github.com/hayeah/lstr/tree"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls whether output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts always, auto or never. The empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want always, auto or never)", s)
}

// NewRenderer returns a lipgloss renderer for w whose color profile follows
// mode. Auto colors only terminals, and honours NO_COLOR.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) || os.Getenv("NO_COLOR") != "" {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Palette holds the styles shared by the classic printer and the browser.
type Palette struct {
	Root    lipgloss.Style
	Dir     lipgloss.Style
	Symlink lipgloss.Style
	File    lipgloss.Style
	Dim     lipgloss.Style
	status  map[gitstatus.Status]lipgloss.Style
}

func NewPalette(r *lipgloss.Renderer) Palette {
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		Root:    color("4").Bold(true),
		Dir:     color("4").Bold(true),
		Symlink: color("6"),
		File:    r.NewStyle(),
		Dim:     color("8"),
		status: map[gitstatus.Status]lipgloss.Style{
			gitstatus.New:        color("2"),
			gitstatus.Renamed:    color("2"),
			gitstatus.Modified:   color("3"),
			gitstatus.Typechange: color("3"),
			gitstatus.Deleted:    color("1"),
			gitstatus.Conflicted: color("9").Bold(true),
			gitstatus.Untracked:  color("5"),
		},
	}
}

// Name returns the style for an entry name of the given kind.
func (p Palette) Name(k tree.Kind) lipgloss.Style {
	switch k {
	case tree.Dir:
		return p.Dir
	case tree.Symlink:
		return p.Symlink
	}
	return p.File
}

// Status returns the style for a git status marker.
func (p Palette) Status(s gitstatus.Status) lipgloss.Style {
	if st, ok := p.status[s]; ok {
		return st
	}
	return p.File
}
