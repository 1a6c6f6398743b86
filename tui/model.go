// Package tui is the terminal front end of an interactive session.
//
// The model owns the terminal; the session owns the tree state. Every key is
// translated into one session command, after which the viewport is redrawn
// from a fresh frame.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hayeah/lstr/gitstatus"
	"github.com/hayeah/lstr/internal/format"
	"github.com/hayeah/lstr/internal/icons"
	"github.com/hayeah/lstr/render"
	"github.com/hayeah/lstr/session"
	"github.com/hayeah/lstr/tree"
	"github.com/mattn/go-runewidth"
)

// ExitState indicates how the program is exiting
type ExitState int

const (
	ExitStateNone   ExitState = iota // Not exiting
	ExitStateAbort                   // Quit without output
	ExitStateSelect                  // Quit and print the selected path
)

// Options configures the browser.
type Options struct {
	Root        string
	Icons       bool
	Size        bool
	Permissions bool
	GitStatus   bool
	Status      gitstatus.Map
	// Editor is the configured editor, used when $VISUAL and $EDITOR are unset.
	Editor string

	Keys     *KeyMap
	Renderer *lipgloss.Renderer
	Logger   *slog.Logger

	// OpenFile and CopyText replace the editor launch and the clipboard.
	OpenFile func(path string, done func(error) tea.Msg) tea.Cmd
	CopyText func(text string) error
}

type editorFinishedMsg struct {
	path string
	err  error
}

// Model is the bubbletea model of the browser.
type Model struct {
	session *session.Session
	opts    Options
	keys    KeyMap
	palette render.Palette
	glyphs  tree.Glyphs

	input    textinput.Model
	viewport viewport.Model
	ready    bool

	message   string
	exitState ExitState
	selected  string
}

func New(s *session.Session, opts Options) Model {
	if opts.Keys == nil {
		keys := DefaultKeyMap()
		opts.Keys = &keys
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(os.Stderr, render.ColorAuto)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.OpenFile == nil {
		opts.OpenFile = func(path string, done func(error) tea.Msg) tea.Cmd {
			return tea.ExecProcess(EditorCommand(path, opts.Editor), done)
		}
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 0

	return Model{
		session:  s,
		opts:     opts,
		keys:     *opts.Keys,
		palette:  render.NewPalette(opts.Renderer),
		glyphs:   tree.DefaultGlyphs,
		input:    ti,
		viewport: viewport.New(0, 0),
	}
}

// Run starts the browser on stderr and blocks until it exits. It returns the
// chosen path when the user quit with a selection, and "" otherwise.
func Run(s *session.Session, opts Options) (string, error) {
	p := tea.NewProgram(New(s, opts), tea.WithOutput(os.Stderr), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("could not get final model state")
	}
	return m.Selected(), nil
}

// Selected returns the chosen path after a select-and-quit.
func (m Model) Selected() string {
	if m.exitState != ExitStateSelect {
		return ""
	}
	return m.selected
}

func (m Model) ExitState() ExitState {
	return m.exitState
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.exitState != ExitStateNone {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.viewport.YPosition = headerHeight
		m.input.Width = max(msg.Width-2, 1)
		m.ready = true
		m.sync()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("editor: %v", msg.err)
			m.opts.Logger.Warn("editor failed", "path", msg.path, "err", msg.err)
		}
		m.sync()
		// the editor owned the screen, so draw everything again
		return m, tea.ClearScreen

	case tea.KeyMsg:
		m.message = ""
		var cmd tea.Cmd
		if m.session.Mode() == session.Searching {
			cmd = m.searchKey(msg)
		} else {
			cmd = m.browseKey(msg)
		}
		m.sync()
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) browseKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.finish(s.Quit())
	case key.Matches(msg, k.Select):
		return m.finish(s.SelectAndQuit())
	case key.Matches(msg, k.Search):
		s.EnterSearch("")
		m.input.SetValue("")
		return m.input.Focus()
	case key.Matches(msg, k.Copy):
		m.copySelected()
	case key.Matches(msg, k.SortKey):
		p := s.Policy()
		p.Key = (p.Key + 1) % (tree.SortExtension + 1)
		s.SetPolicy(p)
	case key.Matches(msg, k.Reverse):
		p := s.Policy()
		p.Reverse = !p.Reverse
		s.SetPolicy(p)
	case key.Matches(msg, k.DirsFirst):
		p := s.Policy()
		p.DirsFirst = !p.DirsFirst
		s.SetPolicy(p)
	case key.Matches(msg, k.ExpandAll):
		s.ExpandAll()
	case key.Matches(msg, k.CollapseAll):
		s.CollapseAll()
	default:
		return m.navigate(msg, k)
	}
	return nil
}

func (m *Model) searchKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	k := m.keys.searchKeys()
	switch {
	case key.Matches(msg, k.Quit):
		return m.finish(s.Quit())
	case key.Matches(msg, k.Select):
		return m.finish(s.SelectAndQuit())
	case key.Matches(msg, k.ExitSearch):
		s.ExitSearch()
		m.input.Blur()
		m.input.SetValue("")
		return nil
	case key.Matches(msg, k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.Activate, k.Expand, k.Collapse):
		return m.navigate(msg, k)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != s.Query() {
		s.EnterSearch(q)
	}
	return cmd
}

// navigate handles the keys shared by both modes.
func (m *Model) navigate(msg tea.KeyMsg, k KeyMap) tea.Cmd {
	s := m.session
	page := max(m.viewport.Height/2, 1)
	switch {
	case key.Matches(msg, k.Up):
		s.MoveCursor(-1)
	case key.Matches(msg, k.Down):
		s.MoveCursor(1)
	case key.Matches(msg, k.PageUp):
		s.MoveCursor(-page)
	case key.Matches(msg, k.PageDown):
		s.MoveCursor(page)
	case key.Matches(msg, k.Top):
		s.MoveToTop()
	case key.Matches(msg, k.Bottom):
		s.MoveToBottom()
	case key.Matches(msg, k.Expand):
		s.Expand()
	case key.Matches(msg, k.Collapse):
		s.CollapseOrParent()
	case key.Matches(msg, k.Activate):
		out := s.Activate()
		if out.Action == session.ActionOpen {
			path := out.Path
			return m.opts.OpenFile(path, func(err error) tea.Msg {
				return editorFinishedMsg{path: path, err: err}
			})
		}
	}
	return nil
}

func (m *Model) finish(out session.Outcome) tea.Cmd {
	switch out.Action {
	case session.ActionSelect:
		m.exitState = ExitStateSelect
		m.selected = out.Path
	default:
		m.exitState = ExitStateAbort
	}
	return tea.Quit
}

func (m *Model) copySelected() {
	e, ok := m.session.Selected()
	if !ok {
		return
	}
	if err := m.opts.CopyText(e.Path); err != nil {
		m.message = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.message = "copied " + e.Path
}

// sync redraws the rows into the viewport and scrolls the cursor into view.
func (m *Model) sync() {
	if !m.ready {
		return
	}
	f := m.session.Frame()
	m.viewport.SetContent(strings.Join(m.rows(f), "\n"))

	if f.Cursor < 0 {
		m.viewport.GotoTop()
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	if f.Cursor < top {
		m.viewport.SetYOffset(f.Cursor)
	} else if f.Cursor > bottom {
		m.viewport.SetYOffset(f.Cursor - m.viewport.Height + 1)
	}
}

func (m *Model) rows(f session.Frame) []string {
	lines := make([]string, len(f.Rows))
	for k, row := range f.Rows {
		lines[k] = m.renderRow(row, k == f.Cursor)
	}
	return lines
}

func (m *Model) renderRow(row session.Row, current bool) string {
	e := row.Entry
	var left, styled strings.Builder
	add := func(plain string, style lipgloss.Style) {
		left.WriteString(plain)
		styled.WriteString(style.Render(plain))
	}

	marker := "  "
	if current {
		marker = "> "
	}
	add(marker, m.palette.Root)
	if m.opts.GitStatus {
		st := m.opts.Status.Lookup(e.Path)
		add(string(st.Char())+" ", m.palette.Status(st))
	}
	if m.opts.Permissions {
		add(format.Permissions(e.Kind, e.Meta.Mode)+" ", m.palette.Dim)
	}
	add(row.Branch.Prefix(m.glyphs)+row.Branch.Connector(m.glyphs), m.palette.Dim)
	switch {
	case !e.IsDir():
		add("  ", m.palette.File)
	case row.Open:
		add("▼ ", m.palette.Dir)
	default:
		add("▶ ", m.palette.Dir)
	}
	if m.opts.Icons {
		add(icons.For(e)+" ", m.palette.File)
	}

	size := ""
	if m.opts.Size && !e.IsDir() {
		size = format.Size(e.Meta.Size)
	}

	width := m.viewport.Width
	avail := width - runewidth.StringWidth(left.String())
	if size != "" {
		avail -= runewidth.StringWidth(size) + 1
	}
	name := e.Name()
	if avail > 0 && runewidth.StringWidth(name) > avail {
		name = runewidth.Truncate(name, avail, "…")
	}
	style := m.palette.Name(e.Kind)
	if current {
		style = style.Reverse(true)
	}
	if row.Match {
		style = style.Underline(true)
	}
	add(name, style)

	if size != "" {
		pad := width - runewidth.StringWidth(left.String()) - runewidth.StringWidth(size)
		add(strings.Repeat(" ", max(pad, 1)), m.palette.File)
		add(size, m.palette.Dim)
	}
	return styled.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.palette.Root.Render(m.opts.Root)
	return header + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	s := m.session
	if s.Mode() == session.Searching {
		matches := 0
		for _, row := range s.Frame().Rows {
			if row.Match {
				matches++
			}
		}
		return m.input.View() + "\n" + m.palette.Dim.Render(fmt.Sprintf("%d matches · enter open · esc done", matches))
	}

	status := m.message
	if status == "" {
		p := s.Policy()
		status = fmt.Sprintf("%d/%d · sort %s", s.Cursor()+1, s.Len(), p.Key)
		if p.Reverse {
			status += " reversed"
		}
		if p.DirsFirst {
			status += " · dirs first"
		}
	}

	var help []string
	for _, b := range m.keys.helpLine() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return status + "\n" + m.palette.Dim.Render(strings.Join(help, " · "))
}
