// Package cli parses the lstr command line.
//
//	lstr [flags] [PATH]              print the tree once
//	lstr interactive [flags] [PATH]  browse it (alias: i)
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
	"github.com/hayeah/lstr/fzf"
	"github.com/hayeah/lstr/internal/config"
	"github.com/hayeah/lstr/render"
	"github.com/hayeah/lstr/tree"
	"github.com/hayeah/lstr/walk"
)

// Version is stamped by the release build.
var Version = "dev"

// Command selects the front end.
type Command int

const (
	Classic Command = iota
	Interactive
)

type SortArgs struct {
	Sort          string `arg:"--sort" placeholder:"KEY" help:"sort by name, size, modified or extension"`
	Reverse       bool   `arg:"-r,--reverse" help:"reverse the sort order"`
	DirsFirst     bool   `arg:"--dirs-first" help:"list directories before files"`
	CaseSensitive bool   `arg:"--case-sensitive" help:"sort names case-sensitively"`
	Natural       bool   `arg:"--natural" help:"compare embedded numbers by value"`
	DotfilesFirst bool   `arg:"--dotfiles-first" help:"list dotfiles before other entries"`
}

// Policy converts the sort flags.
func (a SortArgs) Policy() (tree.SortPolicy, error) {
	key, err := tree.ParseSortKey(a.Sort)
	if err != nil {
		return tree.SortPolicy{}, err
	}
	return tree.SortPolicy{
		Key:           key,
		CaseSensitive: a.CaseSensitive,
		Natural:       a.Natural,
		Reverse:       a.Reverse,
		DirsFirst:     a.DirsFirst,
		DotfilesFirst: a.DotfilesFirst,
	}, nil
}

// CommonArgs are shared by both commands.
type CommonArgs struct {
	Path        string   `arg:"positional" placeholder:"PATH" help:"directory to list"`
	All         bool     `arg:"-a,--all" help:"show hidden files"`
	Gitignore   bool     `arg:"-g,--gitignore" help:"respect .gitignore rules"`
	GitStatus   bool     `arg:"-G,--git-status" help:"show git status markers"`
	Icons       bool     `arg:"--icons" help:"show file icons (requires a Nerd Font)"`
	Size        bool     `arg:"-s,--size" help:"show file sizes"`
	Permissions bool     `arg:"-p,--permissions" help:"show permissions"`
	Ignore      []string `arg:"-I,--ignore,separate" placeholder:"GLOB" help:"exclude entries matching GLOB"`
	SortArgs

	configIgnore []string
}

func (CommonArgs) Version() string {
	return "lstr " + Version
}

func (a CommonArgs) ignore() []string {
	return append(append([]string(nil), a.configIgnore...), a.Ignore...)
}

type ClassicArgs struct {
	CommonArgs
	Color    string `arg:"--color" placeholder:"WHEN" help:"colorize output: always, auto or never"`
	Level    int    `arg:"-L,--level" help:"descend at most LEVEL directories, 0 for no limit"`
	DirsOnly bool   `arg:"-d,--dirs-only" help:"list directories only"`
}

func (ClassicArgs) Description() string {
	return "lstr prints a directory tree.\nRun 'lstr interactive --help' for the browser."
}

func (a ClassicArgs) WalkOptions() walk.Options {
	return walk.Options{
		All:       a.All,
		Gitignore: a.Gitignore,
		Ignore:    a.ignore(),
		MaxDepth:  a.Level,
		DirsOnly:  a.DirsOnly,
	}
}

func (a ClassicArgs) RenderOptions() render.Options {
	color, _ := render.ParseColorMode(a.Color)
	return render.Options{
		Color:       color,
		Icons:       a.Icons,
		Size:        a.Size,
		Permissions: a.Permissions,
		GitStatus:   a.GitStatus,
	}
}

type InteractiveArgs struct {
	CommonArgs
	ExpandLevel int    `arg:"--expand-level" placeholder:"LEVEL" help:"initially expand directories at depths below LEVEL; root entries are depth 1"`
	Search      string `arg:"--search" placeholder:"MODE" help:"search mode: substring, extended or fuzzy"`
	Fuzzy       bool   `arg:"--fuzzy" help:"shorthand for --search fuzzy"`
}

func (InteractiveArgs) Description() string {
	return "lstr interactive browses a directory tree."
}

func (a InteractiveArgs) WalkOptions() walk.Options {
	return walk.Options{
		All:       a.All,
		Gitignore: a.Gitignore,
		Ignore:    a.ignore(),
	}
}

// SearchMode resolves --search and --fuzzy.
func (a InteractiveArgs) SearchMode() fzf.Mode {
	if a.Fuzzy {
		return fzf.ModeFuzzy
	}
	return fzf.Mode(a.Search)
}

// Args is the parsed command line. Exactly one of Classic and Interactive is
// set, according to Command.
type Args struct {
	Command     Command
	Classic     *ClassicArgs
	Interactive *InteractiveArgs
}

// Common returns the flags shared by both commands.
func (a *Args) Common() CommonArgs {
	if a.Command == Interactive {
		return a.Interactive.CommonArgs
	}
	return a.Classic.CommonArgs
}

// IsExit reports whether err asks to exit successfully, after --help or
// --version has been printed.
func IsExit(err error) bool {
	return errors.Is(err, arg.ErrHelp) || errors.Is(err, arg.ErrVersion)
}

// Parse parses argv, without the program name, over defaults taken from cfg.
// Help and version text go to out.
func Parse(argv []string, cfg *config.Config, out io.Writer) (*Args, error) {
	common := defaults(cfg)

	if len(argv) > 0 && (argv[0] == "interactive" || argv[0] == "i") {
		a := &InteractiveArgs{
			CommonArgs:  common,
			ExpandLevel: cfg.Interactive.ExpandLevel,
			Search:      cfg.Interactive.Search,
		}
		if err := parse("lstr interactive", a, argv[1:], out); err != nil {
			return nil, err
		}
		if a.ExpandLevel < 0 {
			return nil, fmt.Errorf("--expand-level must not be negative")
		}
		if _, err := fzf.New(a.SearchMode()); err != nil {
			return nil, err
		}
		return &Args{Command: Interactive, Interactive: a}, nil
	}

	a := &ClassicArgs{CommonArgs: common, Color: cfg.View.Color}
	if err := parse("lstr", a, argv, out); err != nil {
		return nil, err
	}
	if a.Level < 0 {
		return nil, fmt.Errorf("--level must not be negative")
	}
	if _, err := render.ParseColorMode(a.Color); err != nil {
		return nil, err
	}
	return &Args{Command: Classic, Classic: a}, nil
}

func parse(program string, dest any, argv []string, out io.Writer) error {
	p, err := arg.NewParser(arg.Config{Program: program}, dest)
	if err != nil {
		return err
	}

	err = p.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return err
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(out, dest.(interface{ Version() string }).Version())
		return err
	case err != nil:
		return err
	}

	common := commonOf(dest)
	if _, err := common.Policy(); err != nil {
		return err
	}
	return nil
}

func commonOf(dest any) CommonArgs {
	switch a := dest.(type) {
	case *ClassicArgs:
		return a.CommonArgs
	case *InteractiveArgs:
		return a.CommonArgs
	}
	return CommonArgs{}
}

func defaults(cfg *config.Config) CommonArgs {
	return CommonArgs{
		Path:        ".",
		All:         cfg.View.All,
		Gitignore:   cfg.View.Gitignore,
		GitStatus:   cfg.View.GitStatus,
		Icons:       cfg.View.Icons,
		Size:        cfg.View.Size,
		Permissions: cfg.View.Permissions,
		SortArgs: SortArgs{
			Sort:          cfg.Sort.Key,
			Reverse:       cfg.Sort.Reverse,
			DirsFirst:     cfg.Sort.DirsFirst,
			CaseSensitive: cfg.Sort.CaseSensitive,
			Natural:       cfg.Sort.Natural,
			DotfilesFirst: cfg.Sort.DotfilesFirst,
		},
		configIgnore: cfg.View.Ignore,
	}
}
