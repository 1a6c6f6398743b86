// Package lstr wires the walker, sorter and front ends into the lstr command.
package lstr

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/wire"
	"github.com/hayeah/lstr/cli"
	"github.com/hayeah/lstr/fzf"
	"github.com/hayeah/lstr/gitstatus"
	"github.com/hayeah/lstr/internal/config"
	"github.com/hayeah/lstr/internal/logging"
	"github.com/hayeah/lstr/render"
	"github.com/hayeah/lstr/session"
	"github.com/hayeah/lstr/tree"
	"github.com/hayeah/lstr/tui"
	"github.com/hayeah/lstr/walk"
)

// Argv is the command line without the program name.
type Argv []string

// Streams are the process's standard output and error.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Browser runs the interactive front end and returns the selected path.
type Browser func(s *session.Session, opts tui.Options) (string, error)

func ProvideConfig() (*config.Config, error) {
	return config.LoadDefault()
}

// ProvideArgs parses cli args
func ProvideArgs(argv Argv, cfg *config.Config, streams Streams) (*cli.Args, error) {
	return cli.Parse(argv, cfg, streams.Stdout)
}

// ProvideLogger logs to stderr in classic mode. The browser owns the
// terminal, so in interactive mode only a configured log file is written.
func ProvideLogger(args *cli.Args, cfg *config.Config, streams Streams) (*slog.Logger, func(), error) {
	opts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	if args.Command == cli.Classic {
		opts.Console = streams.Stderr
	}
	logger, closeFn, err := logging.New(opts)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closeFn() }, nil
}

func ProvideWalker(args *cli.Args, logger *slog.Logger) *walk.Walker {
	var opts walk.Options
	if args.Command == cli.Interactive {
		opts = args.Interactive.WalkOptions()
	} else {
		opts = args.Classic.WalkOptions()
	}
	return &walk.Walker{Options: opts, Logger: logger}
}

func ProvideBrowser() Browser {
	return tui.Run
}

// collect all the necessary providers
var Wires = wire.NewSet(
	ProvideConfig,
	ProvideArgs,
	ProvideLogger,
	ProvideWalker,
	ProvideBrowser,
	wire.Struct(new(App), "*"),
)

// App runs one invocation of lstr.
type App struct {
	Args    *cli.Args
	Config  *config.Config
	Logger  *slog.Logger
	Walker  *walk.Walker
	Streams Streams
	Browser Browser
}

func (app *App) Run() error {
	switch app.Args.Command {
	case cli.Interactive:
		return app.runInteractive()
	default:
		return app.runClassic()
	}
}

func (app *App) runClassic() error {
	args := app.Args.Classic
	root, entries, err := app.walk(args.Path)
	if err != nil {
		return err
	}
	policy, err := args.Policy()
	if err != nil {
		return err
	}
	entries = tree.Sort(entries, policy)

	var status gitstatus.Map
	if args.GitStatus {
		status = app.gitStatus(root.Path)
	}

	err = render.NewClassic(app.Streams.Stdout, args.RenderOptions(), status).Render(root, entries)
	if render.IsBrokenPipe(err) {
		// the reader went away, as with `lstr | head`
		return nil
	}
	return err
}

func (app *App) runInteractive() error {
	args := app.Args.Interactive
	root, entries, err := app.walk(args.Path)
	if err != nil {
		return err
	}
	policy, err := args.Policy()
	if err != nil {
		return err
	}
	matcher, err := fzf.New(args.SearchMode())
	if err != nil {
		return err
	}

	var status gitstatus.Map
	if args.GitStatus {
		status = app.gitStatus(root.Path)
	}

	s := session.New(entries, session.Options{
		ExpandLevel: args.ExpandLevel,
		Policy:      policy,
		Matcher:     matcher,
	})
	selected, err := app.Browser(s, tui.Options{
		Root:        root.Path,
		Icons:       args.Icons,
		Size:        args.Size,
		Permissions: args.Permissions,
		GitStatus:   args.GitStatus,
		Status:      status,
		Editor:      app.Config.Interactive.Editor,
		Logger:      app.Logger,
	})
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	app.Logger.Debug("session ended", "state", s.State())

	if selected != "" {
		_, err = fmt.Fprintln(app.Streams.Stdout, selected)
	}
	return err
}

func (app *App) walk(path string) (tree.Entry, []tree.Entry, error) {
	root, err := walk.Root(path)
	if err != nil {
		return tree.Entry{}, nil, err
	}
	entries, err := app.Walker.Walk(root.Path)
	if err != nil {
		return tree.Entry{}, nil, err
	}
	app.Logger.Debug("walked", "root", root.Path, "entries", len(entries))
	return root, entries, nil
}

// gitStatus is best effort: a broken repository only loses the markers.
func (app *App) gitStatus(dir string) gitstatus.Map {
	status, err := gitstatus.Load(dir)
	if err != nil {
		app.Logger.Warn("failed to read git status", "dir", dir, "error", err)
		return nil
	}
	return status
}
