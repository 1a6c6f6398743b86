// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-cz/devslog"
)

// ParseLevel accepts debug, info, warn or error in any case. The empty string
// is warn.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

type Options struct {
	Level string
	// File receives the log when set. Otherwise records go to Console, or
	// nowhere if Console is nil.
	File    string
	Console io.Writer
}

// New returns the logger and a function releasing its file, if any.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, handlerOpts)), f.Close, nil
	}

	noop := func() error { return nil }
	if opts.Console == nil {
		return slog.New(slog.DiscardHandler), noop, nil
	}
	return slog.New(devslog.NewHandler(opts.Console, &devslog.Options{
		HandlerOptions: handlerOpts,
		SortKeys:       true,
		TimeFormat:     "[15:04:05]",
	})), noop, nil
}
