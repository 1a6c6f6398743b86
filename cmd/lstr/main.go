package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hayeah/lstr"
	"github.com/hayeah/lstr/cli"
)

func main() {
	// Writes to a closed stdout fail with EPIPE instead of killing the
	// process, so `lstr | head` exits 0.
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(run())
}

func run() int {
	app, cleanup, err := lstr.InitApp(os.Args[1:], lstr.Streams{Stdout: os.Stdout, Stderr: os.Stderr})
	if cli.IsExit(err) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lstr: Error: %v\n", err)
		return 1
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lstr: Error: %v\n", err)
		return 1
	}
	return 0
}
