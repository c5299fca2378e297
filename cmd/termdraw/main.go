// ABOUTME: CLI entry point for termdraw with terminal crash recovery
// ABOUTME: Builds the cobra command tree over the process terminal and exits non-zero on error

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/termdraw/pkg/draw/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	term := terminal.NewProcessTerminal(os.Stdout)
	defer terminal.RestoreOnPanic(term)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{term: term}).ExecuteContext(ctx)
	stop()
	_ = term.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
