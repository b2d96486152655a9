package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Main runs an entry point and returns its exit code.
func Main(mode Mode, args []string) int {
	opts, err := ParseArgs(mode, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", mode.program(), err)
		return 2
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := NewApp(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", mode.program(), err)
		return 1
	}

	if mode == ModeRemote {
		return app.RunRemote(ctx, opts)
	}
	return app.RunLocal(ctx, opts)
}
