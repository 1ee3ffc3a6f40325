package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/skillcoder/kubenexus/internal/cli"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	if err := cli.NewRootCmd(signals, version).ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "bye")
}
