package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mind-engage/sensory-profile/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(cli.Execute(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr))
}
