// Package main is the entry point for the dupidx line interning tool.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/dupidx/cmd/dupidx/commands"
	"go.trai.ch/dupidx/internal/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New(stderr)

	cli := commands.New(log)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
