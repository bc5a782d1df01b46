// Package cmd wires configuration, logging and the interactive shell
// together.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Streams are the standard streams the CLI talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run executes the tasklist CLI on the process's standard streams.
func Run(ctx context.Context, args []string) error {
	return RunWithStreams(ctx, args, StdStreams())
}

// RunWithStreams executes the tasklist CLI on the given streams. The task
// list starts empty and is discarded when the shell returns.
func RunWithStreams(ctx context.Context, args []string, streams Streams) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewFromConfig(streams.Err, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller, cfg.LogPrefix)
	logger.Debug("starting", "version", Version, "color", string(cfg.Color), "config_files", cfg.Files)
	if len(args) > 0 {
		logger.Warn("tasklist takes no arguments, ignoring them", "args", args)
	}

	table := ui.NewTable(ui.WithRenderer(ui.NewRenderer(streams.Out, cfg.Color)))
	opts := []ui.ShellOption{
		ui.WithTable(table),
		ui.WithLogger(logger),
	}
	if ui.IsTTY(streams.In) && ui.IsTTY(streams.Out) {
		opts = append(opts, ui.WithViewer(ui.NewViewer(ui.WithViewerIO(streams.In, streams.Out))))
	}

	shell := ui.NewShell(streams.In, streams.Out, todo.NewList(), opts...)
	return shell.Run(ctx)
}
