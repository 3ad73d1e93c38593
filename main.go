package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/chopsticks/internal/app"
	"github.com/atomicstack/chopsticks/internal/config"
	"github.com/atomicstack/chopsticks/internal/logging"
	"github.com/atomicstack/chopsticks/internal/logging/events"
	"github.com/atomicstack/chopsticks/internal/store"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()
	runtimeCfg := config.MustLoad(ctx)
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	closeLog, err := logging.Configure(runtimeCfg.Logging.FilePath, runtimeCfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(ctx, runtimeCfg.App); err != nil {
		logging.Error(err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeLog()
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records the resolved configuration and whether the
// launcher owns a terminal it can hand to the child.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logLevel"] = cfg.Logging.Level
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"snippets": filepath.Join(cfg.App.DataDir, store.FileName),
		"tty":      probeTerminal(os.Stdin, os.Stdout),
	}
}

type ttyInfo struct {
	Stdin  bool   `json:"stdin"`
	Stdout bool   `json:"stdout"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// probeTerminal reports whether in and out are terminals and the size of out.
func probeTerminal(in, out *os.File) ttyInfo {
	info := ttyInfo{
		Stdin:  term.IsTerminal(int(in.Fd())),
		Stdout: term.IsTerminal(int(out.Fd())),
	}
	if !info.Stdout {
		return info
	}
	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
