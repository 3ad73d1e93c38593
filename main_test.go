package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/chopsticks/internal/app"
	"github.com/atomicstack/chopsticks/internal/config"
)

func TestProbeTerminalOnRegularFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	info := probeTerminal(f, f)
	if info.Stdin || info.Stdout {
		t.Fatalf("expected regular file not to be a terminal, got %+v", info)
	}
	if info.Width != 0 || info.Height != 0 {
		t.Fatalf("expected no size for a regular file, got %dx%d", info.Width, info.Height)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataDir: "/data/chopsticks",
			Shell:   "bash",
			NoMouse: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Level:    "debug",
			Trace:    true,
		},
		Flags: map[string]string{
			"dataDir": "/data/chopsticks",
			"shell":   "bash",
			"noMouse": "true",
		},
		Args: []string{"--shell", "bash"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["dataDir"] != "/data/chopsticks" {
		t.Fatalf("expected data dir flag, got %v", flagsValue["dataDir"])
	}
	if flagsValue["shell"] != "bash" {
		t.Fatalf("expected shell bash, got %v", flagsValue["shell"])
	}
	if flagsValue["noMouse"] != "true" {
		t.Fatalf("expected noMouse true, got %v", flagsValue["noMouse"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if flagsValue["logLevel"] != "debug" {
		t.Fatalf("expected log level debug, got %v", flagsValue["logLevel"])
	}

	if _, ok := payload["tty"].(ttyInfo); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if payload["snippets"] != filepath.Join("/data/chopsticks", "snippets.toml") {
		t.Fatalf("expected snippets path, got %v", payload["snippets"])
	}
}
