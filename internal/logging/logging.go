package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLevel = "info"

var (
	mu           sync.Mutex
	logger       = zerolog.Nop()
	traceEnabled bool
)

// Configure points the shared logger at path, creating its directory when
// missing. An empty path discards log output. The returned closer releases
// the file.
func Configure(path, level string) (func(), error) {
	closer := func() {}
	if strings.TrimSpace(level) == "" {
		level = defaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return closer, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer = io.Discard
	if strings.TrimSpace(path) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	SetOutput(writer, lvl)
	return closer, nil
}

// SetOutput replaces the shared logger with one writing JSON lines to w.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	l := zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the shared logger.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := logger
	return &l
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error().Err(err).Send()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace writes a structured entry when tracing is enabled. Trace entries
// bypass the configured level.
func Trace(event string, payload map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	evt := Logger().Log().Str("level", "trace").Str("event", event)
	if len(payload) > 0 {
		evt = evt.Fields(payload)
	}
	evt.Send()
}
