package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestTraceRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		SetOutput(&bytes.Buffer{}, zerolog.InfoLevel)
	})

	SetTraceEnabled(false)
	Trace("search.query", map[string]interface{}{"query": "git"})
	if buf.Len() != 0 {
		t.Fatalf("expected no output with tracing disabled, got %q", buf.String())
	}

	SetTraceEnabled(true)
	Trace("search.query", map[string]interface{}{"query": "git"})
	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0]["event"] != "search.query" || entries[0]["query"] != "git" {
		t.Fatalf("unexpected entry %v", entries[0])
	}
	if entries[0]["level"] != "trace" {
		t.Fatalf("expected trace level, got %v", entries[0]["level"])
	}
}

func TestErrorWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, zerolog.InfoLevel) })

	Error(nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to be ignored")
	}
	Error(errors.New("boom"))
	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["error"] != "boom" || entries[0]["level"] != "error" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chopsticks.log")
	closer, err := Configure(path, "debug")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, zerolog.InfoLevel) })

	Error(errors.New("written"))
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Fatalf("expected log entry, got %q", data)
	}
}

func TestConfigureRejectsLevel(t *testing.T) {
	if _, err := Configure("", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
