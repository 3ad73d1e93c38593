// Package store persists the snippet list as a TOML document on disk.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/chopsticks/internal/snippet"
)

// FileName is the name of the snippet document inside the data directory.
const FileName = "snippets.toml"

// Document is the root TOML structure stored on disk.
type Document struct {
	Snippets []snippet.Snippet `toml:"snippets"`
}

// File loads and saves the snippet list at a fixed path.
type File struct {
	path string
}

// New returns a store backed by FileName inside dataDir.
func New(dataDir string) *File {
	return &File{path: filepath.Join(dataDir, FileName)}
}

// Path reports the document location.
func (f *File) Path() string {
	return f.path
}

// DefaultDataDir returns $XDG_DATA_HOME/chopsticks, falling back to
// ~/.local/share/chopsticks.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "chopsticks")
}

// Load reads the snippet list. A missing document is created empty, along
// with its directory. Empty content yields an empty list.
func (f *File) Load() ([]snippet.Snippet, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}
		if err := f.create(); err != nil {
			return nil, err
		}
		return []snippet.Snippet{}, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []snippet.Snippet{}, nil
	}

	var doc Document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	if doc.Snippets == nil {
		doc.Snippets = []snippet.Snippet{}
	}
	return doc.Snippets, nil
}

// Save overwrites the document with list. The write goes through a temporary
// file renamed into place.
func (f *File) Save(list []snippet.Snippet) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := Encode(list)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Encode renders list as the persisted TOML document.
func Encode(list []snippet.Snippet) ([]byte, error) {
	doc := Document{Snippets: list}
	if doc.Snippets == nil {
		doc.Snippets = []snippet.Snippet{}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode snippets: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *File) create() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.path, err)
	}
	return fh.Close()
}
