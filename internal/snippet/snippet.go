// Package snippet defines the stored command record and the text form used by
// the editor. The editor text is a TOML fragment with one key per field, the
// same shape each element of the persisted document has.
package snippet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrMissingField is returned by Parse when a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownField is returned by Parse when the text holds a key that is
	// not part of a snippet.
	ErrUnknownField = errors.New("unknown field")
)

// Snippet is a stored command line plus a free text description. Priority is
// the relevance score assigned by the last search; it is persisted but carries
// no meaning between runs.
type Snippet struct {
	Priority    int64  `toml:"priority"`
	Cmd         string `toml:"cmd"`
	Description string `toml:"description"`
}

// Title returns the first non-blank line of the command.
func (s Snippet) Title() string {
	for _, line := range strings.Split(s.Cmd, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// SameContent reports whether both snippets hold the same command and
// description, ignoring the transient priority.
func (s Snippet) SameContent(other Snippet) bool {
	return s.Cmd == other.Cmd && s.Description == other.Description
}

// Dump renders the snippet in the editor text form. Multi-line values use TOML
// literal strings so they can be edited as typed.
func (s Snippet) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "priority = %d\n", s.Priority)
	b.WriteString("cmd = ")
	b.WriteString(quote(s.Cmd))
	b.WriteString("\ndescription = ")
	b.WriteString(quote(s.Description))
	return b.String()
}

// Parse reads one snippet from editor text. cmd and description must be
// present; priority defaults to 0.
func Parse(text string) (Snippet, error) {
	var s Snippet
	md, err := toml.Decode(text, &s)
	if err != nil {
		return Snippet{}, fmt.Errorf("parse snippet: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Snippet{}, fmt.Errorf("parse snippet: %w %q", ErrUnknownField, undecoded[0].String())
	}
	for _, field := range []string{"cmd", "description"} {
		if !md.IsDefined(field) {
			return Snippet{}, fmt.Errorf("parse snippet: %w %q", ErrMissingField, field)
		}
	}
	return s, nil
}

// Clone produces a shallow copy of the provided snippets.
func Clone(list []Snippet) []Snippet {
	dup := make([]Snippet, len(list))
	copy(dup, list)
	return dup
}

func quote(value string) string {
	if value == "" {
		return "'''\n'''"
	}
	if !literalSafe(value) {
		return basicString(value)
	}
	if strings.HasPrefix(value, "\n") || strings.HasPrefix(value, "\r\n") {
		// the newline directly after the opening delimiter is trimmed by TOML
		return "'''\n" + value + "'''"
	}
	return "'''" + value + "'''"
}

// literalSafe reports whether value can be written as a multi-line literal
// string without escaping.
func literalSafe(value string) bool {
	if strings.Contains(value, "'''") || strings.HasSuffix(value, "'") {
		return false
	}
	for i, r := range value {
		switch {
		case r == '\t' || r == '\n':
		case r == '\r':
			if !strings.HasPrefix(value[i:], "\r\n") {
				return false
			}
		case r < 0x20 || r == 0x7f:
			return false
		}
	}
	return true
}

func basicString(value string) string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(map[string]string{"v": value}); err != nil {
		return "''''''"
	}
	return strings.TrimPrefix(strings.TrimSpace(b.String()), "v = ")
}
