// Package terminal owns the saved state of the controlling terminal and
// restores it exactly once, whether the program exits normally, hands the
// terminal to a child process, or panics.
package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/atomicstack/chopsticks/internal/logging"
)

// resetSequence leaves the alternate screen, disables mouse reporting and
// shows the cursor.
const resetSequence = ansi.ResetAltScreenSaveCursorMode +
	ansi.ResetButtonEventMouseMode +
	ansi.ResetSgrExtMouseMode +
	ansi.ShowCursor

// Session tracks whether the terminal still needs restoring.
type Session struct {
	mu       sync.Mutex
	out      io.Writer
	fd       int
	state    *term.State
	restored bool
}

// Open records the current mode of in when it is a terminal. Reset sequences
// are written to out on Restore.
func Open(in *os.File, out io.Writer) *Session {
	s := &Session{out: out, fd: -1}
	if in == nil {
		return s
	}
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return s
	}
	state, err := term.GetState(fd)
	if err != nil {
		logging.Error(err)
		return s
	}
	s.fd = fd
	s.state = state
	return s
}

// Restore puts the terminal back into its saved state. Only the first call
// has any effect.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return nil
	}
	s.restored = true

	if s.out != nil {
		if _, err := io.WriteString(s.out, resetSequence); err != nil {
			logging.Error(err)
		}
	}
	if s.state != nil {
		if err := term.Restore(s.fd, s.state); err != nil {
			return err
		}
	}
	return nil
}

// MarkRestored records that something else already restored the terminal,
// so a later Restore does nothing.
func (s *Session) MarkRestored() {
	s.mu.Lock()
	s.restored = true
	s.mu.Unlock()
}

// Guard restores the terminal if the calling goroutine is panicking, then
// re-panics. Use it with defer.
func (s *Session) Guard() {
	if r := recover(); r != nil {
		_ = s.Restore()
		panic(r)
	}
}
