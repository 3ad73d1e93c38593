package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chopsticks/internal/logging"
	"github.com/atomicstack/chopsticks/internal/logging/events"
	"github.com/atomicstack/chopsticks/internal/runner"
	"github.com/atomicstack/chopsticks/internal/snippet"
	"github.com/atomicstack/chopsticks/internal/store"
	"github.com/atomicstack/chopsticks/internal/terminal"
	"github.com/atomicstack/chopsticks/internal/tick"
	"github.com/atomicstack/chopsticks/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DataDir string
	Shell   string
	NoMouse bool
}

// Outcome is what the UI leaves behind when it exits.
type Outcome interface {
	Snippets() []snippet.Snippet
	Pending() (snippet.Snippet, bool)
}

// Run loads the snippet list, drives the Bubble Tea program, then persists
// the list and runs the chosen snippet, if any, on the released terminal.
func Run(ctx context.Context, cfg Config) error {
	st := store.New(cfg.DataDir)
	snippets, err := st.Load()
	if err != nil {
		return fmt.Errorf("load snippets: %w", err)
	}

	session := terminal.Open(os.Stdin, os.Stdout)
	defer session.Guard()

	ticks := tick.NewSourceContext(ctx, tick.DefaultInterval)
	model := ui.NewModel(snippets, ui.Options{Ticks: ticks})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !cfg.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, runErr := program.Run()
	ticks.Stop()

	clean, uiErr := exitStatus(runErr)
	if clean {
		session.MarkRestored()
	} else if err := session.Restore(); err != nil {
		logging.Error(err)
	}

	_, pending := model.Pending()
	events.App.Exit(len(model.Snippets()), pending, ticks.Dropped())

	if uiErr != nil {
		// The model may be mid-update; keep the list but run nothing.
		if err := persist(model.Snippets(), st, os.Stderr); err != nil {
			logging.Error(err)
		}
		return uiErr
	}
	return Finish(ctx, model, st, runner.New(cfg.Shell), os.Stdout, os.Stderr)
}

// exitStatus classifies the error returned by the Bubble Tea program. clean
// reports whether Bubble Tea already restored the terminal itself. A panic
// recovered by Bubble Tea also carries ErrProgramKilled, so it is checked
// first.
func exitStatus(runErr error) (clean bool, err error) {
	switch {
	case runErr == nil:
		return true, nil
	case errors.Is(runErr, tea.ErrProgramPanic):
		return false, fmt.Errorf("run ui: %w", runErr)
	case errors.Is(runErr, tea.ErrProgramKilled):
		return true, nil
	default:
		return false, fmt.Errorf("run ui: %w", runErr)
	}
}

// Finish persists the outcome's snippet list and then runs its pending
// snippet, reporting how the child exited on stdout. When saving fails the
// whole document goes to stderr so no edit is lost, and nothing is run.
func Finish(ctx context.Context, out Outcome, st *store.File, r *runner.Runner, stdout, stderr io.Writer) error {
	if err := persist(out.Snippets(), st, stderr); err != nil {
		return err
	}

	selected, ok := out.Pending()
	if !ok {
		return nil
	}
	events.Exec.Start(selected.Cmd)
	res, err := r.Run(ctx, selected.Cmd)
	events.Exec.Finish(res.Code, res.Signaled, err)
	if err != nil {
		return fmt.Errorf("run snippet: %w", err)
	}
	fmt.Fprintln(stdout, res.String())
	return nil
}

func persist(list []snippet.Snippet, st *store.File, stderr io.Writer) error {
	if err := st.Save(list); err != nil {
		logging.Error(err)
		dumpUnsaved(stderr, st.Path(), list)
		return fmt.Errorf("save snippets: %w", err)
	}
	return nil
}

func dumpUnsaved(w io.Writer, path string, list []snippet.Snippet) {
	data, err := store.Encode(list)
	if err != nil {
		logging.Error(err)
		for _, s := range list {
			fmt.Fprintf(w, "%s\n\n", s.Dump())
		}
		return
	}
	fmt.Fprintf(w, "Unsaved snippets (could not write %s):\n", path)
	_, _ = w.Write(data)
}
