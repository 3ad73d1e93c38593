// Package runner executes a snippet command through a shell with the
// process's own standard streams.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

// DefaultShell interprets commands when none is configured.
const DefaultShell = "sh"

// Result describes how the child process ended.
type Result struct {
	Code     int
	Signaled bool
	Signal   string
}

func (r Result) String() string {
	if r.Signaled {
		return "Process terminated by signal"
	}
	return fmt.Sprintf("Exited with status code: %d", r.Code)
}

// Runner spawns commands as `<shell> -c <command>`.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a runner wired to the current process's streams.
func New(shell string) *Runner {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	return &Runner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run blocks until command exits. A blank command is handed to the shell
// like any other and exits 0. A non-zero exit status or signal
// termination is reported in Result, not as an error; errors mean the child
// could not be started or waited on.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// Interrupts typed at the terminal reach the child through the process
	// group; keep them from killing us while we wait.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("start %s: %w", r.Shell, err)
	}

	err := cmd.Wait()
	state := cmd.ProcessState
	if state == nil {
		return Result{}, fmt.Errorf("wait %s: %w", r.Shell, err)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("wait %s: %w", r.Shell, err)
		}
	}

	if !state.Exited() {
		return Result{Code: state.ExitCode(), Signaled: true, Signal: state.String()}, nil
	}
	return Result{Code: state.ExitCode()}, nil
}
