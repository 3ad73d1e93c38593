package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(stdin string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := New("sh")
	r.Stdin = strings.NewReader(stdin)
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r, &stdout, &stderr
}

func TestRunInheritsStreams(t *testing.T) {
	t.Parallel()

	r, stdout, stderr := newTestRunner("from stdin\n")
	res, err := r.Run(context.Background(), "echo out; echo err >&2; cat")
	require.NoError(t, err)
	assert.Equal(t, Result{Code: 0}, res)
	assert.Equal(t, "out\nfrom stdin\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunReportsExitStatus(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRunner("")
	res, err := r.Run(context.Background(), "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Code)
	assert.False(t, res.Signaled)
	assert.Equal(t, "Exited with status code: 3", res.String())
}

func TestRunReportsSignal(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRunner("")
	res, err := r.Run(context.Background(), "kill -9 $$")
	require.NoError(t, err)
	assert.True(t, res.Signaled)
	assert.Equal(t, "Process terminated by signal", res.String())
}

func TestRunMultilineCommand(t *testing.T) {
	t.Parallel()

	r, stdout, _ := newTestRunner("")
	res, err := r.Run(context.Background(), "for i in 1 2; do\n  echo \"n$i\"\ndone")
	require.NoError(t, err)
	assert.Zero(t, res.Code)
	assert.Equal(t, "n1\nn2\n", stdout.String())
}

func TestRunBlankCommandExitsZero(t *testing.T) {
	t.Parallel()

	r, stdout, _ := newTestRunner("")
	res, err := r.Run(context.Background(), "  \n ")
	require.NoError(t, err)
	assert.False(t, res.Signaled)
	assert.Zero(t, res.Code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Exited with status code: 0", res.String())
}

func TestRunMissingShell(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRunner("")
	r.Shell = "/nonexistent/shell"
	_, err := r.Run(context.Background(), "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")
}

func TestNewDefaultsShell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultShell, New("").Shell)
	assert.Equal(t, "bash", New("bash").Shell)
}
