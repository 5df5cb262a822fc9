package git

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireGit(t)

	out, err := (&ExecRunner{}).Run(context.Background(), t.TempDir(), "--version")
	require.NoError(t, err)
	require.Contains(t, out, "git version")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireGit(t)

	_, err := (&ExecRunner{}).Run(context.Background(), t.TempDir(), "rev-parse", "HEAD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "git rev-parse")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := (&ExecRunner{Binary: "/nonexistent/git"}).Run(context.Background(), t.TempDir(), "status")
	require.Error(t, err)
	require.Contains(t, err.Error(), "/nonexistent/git status")
}
