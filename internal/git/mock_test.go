package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockRunner_NilFuncSucceeds(t *testing.T) {
	m := &MockRunner{}

	out, err := m.Run(context.Background(), "/work", "status")
	require.NoError(t, err)
	require.Equal(t, "", out)
	require.Equal(t, [][]string{{"status"}}, m.Calls)
	require.Equal(t, []string{"/work"}, m.Dirs)
}

func TestMockRunner_DelegatesToFunc(t *testing.T) {
	m := &MockRunner{
		RunFunc: func(_ string, args ...string) (string, error) {
			if args[0] == "push" {
				return "rejected", errors.New("exit status 1")
			}
			return "ok", nil
		},
	}

	out, err := m.Run(context.Background(), "", "commit")
	require.NoError(t, err)
	require.Equal(t, "ok", out)

	_, err = m.Run(context.Background(), "", "push")
	require.Error(t, err)
	require.Len(t, m.Calls, 2)
}
