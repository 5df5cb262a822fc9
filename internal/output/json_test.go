package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	vars := map[string]string{"version": "1.2.3", "changed": "true"}
	var buf bytes.Buffer
	err := WriteJSON(&buf, vars)
	require.NoError(t, err)

	var parsed map[string]string
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)
	require.Equal(t, "1.2.3", parsed["version"])
	require.Equal(t, "true", parsed["changed"])
}

func TestWriteVariable(t *testing.T) {
	vars := map[string]string{"version": "1.2.3"}
	var buf bytes.Buffer
	err := WriteVariable(&buf, vars, "version")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", buf.String())
}

func TestWriteVariable_Unknown(t *testing.T) {
	vars := map[string]string{"version": "1.2.3"}
	var buf bytes.Buffer
	err := WriteVariable(&buf, vars, "NonExistent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown variable")
}

func TestWriteAll(t *testing.T) {
	vars := map[string]string{"version": "1.2.3", "branch": "main"}
	var buf bytes.Buffer
	err := WriteAll(&buf, vars)
	require.NoError(t, err)
	require.Equal(t, "branch=main\nversion=1.2.3\n", buf.String())
}
