package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHCL_GetTopLevel(t *testing.T) {
	doc, err := Decode(FormatHCL, []byte("name    = \"app\"\nversion = \"1.0.0\"\n"), 2)
	require.NoError(t, err)

	v, ok := doc.Get("version")
	require.True(t, ok)
	require.Equal(t, "1.0.0", v)
}

func TestHCL_GetInBlock(t *testing.T) {
	doc, err := Decode(FormatHCL, []byte("info {\n  title   = \"API\"\n  version = \"1.0.0\"\n}\n"), 2)
	require.NoError(t, err)

	v, ok := doc.Get("info", "version")
	require.True(t, ok)
	require.Equal(t, "1.0.0", v)

	_, ok = doc.Get("version")
	require.False(t, ok)
}

func TestHCL_GetNonLiteral(t *testing.T) {
	input := "major   = 1\nversion = \"${major}.0.0\"\ncount   = 3\n"
	doc, err := Decode(FormatHCL, []byte(input), 2)
	require.NoError(t, err)

	_, ok := doc.Get("version")
	require.False(t, ok)

	_, ok = doc.Get("count")
	require.False(t, ok)

	_, ok = doc.Get()
	require.False(t, ok)
}

func TestHCL_SetKeepsFormatting(t *testing.T) {
	input := "# release metadata\nname    = \"app\"\nversion = \"1.0.0\"\n"
	doc, err := Decode(FormatHCL, []byte(input), 2)
	require.NoError(t, err)
	require.NoError(t, doc.Set("1.1.0", "version"))

	out, err := doc.Encode()
	require.NoError(t, err)
	require.Contains(t, string(out), "# release metadata\n")
	require.Contains(t, string(out), "name    = \"app\"\n")

	again, err := Decode(FormatHCL, out, 2)
	require.NoError(t, err)
	v, ok := again.Get("version")
	require.True(t, ok)
	require.Equal(t, "1.1.0", v)
}

func TestHCL_SetTopLevelLeavesBlock(t *testing.T) {
	doc, err := Decode(FormatHCL, []byte("info {\n  version = \"1.0.0\"\n}\n"), 2)
	require.NoError(t, err)
	require.NoError(t, doc.Set("1.1.0", "version"))

	out, err := doc.Encode()
	require.NoError(t, err)

	again, err := Decode(FormatHCL, out, 2)
	require.NoError(t, err)
	top, ok := again.Get("version")
	require.True(t, ok)
	require.Equal(t, "1.1.0", top)
	nested, ok := again.Get("info", "version")
	require.True(t, ok)
	require.Equal(t, "1.0.0", nested)
}

func TestHCL_SetCreatesBlock(t *testing.T) {
	doc, err := Decode(FormatHCL, []byte("name = \"app\"\n"), 2)
	require.NoError(t, err)
	require.NoError(t, doc.Set("2.0.0", "info", "version"))

	out, err := doc.Encode()
	require.NoError(t, err)

	again, err := Decode(FormatHCL, out, 2)
	require.NoError(t, err)
	v, ok := again.Get("info", "version")
	require.True(t, ok)
	require.Equal(t, "2.0.0", v)
}

func TestHCL_DecodeError(t *testing.T) {
	_, err := Decode(FormatHCL, []byte("version = \n"), 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing HCL")
}
