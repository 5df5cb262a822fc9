package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"package.json", FormatJSON},
		{"nested/dir/composer.json", FormatJSON},
		{"Chart.yaml", FormatYAML},
		{"openapi.yml", FormatYAML},
		{"PACKAGE.JSON", FormatJSON},
		{"module/version.hcl", FormatHCL},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFor_Unsupported(t *testing.T) {
	for _, path := range []string{"VERSION.txt", "setup.cfg", "Makefile", "pyproject.toml"} {
		t.Run(path, func(t *testing.T) {
			_, err := FormatFor(path)
			require.ErrorIs(t, err, ErrUnsupportedExtension)
			require.Contains(t, err.Error(), "submit a PR adding a new parser")
		})
	}
}

func TestFormatFor_NamesExtension(t *testing.T) {
	_, err := FormatFor("VERSION.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported file extension "txt"`)
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "json", FormatJSON.String())
	require.Equal(t, "yaml", FormatYAML.String())
	require.Equal(t, "hcl", FormatHCL.String())
	require.Equal(t, "unknown", FormatUnknown.String())
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(FormatUnknown, []byte("{}"), 2)
	require.ErrorIs(t, err, ErrUnsupportedExtension)
}
