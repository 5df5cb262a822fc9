// Package document reads and rewrites the version field of structured files.
//
// The set of supported formats is closed: FormatFor maps a file extension to
// exactly one Format, and Decode switches over that enum. Supporting a new
// format means adding a constant, an extension case and a decoder.
//
// In swagger mode the current version is read from info.version. A document
// without info (or without info.version) has no current version, so it is
// rewritten rather than rejected.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the serialization of a file.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatHCL
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// ErrUnsupportedExtension is returned for files whose extension has no parser.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// FormatFor selects the format of path from its extension alone.
func FormatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	switch strings.ToLower(ext) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	}
	return FormatUnknown, fmt.Errorf("%w %q.\nTo add it you can simply submit a PR adding a new parser", ErrUnsupportedExtension, ext)
}
