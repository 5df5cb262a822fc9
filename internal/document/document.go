package document

import (
	"errors"
	"fmt"
)

// maxSpacing caps the indentation width, matching JSON.stringify.
const maxSpacing = 10

// ErrNotMapping is returned when a document or an intermediate value on a
// path is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// Document is a parsed file whose string fields can be read and replaced.
type Document interface {
	// Get returns the string stored at path. The second result is false when
	// the value is absent or is not a string.
	Get(path ...string) (string, bool)

	// Set stores value at path, creating intermediate mappings as needed.
	Set(value string, path ...string) error

	// Encode serializes the whole document.
	Encode() ([]byte, error)
}

// Decode parses data in the given format. spacing is the indentation width
// used by Encode for formats that support it.
func Decode(format Format, data []byte, spacing int) (Document, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data, spacing)
	case FormatYAML:
		return decodeYAML(data, spacing)
	case FormatHCL:
		return decodeHCL(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedExtension, format)
	}
}

func clampSpacing(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxSpacing {
		return maxSpacing
	}
	return n
}
