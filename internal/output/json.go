package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// WriteJSON writes all variables as an indented JSON object.
func WriteJSON(w io.Writer, variables map[string]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(variables); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	return nil
}

// WriteVariable writes a single variable value to the writer.
func WriteVariable(w io.Writer, variables map[string]string, name string) error {
	val, ok := variables[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

// WriteAll writes all variables as key=value lines, sorted by key.
func WriteAll(w io.Writer, variables map[string]string) error {
	for _, k := range sortedKeys(variables) {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, variables[k]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(variables map[string]string) []string {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
