package output

import (
	"fmt"
	"os"
	"strings"
)

// outputDelimiter marks the end of a multi-line value in the step output file.
const outputDelimiter = "RELEASEBUMP_EOF"

// WriteGitHubOutput appends variables to the step output file at path, the
// file the runner exposes as GITHUB_OUTPUT. Keys are written sorted.
// Multi-line values use the heredoc form.
func WriteGitHubOutput(path string, variables map[string]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, k := range sortedKeys(variables) {
		v := variables[k]
		if strings.Contains(v, "\n") {
			fmt.Fprintf(&b, "%s<<%s\n%s\n%s\n", k, outputDelimiter, v, outputDelimiter)
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", k, v)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return f.Close()
}

// Annotate formats msg as a workflow command of the given kind (error,
// warning, notice), escaping the characters the runner treats specially.
func Annotate(kind, msg string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return fmt.Sprintf("::%s::%s", kind, r.Replace(msg))
}
