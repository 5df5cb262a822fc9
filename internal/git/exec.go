package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// Compile-time check that ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs the git binary found on PATH, or Binary when set.
type ExecRunner struct {
	Binary string
}

func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}

	logger.Infof("[command]%s %s", bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if output != "" {
		logger.Debug(output)
	}
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s %s: %w: %s", bin, args[0], err, output)
		}
		return output, fmt.Errorf("%s %s: %w", bin, args[0], err)
	}
	return output, nil
}
