// Package git publishes version changes through the git binary and reads
// local repository metadata through go-git.
package git

import "context"

// Runner executes git subcommands.
// This is the abstraction point between the publisher and the git binary.
type Runner interface {
	// Run executes git with args in dir and returns its combined output.
	// A non-zero exit is returned as an error.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}
