package git

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
)

// Remote is the remote the publisher pushes to.
const Remote = "origin"

// Identity is the commit author configured before committing.
type Identity struct {
	Name  string
	Email string
}

// Publisher commits the working tree changes and pushes them to a branch.
type Publisher struct {
	runner Runner
	dir    string
}

// NewPublisher creates a Publisher running git in dir.
func NewPublisher(runner Runner, dir string) *Publisher {
	return &Publisher{runner: runner, dir: dir}
}

// Publish configures the author, commits every modified tracked file with
// message and pushes HEAD to branch on origin. The steps run in order and the
// first failing one aborts the rest. There is no retry and no force-push.
func (p *Publisher) Publish(ctx context.Context, id Identity, message, branch string) error {
	// 1. Configure author name.
	if err := p.configure(ctx, "user.name", id.Name); err != nil {
		return err
	}

	// 2. Configure author email.
	if err := p.configure(ctx, "user.email", id.Email); err != nil {
		return err
	}

	// 3. Commit all modified tracked files.
	if _, err := p.runner.Run(ctx, p.dir, "commit", "-am", message); err != nil {
		return fmt.Errorf("committing changes: %w", err)
	}

	// 4. Push to the target branch.
	if _, err := p.runner.Run(ctx, p.dir, "push", "-u", Remote, "HEAD:"+branch); err != nil {
		return fmt.Errorf("pushing to %s: %w", branch, err)
	}

	return nil
}

// configure sets a global git config key. An empty value is skipped so the
// existing identity applies instead of an empty one.
func (p *Publisher) configure(ctx context.Context, key, value string) error {
	if value == "" {
		logger.Warnf("No value for %s, keeping the existing git configuration", key)
		return nil
	}
	if _, err := p.runner.Run(ctx, p.dir, "config", "--global", key, value); err != nil {
		return fmt.Errorf("configuring %s: %w", key, err)
	}
	return nil
}
