// Package bump composes a releasebump run: resolve the release, extract the
// version, update the files, then commit and push.
package bump

import (
	"context"
	"fmt"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/config"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/document"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/git"
	ghprovider "github.com/MyCarrier-DevOps/go-releasebump/internal/github"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/version"

	logger "github.com/sirupsen/logrus"
)

// ReleaseResolver looks up the release of a tag.
type ReleaseResolver interface {
	Resolve(ctx context.Context, tag string, lookupAuthor bool) (*ghprovider.Release, error)
}

// Deps are the collaborators of Run. Nil fields are created from the
// configuration.
type Deps struct {
	Releases ReleaseResolver
	Runner   git.Runner
}

// Result describes a completed run.
type Result struct {
	Tag         string
	Version     string
	Branch      string
	AuthorName  string
	AuthorEmail string

	Files []document.FileResult

	// Changed is true when at least one file differed from Version.
	Changed bool
	// Committed is true when the change was committed and pushed.
	Committed bool
}

// Run executes the whole pipeline for cfg. The first failing step aborts
// the run; files written before the failure are not restored.
func Run(ctx context.Context, cfg *config.Config, deps Deps) (*Result, error) {
	logger.Info("Setting input and environment variables")
	res := &Result{
		Tag:         cfg.Tag(),
		Branch:      cfg.Branch,
		AuthorName:  cfg.AuthorName,
		AuthorEmail: cfg.AuthorEmail,
	}

	// 1. Resolve branch and author from the release.
	if cfg.HasReleaseAuth() {
		if err := resolveRelease(ctx, cfg, deps.Releases, res); err != nil {
			return nil, err
		}
	} else {
		logger.Info("No repo-token supplied, skipping release lookup")
	}
	logger.Debugf("Tag: %s, branch: %s", res.Tag, res.Branch)

	// 2. Extract the version.
	v, err := version.Extract(res.Tag, cfg.VersionRegexp)
	if err != nil {
		return nil, err
	}
	res.Version = v
	logger.Infof("Version: %s", v)

	// 3. Update the files.
	logger.Info("Updating files version field")
	updater := document.NewUpdater(document.Options{
		Root:             cfg.Workspace,
		Spacing:          cfg.Spacing,
		Swagger:          cfg.Swagger,
		SwaggerWriteInfo: cfg.SwaggerWriteInfo,
		DryRun:           cfg.DryRun,
	})
	res.Files, res.Changed, err = updater.UpdateAll(cfg.Files, v)
	if err != nil {
		return nil, err
	}

	if !res.Changed {
		logger.Info("Skipped commit since no files were changed")
		return res, nil
	}
	if cfg.DryRun {
		logger.Info("Dry run, skipping commit and push")
		return res, nil
	}

	// 4. Commit and push.
	runner := deps.Runner
	if runner == nil {
		runner = &git.ExecRunner{}
	}
	logger.Info("Committing file changes")
	publisher := git.NewPublisher(runner, cfg.Workspace)
	id := git.Identity{Name: res.AuthorName, Email: res.AuthorEmail}
	if err := publisher.Publish(ctx, id, cfg.CommitMessageFor(v), res.Branch); err != nil {
		return nil, err
	}
	res.Committed = true

	return res, nil
}

func resolveRelease(ctx context.Context, cfg *config.Config, releases ReleaseResolver, res *Result) error {
	if releases == nil {
		r, err := newResolver(ctx, cfg)
		if err != nil {
			return err
		}
		releases = r
	}

	lookupAuthor := cfg.AuthorName == "" && cfg.AuthorEmail == ""
	release, err := releases.Resolve(ctx, res.Tag, lookupAuthor)
	if err != nil {
		return err
	}

	res.Branch = release.Branch
	if lookupAuthor {
		res.AuthorName = release.AuthorName
		res.AuthorEmail = release.AuthorEmail
	}
	return nil
}

// newResolver creates a release resolver for the repository of cfg.
func newResolver(ctx context.Context, cfg *config.Config) (*ghprovider.Resolver, error) {
	owner, repo, err := repository(cfg)
	if err != nil {
		return nil, err
	}

	client, err := ghprovider.NewClient(ctx, ghprovider.ClientConfig{
		Token:      cfg.Token,
		AppID:      cfg.AppID,
		AppKeyPath: cfg.AppKeyPath,
		BaseURL:    cfg.BaseURL,
		Owner:      owner,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GitHub client: %w", err)
	}
	return ghprovider.NewResolver(client, owner, repo), nil
}

// repository returns owner and name from the configured repository, or from
// the origin remote of the workspace.
func repository(cfg *config.Config) (string, string, error) {
	if cfg.Repository != "" {
		return ghprovider.ParseRepository(cfg.Repository)
	}

	repo, err := git.Open(cfg.Workspace)
	if err != nil {
		return "", "", fmt.Errorf("opening repository: %w", err)
	}
	return repo.OwnerRepo()
}
