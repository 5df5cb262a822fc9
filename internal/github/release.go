// Package github resolves release metadata of a pushed tag through the
// GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v68/github"
	logger "github.com/sirupsen/logrus"
)

// ErrReleaseNotFound is returned when no release exists for the tag.
var ErrReleaseNotFound = errors.New("release not found")

// Release is the metadata of a release, fetched once per run.
type Release struct {
	TagName string
	// Branch is the release's target_commitish.
	Branch string

	AuthorLogin string
	AuthorName  string
	AuthorEmail string
}

// Resolver looks up releases of a single repository.
type Resolver struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewResolver creates a Resolver for owner/repo.
func NewResolver(client *gh.Client, owner, repo string) *Resolver {
	return &Resolver{client: client, owner: owner, repo: repo}
}

// Resolve fetches the release whose tag is exactly tag. When lookupAuthor is
// set, the release author's profile supplies the display name and email;
// missing values fall back to the login and the GitHub noreply address.
func (r *Resolver) Resolve(ctx context.Context, tag string, lookupAuthor bool) (*Release, error) {
	logger.Infof("Fetching release for tag %q from %s/%s", tag, r.owner, r.repo)
	ghRelease, _, err := r.client.Repositories.GetReleaseByTag(ctx, r.owner, r.repo, tag)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: release with name %q was not found", ErrReleaseNotFound, tag)
		}
		return nil, fmt.Errorf("getting release %s: %w", tag, err)
	}

	// The lookup may match loosely, so only an exact tag is accepted.
	if ghRelease.GetTagName() != tag {
		return nil, fmt.Errorf("%w: release with name %q was not found", ErrReleaseNotFound, tag)
	}

	author := ghRelease.GetAuthor()
	release := &Release{
		TagName:     ghRelease.GetTagName(),
		Branch:      ghRelease.GetTargetCommitish(),
		AuthorLogin: author.GetLogin(),
	}

	if !lookupAuthor {
		return release, nil
	}
	// An empty login would make Users.Get return the token owner.
	if release.AuthorLogin == "" {
		logger.Warnf("Release %s has no author, skipping author lookup", tag)
		return release, nil
	}

	logger.Info("Getting author and email from release information")
	user, _, err := r.client.Users.Get(ctx, release.AuthorLogin)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", release.AuthorLogin, err)
	}

	release.AuthorName = user.GetName()
	if release.AuthorName == "" {
		release.AuthorName = user.GetLogin()
	}
	release.AuthorEmail = user.GetEmail()
	if release.AuthorEmail == "" {
		release.AuthorEmail = NoReplyEmail(user.GetID(), user.GetLogin())
	}
	logger.Infof("Nice to meet you %s (%s)!", release.AuthorName, release.AuthorEmail)

	return release, nil
}

// NoReplyEmail returns the GitHub noreply address of a user.
func NoReplyEmail(id int64, login string) string {
	return fmt.Sprintf("%d+%s@users.noreply.github.com", id, login)
}
