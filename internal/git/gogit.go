package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Repository gives read access to a local git repository via go-git.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the git repository containing path.
func Open(path string) (*Repository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}
	return &Repository{repo: r}, nil
}

// OwnerRepo returns the owner and name of the repository the origin remote
// points to.
func (r *Repository) OwnerRepo() (string, string, error) {
	remote, err := r.repo.Remote(Remote)
	if err != nil {
		return "", "", fmt.Errorf("getting remote %s: %w", Remote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("remote %s has no URL", Remote)
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repository from a remote URL. It accepts
// scp-like SSH (git@host:owner/repo.git) and URL forms (https://, ssh://).
// For nested paths the last two segments are used.
func ParseRemoteURL(raw string) (string, string, error) {
	var path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", fmt.Errorf("parsing remote URL %q: %w", raw, err)
		}
		path = u.Path
	case strings.Contains(raw, ":"):
		path = raw[strings.Index(raw, ":")+1:]
	default:
		return "", "", fmt.Errorf("unsupported remote URL %q", raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", errors.New("remote URL " + raw + " does not name owner/repo")
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
