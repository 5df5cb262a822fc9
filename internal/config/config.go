// Package config provides layered input loading (defaults, YAML config file,
// action inputs, CLI flags) and validation for a releasebump run.
package config

import (
	"regexp"
	"strings"
)

// VersionPlaceholder is replaced by the extracted version in commit messages.
const VersionPlaceholder = "%version%"

// TagRefPrefix is the prefix of the GITHUB_REF value for tag pushes.
const TagRefPrefix = "refs/tags/"

// Config is the resolved, validated configuration of a single run.
// It is not modified after Build returns it.
type Config struct {
	// Token is the GitHub token used for the release lookup. Empty skips it
	// unless GitHub App credentials are set.
	Token string

	// AppID and AppKeyPath authenticate as a GitHub App installation.
	AppID      int64
	AppKeyPath string

	// BaseURL is the GitHub API base URL for GitHub Enterprise; empty for github.com.
	BaseURL string

	VersionRegexp *regexp.Regexp
	Files         []string
	CommitMessage string
	Spacing       int

	Branch      string
	AuthorName  string
	AuthorEmail string

	// Swagger reads the current version from info.version.
	Swagger bool
	// SwaggerWriteInfo also writes to info.version instead of the top-level field.
	SwaggerWriteInfo bool

	Workspace  string
	Ref        string
	Repository string

	DryRun bool
}

// Tag returns the pushed tag name with any refs/tags/ prefix removed.
func (c *Config) Tag() string {
	return strings.TrimPrefix(c.Ref, TagRefPrefix)
}

// HasReleaseAuth reports whether credentials for the release lookup are set.
func (c *Config) HasReleaseAuth() bool {
	return c.Token != "" || (c.AppID != 0 && c.AppKeyPath != "")
}

// CommitMessageFor renders the commit message template for version.
func (c *Config) CommitMessageFor(version string) string {
	return strings.ReplaceAll(c.CommitMessage, VersionPlaceholder, version)
}

// ParseFiles splits a comma-separated file list, trimming every entry and
// dropping empty ones.
func ParseFiles(raw string) []string {
	var files []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}
