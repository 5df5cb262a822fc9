// Package releasebump provides a public Go API for writing a release tag's
// version into project files and pushing the change.
//
// Basic usage:
//
//	result, err := releasebump.Run(ctx, releasebump.Options{
//	    Workspace: "/path/to/repo",
//	    Ref:       "refs/tags/v1.2.3",
//	    Branch:    "main",
//	    Files:     []string{"package.json", "chart/Chart.yaml"},
//	})
//	fmt.Println(result.Version) // "1.2.3"
//
// With a Token the branch and commit author are taken from the GitHub
// release of the tag instead.
package releasebump

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/bump"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/config"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/output"
)

// Options configures a run. Zero values select the defaults; the process
// environment is not read.
type Options struct {
	// Workspace is the repository root the files are relative to. Defaults to ".".
	Workspace string

	// Ref is the pushed tag, with or without the refs/tags/ prefix (required).
	Ref string

	// Repository is the owner/repo of the release. Defaults to the origin remote.
	Repository string

	// Token is a GitHub token used to look up the release.
	Token string

	// AppID and AppKeyPath authenticate as a GitHub App instead of Token.
	AppID      int64
	AppKeyPath string

	// BaseURL is a custom GitHub API base URL for GitHub Enterprise.
	BaseURL string

	// VersionRegexp extracts the version from the tag. Defaults to \d+\.\d+\.\d+.
	VersionRegexp string

	// Files lists the files to update. Defaults to package.json.
	Files []string

	// CommitMessage is the commit message template. Every %version% is
	// replaced by the version. Defaults to "Release %version%".
	CommitMessage string

	// Spacing is the indentation width of rewritten files. Nil selects 2.
	Spacing *int

	// Branch, AuthorName and AuthorEmail override the release metadata.
	Branch      string
	AuthorName  string
	AuthorEmail string

	// Swagger reads the current version from info.version.
	Swagger bool
	// SwaggerWriteInfo writes info.version instead of the top-level version.
	SwaggerWriteInfo bool

	// DryRun reports changes without writing files or pushing.
	DryRun bool

	// ConfigPath is a releasebump YAML config file applied below Options.
	ConfigPath string
}

// Result holds the outcome of a run.
type Result struct {
	Tag     string
	Version string
	Branch  string

	// ChangedFiles lists the files whose version was (or, in a dry run,
	// would be) rewritten.
	ChangedFiles []string

	Changed   bool
	Committed bool

	// Variables contains the step output variables: version, changed,
	// branch and committed.
	Variables map[string]string
}

// Run updates the files and publishes the change.
func Run(ctx context.Context, opts Options) (*Result, error) {
	// 1. Load configuration.
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// 2. Run the shared pipeline.
	res, err := bump.Run(ctx, cfg, bump.Deps{})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Tag:       res.Tag,
		Version:   res.Version,
		Branch:    res.Branch,
		Changed:   res.Changed,
		Committed: res.Committed,
		Variables: output.GetVariables(res),
	}
	for _, f := range res.Files {
		if f.Changed {
			result.ChangedFiles = append(result.ChangedFiles, f.Path)
		}
	}
	return result, nil
}

func loadConfig(opts Options) (*config.Config, error) {
	builder := config.NewBuilder()

	if opts.ConfigPath != "" {
		fileSrc, err := config.LoadFromFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		builder.Add(fileSrc)
	}

	return builder.Add(optionsSource(opts)).Build()
}

// optionsSource converts opts into a layer. Zero values are left unset.
func optionsSource(opts Options) *config.Source {
	src := &config.Source{
		Workspace:     nonEmpty(opts.Workspace),
		Ref:           nonEmpty(opts.Ref),
		Repository:    nonEmpty(opts.Repository),
		RepoToken:     nonEmpty(opts.Token),
		AppKeyPath:    nonEmpty(opts.AppKeyPath),
		GitHubURL:     nonEmpty(opts.BaseURL),
		VersionRegexp: nonEmpty(opts.VersionRegexp),
		Files:         nonEmpty(strings.Join(opts.Files, ",")),
		CommitMessage: nonEmpty(opts.CommitMessage),
		BranchName:    nonEmpty(opts.Branch),
		AuthorName:    nonEmpty(opts.AuthorName),
		AuthorEmail:   nonEmpty(opts.AuthorEmail),
	}
	if opts.AppID != 0 {
		src.AppID = nonEmpty(strconv.FormatInt(opts.AppID, 10))
	}
	if opts.Spacing != nil {
		src.SpacingLevel = nonEmpty(strconv.Itoa(*opts.Spacing))
	}
	if opts.Swagger {
		src.Swagger = nonEmpty("true")
	}
	if opts.SwaggerWriteInfo {
		src.SwaggerWriteInfo = nonEmpty("true")
	}
	if opts.DryRun {
		src.DryRun = nonEmpty("true")
	}
	return src
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
