package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMissingBranchSource is returned when neither a token nor a branch name
// is configured, leaving no way to know where to push.
var ErrMissingBranchSource = errors.New("either repo-token or branch-name must be supplied")

// ErrMissingRef is returned when no tag ref is available.
var ErrMissingRef = errors.New("no tag ref: set GITHUB_REF or --ref")

// Builder constructs a Config by layering sources on top of defaults.
type Builder struct {
	layers []*Source
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration layer. Layers are applied in order:
// later layers take precedence over earlier ones.
func (b *Builder) Add(layer *Source) *Builder {
	if layer != nil {
		b.layers = append(b.layers, layer)
	}
	return b
}

// Build merges all layers over the defaults, parses the raw values and
// validates the result.
func (b *Builder) Build() (*Config, error) {
	src := CreateDefaultSource()
	for _, layer := range b.layers {
		mergeSource(src, layer)
	}
	return resolve(src)
}

// mergeSource applies non-nil fields from src to dst.
func mergeSource(dst, src *Source) {
	for _, name := range InputNames {
		if v := *src.Field(name); v != nil {
			*dst.Field(name) = v
		}
	}
	if src.GitHubURL != nil {
		dst.GitHubURL = src.GitHubURL
	}
	if src.AppID != nil {
		dst.AppID = src.AppID
	}
	if src.AppKeyPath != nil {
		dst.AppKeyPath = src.AppKeyPath
	}
	if src.Workspace != nil {
		dst.Workspace = src.Workspace
	}
	if src.Ref != nil {
		dst.Ref = src.Ref
	}
	if src.Repository != nil {
		dst.Repository = src.Repository
	}
	if src.DryRun != nil {
		dst.DryRun = src.DryRun
	}
}

func resolve(src *Source) (*Config, error) {
	cfg := &Config{
		Token:         deref(src.RepoToken),
		AppKeyPath:    deref(src.AppKeyPath),
		BaseURL:       deref(src.GitHubURL),
		Files:         ParseFiles(deref(src.Files)),
		CommitMessage: deref(src.CommitMessage),
		Branch:        deref(src.BranchName),
		AuthorName:    deref(src.AuthorName),
		AuthorEmail:   deref(src.AuthorEmail),
		Workspace:     deref(src.Workspace),
		Ref:           deref(src.Ref),
		Repository:    deref(src.Repository),
	}

	pattern := deref(src.VersionRegexp)
	if pattern == "" {
		return nil, fmt.Errorf("%s is required", InputVersionRegexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", InputVersionRegexp, pattern, err)
	}
	cfg.VersionRegexp = re

	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("%s must list at least one file", InputFiles)
	}

	if cfg.Spacing, err = strconv.Atoi(strings.TrimSpace(deref(src.SpacingLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be an integer", InputSpacingLevel, deref(src.SpacingLevel))
	}

	if cfg.Swagger, err = parseBool(InputSwagger, src.Swagger); err != nil {
		return nil, err
	}
	if cfg.SwaggerWriteInfo, err = parseBool(InputSwaggerWriteInfo, src.SwaggerWriteInfo); err != nil {
		return nil, err
	}
	if cfg.DryRun, err = parseBool("dry-run", src.DryRun); err != nil {
		return nil, err
	}

	if s := deref(src.AppID); s != "" {
		if cfg.AppID, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid github-app-id %q: must be an integer", s)
		}
	}

	if cfg.Workspace == "" {
		cfg.Workspace = DefaultWorkspace
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks cross-field requirements of the resolved configuration.
func validate(cfg *Config) error {
	if !cfg.HasReleaseAuth() && cfg.Branch == "" {
		return ErrMissingBranchSource
	}
	if cfg.Ref == "" {
		return ErrMissingRef
	}
	if cfg.SwaggerWriteInfo && !cfg.Swagger {
		return fmt.Errorf("%s requires %s", InputSwaggerWriteInfo, InputSwagger)
	}
	return nil
}

func parseBool(name string, raw *string) (bool, error) {
	s := strings.TrimSpace(deref(raw))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be a boolean", name, s)
	}
	return v, nil
}
