package config

// Input names recognized as flags, INPUT_* environment variables and
// config file keys.
const (
	InputRepoToken        = "repo-token"
	InputVersionRegexp    = "version-regexp"
	InputFiles            = "files"
	InputCommitMessage    = "commit-message"
	InputSpacingLevel     = "spacing-level"
	InputBranchName       = "branch-name"
	InputAuthorName       = "author-name"
	InputAuthorEmail      = "author-email"
	InputSwagger          = "swagger"
	InputSwaggerWriteInfo = "swagger-write-info"
)

// Source is one configuration layer. All fields are pointers so that a layer
// only overrides what it actually sets. Values are kept as raw strings and
// parsed once in Build, so every layer is validated the same way.
type Source struct {
	RepoToken        *string `yaml:"repo-token"`
	VersionRegexp    *string `yaml:"version-regexp"`
	Files            *string `yaml:"files"`
	CommitMessage    *string `yaml:"commit-message"`
	SpacingLevel     *string `yaml:"spacing-level"`
	BranchName       *string `yaml:"branch-name"`
	AuthorName       *string `yaml:"author-name"`
	AuthorEmail      *string `yaml:"author-email"`
	Swagger          *string `yaml:"swagger"`
	SwaggerWriteInfo *string `yaml:"swagger-write-info"`

	GitHubURL  *string `yaml:"github-url"`
	AppID      *string `yaml:"github-app-id"`
	AppKeyPath *string `yaml:"github-app-key-path"`
	Workspace  *string `yaml:"workspace"`
	Ref        *string `yaml:"ref"`
	Repository *string `yaml:"repository"`
	DryRun     *string `yaml:"dry-run"`
}

// Field returns a pointer to the field of s that holds the named input, or
// nil if the name is not an input.
func (s *Source) Field(name string) **string {
	switch name {
	case InputRepoToken:
		return &s.RepoToken
	case InputVersionRegexp:
		return &s.VersionRegexp
	case InputFiles:
		return &s.Files
	case InputCommitMessage:
		return &s.CommitMessage
	case InputSpacingLevel:
		return &s.SpacingLevel
	case InputBranchName:
		return &s.BranchName
	case InputAuthorName:
		return &s.AuthorName
	case InputAuthorEmail:
		return &s.AuthorEmail
	case InputSwagger:
		return &s.Swagger
	case InputSwaggerWriteInfo:
		return &s.SwaggerWriteInfo
	}
	return nil
}

// InputNames lists every action input in declaration order.
var InputNames = []string{
	InputRepoToken,
	InputVersionRegexp,
	InputFiles,
	InputCommitMessage,
	InputSpacingLevel,
	InputBranchName,
	InputAuthorName,
	InputAuthorEmail,
	InputSwagger,
	InputSwaggerWriteInfo,
}
