package config

// Default input values, applied before any other layer.
const (
	DefaultVersionRegexp = `\d+\.\d+\.\d+`
	DefaultFiles         = "package.json"
	DefaultCommitMessage = "Release " + VersionPlaceholder
	DefaultSpacingLevel  = "2"
	DefaultWorkspace     = "."
)

// CreateDefaultSource returns the layer holding the default input values.
func CreateDefaultSource() *Source {
	return &Source{
		VersionRegexp:    stringPtr(DefaultVersionRegexp),
		Files:            stringPtr(DefaultFiles),
		CommitMessage:    stringPtr(DefaultCommitMessage),
		SpacingLevel:     stringPtr(DefaultSpacingLevel),
		Swagger:          stringPtr("false"),
		SwaggerWriteInfo: stringPtr("false"),
		Workspace:        stringPtr(DefaultWorkspace),
		DryRun:           stringPtr("false"),
	}
}
