package config

import (
	"os"
	"strings"
)

// Environment variables provided by the GitHub Actions runner.
const (
	EnvWorkspace  = "GITHUB_WORKSPACE"
	EnvRef        = "GITHUB_REF"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvAPIURL     = "GITHUB_API_URL"
	EnvToken      = "GITHUB_TOKEN"
	EnvAppID      = "GH_APP_ID"
	EnvAppKeyPath = "GH_APP_PRIVATE_KEY_PATH"
)

// InputEnvName returns the variable the runner uses to pass an action input:
// INPUT_ followed by the upper-cased name with spaces replaced by underscores.
func InputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// FromEnv builds a layer from the process environment. Unset and blank
// variables leave the field nil, since the runner exports every declared
// input, including those the workflow left empty.
func FromEnv() *Source {
	src := &Source{}
	for _, name := range InputNames {
		*src.Field(name) = lookupEnv(InputEnvName(name))
	}

	if src.RepoToken == nil {
		src.RepoToken = lookupEnv(EnvToken)
	}
	src.Workspace = lookupEnv(EnvWorkspace)
	src.Ref = lookupEnv(EnvRef)
	src.Repository = lookupEnv(EnvRepository)
	src.GitHubURL = lookupEnv(EnvAPIURL)
	src.AppID = lookupEnv(EnvAppID)
	src.AppKeyPath = lookupEnv(EnvAppKeyPath)
	return src
}

func lookupEnv(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
