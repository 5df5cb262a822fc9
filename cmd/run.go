package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/bump"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/config"
	"github.com/MyCarrier-DevOps/go-releasebump/internal/output"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envOutput is the step output file exported by the runner.
const envOutput = "GITHUB_OUTPUT"

// Flags that are not action inputs.
const (
	flagWorkspace  = "workspace"
	flagRef        = "ref"
	flagRepository = "repository"
	flagGitHubURL  = "github-url"
	flagAppID      = "github-app-id"
	flagAppKeyPath = "github-app-key-path"
	flagDryRun     = "dry-run"
)

var inputUsage = map[string]string{
	config.InputRepoToken:        "GitHub token used to look up the release (or set GITHUB_TOKEN)",
	config.InputVersionRegexp:    "regexp extracting the version from the tag",
	config.InputFiles:            "comma-separated files to update",
	config.InputCommitMessage:    "commit message, %version% is replaced by the version",
	config.InputSpacingLevel:     "indentation width of rewritten files",
	config.InputBranchName:       "branch to push to (default: the release's target branch)",
	config.InputAuthorName:       "commit author name (default: the release author)",
	config.InputAuthorEmail:      "commit author email (default: the release author)",
	config.InputSwagger:          "read the current version from info.version",
	config.InputSwaggerWriteInfo: "with --swagger, also write info.version instead of version",
}

// addRunFlags registers the input flags on cmd. Values are read back through
// Changed so that an unset flag never overrides another layer.
func addRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	for _, name := range config.InputNames {
		flags.String(name, "", inputUsage[name])
	}
	flags.String(flagWorkspace, "", "workspace directory (or set GITHUB_WORKSPACE, default: .)")
	flags.String(flagRef, "", "tag or refs/tags/ ref to release (or set GITHUB_REF)")
	flags.String(flagRepository, "", "owner/repo of the release (or set GITHUB_REPOSITORY, default: origin remote)")
	flags.String(flagGitHubURL, "", "GitHub API base URL for GitHub Enterprise (or set GITHUB_API_URL)")
	flags.Int64(flagAppID, 0, "GitHub App ID (or set GH_APP_ID)")
	flags.String(flagAppKeyPath, "", "path to GitHub App private key PEM file (or set GH_APP_PRIVATE_KEY_PATH)")
	flags.Bool(flagDryRun, false, "report changes without writing files or pushing")
}

func runE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load configuration.
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 2. Run the release pipeline.
	res, err := bump.Run(ctx, cfg, bump.Deps{})
	if err != nil {
		return err
	}

	// 3. Compute output variables.
	vars := output.GetVariables(res)

	// 4. Export them as step outputs.
	if path := os.Getenv(envOutput); path != "" {
		if err := output.WriteGitHubOutput(path, vars); err != nil {
			return err
		}
	}

	// 5. Write output.
	if err := writeOutput(cmd.OutOrStdout(), vars); err != nil {
		return err
	}

	logger.Info("Updated files version successfully")
	return nil
}

// loadConfig layers the config file, the environment and the flags.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := flagConfig
	if configPath == "" {
		configPath = config.FindConfigFile(workspace(flags))
	}
	if configPath != "" {
		logger.Debugf("Using config file %s", configPath)
		fileSrc, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		builder.Add(fileSrc)
	}

	builder.Add(config.FromEnv())
	builder.Add(flagSource(flags))

	return builder.Build()
}

// workspace returns the directory searched for a config file.
func workspace(flags *pflag.FlagSet) string {
	if flags.Changed(flagWorkspace) {
		v, _ := flags.GetString(flagWorkspace)
		return v
	}
	if v := os.Getenv(config.EnvWorkspace); v != "" {
		return v
	}
	return config.DefaultWorkspace
}

// flagSource builds a layer from the flags set on the command line.
func flagSource(flags *pflag.FlagSet) *config.Source {
	src := &config.Source{}
	for _, name := range config.InputNames {
		*src.Field(name) = changedString(flags, name)
	}
	src.Workspace = changedString(flags, flagWorkspace)
	src.Ref = changedString(flags, flagRef)
	src.Repository = changedString(flags, flagRepository)
	src.GitHubURL = changedString(flags, flagGitHubURL)
	src.AppKeyPath = changedString(flags, flagAppKeyPath)

	if flags.Changed(flagAppID) {
		id, _ := flags.GetInt64(flagAppID)
		s := strconv.FormatInt(id, 10)
		src.AppID = &s
	}
	if flags.Changed(flagDryRun) {
		dry, _ := flags.GetBool(flagDryRun)
		s := strconv.FormatBool(dry)
		src.DryRun = &s
	}
	return src
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// writeOutput writes the output variables in the requested format.
func writeOutput(w io.Writer, vars map[string]string) error {
	if flagShowVariable != "" {
		return output.WriteVariable(w, vars, flagShowVariable)
	}

	switch flagOutput {
	case "json":
		return output.WriteJSON(w, vars)
	case "":
		return output.WriteAll(w, vars)
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}
