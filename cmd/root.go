package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/output"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagConfig       string
	flagOutput       string
	flagShowVariable string
	flagVerbosity    string
)

// rootCmd is the top-level command for releasebump.
var rootCmd = &cobra.Command{
	Use:   "releasebump",
	Short: "Write a release tag's version into project files and push the change",
	Long: `releasebump extracts a version from the pushed tag, writes it into the
version field of JSON, YAML and HCL files, then commits and pushes the
change. Inputs come from flags, INPUT_* variables (GitHub Actions) or a
releasebump.yml config file.

Examples:
  GITHUB_REF=refs/tags/v1.2.3 releasebump --branch-name main --files package.json,chart/Chart.yaml
  releasebump --ref v1.2.3 --repo-token "$GITHUB_TOKEN" --repository myorg/myrepo
  releasebump --ref v1.2.3 --branch-name main --dry-run --output json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return setupLogging(flagVerbosity) },
	// Default action is the update.
	RunE: runE,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: json, or empty for key=value")
	rootCmd.PersistentFlags().StringVar(&flagShowVariable, "show-variable", "", "output a single variable (e.g. version)")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")

	addRunFlags(rootCmd)
}

// setupLogging configures the logger for the given verbosity.
// DEBUG=true or RUNNER_DEBUG=1 always selects debug.
func setupLogging(verbosity string) error {
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)

	switch verbosity {
	case "quiet":
		logger.SetLevel(logger.WarnLevel)
	case "info", "":
		logger.SetLevel(logger.InfoLevel)
	case "debug":
		logger.SetLevel(logger.DebugLevel)
	default:
		return fmt.Errorf("unknown verbosity %q", verbosity)
	}

	if os.Getenv("DEBUG") == "true" || os.Getenv("RUNNER_DEBUG") == "1" {
		logger.SetLevel(logger.DebugLevel)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(err)
		if os.Getenv("GITHUB_ACTIONS") == "true" {
			fmt.Fprintln(os.Stdout, output.Annotate("error", err.Error()))
		}
		os.Exit(1)
	}
}
