package cmd

import (
	"testing"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/config"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	persistent := rootCmd.PersistentFlags()
	require.NotNil(t, persistent.Lookup("config"))
	require.NotNil(t, persistent.Lookup("output"))
	require.NotNil(t, persistent.Lookup("show-variable"))
	require.NotNil(t, persistent.Lookup("verbosity"))

	flags := rootCmd.Flags()
	for _, name := range config.InputNames {
		require.NotNil(t, flags.Lookup(name), name)
	}
	for _, name := range []string{"workspace", "ref", "repository", "github-url", "github-app-id", "github-app-key-path", "dry-run"} {
		require.NotNil(t, flags.Lookup(name), name)
	}
}

func TestRootCmd_HasVersionSubcommand(t *testing.T) {
	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
			break
		}
	}
	require.True(t, found, "version subcommand should be registered")
}

func TestSetupLogging(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("RUNNER_DEBUG", "")
	defer logger.SetLevel(logger.InfoLevel)

	require.NoError(t, setupLogging("quiet"))
	require.Equal(t, logger.WarnLevel, logger.GetLevel())

	require.NoError(t, setupLogging("debug"))
	require.Equal(t, logger.DebugLevel, logger.GetLevel())

	require.NoError(t, setupLogging("info"))
	require.Equal(t, logger.InfoLevel, logger.GetLevel())

	err := setupLogging("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown verbosity")
}

func TestSetupLogging_RunnerDebug(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("RUNNER_DEBUG", "1")
	defer logger.SetLevel(logger.InfoLevel)

	require.NoError(t, setupLogging("quiet"))
	require.Equal(t, logger.DebugLevel, logger.GetLevel())
}
