package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// minimal returns a layer satisfying the cross-field requirements.
func minimal() *Source {
	return &Source{
		BranchName: stringPtr("main"),
		Ref:        stringPtr("refs/tags/v1.0.0"),
	}
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := NewBuilder().Add(minimal()).Build()
	require.NoError(t, err)

	require.Equal(t, DefaultVersionRegexp, cfg.VersionRegexp.String())
	require.Equal(t, []string{"package.json"}, cfg.Files)
	require.Equal(t, "Release %version%", cfg.CommitMessage)
	require.Equal(t, 2, cfg.Spacing)
	require.Equal(t, "main", cfg.Branch)
	require.Equal(t, ".", cfg.Workspace)
	require.Equal(t, "v1.0.0", cfg.Tag())
	require.False(t, cfg.Swagger)
	require.False(t, cfg.SwaggerWriteInfo)
	require.False(t, cfg.DryRun)
	require.False(t, cfg.HasReleaseAuth())
}

func TestBuild_LaterLayersWin(t *testing.T) {
	file := &Source{
		Files:        stringPtr("a.json"),
		SpacingLevel: stringPtr("4"),
		AuthorName:   stringPtr("File Author"),
	}
	env := &Source{
		Files:      stringPtr("b.yml"),
		AuthorName: stringPtr("Env Author"),
	}
	flags := &Source{
		AuthorName: stringPtr("Flag Author"),
	}

	cfg, err := NewBuilder().Add(minimal()).Add(file).Add(env).Add(flags).Build()
	require.NoError(t, err)

	require.Equal(t, []string{"b.yml"}, cfg.Files)
	require.Equal(t, 4, cfg.Spacing)
	require.Equal(t, "Flag Author", cfg.AuthorName)
}

func TestBuild_NilLayerIgnored(t *testing.T) {
	cfg, err := NewBuilder().Add(minimal()).Add(nil).Build()
	require.NoError(t, err)
	require.Equal(t, "main", cfg.Branch)
}

func TestBuild_TokenWithoutBranch(t *testing.T) {
	cfg, err := NewBuilder().Add(&Source{
		RepoToken: stringPtr("ghp_x"),
		Ref:       stringPtr("refs/tags/v1.0.0"),
	}).Build()
	require.NoError(t, err)
	require.True(t, cfg.HasReleaseAuth())
	require.Equal(t, "", cfg.Branch)
}

func TestBuild_AppCredentialsWithoutBranch(t *testing.T) {
	cfg, err := NewBuilder().Add(&Source{
		AppID:      stringPtr("12345"),
		AppKeyPath: stringPtr("/keys/app.pem"),
		Ref:        stringPtr("refs/tags/v1.0.0"),
	}).Build()
	require.NoError(t, err)
	require.Equal(t, int64(12345), cfg.AppID)
	require.True(t, cfg.HasReleaseAuth())
}

func TestBuild_NeitherTokenNorBranch(t *testing.T) {
	_, err := NewBuilder().Add(&Source{Ref: stringPtr("refs/tags/v1.0.0")}).Build()
	require.ErrorIs(t, err, ErrMissingBranchSource)
}

func TestBuild_MissingRef(t *testing.T) {
	_, err := NewBuilder().Add(&Source{BranchName: stringPtr("main")}).Build()
	require.ErrorIs(t, err, ErrMissingRef)
}

func TestBuild_InvalidRegexp(t *testing.T) {
	layer := minimal()
	layer.VersionRegexp = stringPtr(`(\d+`)

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid version-regexp")
}

func TestBuild_EmptyRegexp(t *testing.T) {
	layer := minimal()
	layer.VersionRegexp = stringPtr("")

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "version-regexp is required")
}

func TestBuild_EmptyFiles(t *testing.T) {
	layer := minimal()
	layer.Files = stringPtr(" , ")

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "files must list at least one file")
}

func TestBuild_InvalidSpacing(t *testing.T) {
	layer := minimal()
	layer.SpacingLevel = stringPtr("two")

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid spacing-level")
}

func TestBuild_SwaggerValues(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"false", false, false},
		{"", false, false},
		{"yes", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			layer := minimal()
			layer.Swagger = stringPtr(tt.raw)

			cfg, err := NewBuilder().Add(layer).Build()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid swagger")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Swagger)
		})
	}
}

func TestBuild_SwaggerWriteInfoRequiresSwagger(t *testing.T) {
	layer := minimal()
	layer.SwaggerWriteInfo = stringPtr("true")

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "swagger-write-info requires swagger")
}

func TestBuild_InvalidAppID(t *testing.T) {
	layer := minimal()
	layer.AppID = stringPtr("abc")

	_, err := NewBuilder().Add(layer).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid github-app-id")
}

func TestBuild_DryRun(t *testing.T) {
	layer := minimal()
	layer.DryRun = stringPtr("true")

	cfg, err := NewBuilder().Add(layer).Build()
	require.NoError(t, err)
	require.True(t, cfg.DryRun)
}
