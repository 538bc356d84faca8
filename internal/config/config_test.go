package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/opmodel/booter/internal/errors"
)

func TestEnvironmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		wantErr string
	}{
		{
			name: "complete",
			env:  Environment{AppName: "demo", BaseDir: "/app"},
		},
		{
			name:    "missing app name",
			env:     Environment{BaseDir: "/app"},
			wantErr: "app.name",
		},
		{
			name:    "blank app name",
			env:     Environment{AppName: "  ", BaseDir: "/app"},
			wantErr: "app.name",
		},
		{
			name:    "missing base dir",
			env:     Environment{AppName: "demo"},
			wantErr: "basedir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.env.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvironmentRepo(t *testing.T) {
	assert.Equal(t, "/app", Environment{BaseDir: "/app"}.Repo())
	assert.Equal(t, "/repo", Environment{BaseDir: "/app", RepoDir: "/repo"}.Repo())
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "APP_NAME", EnvName(KeyAppName))
	assert.Equal(t, "BASEDIR", EnvName(KeyBaseDir))
	assert.Equal(t, "APP_BOOTER_DEBUG", EnvName(KeyDebug))
}
