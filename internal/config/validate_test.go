package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/config"
)

func TestValidateProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project config.Project
		errMsg  string
	}{
		{name: "empty project", project: config.Project{}},
		{name: "valid port", project: config.Project{ExposePort: "8787"}},
		{name: "port out of range", project: config.Project{ExposePort: "70000"}, errMsg: "invalid port"},
		{name: "relative home", project: config.Project{HomeDir: "home"}, errMsg: "absolute path"},
		{name: "user with space", project: config.Project{AddUser: "data analyst"}, errMsg: "whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := config.ValidateProject(&tt.project)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateGlobal(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.ValidateGlobal(&config.GlobalConfig{}))
	require.NoError(t, config.ValidateGlobal(&config.GlobalConfig{Catalog: config.CatalogConfig{Source: "oci"}}))

	err := config.ValidateGlobal(&config.GlobalConfig{HTTPTimeout: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_timeout")
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.ValidatePort("1"))
	require.NoError(t, config.ValidatePort("65535"))
	require.Error(t, config.ValidatePort("0"))
	require.Error(t, config.ValidatePort("87a"))
}

func TestValidateHomeDirAndUser(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.ValidateHomeDir("/home/analyst"))
	require.Error(t, config.ValidateHomeDir("home"))

	require.NoError(t, config.ValidateUser(""))
	require.NoError(t, config.ValidateUser("analyst"))
	require.Error(t, config.ValidateUser("a\tb"))
}
