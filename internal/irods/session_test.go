package irods

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "irods_environment.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvironment(t *testing.T) {
	path := writeEnvFile(t, `{
		"irods_zone_name": "tempZone",
		"irods_user_name": "alice",
		"irods_host": "data.example.org"
	}`)

	env, err := LoadEnvironment(path)

	require.NoError(t, err)
	assert.Equal(t, "tempZone", env.Zone)
	assert.Equal(t, "alice", env.User)
}

func TestLoadEnvironment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			wantErr: "failed to read",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeEnvFile(t, "{not json") },
			wantErr: "failed to parse",
		},
		{
			name:    "missing fields",
			path:    func(t *testing.T) string { return writeEnvFile(t, `{"irods_zone_name": "tempZone"}`) },
			wantErr: "missing the zone or user name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEnvironment(tt.path(t))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvironmentFilePath_EnvVarWins(t *testing.T) {
	t.Setenv(EnvFileVar, "/etc/irods/env.json")

	assert.Equal(t, "/etc/irods/env.json", EnvironmentFilePath())
}

func TestEnvironmentFilePath_DefaultsToHome(t *testing.T) {
	t.Setenv(EnvFileVar, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".irods", "irods_environment.json"), EnvironmentFilePath())
}

func TestSession_ObjectPath(t *testing.T) {
	session := NewSessionWithEnvironment(&Environment{Zone: "tempZone", User: "alice"}, time.Minute)

	assert.Equal(t, "/tempZone/home/alice/test", session.ObjectPath("test"))
}

func TestNewSession_MissingEnvironmentFile(t *testing.T) {
	t.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "absent.json"))

	_, err := NewSession(time.Minute)

	require.Error(t, err)
}
