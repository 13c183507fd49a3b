package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferbench/internal/tools"
	"transferbench/internal/transfer"
)

// chdir mirrors testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transferbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fullConfig = `
runs: 3
data_sizes: [1024, 1048576]
actions: [download, upload]
command_timeout_seconds: 120
report: results.yaml
tools:
  - kind: aws
    bucket: perf-bucket
    read_timeout_seconds: 60
  - kind: gocommands
  - kind: icommands
`

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, []int64{1024, 1048576}, cfg.DataSizes)
	assert.Equal(t, []string{"download", "upload"}, cfg.Actions)
	assert.Equal(t, 2*time.Minute, cfg.CommandTimeout())
	assert.Equal(t, "results.yaml", cfg.Report)

	require.Len(t, cfg.Tools, 3)
	assert.Equal(t, KindAWS, cfg.Tools[0].Kind)
	assert.Equal(t, "perf-bucket", cfg.Tools[0].Bucket)
	assert.Equal(t, 60, cfg.Tools[0].ReadTimeoutSeconds)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoad_DefaultsRequireTools(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one tool is required")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Runs:      5,
			DataSizes: []int64{1024},
			Actions:   []string{ActionUpload},
			Tools:     []ToolConfig{{Kind: KindICommands}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: ""},
		{name: "zero runs", mutate: func(c *Config) { c.Runs = 0 }, wantErr: "runs must be at least 1"},
		{name: "no sizes", mutate: func(c *Config) { c.DataSizes = nil }, wantErr: "at least one data size"},
		{name: "negative size", mutate: func(c *Config) { c.DataSizes = []int64{-1} }, wantErr: "must be positive"},
		{name: "no actions", mutate: func(c *Config) { c.Actions = nil }, wantErr: "at least one action"},
		{name: "unknown action", mutate: func(c *Config) { c.Actions = []string{"sync"} }, wantErr: `unknown action "sync"`},
		{name: "no tools", mutate: func(c *Config) { c.Tools = nil }, wantErr: "at least one tool"},
		{name: "unknown kind", mutate: func(c *Config) { c.Tools = []ToolConfig{{Kind: "rsync"}} }, wantErr: `unknown tool kind "rsync"`},
		{name: "aws without bucket", mutate: func(c *Config) { c.Tools = []ToolConfig{{Kind: KindAWS}} }, wantErr: "requires a bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuildTools_PreservesOrder(t *testing.T) {
	cfg := &Config{
		Runs:      1,
		DataSizes: []int64{1},
		Actions:   []string{ActionUpload},
		Tools: []ToolConfig{
			{Kind: KindGoCommands},
			{Kind: KindAWS, Bucket: "b"},
			{Kind: KindICommands},
		},
	}

	built, err := cfg.BuildTools()

	require.NoError(t, err)
	require.Len(t, built, 3)
	assert.IsType(t, &tools.GoCommands{}, built[0])
	assert.IsType(t, &tools.AWS{}, built[1])
	assert.IsType(t, &tools.ICommands{}, built[2])
	assert.Equal(t, []string{"GoCommands", "AWS CLI", "iCommands"},
		[]string{built[0].Name(), built[1].Name(), built[2].Name()})
}

func TestBuildFactories_ActionThenSizeOrder(t *testing.T) {
	cfg := &Config{
		DataSizes: []int64{1024, 2048},
		Actions:   []string{ActionDownload, ActionUpload},
	}

	factories := cfg.BuildFactories(nopStore{})

	require.Len(t, factories, 4)
	assert.Equal(t, "1024 B download", factories[0].TestName())
	assert.Equal(t, "2048 B download", factories[1].TestName())
	assert.Equal(t, "1024 B upload", factories[2].TestName())
	assert.Equal(t, "2048 B upload", factories[3].TestName())
}

type nopStore struct{}

func (nopStore) Put(string, string) error { return nil }
func (nopStore) Remove(string) error      { return nil }

var _ transfer.ObjectStore = nopStore{}
