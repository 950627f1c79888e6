package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goto/approvalflow/internal/server"
	"github.com/goto/approvalflow/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := server.LoadConfig(writeConfig(t, "log_level: info\n"))
		require.NoError(t, err)

		assert.Equal(t, 1, cfg.UserID)
		assert.Equal(t, 1, cfg.Realtime.UserID)
		assert.Equal(t, "http://localhost:8000", cfg.Remote.URL)
		assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, "ws://localhost:8000", cfg.Realtime.URL)
		assert.Equal(t, "employee", cfg.Realtime.Role)
		assert.Equal(t, 30*time.Second, cfg.Sync.PollInterval)
		assert.Equal(t, 500*time.Millisecond, cfg.Sync.SearchDebounce)
		assert.Equal(t, 12, cfg.Sync.PageSize)
		assert.False(t, cfg.DB.Enabled())
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.False(t, cfg.Telemetry.Enabled)
	})

	t.Run("file values", func(t *testing.T) {
		cfg, err := server.LoadConfig(writeConfig(t, `
log_level: DEBUG
user_id: 2
remote:
  url: https://approvals.example.com/api
  retry_count: 2
realtime:
  url: wss://approvals.example.com
  role: manager
sync:
  poll_interval: 10s
  page_size: 24
fallback:
  seed_file: ./seed.json
metrics:
  addr: ":9090"
jobs:
  health_probe:
    enabled: true
    config:
      fail_on_unhealthy: true
`))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 2, cfg.UserID)
		assert.Equal(t, 2, cfg.Realtime.UserID)
		assert.Equal(t, "manager", cfg.Realtime.Role)
		assert.Equal(t, "https://approvals.example.com/api", cfg.Remote.URL)
		assert.Equal(t, 2, cfg.Remote.RetryCount)
		assert.Equal(t, 10*time.Second, cfg.Sync.PollInterval)
		assert.Equal(t, 24, cfg.Sync.PageSize)
		assert.Equal(t, "./seed.json", cfg.Fallback.SeedFile)
		assert.Equal(t, ":9090", cfg.Metrics.Addr)

		job := cfg.Jobs[jobs.TypeHealthProbe]
		assert.True(t, job.Enabled)
		assert.Equal(t, true, job.Config["fail_on_unhealthy"])
	})

	invalid := map[string]string{
		"log level":   "log_level: verbose\n",
		"user id":     "user_id: -1\n",
		"unknown job": "jobs:\n  fetch_resources:\n    enabled: true\n",
		"remote url":  "remote:\n  url: not a url\n",
	}
	for name, content := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			_, err := server.LoadConfig(writeConfig(t, content))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
