package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goto/approvalflow/cli"
	"github.com/goto/approvalflow/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableConfig writes a config whose remote service refuses connections, so every command
// runs against the local store.
func unreachableConfig(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_level: error\nuser_id: 1\nremote:\n  url: " + url + "\nrealtime:\n  url: " + url + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRequestList_Degraded(t *testing.T) {
	config := unreachableConfig(t)

	stdout, stderr, err := run(t, "", "request", "list", "--status", "pending", "-o", "json", "-c", config)
	require.NoError(t, err)
	assert.Contains(t, stderr, "approval service is unreachable")

	var out struct {
		Requests     []*domain.ApprovalRequest `json:"requests"`
		Total        int                       `json:"total"`
		PendingCount int                       `json:"pending_count"`
		Mode         domain.OperatingMode      `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, domain.OperatingModeDegraded, out.Mode)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, out.PendingCount)
	for _, r := range out.Requests {
		assert.Equal(t, domain.ApprovalStatusPending, r.Status)
	}
}

func TestRequestApprove(t *testing.T) {
	t.Run("declined at the prompt", func(t *testing.T) {
		stdout, stderr, err := run(t, "n\n", "request", "approve", "1", "-c", unreachableConfig(t))
		require.NoError(t, err)
		assert.Contains(t, stderr, "Are you sure you want to approve request 1?")
		assert.Contains(t, stderr, "Status change cancelled")
		assert.Empty(t, stdout)
	})

	t.Run("confirmed with --yes", func(t *testing.T) {
		stdout, _, err := run(t, "", "request", "approve", "1", "--yes", "--comment", "ok", "-o", "json", "-c", unreachableConfig(t))
		require.NoError(t, err)

		var r domain.ApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(stdout), &r))
		assert.Equal(t, 1, r.ID)
		assert.Equal(t, domain.ApprovalStatusApproved, r.Status)
	})

	t.Run("terminal request", func(t *testing.T) {
		_, _, err := run(t, "", "request", "reject", "2", "--yes", "-c", unreachableConfig(t))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestInvalidArguments(t *testing.T) {
	config := unreachableConfig(t)

	_, _, err := run(t, "", "request", "view", "abc", "-c", config)
	assert.ErrorContains(t, err, `invalid request id "abc"`)

	_, _, err = run(t, "", "request", "list", "-o", "table", "-c", config)
	assert.ErrorContains(t, err, `unsupported output format "table"`)

	_, _, err = run(t, "", "stats", "--days", "0", "-c", config)
	assert.ErrorContains(t, err, "invalid --days 0")

	_, _, err = run(t, "", "job", "run", "fetch_resources", "-c", config)
	assert.Error(t, err)
}

func TestUserSeed_Degraded(t *testing.T) {
	stdout, _, err := run(t, "", "user", "seed", "--sample-request", "-c", unreachableConfig(t))
	require.NoError(t, err)
	assert.Contains(t, stdout, "manager@gov.dk")
	assert.Contains(t, stdout, "employee@gov.dk")
	assert.Contains(t, stdout, "Test request - office equipment")
}

func TestAuditList_NotConfigured(t *testing.T) {
	_, _, err := run(t, "", "audit", "list", "-c", unreachableConfig(t))
	assert.ErrorContains(t, err, "audit log storage is not configured")
}
