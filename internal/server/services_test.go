package server_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/internal/server"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitServices(t *testing.T) {
	t.Run("wires the default seed", func(t *testing.T) {
		cfg, err := server.LoadConfig(writeConfig(t, "user_id: 3\n"))
		require.NoError(t, err)

		services, err := server.InitServices(server.ServiceDeps{Config: &cfg, Logger: log.NewNoop()})
		require.NoError(t, err)

		assert.Equal(t, domain.OperatingModeLive, services.State.Mode())
		assert.Equal(t, "ws://localhost:8000/ws/3?role=employee", services.Connection.Endpoint())

		users, err := services.Store.ListUsers(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, users)
	})

	t.Run("custom seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"id":9,"email":"a@b.dk","name":"A","role":"employee"}],"approval_requests":[]}`), 0o600))

		cfg, err := server.LoadConfig(writeConfig(t, "fallback:\n  seed_file: "+path+"\n"))
		require.NoError(t, err)

		services, err := server.InitServices(server.ServiceDeps{Config: &cfg})
		require.NoError(t, err)

		user, err := services.Store.GetUser(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, "a@b.dk", user.Email)
	})

	t.Run("unreadable seed file", func(t *testing.T) {
		cfg, err := server.LoadConfig(writeConfig(t, "fallback:\n  seed_file: /nonexistent/seed.json\n"))
		require.NoError(t, err)

		_, err = server.InitServices(server.ServiceDeps{Config: &cfg})
		assert.ErrorContains(t, err, "loading fallback seed")
	})
}
