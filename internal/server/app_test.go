package server

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/server/config"
	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	closed bool
}

func (m *fakeManager) Users() users.Repository       { return nil }
func (m *fakeManager) Migrate(context.Context) error { return nil }

func (m *fakeManager) Close(context.Context) error {
	m.closed = true
	return nil
}

func withRepositories(t *testing.T, fn func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error)) {
	t.Helper()
	orig := openRepositories
	openRepositories = fn
	t.Cleanup(func() { openRepositories = orig })
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Port = "0"
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey = ""

	_, err := NewApp(context.Background(), cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewApp_StoreError(t *testing.T) {
	withRepositories(t, func(context.Context, string) (repomanager.RepositoryManager, error) {
		return nil, errors.New("no route to host")
	})

	_, err := NewApp(context.Background(), testConfig(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestApp_RunClosesStore(t *testing.T) {
	m := &fakeManager{}
	withRepositories(t, func(context.Context, string) (repomanager.RepositoryManager, error) {
		return m, nil
	})

	var logs bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(), &logs)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	app.Run(ctx)

	assert.True(t, m.closed)
	assert.Contains(t, logs.String(), `"driver":"mongo"`)
	assert.Contains(t, logs.String(), "App stopped")
}

func TestNewApp_WarnsOnDefaultSecret(t *testing.T) {
	withRepositories(t, func(context.Context, string) (repomanager.RepositoryManager, error) {
		return &fakeManager{}, nil
	})

	var logs bytes.Buffer
	_, err := NewApp(context.Background(), testConfig(), &logs)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), "JWT secret is the built-in development default")

	logs.Reset()
	cfg := testConfig()
	cfg.SecretKey = "a-real-secret"
	_, err = NewApp(context.Background(), cfg, &logs)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "JWT secret")
}
