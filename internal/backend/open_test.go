package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtodo/internal/backend"
	"gtodo/internal/backend/localfile"
	"gtodo/internal/backend/sqlite"
	"gtodo/internal/config"
)

func TestOpen_File(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	kv, err := backend.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer kv.Close()

	assert.IsType(t, &localfile.Store{}, kv)
	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	_, err = os.Stat(filepath.Join(cfg.Dir, "store.json"))
	assert.NoError(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.Storage.Backend = config.BackendSQLite

	kv, err := backend.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer kv.Close()

	assert.IsType(t, &sqlite.Store{}, kv)
	_, err = os.Stat(filepath.Join(cfg.Dir, "gtodo.db"))
	assert.NoError(t, err)
}

func TestOpen_Unknown(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.Storage.Backend = "etcd"

	_, err = backend.Open(context.Background(), cfg, nil)
	assert.EqualError(t, err, "unknown storage backend: etcd")
}
