package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStore opens a store in a temp directory for testing.
func createTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath, nil)
	require.NoError(t, err, "failed to create sqlite store")
	t.Cleanup(func() { store.Close() })

	return store, dbPath
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := createTestStore(t)

	v, ok, err := store.Get(context.Background(), "taskIdCounter")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_Upsert(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "taskIdCounter", "1"))
	require.NoError(t, store.Set(ctx, "taskIdCounter", "2"))

	v, ok, err := store.Get(ctx, "taskIdCounter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	var rows int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestStore_Reopen(t *testing.T) {
	store, dbPath := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "toDoListItems", `[]`))
	require.NoError(t, store.Close())

	reopened, err := New(dbPath, nil)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "toDoListItems")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}
