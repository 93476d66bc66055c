package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/christianalma1904/nutriplan-cli/internal/client/storage"
	"github.com/christianalma1904/nutriplan-cli/internal/models"
)

// newTestStorage создает BoltDB хранилище во временной директории
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nutriplan-test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testIdentity() *models.UserIdentity {
	return &models.UserIdentity{
		ID:    "7",
		Rol:   "paciente",
		Email: "luis@nutriplan.test",
		Name:  "Luis",
	}
}

func TestSaveSession_GetSession(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.SaveSession(ctx, "raw-bearer-token", testIdentity())
	require.NoError(t, err)

	data, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "raw-bearer-token", data.Token)
	assert.Equal(t, *testIdentity(), data.Identity)
}

func TestSaveSession_NilIdentity(t *testing.T) {
	store := newTestStorage(t)

	err := store.SaveSession(context.Background(), "token", nil)
	assert.Error(t, err)
}

func TestSaveSession_Overwrite(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "first-token", testIdentity()))

	second := &models.UserIdentity{ID: "8", Rol: "admin", Email: "ana@nutriplan.test"}
	require.NoError(t, store.SaveSession(ctx, "second-token", second))

	data, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second-token", data.Token)
	assert.Equal(t, "admin", data.Identity.Rol)
}

func TestGetSession_NotFound(t *testing.T) {
	store := newTestStorage(t)

	data, err := store.GetSession(context.Background())

	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, data)
}

// TestGetSession_PartialState: сессия с одним ключом из двух
// приравнивается к отсутствующей (инвариант "оба или ни одного")
func TestGetSession_PartialState(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "token", testIdentity()))

	// Ломаем инвариант напрямую в БД
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyUser)
	})
	require.NoError(t, err)

	data, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, data)
}

func TestDeleteSession(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "token", testIdentity()))
	require.NoError(t, store.DeleteSession(ctx))

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestDeleteSession_NotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.DeleteSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
