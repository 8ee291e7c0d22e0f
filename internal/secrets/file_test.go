package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T, password string) *FileStore {
	t.Helper()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "credentials.enc"), password)
	require.NoError(t, err)
	store.costN = 1 << 10
	return store
}

func TestFileStoreRequiresPassword(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "c.enc"), "")
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t, "hunter2")

	_, err := store.Get("me@keyenv/dev", "TOKEN")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("me@keyenv/dev", "TOKEN", "abc"))
	require.NoError(t, store.Set("me@keyenv/dev", "API_KEY", "xyz"))
	require.NoError(t, store.Set("me@keyenv/prod", "TOKEN", "prod-token"))

	value, err := store.Get("me@keyenv/dev", "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	creds, err := store.List("me@keyenv/dev")
	require.NoError(t, err)
	assert.Equal(t, []Credential{
		{Account: "API_KEY", Secret: "xyz"},
		{Account: "TOKEN", Secret: "abc"},
	}, creds)

	require.NoError(t, store.Delete("me@keyenv/dev", "TOKEN"))
	_, err = store.Get("me@keyenv/dev", "TOKEN")
	assert.ErrorIs(t, err, ErrNotFound)

	value, err = store.Get("me@keyenv/prod", "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "prod-token", value)
}

func TestFileStoreListEmptyService(t *testing.T) {
	store := newTestFileStore(t, "pw")

	creds, err := store.List("nobody@keyenv/none")
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestFileStoreDeleteMissing(t *testing.T) {
	store := newTestFileStore(t, "pw")

	err := store.Delete("me@keyenv/dev", "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDropsEmptyService(t *testing.T) {
	store := newTestFileStore(t, "pw")

	require.NoError(t, store.Set("svc", "A", "1"))
	require.NoError(t, store.Delete("svc", "A"))

	vault, _, err := store.readStore()
	require.NoError(t, err)
	assert.NotContains(t, vault, "svc")
}

func TestFileStoreIsEncrypted(t *testing.T) {
	store := newTestFileStore(t, "pw")
	require.NoError(t, store.Set("svc", "SECRET_NAME", "plaintext-value"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "plaintext-value")
	assert.NotContains(t, string(data), "SECRET_NAME")

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreWrongPassword(t *testing.T) {
	store := newTestFileStore(t, "right")
	require.NoError(t, store.Set("svc", "A", "1"))

	other, err := NewFileStore(store.Path(), "wrong")
	require.NoError(t, err)
	other.costN = store.costN

	_, err = other.Get("svc", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong password")
}

func TestFileStoreReopen(t *testing.T) {
	store := newTestFileStore(t, "pw")
	require.NoError(t, store.Set("svc", "A", "1"))

	reopened, err := NewFileStore(store.Path(), "pw")
	require.NoError(t, err)
	reopened.costN = store.costN

	value, err := reopened.Get("svc", "A")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	store := newTestFileStore(t, "pw")
	require.NoError(t, os.WriteFile(store.Path(), []byte("not a vault"), 0600))

	_, err := store.List("svc")
	assert.Error(t, err)
}
