package session

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("ana@example.com", "s3cret"))

	email, password, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "s3cret", password)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestStoreSaveValidation(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.Save("", "pw"))
	assert.Error(t, store.Save("a@b.com", ""))
	assert.Error(t, store.Save("   ", "pw"))
}

func TestStoreSaveReplaces(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("first@example.com", "one"))
	require.NoError(t, store.Save("second@example.com", "two"))

	email, password, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", email)
	assert.Equal(t, "two", password)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)

	// Clearing an empty store is fine.
	require.NoError(t, store.Clear())

	require.NoError(t, store.Save("ana@example.com", "s3cret"))
	require.NoError(t, store.Clear())

	_, _, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestStoreMalformedValueIsRemoved(t *testing.T) {
	store := newTestStore(t)

	// Plant a value without the email,password shape.
	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(credentialKey), []byte("not-a-credential"))
	})
	require.NoError(t, err)

	_, _, err = store.Load()
	assert.ErrorIs(t, err, ErrMalformedCredential)

	// The corrupt value must be gone so it cannot be replayed again.
	_, _, err = store.Load()
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestStorePasswordMayContainComma(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("ana@example.com", "pw,with,commas"))

	email, password, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "pw,with,commas", password)
}
