package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_GetSetRemove(t *testing.T) {
	kv, err := NewInMemory()
	require.NoError(t, err)
	defer kv.Close()

	_, err = kv.GetItem("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.SetItem("k", "v"))
	v, err := kv.GetItem("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.RemoveItem("k"))
	_, err = kv.GetItem("k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "", kv.Dir())
}

func TestLevelDB_PersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "level")

	kv, err := NewLevelDB(dir)
	require.NoError(t, err)
	require.NoError(t, SaveTransactionCount(kv, 42))
	require.NoError(t, kv.Close())

	reopened, err := NewLevelDB(dir)
	require.NoError(t, err)
	defer reopened.Close()

	count, ok := LoadTransactionCount(reopened)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), count)
	assert.Equal(t, dir, reopened.Dir())

	raw, err := reopened.GetItem(TransactionCountKey)
	require.NoError(t, err)
	assert.Equal(t, "42", raw)
}

func TestLoadTransactionCount_MissingOrGarbled(t *testing.T) {
	kv, err := NewInMemory()
	require.NoError(t, err)
	defer kv.Close()

	_, ok := LoadTransactionCount(kv)
	assert.False(t, ok)

	require.NoError(t, kv.SetItem(TransactionCountKey, "not-a-number"))
	_, ok = LoadTransactionCount(kv)
	assert.False(t, ok)
}
