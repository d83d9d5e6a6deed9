package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestMemoryStore_CopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("hello")
	require.NoError(t, store.Upload(ctx, "k", data))
	data[0] = 'j'

	got, err := store.Download(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got[0] = 'y'
	again, err := store.Download(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(again))
}

func TestMemoryStore_Keys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "b", nil))
	require.NoError(t, store.Upload(ctx, "a", nil))
	assert.Equal(t, []string{"a", "b"}, store.Keys())

	assert.ErrorIs(t, store.Upload(ctx, "", nil), ErrInvalidKey)
}
