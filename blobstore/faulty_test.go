package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultyStore(t *testing.T) {
	inner := NewMemoryStore()
	store := NewFaultyStore(inner)
	ctx := context.Background()

	testStoreLifecycle(t, store)
	assert.Equal(t, 3, store.Calls(OpExists))
	assert.Equal(t, 3, store.Calls(OpDownload))
	assert.Equal(t, 3, store.Calls(OpUpload))
	assert.Equal(t, 2, store.Calls(OpDelete))

	boom := errors.New("503 slow down")
	store.Fail(OpUpload, boom)
	require.ErrorIs(t, store.Upload(ctx, "k", []byte("v")), boom)
	assert.Empty(t, inner.Keys())

	store.Fail(OpExists, nil)
	_, err := store.Exists(ctx, "k")
	require.ErrorIs(t, err, ErrInjected)

	store.Heal(OpUpload)
	require.NoError(t, store.Upload(ctx, "k", []byte("v")))
	assert.Equal(t, []string{"k"}, inner.Keys())
	assert.Same(t, inner, store.Unwrap())
}
