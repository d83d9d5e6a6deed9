package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateStore blocks uploads until released and records peak concurrency.
type gateStore struct {
	*MemoryStore
	gate    chan struct{}
	current atomic.Int64
	peak    atomic.Int64
}

func (g *gateStore) Upload(ctx context.Context, key string, data []byte) error {
	n := g.current.Add(1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}
	<-g.gate
	g.current.Add(-1)
	return g.MemoryStore.Upload(ctx, key, data)
}

func TestThrottled_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewThrottled(NewMemoryStore(), ThrottleConfig{RequestsPerSecond: 1000, Burst: 100, MaxInflight: 2}))
}

func TestThrottled_MaxInflight(t *testing.T) {
	inner := &gateStore{MemoryStore: NewMemoryStore(), gate: make(chan struct{})}
	store := NewThrottled(inner, ThrottleConfig{MaxInflight: 2})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Upload(ctx, "k", []byte("v")))
		}()
	}

	require.Eventually(t, func() bool { return inner.current.Load() == 2 }, time.Second, time.Millisecond)
	close(inner.gate)
	wg.Wait()

	assert.Equal(t, int64(2), inner.peak.Load())
}

func TestThrottled_ContextCancel(t *testing.T) {
	// One request per hour: the second call must wait and give up on cancel.
	store := NewThrottled(NewMemoryStore(), ThrottleConfig{RequestsPerSecond: 1.0 / 3600})

	ctx := context.Background()
	_, err := store.Exists(ctx, "k")
	require.NoError(t, err)

	cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = store.Exists(cctx, "k")
	require.Error(t, err)
}

func TestThrottled_SemaphoreCancel(t *testing.T) {
	inner := &gateStore{MemoryStore: NewMemoryStore(), gate: make(chan struct{})}
	store := NewThrottled(inner, ThrottleConfig{MaxInflight: 1})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Upload(context.Background(), "k", nil)
	}()
	require.Eventually(t, func() bool { return inner.current.Load() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, store.Upload(ctx, "k", nil), context.Canceled)

	close(inner.gate)
	<-done
	assert.Same(t, inner, store.Unwrap())
}
