package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ThrottleConfig holds request limits for a Throttled store.
type ThrottleConfig struct {
	// RequestsPerSecond is the sustained request rate.
	// If 0, the rate is unlimited.
	RequestsPerSecond float64

	// Burst is the number of requests allowed above the sustained rate.
	// If 0, defaults to 1.
	Burst int

	// MaxInflight bounds concurrent requests.
	// If 0, concurrency is unbounded.
	MaxInflight int64
}

// Throttled wraps an ObjectStore and keeps calls inside a request quota.
//
// Object storage services bill and rate-limit per request; many stores in
// one process sharing a Throttled stay under the bucket's limits. Waiting
// for a slot honours context cancellation.
type Throttled struct {
	inner   ObjectStore
	limiter *rate.Limiter       // nil if unlimited
	sem     *semaphore.Weighted // nil if unbounded
}

// NewThrottled wraps inner with the given limits.
func NewThrottled(inner ObjectStore, cfg ThrottleConfig) *Throttled {
	t := &Throttled{inner: inner}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	if cfg.MaxInflight > 0 {
		t.sem = semaphore.NewWeighted(cfg.MaxInflight)
	}

	return t
}

// Unwrap returns the wrapped store.
func (t *Throttled) Unwrap() ObjectStore {
	return t.inner
}

func (t *Throttled) acquire(ctx context.Context) (func(), error) {
	if t.sem != nil {
		if err := t.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
	}
	release := func() {
		if t.sem != nil {
			t.sem.Release(1)
		}
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			release()
			return nil, err
		}
	}
	return release, nil
}

// Exists implements ObjectStore.
func (t *Throttled) Exists(ctx context.Context, key string) (bool, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()
	return t.inner.Exists(ctx, key)
}

// Download implements ObjectStore.
func (t *Throttled) Download(ctx context.Context, key string) ([]byte, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.inner.Download(ctx, key)
}

// Upload implements ObjectStore.
func (t *Throttled) Upload(ctx context.Context, key string, data []byte) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.inner.Upload(ctx, key, data)
}

// Delete implements ObjectStore.
func (t *Throttled) Delete(ctx context.Context, key string) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.inner.Delete(ctx, key)
}
