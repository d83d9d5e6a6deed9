package blobstore

import (
	"context"
	"errors"
	"sync"
)

// Op names an ObjectStore operation.
type Op string

const (
	OpExists   Op = "exists"
	OpDownload Op = "download"
	OpUpload   Op = "upload"
	OpDelete   Op = "delete"
)

// ErrInjected is the error returned by a fault that does not set one.
var ErrInjected = errors.New("injected remote fault")

// FaultyStore is an ObjectStore wrapper that counts calls and can inject
// errors per operation. It is meant for tests.
type FaultyStore struct {
	inner ObjectStore

	mu     sync.Mutex
	faults map[Op]error
	calls  map[Op]int
}

// NewFaultyStore wraps inner (or a fresh MemoryStore if nil).
func NewFaultyStore(inner ObjectStore) *FaultyStore {
	if inner == nil {
		inner = NewMemoryStore()
	}
	return &FaultyStore{
		inner:  inner,
		faults: make(map[Op]error),
		calls:  make(map[Op]int),
	}
}

// Fail makes every subsequent call of op return err (ErrInjected if nil).
func (f *FaultyStore) Fail(op Op, err error) {
	if err == nil {
		err = ErrInjected
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op] = err
}

// Heal removes the fault for op.
func (f *FaultyStore) Heal(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.faults, op)
}

// Calls returns how many times op was invoked, failed calls included.
func (f *FaultyStore) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Unwrap returns the wrapped store.
func (f *FaultyStore) Unwrap() ObjectStore {
	return f.inner
}

func (f *FaultyStore) enter(op Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.faults[op]
}

// Exists implements ObjectStore.
func (f *FaultyStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := f.enter(OpExists); err != nil {
		return false, err
	}
	return f.inner.Exists(ctx, key)
}

// Download implements ObjectStore.
func (f *FaultyStore) Download(ctx context.Context, key string) ([]byte, error) {
	if err := f.enter(OpDownload); err != nil {
		return nil, err
	}
	return f.inner.Download(ctx, key)
}

// Upload implements ObjectStore.
func (f *FaultyStore) Upload(ctx context.Context, key string, data []byte) error {
	if err := f.enter(OpUpload); err != nil {
		return err
	}
	return f.inner.Upload(ctx, key, data)
}

// Delete implements ObjectStore.
func (f *FaultyStore) Delete(ctx context.Context, key string) error {
	if err := f.enter(OpDelete); err != nil {
		return err
	}
	return f.inner.Delete(ctx, key)
}
