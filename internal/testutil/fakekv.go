// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"maps"
	"sync"

	"gtodo/internal/storage"
)

// FakeKV is an in-memory implementation of storage.KV for testing.
type FakeKV struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool

	// Error injection for testing
	GetErr error
	SetErr map[string]error // key -> error
}

var _ storage.KV = (*FakeKV)(nil)

// NewFakeKV creates an empty FakeKV.
func NewFakeKV() *FakeKV {
	return &FakeKV{
		data:   make(map[string]string),
		SetErr: make(map[string]error),
	}
}

// Put seeds a raw value without going through error injection.
func (f *FakeKV) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Value returns the raw stored value for key.
func (f *FakeKV) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

// Data returns a copy of everything stored.
func (f *FakeKV) Data() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.data)
}

// Closed reports whether Close was called.
func (f *FakeKV) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements storage.KV.
func (f *FakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok, nil
}

// Set implements storage.KV.
func (f *FakeKV) Set(ctx context.Context, key, value string) error {
	if err, ok := f.SetErr[key]; ok && err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

// Close implements storage.KV.
func (f *FakeKV) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
