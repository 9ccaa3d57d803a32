package storage

import (
	"io"
	"sync"
	"time"
)

// FileStore stores one uploaded object under a caller-chosen key and returns
// its publicly resolvable URL.
type FileStore interface {
	Store(key string, contentType string, body io.Reader) (url string, err error)
}

// FakeFileStore is an in-memory FileStore for tests. Delays and Errs are
// keyed by object key to simulate out-of-order completion and transfer
// failures.
type FakeFileStore struct {
	Delays map[string]time.Duration
	Errs   map[string]error

	mu     sync.Mutex
	stored []string
}

func (f *FakeFileStore) Store(key string, contentType string, body io.Reader) (string, error) {
	if d := f.Delays[key]; d > 0 {
		time.Sleep(d)
	}
	if err := f.Errs[key]; err != nil {
		return "", err
	}
	if body != nil {
		io.Copy(io.Discard, body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, key)

	return "https://fake-store.local/" + key, nil
}

// StoredKeys returns the keys in completion order.
func (f *FakeFileStore) StoredKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, len(f.stored))
	copy(keys, f.stored)
	return keys
}
