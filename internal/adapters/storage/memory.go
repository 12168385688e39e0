package storage

import (
	"context"
	"sort"
)

// MemoryKV is an in-memory KV used by tests and dry runs. Operations are
// synchronous and never fail unless FailWrites is set.
type MemoryKV struct {
	Values map[string]string
	// FailWrites makes Set/Delete return FailErr, for exercising the
	// write-failed path.
	FailWrites bool
	FailErr    error
}

// Compile-time check that *MemoryKV satisfies KV.
var _ KV = (*MemoryKV)(nil)

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Values: make(map[string]string)}
}

// Get returns the stored value.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set writes the value, or fails when FailWrites is set.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	if m.FailWrites {
		return m.failErr()
	}
	m.Values[key] = value
	return nil
}

// Delete removes the key, or fails when FailWrites is set.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	if m.FailWrites {
		return m.failErr()
	}
	delete(m.Values, key)
	return nil
}

// Keys lists stored keys in lexical order.
func (m *MemoryKV) Keys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error { return nil }

func (m *MemoryKV) failErr() error {
	if m.FailErr != nil {
		return m.FailErr
	}
	return ErrWriteFailed
}
