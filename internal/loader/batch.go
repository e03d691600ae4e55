// Package loader batches relationship lookups for the read surface.
// A batch is created per request, collects the distinct keys that
// request needs, and resolves them with one directory query plus one
// burst of endpoint fetches.
package loader

import (
	"context"
	"sync"
)

// Batch collects distinct keys and resolves them with a single batched
// fetch. The fetch runs exactly once per batch; every Get shares the
// same results, and a fetch error fails the whole batch. Keys added
// after the first Resolve are not fetched.
type Batch[K comparable, V any] struct {
	fetch func(ctx context.Context, keys []K) (map[K]V, error)

	mu   sync.Mutex
	keys []K
	seen map[K]struct{}

	once    sync.Once
	results map[K]V
	err     error
}

// NewBatch creates a batch around a fetch function.
func NewBatch[K comparable, V any](fetch func(ctx context.Context, keys []K) (map[K]V, error)) *Batch[K, V] {
	return &Batch[K, V]{
		fetch: fetch,
		seen:  make(map[K]struct{}),
	}
}

// Add registers keys for the batch. Duplicates collapse to one fetch.
func (b *Batch[K, V]) Add(keys ...K) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, key := range keys {
		if _, ok := b.seen[key]; ok {
			continue
		}
		b.seen[key] = struct{}{}
		b.keys = append(b.keys, key)
	}
}

// Resolve runs the batched fetch exactly once and retains its outcome.
func (b *Batch[K, V]) Resolve(ctx context.Context) error {
	b.once.Do(func() {
		b.mu.Lock()
		keys := make([]K, len(b.keys))
		copy(keys, b.keys)
		b.mu.Unlock()

		if len(keys) == 0 {
			b.results = make(map[K]V)
			return
		}

		b.results, b.err = b.fetch(ctx, keys)
	})

	return b.err
}

// Get returns the resolved value for a key. ok reports whether the
// fetch produced a value for it. Only valid after Resolve.
func (b *Batch[K, V]) Get(key K) (V, bool) {
	v, ok := b.results[key]
	return v, ok
}

// Load resolves a single key: Add, Resolve, Get in one call.
func (b *Batch[K, V]) Load(ctx context.Context, key K) (V, bool, error) {
	b.Add(key)
	if err := b.Resolve(ctx); err != nil {
		var zero V
		return zero, false, err
	}

	v, ok := b.Get(key)
	return v, ok, nil
}
