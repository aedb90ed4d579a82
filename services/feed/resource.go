// Package feed is the data-fetching layer between the API client and the
// screens: per-entity resources that remember their last result, serve reads
// from a TTL cache and expose an explicit refetch. Every fetch is scoped to
// the caller's context so an abandoned screen cancels its own requests.
package feed

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FetchFunc loads the resource's value from the backend.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is the state a screen renders from: the last data, the last error
// and whether a fetch is in flight.
type Snapshot[T any] struct {
	Data      T
	Err       error
	Loading   bool
	FetchedAt time.Time
}

// Resource is a cached, refetchable view of one backend collection.
type Resource[T any] struct {
	key    string
	ttl    time.Duration
	fetch  FetchFunc[T]
	cache  *gocache.Cache
	logger *zap.Logger

	mu   sync.Mutex
	snap Snapshot[T]
}

// NewResource builds a resource over the shared cache. key must be unique per
// logical collection (including any filter arguments baked into fetch).
func NewResource[T any](cache *gocache.Cache, key string, ttl time.Duration, fetch FetchFunc[T], logger *zap.Logger) *Resource[T] {
	return &Resource[T]{key: key, ttl: ttl, fetch: fetch, cache: cache, logger: logger}
}

// Snapshot returns the current render state without triggering any I/O.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Get returns the cached value when fresh, otherwise fetches. The error is
// also recorded on the snapshot so screens can render it.
func (r *Resource[T]) Get(ctx context.Context) (T, error) {
	if cached, ok := r.cache.Get(r.key); ok {
		if v, ok := cached.(T); ok {
			return v, nil
		}
	}
	return r.Refetch(ctx)
}

// Refetch bypasses the cache and loads fresh data.
func (r *Resource[T]) Refetch(ctx context.Context) (T, error) {
	r.mu.Lock()
	r.snap.Loading = true
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = false
	r.snap.Err = err
	if err != nil {
		r.logger.Warn("resource fetch failed", zap.String("key", r.key), zap.Error(err))
		var zero T
		return zero, err
	}
	r.snap.Data = data
	r.snap.FetchedAt = time.Now()
	r.cache.Set(r.key, data, r.ttl)
	return data, nil
}

// Invalidate drops the cached value; the next Get fetches.
func (r *Resource[T]) Invalidate() {
	r.cache.Delete(r.key)
}
