/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package query binds one cache key and one fetch function into a fetch-with-cache
// lifecycle with published loading, error and data state.
package query

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "CachedQuery"

var (
	// ErrMissingStore is returned when a query is built without a cache store.
	ErrMissingStore = errors.New("query: cache store is required")
	// ErrMissingKey is returned when a query is built or rebound with an empty key.
	ErrMissingKey = errors.New("query: key is required")
	// ErrMissingFetcher is returned when a query is built without a fetch function.
	ErrMissingFetcher = errors.New("query: fetcher is required")
	// ErrClosed is returned by Load on a query that was closed.
	ErrClosed = errors.New("query: closed")
)

// Fetcher produces the value cached under a query key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Options configures a Query.
type Options[T any] struct {
	Key     string
	Fetcher Fetcher[T]
	// TTL of the stored result. Zero uses the store default.
	TTL time.Duration
	// Disabled queries never load until enabled with SetEnabled.
	Disabled  bool
	OnSuccess func(T)
	OnError   func(error)
	// OnChange receives every published state.
	OnChange func(State[T])
}

// State is the published condition of a query.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     error
}

// Query is a fetch-with-cache binding. It is safe for concurrent use; loads may run
// on any goroutine, and only the most recent load may publish.
type Query[T any] struct {
	store     *cache.Store
	ttl       time.Duration
	onSuccess func(T)
	onError   func(error)
	onChange  func(State[T])
	logger    *log.Logger

	mu         sync.Mutex
	key        string
	fetcher    Fetcher[T]
	enabled    bool
	closed     bool
	generation uint64
	state      State[T]
}

// New creates a query. The initial state holds the live cached value for the key if
// there is one, and is loading otherwise when the query is enabled.
func New[T any](store *cache.Store, opts Options[T]) (*Query[T], error) {
	if store == nil {
		return nil, ErrMissingStore
	}
	if opts.Key == "" {
		return nil, ErrMissingKey
	}
	if opts.Fetcher == nil {
		return nil, ErrMissingFetcher
	}

	q := &Query[T]{
		store:     store,
		ttl:       opts.TTL,
		onSuccess: opts.OnSuccess,
		onError:   opts.OnError,
		onChange:  opts.OnChange,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
		key:       opts.Key,
		fetcher:   opts.Fetcher,
		enabled:   !opts.Disabled,
	}

	if value, found := cache.GetAs[T](store, opts.Key); found {
		q.state = State[T]{Data: value, HasData: true}
	} else {
		q.state = State[T]{Loading: q.enabled}
	}
	return q, nil
}

// NewList creates a query over a list. A zero ttl selects the medium tier.
func NewList[T any](store *cache.Store, key string, fetcher Fetcher[[]T], ttl time.Duration) (*Query[[]T], error) {
	if ttl <= 0 {
		ttl = cache.TTLMedium
	}
	return New(store, Options[[]T]{
		Key:     key,
		Fetcher: fetcher,
		TTL:     ttl,
	})
}

// Start performs the initial load when the query is enabled.
func (q *Query[T]) Start(ctx context.Context) error {
	q.mu.Lock()
	enabled := q.enabled
	q.mu.Unlock()

	if !enabled {
		return nil
	}
	return q.Load(ctx, false)
}

// Load publishes the cached value for the current key when skipCache is false and
// one is live. Otherwise it calls the fetcher; a successful result is stored and
// published, a failure is published and returned unchanged without touching the store.
// A result that arrives after the query was closed, rebound, or superseded by a later
// load is dropped and Load returns nil.
func (q *Query[T]) Load(ctx context.Context, skipCache bool) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}

	key := q.key
	fetcher := q.fetcher
	q.generation++
	generation := q.generation

	if !skipCache {
		if value, found := cache.GetAs[T](q.store, key); found {
			q.state = State[T]{Data: value, HasData: true}
			snapshot := q.state
			q.mu.Unlock()

			q.publish(snapshot)
			return nil
		}
	}

	q.state.Loading = true
	q.state.Err = nil
	snapshot := q.state
	q.mu.Unlock()
	q.publish(snapshot)

	value, err := fetcher(ctx)

	q.mu.Lock()
	if q.closed || generation != q.generation {
		q.mu.Unlock()
		q.logger.Debug("Dropped stale response", log.String(log.LoggerKeyCacheKey, key))
		return nil
	}

	if err != nil {
		q.state.Loading = false
		q.state.Err = err
		snapshot = q.state
		q.mu.Unlock()

		q.logger.Debug("Fetch failed", log.String(log.LoggerKeyCacheKey, key), log.Error(err))
		q.publish(snapshot)
		if q.onError != nil {
			q.onError(err)
		}
		return err
	}

	q.store.SetWithTTL(key, value, q.ttl)
	q.state = State[T]{Data: value, HasData: true}
	snapshot = q.state
	q.mu.Unlock()

	q.publish(snapshot)
	if q.onSuccess != nil {
		q.onSuccess(value)
	}
	return nil
}

// Refetch loads from the fetcher regardless of what the store holds.
func (q *Query[T]) Refetch(ctx context.Context) error {
	return q.Load(ctx, true)
}

// Invalidate removes the current key from the store and clears the published value
// without fetching again.
func (q *Query[T]) Invalidate() {
	q.mu.Lock()
	q.store.Delete(q.key)
	var zero T
	q.state.Data = zero
	q.state.HasData = false
	snapshot := q.state
	q.mu.Unlock()

	q.publish(snapshot)
}

// Rebind switches the query to a new key, and to a new fetcher when one is given.
// Any load in flight for the previous key is superseded. When the query is enabled a
// cache-first load for the new key follows; otherwise the state is reset to the cached
// value for the new key, or to empty, and is no longer loading.
func (q *Query[T]) Rebind(ctx context.Context, key string, fetcher Fetcher[T]) error {
	if key == "" {
		return ErrMissingKey
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if fetcher != nil {
		q.fetcher = fetcher
	}
	if key == q.key {
		q.mu.Unlock()
		return nil
	}
	q.key = key
	q.generation++
	if !q.enabled {
		q.state = q.seed(key)
		snapshot := q.state
		q.mu.Unlock()

		q.publish(snapshot)
		return nil
	}
	q.mu.Unlock()

	return q.Load(ctx, false)
}

// seed returns the idle state for key: the live cached value if any, otherwise empty.
func (q *Query[T]) seed(key string) State[T] {
	if value, found := cache.GetAs[T](q.store, key); found {
		return State[T]{Data: value, HasData: true}
	}
	return State[T]{}
}

// SetEnabled turns loading on or off. Enabling a disabled query starts a cache-first load.
func (q *Query[T]) SetEnabled(ctx context.Context, enabled bool) error {
	q.mu.Lock()
	wasEnabled := q.enabled
	q.enabled = enabled
	q.mu.Unlock()

	if enabled && !wasEnabled {
		return q.Load(ctx, false)
	}
	return nil
}

// Close detaches the query. Responses still in flight are dropped when they arrive.
func (q *Query[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.generation++
}

// State returns the currently published state.
func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Key returns the current key.
func (q *Query[T]) Key() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.key
}

func (q *Query[T]) publish(state State[T]) {
	if q.onChange != nil {
		q.onChange(state)
	}
}
