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

// Package cache provides the process-local TTL store used to memoize inventory API responses.
package cache

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/plc-corse/concentrator-inventory/internal/system/config"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "CacheStore"

// Config holds the store sizing and expiry settings.
type Config struct {
	DefaultTTL time.Duration
	MaxEntries int
}

// DefaultConfig returns a five minute default TTL and a capacity of 100 entries.
func DefaultConfig() Config {
	return Config{
		DefaultTTL: defaultCacheTTL,
		MaxEntries: defaultMaxEntries,
	}
}

// Option customizes a Store at construction.
type Option func(*Store)

// WithClock replaces the time source. Tests use it to control expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(s *Store) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithDisabled builds a store that never holds anything: Get always misses and Set is a no-op.
func WithDisabled() Option {
	return func(s *Store) {
		s.enabled = false
	}
}

// Store is an in-memory key/value cache with lazy TTL expiry and capacity cleanup.
// Create one per client runtime and share it between services and bindings.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*Entry[any]
	seq        uint64
	enabled    bool
	defaultTTL time.Duration
	maxEntries int
	now        func() time.Time
	recorder   MetricsRecorder
	logger     *log.Logger
	fetches    singleflight.Group
	inflight   map[string]*inflightFetch
	hitCount   int64
	missCount  int64
	evictCount int64
}

// NewStore creates a store. A non-positive capacity or default TTL is rejected.
func NewStore(cfg Config, opts ...Option) (*Store, error) {
	if cfg.MaxEntries <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.MaxEntries)
	}
	if cfg.DefaultTTL <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTTL, cfg.DefaultTTL)
	}

	s := &Store{
		entries:    make(map[string]*Entry[any]),
		inflight:   make(map[string]*inflightFetch),
		enabled:    true,
		defaultTTL: cfg.DefaultTTL,
		maxEntries: cfg.MaxEntries,
		now:        time.Now,
		recorder:   noopRecorder{},
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("Initialized cache store", log.Bool("enabled", s.enabled),
		log.Int("maxEntries", s.maxEntries), log.Duration("defaultTTL", s.defaultTTL))
	return s, nil
}

// NewStoreFromConfig creates a store from the cache section of the client configuration.
// Zero values fall back to the defaults; negative values are rejected by NewStore.
func NewStoreFromConfig(cacheConfig config.CacheConfig, opts ...Option) (*Store, error) {
	cfg := DefaultConfig()
	if cacheConfig.MaxEntries != 0 {
		cfg.MaxEntries = cacheConfig.MaxEntries
	}
	if cacheConfig.DefaultTTL != 0 {
		cfg.DefaultTTL = time.Duration(cacheConfig.DefaultTTL) * time.Second
	}
	if cacheConfig.Disabled {
		opts = append(opts, WithDisabled())
	}
	return NewStore(cfg, opts...)
}

// IsEnabled returns whether the store keeps values.
func (s *Store) IsEnabled() bool {
	return s.enabled
}

// Get returns the live value stored under key. An expired entry is removed and reported absent.
func (s *Store) Get(key string) (any, bool) {
	if !s.enabled {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists {
		s.missCount++
		s.recorder.RecordMiss()
		return nil, false
	}

	if entry.expired(s.now()) {
		delete(s.entries, key)
		s.missCount++
		s.evictCount++
		s.recorder.RecordMiss()
		s.recorder.RecordEviction(EvictionReasonExpired, 1)
		s.recorder.RecordSize(len(s.entries))
		return nil, false
	}

	s.hitCount++
	s.recorder.RecordHit()
	return entry.Value, true
}

// Set stores value under key with the default TTL.
func (s *Store) Set(key string, value any) {
	s.SetWithTTL(key, value, 0)
}

// SetWithTTL stores value under key, replacing any existing entry and its timestamps.
// A non-positive ttl selects the default TTL. When the store is at capacity the
// cleanup runs before the insertion.
func (s *Store) SetWithTTL(key string, value any, ttl time.Duration) {
	if !s.enabled {
		return
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(key, value, ttl)
}

// setLocked inserts an entry with a positive ttl. Callers hold s.mu.
func (s *Store) setLocked(key string, value any, ttl time.Duration) {
	now := s.now()
	if len(s.entries) >= s.maxEntries {
		s.cleanup(now)
	}

	s.seq++
	s.entries[key] = &Entry[any]{
		Value:      value,
		InsertedAt: now,
		ExpiresAt:  now.Add(ttl),
		seq:        s.seq,
	}
	s.recorder.RecordSize(len(s.entries))
}

// Delete removes the entry for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonFetches(func(k string) bool { return k == key })
	if _, exists := s.entries[key]; exists {
		delete(s.entries, key)
		s.evictCount++
		s.recorder.RecordEviction(EvictionReasonInvalidated, 1)
		s.recorder.RecordSize(len(s.entries))
	}
}

// InvalidatePattern removes every key matched by the regular expression and returns
// how many entries were removed. Prefix patterns such as "^/concentrateurs" are the
// intended use; InvalidateResource covers them without regex syntax.
func (s *Store) InvalidatePattern(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	if !s.enabled {
		return 0, nil
	}

	removed := s.removeMatching(re.MatchString)
	s.logger.Debug("Invalidated cache entries by pattern", log.String("pattern", pattern),
		log.Int("count", removed))
	return removed, nil
}

// InvalidateResource removes every key starting with prefix. It matches exactly what
// InvalidatePattern("^" + regexp.QuoteMeta(prefix)) would, without compiling a pattern.
func (s *Store) InvalidateResource(prefix string) int {
	if !s.enabled {
		return 0
	}

	removed := s.removeMatching(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
	s.logger.Debug("Invalidated cache resource", log.String(log.LoggerKeyResource, prefix),
		log.Int("count", removed))
	return removed
}

// InvalidateMutation invalidates the given resources and every resource derived from
// them. Call it after any request that changed backend state.
func (s *Store) InvalidateMutation(resources ...Resource) int {
	removed := 0
	for _, resource := range expandDependents(resources) {
		removed += s.InvalidateResource(string(resource))
	}
	return removed
}

// Clear removes every entry.
func (s *Store) Clear() {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonFetches(func(string) bool { return true })
	cleared := len(s.entries)
	s.entries = make(map[string]*Entry[any])
	s.evictCount += int64(cleared)
	s.recorder.RecordEviction(EvictionReasonCleared, cleared)
	s.recorder.RecordSize(0)

	s.logger.Debug("Cleared all entries in the cache store", log.Int("count", cleared))
}

// GetStats returns the current size, capacity and counters. It has no side effects.
func (s *Store) GetStats() Stats {
	if !s.enabled {
		return Stats{Enabled: false, MaxEntries: s.maxEntries}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Enabled:    true,
		Size:       len(s.entries),
		MaxEntries: s.maxEntries,
		HitCount:   s.hitCount,
		MissCount:  s.missCount,
		EvictCount: s.evictCount,
	}
}

// removeMatching deletes the keys accepted by match and returns how many were removed.
func (s *Store) removeMatching(match func(string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonFetches(match)
	removed := 0
	for key := range s.entries {
		if match(key) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.evictCount += int64(removed)
		s.recorder.RecordEviction(EvictionReasonInvalidated, removed)
		s.recorder.RecordSize(len(s.entries))
	}
	return removed
}

// cleanup makes room for one insertion. Expired entries go first; if the store is
// still at capacity, the oldest entries by insertion time are removed: half of them,
// or more when half would not bring the store under capacity. Callers hold s.mu.
func (s *Store) cleanup(now time.Time) {
	expired := 0
	remaining := make([]keyedEntry, 0, len(s.entries))
	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
			expired++
			continue
		}
		remaining = append(remaining, keyedEntry{key: key, entry: entry})
	}
	if expired > 0 {
		s.evictCount += int64(expired)
		s.recorder.RecordEviction(EvictionReasonExpired, expired)
	}

	evicted := 0
	if len(remaining) >= s.maxEntries {
		slices.SortFunc(remaining, func(a, b keyedEntry) int {
			if c := a.entry.InsertedAt.Compare(b.entry.InsertedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.entry.seq, b.entry.seq)
		})

		evicted = max(len(remaining)/2, len(remaining)-s.maxEntries+1)
		for _, victim := range remaining[:evicted] {
			delete(s.entries, victim.key)
		}
		s.evictCount += int64(evicted)
		s.recorder.RecordEviction(EvictionReasonCapacity, evicted)
	}

	s.logger.Debug("Cache store cleanup completed", log.Int("expired", expired),
		log.Int("evicted", evicted), log.Int("size", len(s.entries)))
}

// inflightFetch marks one GetOrFetch fetch in progress. An invalidation matching its
// key marks it stale, and a stale result is returned to its callers but never stored.
type inflightFetch struct {
	stale bool
}

// beginFetch registers a fetch for key.
func (s *Store) beginFetch(key string) *inflightFetch {
	flight := &inflightFetch{}
	if !s.enabled {
		return flight
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[key] = flight
	return flight
}

// finishFetch unregisters flight and, when keep is set and no invalidation matched
// the key meanwhile, stores value with ttl. It reports whether value was stored.
func (s *Store) finishFetch(key string, flight *inflightFetch, value any, ttl time.Duration, keep bool) bool {
	if !s.enabled {
		return false
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[key] == flight {
		delete(s.inflight, key)
	}
	if !keep || flight.stale {
		return false
	}
	s.setLocked(key, value, ttl)
	return true
}

// abandonFetches marks the fetches in progress for matching keys stale and detaches
// them so that later readers start a new fetch. Callers hold s.mu.
func (s *Store) abandonFetches(match func(string) bool) {
	for key, flight := range s.inflight {
		if match(key) {
			flight.stale = true
			delete(s.inflight, key)
			s.fetches.Forget(key)
		}
	}
}

type keyedEntry struct {
	key   string
	entry *Entry[any]
}

// expandDependents returns the resources followed by everything derived from them, once each.
func expandDependents(resources []Resource) []Resource {
	seen := make(map[Resource]bool)
	var ordered []Resource
	var visit func(Resource)
	visit = func(r Resource) {
		if seen[r] {
			return
		}
		seen[r] = true
		ordered = append(ordered, r)
		for _, dependent := range resourceDependents[r] {
			visit(dependent)
		}
	}
	for _, r := range resources {
		visit(r)
	}
	return ordered
}

// GetAs returns the live value under key converted to T. A value of another type is
// reported absent.
func GetAs[T any](s *Store, key string) (T, bool) {
	var zero T
	value, found := s.Get(key)
	if !found {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		s.logger.Warn("Type mismatch for cached value", log.String(log.LoggerKeyCacheKey, key),
			log.String("actualType", fmt.Sprintf("%T", value)))
		return zero, false
	}
	return typed, true
}
