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

package cache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/plc-corse/concentrator-inventory/internal/system/config"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type recordingMetrics struct {
	hits      int
	misses    int
	evictions map[EvictionReason]int
	size      int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{evictions: make(map[EvictionReason]int)}
}

func (m *recordingMetrics) RecordHit() { m.hits++ }
func (m *recordingMetrics) RecordMiss() { m.misses++ }
func (m *recordingMetrics) RecordEviction(reason EvictionReason, count int) {
	m.evictions[reason] += count
}
func (m *recordingMetrics) RecordSize(size int) { m.size = size }

type StoreTestSuite struct {
	suite.Suite
	clock *fakeClock
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.clock = newFakeClock()
}

func (suite *StoreTestSuite) newStore(maxEntries int, opts ...Option) *Store {
	opts = append([]Option{WithClock(suite.clock.Now)}, opts...)
	store, err := NewStore(Config{DefaultTTL: TTLLong, MaxEntries: maxEntries}, opts...)
	require.NoError(suite.T(), err)
	return store
}

func (suite *StoreTestSuite) keysPresent(store *Store, keys ...string) map[string]bool {
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		_, found := store.Get(key)
		present[key] = found
	}
	return present
}

func (suite *StoreTestSuite) TestNewStore() {
	testCases := []struct {
		name        string
		config      Config
		expectedErr error
	}{
		{"Valid", Config{DefaultTTL: time.Minute, MaxEntries: 10}, nil},
		{"SingleEntry", Config{DefaultTTL: time.Minute, MaxEntries: 1}, nil},
		{"ZeroCapacity", Config{DefaultTTL: time.Minute, MaxEntries: 0}, ErrInvalidCapacity},
		{"NegativeCapacity", Config{DefaultTTL: time.Minute, MaxEntries: -3}, ErrInvalidCapacity},
		{"ZeroTTL", Config{DefaultTTL: 0, MaxEntries: 10}, ErrInvalidTTL},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			store, err := NewStore(tc.config)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, store)
				return
			}
			assert.NoError(t, err)
			assert.True(t, store.IsEnabled())
			stats := store.GetStats()
			assert.Equal(t, 0, stats.Size)
			assert.Equal(t, tc.config.MaxEntries, stats.MaxEntries)
		})
	}
}

func (suite *StoreTestSuite) TestNewStoreFromConfig() {
	store, err := NewStoreFromConfig(config.CacheConfig{})
	suite.NoError(err)
	suite.Equal(defaultMaxEntries, store.GetStats().MaxEntries)
	suite.Equal(defaultCacheTTL, store.defaultTTL)

	store, err = NewStoreFromConfig(config.CacheConfig{MaxEntries: 20, DefaultTTL: 60})
	suite.NoError(err)
	suite.Equal(20, store.GetStats().MaxEntries)
	suite.Equal(time.Minute, store.defaultTTL)

	_, err = NewStoreFromConfig(config.CacheConfig{MaxEntries: -1})
	suite.ErrorIs(err, ErrInvalidCapacity)

	store, err = NewStoreFromConfig(config.CacheConfig{Disabled: true})
	suite.NoError(err)
	suite.False(store.IsEnabled())
}

func (suite *StoreTestSuite) TestGetReturnsValueUntilExpiry() {
	store := suite.newStore(10)
	store.SetWithTTL("/dashboard/overview", 42, 10*time.Second)

	suite.clock.Advance(10*time.Second - time.Millisecond)
	value, found := store.Get("/dashboard/overview")
	suite.True(found)
	suite.Equal(42, value)

	suite.clock.Advance(time.Millisecond)
	value, found = store.Get("/dashboard/overview")
	suite.False(found)
	suite.Nil(value)
	suite.Equal(0, store.GetStats().Size)
}

func (suite *StoreTestSuite) TestSetUsesDefaultTTL() {
	store := suite.newStore(10)
	store.Set("key", "value")

	suite.clock.Advance(TTLLong - time.Second)
	_, found := store.Get("key")
	suite.True(found)

	suite.clock.Advance(time.Second)
	_, found = store.Get("key")
	suite.False(found)
}

func (suite *StoreTestSuite) TestSetOverwritesAndResetsTTL() {
	store := suite.newStore(10)
	store.SetWithTTL("key", "first", 10*time.Second)

	suite.clock.Advance(8 * time.Second)
	store.SetWithTTL("key", "second", 10*time.Second)

	suite.clock.Advance(8 * time.Second)
	value, found := store.Get("key")
	suite.True(found)
	suite.Equal("second", value)
	suite.Equal(1, store.GetStats().Size)
}

func (suite *StoreTestSuite) TestDeleteIsIdempotent() {
	store := suite.newStore(10)
	store.Set("present", 1)

	suite.NotPanics(func() {
		store.Delete("absent")
		store.Delete("present")
		store.Delete("present")
	})

	_, found := store.Get("present")
	suite.False(found)
	suite.Equal(0, store.GetStats().Size)
}

func (suite *StoreTestSuite) TestCapacityScenarioEvictsTwoOldest() {
	store := suite.newStore(4)
	for _, key := range []string{"A", "B", "C", "D"} {
		store.Set(key, key)
	}

	store.Set("E", "E")

	suite.Equal(3, store.GetStats().Size)
	suite.Equal(map[string]bool{"A": false, "B": false, "C": true, "D": true, "E": true},
		suite.keysPresent(store, "A", "B", "C", "D", "E"))
}

func (suite *StoreTestSuite) TestCapacityEvictsByInsertionTime() {
	store := suite.newStore(5)
	keys := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		key := fmt.Sprintf("/concentrateurs/%d", i)
		keys = append(keys, key)
		store.Set(key, i)
		suite.clock.Advance(time.Second)
	}

	stats := store.GetStats()
	suite.Less(stats.Size, 6)

	present := suite.keysPresent(store, keys...)
	suite.True(present[keys[5]], "most recent insertion must survive")
	// Survivors form a suffix of the insertion order.
	seenSurvivor := false
	for _, key := range keys {
		if present[key] {
			seenSurvivor = true
			continue
		}
		suite.False(seenSurvivor, "evicted %s after a newer survivor", key)
	}
}

func (suite *StoreTestSuite) TestCapacityIgnoresAccessRecency() {
	store := suite.newStore(2)
	store.Set("old", 1)
	suite.clock.Advance(time.Second)
	store.Set("new", 2)

	// Reading "old" does not protect it.
	_, _ = store.Get("old")
	store.Set("newest", 3)

	suite.Equal(map[string]bool{"old": false, "new": true, "newest": true},
		suite.keysPresent(store, "old", "new", "newest"))
}

func (suite *StoreTestSuite) TestCleanupRemovesExpiredBeforeEvicting() {
	store := suite.newStore(3)
	store.SetWithTTL("short", 1, time.Second)
	store.Set("B", 2)
	store.Set("C", 3)

	suite.clock.Advance(2 * time.Second)
	store.Set("D", 4)

	suite.Equal(3, store.GetStats().Size)
	suite.Equal(map[string]bool{"short": false, "B": true, "C": true, "D": true},
		suite.keysPresent(store, "short", "B", "C", "D"))
}

func (suite *StoreTestSuite) TestCleanupOddCountKeepsMoreThanRemoved() {
	store := suite.newStore(5)
	for _, key := range []string{"A", "B", "C", "D", "E"} {
		store.Set(key, key)
	}

	store.Set("F", "F")

	suite.Equal(4, store.GetStats().Size)
	suite.Equal(map[string]bool{"A": false, "B": false, "C": true, "D": true, "E": true, "F": true},
		suite.keysPresent(store, "A", "B", "C", "D", "E", "F"))
}

func (suite *StoreTestSuite) TestCleanupSingleEntryCapacity() {
	store := suite.newStore(1)
	store.Set("A", 1)
	store.Set("B", 2)
	store.Set("C", 3)

	suite.Equal(1, store.GetStats().Size)
	_, found := store.Get("C")
	suite.True(found)
}

func (suite *StoreTestSuite) TestInvalidateResource() {
	store := suite.newStore(10)
	store.Set("concentrateurs:{}", 1)
	store.Set("concentrateurs/ABC123", 2)
	store.Set("dashboard/overview", 3)

	removed := store.InvalidateResource("concentrateurs")

	suite.Equal(2, removed)
	suite.Equal(map[string]bool{
		"concentrateurs:{}":     false,
		"concentrateurs/ABC123": false,
		"dashboard/overview":    true,
	}, suite.keysPresent(store, "concentrateurs:{}", "concentrateurs/ABC123", "dashboard/overview"))
}

func (suite *StoreTestSuite) TestInvalidateResourceTreatsPrefixLiterally() {
	store := suite.newStore(10)
	store.Set("/bo.stats", 1)
	store.Set("/boXstats", 2)

	suite.Equal(1, store.InvalidateResource("/bo."))
	_, found := store.Get("/boXstats")
	suite.True(found)
}

func (suite *StoreTestSuite) TestInvalidatePattern() {
	store := suite.newStore(10)
	store.Set("/magasin/stats", 1)
	store.Set("/magasin/carton/C1", 2)
	store.Set("/bo/stats/Ajaccio", 3)

	removed, err := store.InvalidatePattern(`^/magasin/carton/`)
	suite.NoError(err)
	suite.Equal(1, removed)

	removed, err = store.InvalidatePattern(`stats`)
	suite.NoError(err)
	suite.Equal(2, removed)
	suite.Equal(0, store.GetStats().Size)
}

func (suite *StoreTestSuite) TestInvalidatePatternRejectsMalformedPattern() {
	store := suite.newStore(10)
	store.Set("/magasin/stats", 1)

	removed, err := store.InvalidatePattern(`^/magasin/(`)

	suite.Error(err)
	suite.True(errors.Is(err, ErrInvalidPattern))
	suite.Equal(0, removed)
	suite.Equal(1, store.GetStats().Size)
}

func (suite *StoreTestSuite) TestInvalidateMutationFollowsDependents() {
	testCases := []struct {
		name      string
		resources []Resource
		remaining []string
	}{
		{
			name:      "InventoryInvalidatesDashboard",
			resources: []Resource{ResourceConcentrateurs},
			remaining: []string{"/magasin/stats", "/bo/stats/Bastia", "/transferts:{}"},
		},
		{
			name:      "TransfertsInvalidateWarehouseAndBases",
			resources: []Resource{ResourceTransferts},
			remaining: []string{"/concentrateurs:{}"},
		},
		{
			name:      "DashboardOnly",
			resources: []Resource{ResourceDashboard},
			remaining: []string{"/concentrateurs:{}", "/magasin/stats", "/bo/stats/Bastia", "/transferts:{}"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			store := suite.newStore(20)
			all := []string{"/concentrateurs:{}", "/dashboard/overview", "/magasin/stats",
				"/bo/stats/Bastia", "/transferts:{}"}
			for _, key := range all {
				store.Set(key, key)
			}

			store.InvalidateMutation(tc.resources...)

			expected := make(map[string]bool, len(all))
			for _, key := range all {
				expected[key] = false
			}
			for _, key := range tc.remaining {
				expected[key] = true
			}
			assert.Equal(t, expected, suite.keysPresent(store, all...))
		})
	}
}

func (suite *StoreTestSuite) TestClear() {
	store := suite.newStore(10)
	store.Set("a", 1)
	store.Set("b", 2)

	store.Clear()

	suite.Equal(0, store.GetStats().Size)
	_, found := store.Get("a")
	suite.False(found)
}

func (suite *StoreTestSuite) TestGetStatsCountsWithoutSideEffects() {
	metrics := newRecordingMetrics()
	store := suite.newStore(10, WithMetrics(metrics))
	store.SetWithTTL("a", 1, time.Second)
	store.Set("b", 2)

	_, _ = store.Get("b")
	_, _ = store.Get("missing")
	suite.clock.Advance(time.Second)

	before := store.GetStats()
	after := store.GetStats()
	suite.Equal(before, after)
	suite.Equal(2, before.Size, "expired entries stay until accessed")

	_, _ = store.Get("a")
	stats := store.GetStats()
	suite.Equal(1, stats.Size)
	suite.Equal(int64(1), stats.HitCount)
	suite.Equal(int64(2), stats.MissCount)
	suite.Equal(int64(1), stats.EvictCount)
	suite.InDelta(1.0/3.0, stats.HitRate(), 0.0001)

	suite.Equal(1, metrics.hits)
	suite.Equal(2, metrics.misses)
	suite.Equal(1, metrics.evictions[EvictionReasonExpired])
	suite.Equal(1, metrics.size)
}

func (suite *StoreTestSuite) TestDisabledStore() {
	store := suite.newStore(10, WithDisabled())
	store.Set("a", 1)

	_, found := store.Get("a")
	suite.False(found)
	suite.Equal(0, store.InvalidateResource("a"))
	removed, err := store.InvalidatePattern("^a")
	suite.NoError(err)
	suite.Equal(0, removed)
	suite.False(store.GetStats().Enabled)
}

func (suite *StoreTestSuite) TestGetAs() {
	store := suite.newStore(10)
	store.Set("/magasin/operateurs", []string{"Itron", "Sagemcom"})

	operateurs, found := GetAs[[]string](store, "/magasin/operateurs")
	suite.True(found)
	suite.Equal([]string{"Itron", "Sagemcom"}, operateurs)

	_, found = GetAs[map[string]int](store, "/magasin/operateurs")
	suite.False(found)

	_, found = GetAs[[]string](store, "/magasin/absent")
	suite.False(found)
}

func (suite *StoreTestSuite) TestTTLTiersFromConfig() {
	suite.Equal(DefaultTTLTiers(), TTLTiersFromConfig(config.TTLConfig{}))

	tiers := TTLTiersFromConfig(config.TTLConfig{Short: 10, Static: 3600})
	suite.Equal(10*time.Second, tiers.Short)
	suite.Equal(TTLMedium, tiers.Medium)
	suite.Equal(TTLLong, tiers.Long)
	suite.Equal(time.Hour, tiers.Static)
}
