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
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchCachesSuccess(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	store, err := NewStore(DefaultConfig(), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	var calls int32
	fetch := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	for range 3 {
		value, err := GetOrFetch(context.Background(), store, "/magasin/stats", TTLMedium, fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	}
	assert.Equal(t, int32(1), calls)

	now = now.Add(TTLMedium)
	_, err = GetOrFetch(context.Background(), store, "/magasin/stats", TTLMedium, fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls)
}

func TestGetOrFetchCachesFalsyValues(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	require.NoError(t, err)
	store.Set("/bo/demandes:{}", []string{})

	value, err := GetOrFetch(context.Background(), store, "/bo/demandes:{}", TTLMedium,
		func(context.Context) ([]string, error) {
			t.Fatal("fetch must not run on a cached empty list")
			return nil, nil
		})

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestGetOrFetchFailureLeavesStoreUntouched(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	require.NoError(t, err)
	fetchErr := errors.New("503 Service Unavailable")

	_, err = GetOrFetch(context.Background(), store, "/dashboard/overview", TTLShort,
		func(context.Context) (int, error) { return 0, fetchErr })

	assert.Same(t, fetchErr, err)
	assert.Equal(t, 0, store.GetStats().Size)
}

func TestGetOrFetchSharesConcurrentMisses(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	require.NoError(t, err)

	release := make(chan struct{})
	var calls int32
	fetch := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "liste", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = GetOrFetch(context.Background(), store, "/bo/liste", TTLStatic, fetch)
		}()
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(4))
	for _, result := range results {
		assert.Equal(t, "liste", result)
	}
}

func TestGetOrFetchSurvivesCancellationOfAnotherCaller(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	require.NoError(t, err)

	release := make(chan struct{})
	var calls int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-release:
			return "overview", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := GetOrFetch(firstCtx, store, "/dashboard/overview", TTLShort, fetch)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)

	type outcome struct {
		value string
		err   error
	}
	second := make(chan outcome, 1)
	go func() {
		value, err := GetOrFetch(context.Background(), store, "/dashboard/overview", TTLShort, fetch)
		second <- outcome{value, err}
	}()

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting for the fetch")
	}

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "overview", got.value)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	stored, found := GetAs[string](store, "/dashboard/overview")
	assert.True(t, found)
	assert.Equal(t, "overview", stored)
}

func TestGetOrFetchDiscardsResultInvalidatedInFlight(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	require.NoError(t, err)

	release := make(chan struct{})
	var calls int32
	fetch := func(context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release
			return "pre-mutation", nil
		}
		return "post-mutation", nil
	}

	first := make(chan string, 1)
	go func() {
		value, _ := GetOrFetch(context.Background(), store, "/magasin/stats", TTLMedium, fetch)
		first <- value
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)

	store.InvalidateMutation(ResourceMagasin)

	value, err := GetOrFetch(context.Background(), store, "/magasin/stats", TTLMedium, fetch)
	require.NoError(t, err)
	assert.Equal(t, "post-mutation", value)

	close(release)
	assert.Equal(t, "pre-mutation", <-first)

	stored, found := GetAs[string](store, "/magasin/stats")
	assert.True(t, found)
	assert.Equal(t, "post-mutation", stored)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetOrFetchDiscardsResultAfterDeleteOrClear(t *testing.T) {
	testCases := []struct {
		name       string
		invalidate func(*Store)
	}{
		{"Delete", func(s *Store) { s.Delete("/bo/liste") }},
		{"Clear", func(s *Store) { s.Clear() }},
		{"Pattern", func(s *Store) { _, _ = s.InvalidatePattern("^/bo") }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := NewStore(DefaultConfig())
			require.NoError(t, err)

			started := make(chan struct{})
			release := make(chan struct{})
			done := make(chan struct{})
			go func() {
				defer close(done)
				value, err := GetOrFetch(context.Background(), store, "/bo/liste", TTLStatic,
					func(context.Context) ([]string, error) {
						close(started)
						<-release
						return []string{"Ajaccio"}, nil
					})
				assert.NoError(t, err)
				assert.Equal(t, []string{"Ajaccio"}, value)
			}()

			<-started
			tc.invalidate(store)
			close(release)
			<-done

			_, found := store.Get("/bo/liste")
			assert.False(t, found)
			assert.Equal(t, 0, store.GetStats().Size)
		})
	}
}
