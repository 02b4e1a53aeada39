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
	"fmt"
	"time"

	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

// GetOrFetch returns the live value under key, or calls fetch, stores its result with
// ttl and returns it. Concurrent misses for the same key share one fetch, which runs
// detached from the cancellation of the caller that started it; each caller stops
// waiting when its own ctx is done. A failed fetch leaves the store untouched and its
// error is returned unchanged. A result is not stored when the key was invalidated
// while the fetch was running, and readers arriving after the invalidation start a
// new fetch.
func GetOrFetch[T any](ctx context.Context, s *Store, key string, ttl time.Duration,
	fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if value, found := GetAs[T](s, key); found {
		return value, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	results := s.fetches.DoChan(key, func() (any, error) {
		flight := s.beginFetch(key)
		value, err := fetch(fetchCtx)
		if err != nil {
			s.finishFetch(key, flight, nil, ttl, false)
			return nil, err
		}
		if !s.finishFetch(key, flight, value, ttl, true) && s.enabled {
			s.logger.Debug("Discarded result of invalidated fetch", log.String(log.LoggerKeyCacheKey, key))
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return zero, result.Err
		}
		if result.Shared {
			s.logger.Debug("Shared in-flight fetch", log.String(log.LoggerKeyCacheKey, key))
		}

		value, ok := result.Val.(T)
		if !ok {
			return zero, fmt.Errorf("cached fetch for %s returned %T", key, result.Val)
		}
		return value, nil
	}
}
