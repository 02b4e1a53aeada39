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

import "time"

// Entry is a cached value together with its timestamps.
type Entry[T any] struct {
	Value      T
	InsertedAt time.Time
	ExpiresAt  time.Time
	// seq orders entries inserted within the same clock tick.
	seq uint64
}

// expired reports whether the entry is no longer valid at the given instant.
func (e *Entry[T]) expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Stats is a read-only snapshot of the store.
type Stats struct {
	Enabled    bool
	Size       int
	MaxEntries int
	HitCount   int64
	MissCount  int64
	EvictCount int64
}

// HitRate returns hits over total lookups, or zero when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.HitCount + s.MissCount
	if total == 0 {
		return 0
	}
	return float64(s.HitCount) / float64(total)
}
