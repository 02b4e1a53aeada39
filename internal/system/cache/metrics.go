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

// MetricsRecorder receives store events. Implementations must not call back into the store.
type MetricsRecorder interface {
	RecordHit()
	RecordMiss()
	RecordEviction(reason EvictionReason, count int)
	RecordSize(size int)
}

type noopRecorder struct{}

func (noopRecorder) RecordHit() {}
func (noopRecorder) RecordMiss() {}
func (noopRecorder) RecordEviction(_ EvictionReason, _ int) {}
func (noopRecorder) RecordSize(_ int) {}
