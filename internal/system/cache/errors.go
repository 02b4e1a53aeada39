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

import "errors"

var (
	// ErrInvalidCapacity is returned when a store is configured with a non-positive capacity.
	ErrInvalidCapacity = errors.New("cache: max entries must be at least 1")
	// ErrInvalidTTL is returned when a store is configured with a non-positive default TTL.
	ErrInvalidTTL = errors.New("cache: default ttl must be positive")
	// ErrInvalidPattern is returned when an invalidation pattern does not compile.
	ErrInvalidPattern = errors.New("cache: invalid invalidation pattern")
	// ErrInvalidKeyParams is returned when key parameters cannot be serialized.
	ErrInvalidKeyParams = errors.New("cache: key parameters are not serializable")
)
