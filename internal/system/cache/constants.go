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

const (
	// defaultCacheTTL is the TTL applied when a Set call does not name one.
	defaultCacheTTL = 5 * time.Minute
	// defaultMaxEntries is the capacity used when the configuration leaves it unset.
	defaultMaxEntries = 100
)

// Named TTL tiers for the inventory API responses.
const (
	// TTLShort suits volatile aggregates such as dashboard counters.
	TTLShort = 30 * time.Second
	// TTLMedium suits list data.
	TTLMedium = 2 * time.Minute
	// TTLLong suits detail views.
	TTLLong = 5 * time.Minute
	// TTLStatic suits near-constant reference lists such as operator and base names.
	TTLStatic = 30 * time.Minute
)

// Resource is the key prefix shared by every cached response of one backend resource.
type Resource string

const (
	// ResourceConcentrateurs groups inventory items.
	ResourceConcentrateurs Resource = "/concentrateurs"
	// ResourceMagasin groups warehouse data.
	ResourceMagasin Resource = "/magasin"
	// ResourceBO groups operational-base data.
	ResourceBO Resource = "/bo"
	// ResourceLabo groups lab data.
	ResourceLabo Resource = "/labo"
	// ResourceDashboard groups dashboard aggregates.
	ResourceDashboard Resource = "/dashboard"
	// ResourceActions groups action history listings.
	ResourceActions Resource = "/actions"
	// ResourceTransferts groups transfer orders.
	ResourceTransferts Resource = "/transferts"
)

// resourceDependents lists the prefixes whose cached values are derived from a resource.
var resourceDependents = map[Resource][]Resource{
	ResourceConcentrateurs: {ResourceDashboard},
	ResourceMagasin:        {ResourceDashboard},
	ResourceBO:             {ResourceDashboard},
	ResourceLabo:           {ResourceDashboard},
	ResourceActions:        {ResourceDashboard},
	ResourceTransferts:     {ResourceMagasin, ResourceBO},
}

// EvictionReason tells why entries left the store.
type EvictionReason string

const (
	// EvictionReasonExpired marks entries removed after their TTL elapsed.
	EvictionReasonExpired EvictionReason = "expired"
	// EvictionReasonCapacity marks entries removed by the capacity cleanup.
	EvictionReasonCapacity EvictionReason = "capacity"
	// EvictionReasonInvalidated marks entries removed by delete or pattern invalidation.
	EvictionReasonInvalidated EvictionReason = "invalidated"
	// EvictionReasonCleared marks entries removed by Clear.
	EvictionReasonCleared EvictionReason = "cleared"
)
