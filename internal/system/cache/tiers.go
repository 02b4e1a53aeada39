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
	"time"

	"github.com/plc-corse/concentrator-inventory/internal/system/config"
)

// TTLTiers carries the TTL used for each class of response.
type TTLTiers struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Static time.Duration
}

// DefaultTTLTiers returns the built-in tiers.
func DefaultTTLTiers() TTLTiers {
	return TTLTiers{
		Short:  TTLShort,
		Medium: TTLMedium,
		Long:   TTLLong,
		Static: TTLStatic,
	}
}

// TTLTiersFromConfig overrides the built-in tiers with the configured ones.
// Non-positive values keep the built-in tier.
func TTLTiersFromConfig(ttlConfig config.TTLConfig) TTLTiers {
	tiers := DefaultTTLTiers()
	tiers.Short = secondsOr(ttlConfig.Short, tiers.Short)
	tiers.Medium = secondsOr(ttlConfig.Medium, tiers.Medium)
	tiers.Long = secondsOr(ttlConfig.Long, tiers.Long)
	tiers.Static = secondsOr(ttlConfig.Static, tiers.Static)
	return tiers
}

func secondsOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
