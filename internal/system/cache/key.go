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
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateKey derives the cache key for a resource and its request parameters.
//
// Parameters are serialized as JSON: map keys are emitted in sorted order at every
// nesting level, so the key does not depend on how the map was built, and nested
// values keep full fidelity. A nil and an empty parameter map yield the same key.
func GenerateKey(resource string, params map[string]any) (string, error) {
	if len(params) == 0 {
		return resource + ":{}", nil
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKeyParams, err)
	}
	return resource + ":" + string(encoded), nil
}

// ResourceKey builds the key of a single item of a resource, e.g. "/concentrateurs/ABC123".
func ResourceKey(resource Resource, segments ...string) string {
	if len(segments) == 0 {
		return string(resource)
	}
	return string(resource) + "/" + strings.Join(segments, "/")
}
