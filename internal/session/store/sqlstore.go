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

package store

import (
	"context"
	"fmt"

	"github.com/plc-corse/concentrator-inventory/internal/system/database/client"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

// SQLStore keeps session values in the local sqlite database.
type SQLStore struct {
	dbClient client.DBClientInterface
	logger   *log.Logger
}

var _ SessionStoreInterface = (*SQLStore)(nil)

// NewSQLStore creates the session table when missing and returns a store over it.
func NewSQLStore(ctx context.Context, dbClient client.DBClientInterface) (*SQLStore, error) {
	if _, err := dbClient.Execute(ctx, QueryCreateSessionTable); err != nil {
		return nil, fmt.Errorf("failed to create session table: %w", err)
	}
	return &SQLStore{
		dbClient: dbClient,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionPersistence")),
	}, nil
}

// Get returns the value under key and whether it exists.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	results, err := s.dbClient.Query(ctx, QueryGetSessionValue, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read session value %s: %w", key, err)
	}
	if len(results) == 0 {
		return "", false, nil
	}

	switch value := results[0]["value"].(type) {
	case string:
		return value, true, nil
	case []byte:
		return string(value), true, nil
	default:
		return "", false, fmt.Errorf("unexpected type for session value %s: %T", key, value)
	}
}

// Set stores value under key.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.dbClient.Execute(ctx, QueryUpsertSessionValue, key, value); err != nil {
		return fmt.Errorf("failed to write session value %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys.
func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := s.dbClient.Execute(ctx, QueryDeleteSessionValue, key); err != nil {
			return fmt.Errorf("failed to delete session value %s: %w", key, err)
		}
	}
	s.logger.Debug("Deleted session values", log.Int("count", len(keys)))
	return nil
}
