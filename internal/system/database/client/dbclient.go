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

// Package client provides the database client used by the local session store.
package client

import (
	"context"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/system/database/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "DBClient"

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	// Query executes a sql query that returns rows and returns the result as a slice of maps.
	Query(ctx context.Context, query model.DBQuery, args ...any) ([]map[string]any, error)
	// Execute executes a sql query without returning rows and returns the number of rows affected.
	Execute(ctx context.Context, query model.DBQuery, args ...any) (int64, error)
	// Close closes the database connection.
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db     model.DBInterface
	logger *log.Logger
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db model.DBInterface) DBClientInterface {
	return &DBClient{
		db:     db,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Query executes a sql query that returns rows and returns the result as a slice of maps.
// Column names are lowercased.
func (c *DBClient) Query(ctx context.Context, query model.DBQuery, args ...any) ([]map[string]any, error) {
	c.logger.Debug("Executing query", log.String("queryID", query.GetID()))

	rows, err := c.db.QueryContext(ctx, query.GetQuery(), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			c.logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	for rows.Next() {
		row := make([]any, len(columns))
		rowPointers := make([]any, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}
		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := make(map[string]any, len(columns))
		for i, col := range columns {
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Execute executes a sql query without returning rows and returns the number of rows affected.
func (c *DBClient) Execute(ctx context.Context, query model.DBQuery, args ...any) (int64, error) {
	c.logger.Debug("Executing query", log.String("queryID", query.GetID()))

	res, err := c.db.ExecContext(ctx, query.GetQuery(), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database connection.
func (c *DBClient) Close() error {
	return c.db.Close()
}
