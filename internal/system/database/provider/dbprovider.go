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

// Package provider opens the local sqlite database that backs persisted client state.
package provider

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plc-corse/concentrator-inventory/internal/system/database/client"
	"github.com/plc-corse/concentrator-inventory/internal/system/database/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"

	_ "modernc.org/sqlite"
)

const driverNameSQLite = "sqlite"

// OpenSQLite opens the sqlite file at path, creating its directory when needed, and
// returns a client over it. A relative path is resolved against home.
func OpenSQLite(home, path string) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	if !filepath.IsAbs(path) {
		path = filepath.Join(home, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory for %s: %w", path, err)
	}

	db, err := sql.Open(driverNameSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY between them.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	logger.Debug("Opened sqlite database", log.String("path", path))
	return client.NewDBClient(model.NewDB(db)), nil
}
