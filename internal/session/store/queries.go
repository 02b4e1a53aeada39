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

import "github.com/plc-corse/concentrator-inventory/internal/system/database/model"

var (
	// QueryCreateSessionTable creates the session key/value table.
	QueryCreateSessionTable = model.DBQuery{
		ID:    "INV-SESSION-01",
		Query: "CREATE TABLE IF NOT EXISTS session_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)",
	}
	// QueryGetSessionValue reads one session value.
	QueryGetSessionValue = model.DBQuery{
		ID:    "INV-SESSION-02",
		Query: "SELECT value FROM session_kv WHERE key = ?",
	}
	// QueryUpsertSessionValue writes one session value.
	QueryUpsertSessionValue = model.DBQuery{
		ID: "INV-SESSION-03",
		Query: "INSERT INTO session_kv (key, value) VALUES (?, ?) " +
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value",
	}
	// QueryDeleteSessionValue removes one session value.
	QueryDeleteSessionValue = model.DBQuery{
		ID:    "INV-SESSION-04",
		Query: "DELETE FROM session_kv WHERE key = ?",
	}
)
