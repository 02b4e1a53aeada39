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

package client

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/plc-corse/concentrator-inventory/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
	ctx      context.Context
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}
	suite.dbClient = NewDBClient(model.NewDB(suite.mockDB))
	suite.ctx = context.Background()
}

func (suite *DBClientTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryLowercasesColumns() {
	query := model.DBQuery{ID: "SES-01", Query: "SELECT KEY, VALUE FROM session_kv WHERE key = ?"}
	suite.mock.ExpectQuery(query.Query).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"KEY", "VALUE"}).AddRow("token", "abc"))

	results, err := suite.dbClient.Query(suite.ctx, query, "token")

	suite.NoError(err)
	suite.Equal([]map[string]any{{"key": "token", "value": "abc"}}, results)
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	query := model.DBQuery{ID: "SES-01", Query: "SELECT key, value FROM session_kv WHERE key = ?"}
	suite.mock.ExpectQuery(query.Query).
		WithArgs("user").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	results, err := suite.dbClient.Query(suite.ctx, query, "user")

	suite.NoError(err)
	suite.Empty(results)
}

func (suite *DBClientTestSuite) TestQueryError() {
	query := model.DBQuery{ID: "SES-01", Query: "SELECT key, value FROM missing"}
	expectedErr := errors.New("no such table: missing")
	suite.mock.ExpectQuery(query.Query).WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(suite.ctx, query)

	suite.ErrorIs(err, expectedErr)
	suite.Nil(results)
}

func (suite *DBClientTestSuite) TestQueryRowError() {
	query := model.DBQuery{ID: "SES-01", Query: "SELECT key, value FROM session_kv"}
	rowErr := errors.New("corrupt page")
	suite.mock.ExpectQuery(query.Query).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("token", "abc").RowError(0, rowErr))

	_, err := suite.dbClient.Query(suite.ctx, query)

	suite.ErrorIs(err, rowErr)
}

func (suite *DBClientTestSuite) TestExecuteReturnsRowsAffected() {
	query := model.DBQuery{ID: "SES-03", Query: "DELETE FROM session_kv"}
	suite.mock.ExpectExec(query.Query).WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := suite.dbClient.Execute(suite.ctx, query)

	suite.NoError(err)
	suite.Equal(int64(2), affected)
}

func (suite *DBClientTestSuite) TestExecuteError() {
	query := model.DBQuery{ID: "SES-03", Query: "DELETE FROM session_kv"}
	expectedErr := errors.New("database is locked")
	suite.mock.ExpectExec(query.Query).WillReturnError(expectedErr)

	affected, err := suite.dbClient.Execute(suite.ctx, query)

	suite.ErrorIs(err, expectedErr)
	suite.Zero(affected)
}

func (suite *DBClientTestSuite) TestClose() {
	suite.mock.ExpectClose()
	suite.NoError(suite.dbClient.Close())
}
