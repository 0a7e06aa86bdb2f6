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

package provider

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/asgardeo/paymentauth/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	suite.dbClient = NewDBClient(model.NewDB(suite.mockDB), model.DBTypePostgres)
}

func (suite *DBClientTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	query := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT EVENT_ID, EVENT_NAME FROM PAYMENT_AUTH_EVENT WHERE INTENT_ID = $1",
	}

	rows := sqlmock.NewRows([]string{"EVENT_ID", "EVENT_NAME"}).
		AddRow("e1", "auth_redirect").
		AddRow("e2", "auth_3ds2_fingerprint")
	suite.mock.ExpectQuery(`SELECT EVENT_ID, EVENT_NAME FROM PAYMENT_AUTH_EVENT WHERE INTENT_ID = \$1`).
		WithArgs(driver.Value("pi_1")).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(query, "pi_1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "e1", results[0]["event_id"])
	assert.Equal(suite.T(), "auth_redirect", results[0]["event_name"])
	assert.Equal(suite.T(), "auth_3ds2_fingerprint", results[1]["event_name"])
}

func (suite *DBClientTestSuite) TestQueryUsesDialectOverride() {
	query := model.DBQuery{
		ID:            "test_query_dialect",
		Query:         "SELECT 1",
		PostgresQuery: "SELECT 2",
	}

	suite.mock.ExpectQuery("SELECT 2").WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(2))

	results, err := suite.dbClient.Query(query)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), results[0]["v"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	query := model.DBQuery{ID: "test_query_empty", Query: "SELECT EVENT_ID FROM PAYMENT_AUTH_EVENT"}

	suite.mock.ExpectQuery("SELECT EVENT_ID FROM PAYMENT_AUTH_EVENT").
		WillReturnRows(sqlmock.NewRows([]string{"EVENT_ID"}))

	results, err := suite.dbClient.Query(query)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	query := model.DBQuery{ID: "test_query_error", Query: "SELECT id FROM non_existent_table"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT id FROM non_existent_table").WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(query)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	query := model.DBQuery{
		ID:    "test_execute_success",
		Query: "DELETE FROM PAYMENT_AUTH_EVENT WHERE INTENT_ID = $1",
	}

	suite.mock.ExpectExec(`DELETE FROM PAYMENT_AUTH_EVENT WHERE INTENT_ID = \$1`).
		WithArgs(driver.Value("pi_1")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	rowsAffected, err := suite.dbClient.Execute(query, "pi_1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	query := model.DBQuery{ID: "test_execute_db_error", Query: "UPDATE missing SET a = 1"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("UPDATE missing SET a = 1").WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(query)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	query := model.DBQuery{ID: "test_execute_rows_error", Query: "INSERT INTO t VALUES (1)"}

	suite.mock.ExpectExec(`INSERT INTO t VALUES \(1\)`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected error")))

	_, err := suite.dbClient.Execute(query)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "rows affected error")
}

func (suite *DBClientTestSuite) TestBeginTxExecAndCommit() {
	query := model.DBQuery{ID: "test_tx", Query: "CREATE TABLE t (a INT)"}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`CREATE TABLE t \(a INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx()
	assert.NoError(suite.T(), err)

	_, err = tx.Exec(query)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), tx.Commit())
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("transaction error")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx()

	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	assert.NoError(suite.T(), suite.dbClient.Close())
}
