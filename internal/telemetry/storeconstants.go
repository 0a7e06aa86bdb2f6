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

package telemetry

import "github.com/asgardeo/paymentauth/internal/system/database/model"

var (
	// QueryCreateEventTable creates the event table.
	QueryCreateEventTable = model.DBQuery{
		ID: "PAQ-TEL-01",
		Query: "CREATE TABLE IF NOT EXISTS PAYMENT_AUTH_EVENT (" +
			"EVENT_ID VARCHAR(36) PRIMARY KEY, " +
			"EVENT_NAME VARCHAR(64) NOT NULL, " +
			"INTENT_ID VARCHAR(255) NOT NULL, " +
			"PUBLISHABLE_KEY VARCHAR(255), " +
			"UI_TYPE VARCHAR(16), " +
			"ERROR_DETAIL TEXT, " +
			"CREATED_AT VARCHAR(40) NOT NULL)",
	}
	// QueryCreateEventIntentIndex indexes events by intent.
	QueryCreateEventIntentIndex = model.DBQuery{
		ID:    "PAQ-TEL-02",
		Query: "CREATE INDEX IF NOT EXISTS IDX_PAYMENT_AUTH_EVENT_INTENT ON PAYMENT_AUTH_EVENT (INTENT_ID)",
	}
	// QueryInsertEvent persists an event.
	QueryInsertEvent = model.DBQuery{
		ID: "PAQ-TEL-03",
		Query: "INSERT INTO PAYMENT_AUTH_EVENT (EVENT_ID, EVENT_NAME, INTENT_ID, PUBLISHABLE_KEY, UI_TYPE, " +
			"ERROR_DETAIL, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}
	// QueryGetEventsByIntent lists the events of an intent, oldest first.
	QueryGetEventsByIntent = model.DBQuery{
		ID: "PAQ-TEL-04",
		Query: "SELECT EVENT_ID, EVENT_NAME, INTENT_ID, PUBLISHABLE_KEY, UI_TYPE, ERROR_DETAIL, CREATED_AT " +
			"FROM PAYMENT_AUTH_EVENT WHERE INTENT_ID = $1 ORDER BY CREATED_AT, EVENT_ID",
	}
)

// createdAtLayout keeps stored timestamps fixed width so they sort lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"
