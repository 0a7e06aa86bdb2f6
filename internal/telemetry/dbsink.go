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

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/database/provider"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

// DBSink persists events to the runtime database.
type DBSink struct {
	dbClient provider.DBClientInterface
	logger   *log.Logger
}

// NewDBSink creates a DBSink on top of the given database client.
func NewDBSink(dbClient provider.DBClientInterface) *DBSink {
	return &DBSink{
		dbClient: dbClient,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TelemetryDBSink")),
	}
}

// EnsureSchema creates the event table and its index when they do not exist.
func (s *DBSink) EnsureSchema() error {
	tx, err := s.dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(QueryCreateEventTable); err != nil {
		return s.rollback(tx, fmt.Errorf("failed to create event table: %w", err))
	}
	if _, err := tx.Exec(QueryCreateEventIntentIndex); err != nil {
		return s.rollback(tx, fmt.Errorf("failed to create event index: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *DBSink) rollback(tx interface{ Rollback() error }, err error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		s.logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
		return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
	}
	return err
}

// Send inserts the event.
func (s *DBSink) Send(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.dbClient.Execute(QueryInsertEvent, event.ID, string(event.Name), event.IntentID,
		event.PublishableKey, event.UIType, event.ErrorDetail, event.CreatedAt.UTC().Format(createdAtLayout))
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", event.ID, err)
	}
	return nil
}

// ListEvents returns the stored events of an intent, oldest first.
func (s *DBSink) ListEvents(intentID string) ([]Event, error) {
	results, err := s.dbClient.Query(QueryGetEventsByIntent, intentID)
	if err != nil {
		return nil, fmt.Errorf("error while retrieving events: %w", err)
	}

	events := make([]Event, 0, len(results))
	for _, row := range results {
		event, err := s.buildEventFromResultRow(row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *DBSink) buildEventFromResultRow(row map[string]interface{}) (Event, error) {
	eventID, ok := columnString(row["event_id"])
	if !ok || eventID == "" {
		return Event{}, errors.New("failed to parse event_id as string")
	}
	name, ok := columnString(row["event_name"])
	if !ok {
		return Event{}, errors.New("failed to parse event_name as string")
	}
	intentID, _ := columnString(row["intent_id"])
	publishableKey, _ := columnString(row["publishable_key"])
	uiType, _ := columnString(row["ui_type"])
	errorDetail, _ := columnString(row["error_detail"])

	createdAt, err := s.parseTimeField(row["created_at"], "created_at")
	if err != nil {
		return Event{}, err
	}

	return Event{
		ID:             eventID,
		Name:           EventName(name),
		IntentID:       intentID,
		PublishableKey: publishableKey,
		UIType:         uiType,
		ErrorDetail:    errorDetail,
		CreatedAt:      createdAt,
	}, nil
}

func (s *DBSink) parseTimeField(field interface{}, fieldName string) (time.Time, error) {
	switch v := field.(type) {
	case time.Time:
		return v.UTC(), nil
	case string, []byte:
		value, _ := columnString(v)
		parsed, err := time.Parse(createdAtLayout, value)
		if err != nil {
			s.logger.Error("Error parsing time field", log.String("field", fieldName), log.Error(err))
			return time.Time{}, fmt.Errorf("error parsing %s: %w", fieldName, err)
		}
		return parsed, nil
	default:
		s.logger.Error("Unexpected type for time field", log.String("field", fieldName), log.Any("value", v))
		return time.Time{}, fmt.Errorf("unexpected type for %s", fieldName)
	}
}

// columnString reads a text column; drivers return either string or []byte.
func columnString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
