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

	"github.com/asgardeo/paymentauth/internal/system/log"
)

// SinkInterface delivers analytics events.
type SinkInterface interface {
	Send(ctx context.Context, event Event) error
}

// NoopSink drops every event. Used when telemetry is disabled.
type NoopSink struct{}

// Send discards the event.
func (NoopSink) Send(context.Context, Event) error {
	return nil
}

// LogSink writes events to the system log.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a LogSink writing through the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{
		logger: logger.With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Send logs the event.
func (s *LogSink) Send(_ context.Context, event Event) error {
	fields := []log.Field{
		log.String("eventID", event.ID),
		log.String(log.LoggerKeyEventName, string(event.Name)),
		log.String(log.LoggerKeyIntentID, event.IntentID),
		log.String("publishableKey", log.MaskString(event.PublishableKey)),
	}
	if event.UIType != "" {
		fields = append(fields, log.String("uiType", event.UIType))
	}
	if event.ErrorDetail != "" {
		fields = append(fields, log.String("errorDetail", event.ErrorDetail))
	}
	s.logger.Info("Authentication analytics event", fields...)
	return nil
}
