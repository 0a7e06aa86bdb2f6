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
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSink pushes events as JSON onto a capped redis list.
type RedisSink struct {
	client    *redis.Client
	listKey   string
	maxLength int64
}

// NewRedisSink creates a RedisSink. A maxLength of zero or less leaves the list uncapped.
func NewRedisSink(client *redis.Client, listKey string, maxLength int64) *RedisSink {
	return &RedisSink{
		client:    client,
		listKey:   listKey,
		maxLength: maxLength,
	}
}

// Send appends the event and trims the list to its newest entries.
func (s *RedisSink) Send(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, s.listKey, payload)
		if s.maxLength > 0 {
			pipe.LTrim(ctx, s.listKey, -s.maxLength, -1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push event %s: %w", event.ID, err)
	}
	return nil
}

// Recent returns up to count of the newest events, oldest first.
func (s *RedisSink) Recent(ctx context.Context, count int64) ([]Event, error) {
	if count <= 0 {
		return []Event{}, nil
	}
	values, err := s.client.LRange(ctx, s.listKey, -count, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	events := make([]Event, 0, len(values))
	for _, value := range values {
		var event Event
		if err := json.Unmarshal([]byte(value), &event); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, event)
	}
	return events, nil
}

// Close closes the redis client.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
