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

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asgardeo/paymentauth/internal/system/database/provider"
	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/telemetry"
)

const defaultRecentEvents = 100

type eventsOptions struct {
	intentID string
	limit    int64
}

func newEventsCmd(root *rootOptions) *cobra.Command {
	opts := &eventsOptions{}
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the analytics events stored for an intent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvents(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.intentID, "intent", "", "Intent id to list events for")
	cmd.Flags().Int64Var(&opts.limit, "limit", defaultRecentEvents,
		"Number of recent events searched when the redis sink is configured")
	_ = cmd.MarkFlagRequired("intent")
	return cmd
}

func runEvents(cmd *cobra.Command, root *rootOptions, opts *eventsOptions) error {
	logger := cliLogger()
	ctx := cmd.Context()

	home, err := root.resolveHome(logger)
	if err != nil {
		return err
	}
	cfg, err := initRuntime(logger, home)
	if err != nil {
		return err
	}

	dbProvider := provider.GetDBProvider()
	defer func() {
		if err := dbProvider.Close(); err != nil {
			logger.Error("Failed to close database provider", log.Error(err))
		}
	}()

	sink, err := telemetry.NewSinkFromConfig(ctx, cfg.PaymentAuth.Telemetry, dbProvider)
	if err != nil {
		return err
	}

	var events []telemetry.Event
	switch s := sink.(type) {
	case *telemetry.DBSink:
		events, err = s.ListEvents(opts.intentID)
	case *telemetry.RedisSink:
		defer func() {
			if closeErr := s.Close(); closeErr != nil {
				logger.Error("Failed to close telemetry sink", log.Error(closeErr))
			}
		}()
		events, err = s.Recent(ctx, opts.limit)
		events = filterByIntent(events, opts.intentID)
	default:
		return errors.New("telemetry events are only stored by the database and redis sinks")
	}
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	for _, event := range events {
		if err := encoder.Encode(event); err != nil {
			return err
		}
	}
	return nil
}

func filterByIntent(events []telemetry.Event, intentID string) []telemetry.Event {
	filtered := make([]telemetry.Event, 0, len(events))
	for _, event := range events {
		if event.IntentID == intentID {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
