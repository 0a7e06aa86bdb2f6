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
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/paymentauth/internal/system/config"
	"github.com/asgardeo/paymentauth/internal/system/database/provider"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

// NewSinkFromConfig creates the sink selected by the telemetry configuration.
func NewSinkFromConfig(ctx context.Context, cfg config.TelemetryConfig,
	dbProvider provider.DBProviderInterface) (SinkInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !cfg.Enabled {
		logger.Debug("Telemetry is disabled")
		return NoopSink{}, nil
	}

	switch cfg.Sink {
	case config.SinkLog, "":
		return NewLogSink(log.GetLogger()), nil
	case config.SinkDatabase:
		dbClient, err := dbProvider.GetDBClient(provider.RuntimeDB)
		if err != nil {
			return nil, fmt.Errorf("failed to get database client: %w", err)
		}
		sink := NewDBSink(dbClient)
		if err := sink.EnsureSchema(); err != nil {
			return nil, err
		}
		return sink, nil
	case config.SinkRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			if closeErr := client.Close(); closeErr != nil {
				logger.Error("Failed to close redis client", log.Error(closeErr))
			}
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
		}
		return NewRedisSink(client, cfg.Redis.ListKey, cfg.Redis.MaxLength), nil
	default:
		return nil, fmt.Errorf("unknown telemetry sink: %s", cfg.Sink)
	}
}
