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

// Package config provides structures and functions for loading and managing the payment
// authentication configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

const (
	// MinProtocolTimeout is the smallest 3DS2 protocol timeout accepted, in minutes.
	MinProtocolTimeout = 5
	// MaxProtocolTimeout is the largest 3DS2 protocol timeout accepted, in minutes.
	MaxProtocolTimeout = 99
	// DefaultRedisListKey is the list the redis telemetry sink pushes events onto.
	DefaultRedisListKey = "paymentauth:events"
	// DefaultRedisMaxLength caps the redis telemetry list.
	DefaultRedisMaxLength = 1000
)

// Telemetry sink names.
const (
	SinkLog      = "log"
	SinkDatabase = "database"
	SinkRedis    = "redis"
)

// DataSource holds the individual database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Options  string `yaml:"options"`

	MaxOpenConns    int `yaml:"max_open_conns"`
	MaxIdleConns    int `yaml:"max_idle_conns"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Runtime DataSource `yaml:"runtime"`
}

// ThreeDS2Config holds the 3DS2 protocol settings.
type ThreeDS2Config struct {
	// Timeout is the challenge protocol timeout in minutes.
	Timeout             int           `yaml:"timeout"`
	ChallengeStartDelay time.Duration `yaml:"challenge_start_delay"`
	// MessageVersion is optional. The protocol default applies when it is empty.
	MessageVersion string `yaml:"message_version"`
}

// RedisConfig holds the redis connection details for the telemetry sink.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	ListKey   string `yaml:"list_key"`
	MaxLength int64  `yaml:"max_length"`
}

// TelemetryConfig holds the analytics settings.
type TelemetryConfig struct {
	Enabled bool        `yaml:"enabled"`
	Sink    string      `yaml:"sink"`
	Redis   RedisConfig `yaml:"redis"`
}

// PaymentAuthConfig holds the authentication orchestrator settings.
type PaymentAuthConfig struct {
	ThreeDS2  ThreeDS2Config  `yaml:"three_ds2"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Config holds the complete configuration details.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	PaymentAuth PaymentAuthConfig `yaml:"payment_auth"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills the optional settings left empty in the file.
func (c *Config) applyDefaults() {
	threeDS2 := &c.PaymentAuth.ThreeDS2
	if threeDS2.Timeout == 0 {
		threeDS2.Timeout = MinProtocolTimeout
	}

	telemetry := &c.PaymentAuth.Telemetry
	if telemetry.Sink == "" {
		telemetry.Sink = SinkLog
	}
	if telemetry.Redis.ListKey == "" {
		telemetry.Redis.ListKey = DefaultRedisListKey
	}
	if telemetry.Redis.MaxLength == 0 {
		telemetry.Redis.MaxLength = DefaultRedisMaxLength
	}
}

func (c *Config) validate() error {
	threeDS2 := c.PaymentAuth.ThreeDS2
	if threeDS2.Timeout < MinProtocolTimeout || threeDS2.Timeout > MaxProtocolTimeout {
		return fmt.Errorf("3DS2 timeout must be between %d and %d minutes, got %d",
			MinProtocolTimeout, MaxProtocolTimeout, threeDS2.Timeout)
	}
	if threeDS2.ChallengeStartDelay < 0 {
		return errors.New("3DS2 challenge start delay cannot be negative")
	}

	telemetry := c.PaymentAuth.Telemetry
	switch telemetry.Sink {
	case SinkLog, SinkDatabase:
	case SinkRedis:
		if telemetry.Enabled && telemetry.Redis.Address == "" {
			return errors.New("redis telemetry sink requires an address")
		}
	default:
		return fmt.Errorf("unknown telemetry sink: %s", telemetry.Sink)
	}
	return nil
}
