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

// Package sandbox provides scripted, in-memory collaborators for running authentication
// attempts end to end without network access.
package sandbox

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

// CertificatePlaceholder is replaced with a generated directory server certificate when a
// scenario is rendered.
const CertificatePlaceholder = "@directory_server_certificate"

// Challenge outcome names used in scenario files.
const (
	ChallengeCompleted     = "completed"
	ChallengeCancelled     = "cancelled"
	ChallengeTimedOut      = "timed_out"
	ChallengeProtocolError = "protocol_error"
	ChallengeRuntimeError  = "runtime_error"
)

// ErrScenarioNotFound is returned when no scenario has the requested name.
var ErrScenarioNotFound = errors.New("scenario not found")

// Scenario scripts a single authentication attempt.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Intent is the API representation of the intent returned on confirmation.
	Intent map[string]any `yaml:"intent"`
	// FinalStatus is the intent status once authentication finishes. Defaults to succeeded.
	FinalStatus string `yaml:"final_status"`
	// AuthResponse is the API representation of the 3DS2 authentication start response.
	AuthResponse map[string]any  `yaml:"auth_response"`
	Challenge    ChallengeScript `yaml:"challenge"`
	Redirect     RedirectScript  `yaml:"redirect"`
	Failures     FailureScript   `yaml:"failures"`
}

// ChallengeScript describes how the cardholder answers a challenge.
type ChallengeScript struct {
	Outcome       string `yaml:"outcome"`
	TransStatus   string `yaml:"trans_status"`
	UIType        string `yaml:"ui_type"`
	InitialUIType string `yaml:"initial_ui_type"`
	ErrorCode     string `yaml:"error_code"`
	ErrorMessage  string `yaml:"error_message"`
	ErrorDetail   string `yaml:"error_detail"`
}

// RedirectScript describes how a browser redirect ends.
type RedirectScript struct {
	Outcome string `yaml:"outcome"`
}

// FailureScript injects repository failures. Each non-empty field is the error message returned
// by the matching call.
type FailureScript struct {
	Confirm   string `yaml:"confirm"`
	StartAuth string `yaml:"start_auth"`
	Complete  string `yaml:"complete"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ClientSecret returns the client secret of the scripted intent.
func (s Scenario) ClientSecret() string {
	secret, _ := s.Intent["client_secret"].(string)
	return secret
}

// ConfirmParams returns confirmation parameters matching the scripted intent type.
func (s Scenario) ConfirmParams() intent.ConfirmParams {
	intentType, _ := intent.IntentTypeFromClientSecret(s.ClientSecret())
	if intentType == intent.IntentTypeSetup {
		return intent.ConfirmSetupParams{ClientSecret: s.ClientSecret(), PaymentMethodID: "pm_card_sandbox"}
	}
	return intent.ConfirmPaymentParams{ClientSecret: s.ClientSecret(), PaymentMethodID: "pm_card_sandbox"}
}

func (s Scenario) finalStatus() string {
	if s.FinalStatus == "" {
		return intent.StatusSucceeded
	}
	return s.FinalStatus
}

func (s Scenario) validate() error {
	if s.Name == "" {
		return errors.New("scenario name is required")
	}
	if _, ok := intent.IntentTypeFromClientSecret(s.ClientSecret()); !ok {
		return fmt.Errorf("scenario %s: intent client_secret must start with %s or %s",
			s.Name, intent.PaymentIntentPrefix, intent.SetupIntentPrefix)
	}
	switch s.Challenge.Outcome {
	case "", ChallengeCompleted, ChallengeCancelled, ChallengeTimedOut, ChallengeProtocolError,
		ChallengeRuntimeError:
	default:
		return fmt.Errorf("scenario %s: unknown challenge outcome: %s", s.Name, s.Challenge.Outcome)
	}
	if s.Redirect.Outcome != "" {
		if _, err := relay.ParseOutcome(s.Redirect.Outcome); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

// LoadScenarios reads and validates the scenarios in the given YAML file.
func LoadScenarios(path string) ([]Scenario, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	names := make(map[string]bool, len(file.Scenarios))
	for _, scenario := range file.Scenarios {
		if err := scenario.validate(); err != nil {
			return nil, err
		}
		if names[scenario.Name] {
			return nil, fmt.Errorf("duplicate scenario: %s", scenario.Name)
		}
		names[scenario.Name] = true
	}

	logger.Debug("Loaded sandbox scenarios", log.Int("count", len(file.Scenarios)), log.String("path", path))
	return file.Scenarios, nil
}

// FindScenario returns the scenario with the given name.
func FindScenario(scenarios []Scenario, name string) (Scenario, error) {
	for _, scenario := range scenarios {
		if scenario.Name == name {
			return scenario, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
}
