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

package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

const loggerComponentName = "Sandbox"

// ErrNoSuchIntent is returned when a call names an intent the scenario does not script.
var ErrNoSuchIntent = errors.New("no such intent")

// Repository is an in-memory transaction repository that answers from a scenario.
type Repository struct {
	scenario    Scenario
	certificate string
	mu          sync.Mutex
	confirmed   bool
	finished    bool
	completions int
	logger      *log.Logger
}

// NewRepository creates a repository for the scenario. The certificate replaces
// CertificatePlaceholder in the scripted responses.
func NewRepository(scenario Scenario, certificate string) *Repository {
	return &Repository{
		scenario:    scenario,
		certificate: certificate,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
			log.String("scenario", scenario.Name)),
	}
}

// Confirm returns the scripted intent.
func (r *Repository) Confirm(ctx context.Context, params intent.ConfirmParams,
	opts intent.RequestOptions) (*intent.Intent, error) {
	if err := r.checkRequest(ctx, opts); err != nil {
		return nil, err
	}
	if r.scenario.Failures.Confirm != "" {
		return nil, errors.New(r.scenario.Failures.Confirm)
	}
	if params.GetClientSecret() != r.scenario.ClientSecret() {
		return nil, ErrNoSuchIntent
	}

	confirmed, err := r.decodeIntent()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.confirmed = true
	r.mu.Unlock()

	r.logger.Debug("Confirmed intent", log.String(log.LoggerKeyIntentID, confirmed.ID),
		log.String("status", confirmed.Status))
	return confirmed, nil
}

// Retrieve returns the current state of the scripted intent.
func (r *Repository) Retrieve(ctx context.Context, intentType intent.IntentType, clientSecret string,
	opts intent.RequestOptions) (*intent.Intent, error) {
	if err := r.checkRequest(ctx, opts); err != nil {
		return nil, err
	}
	if clientSecret != r.scenario.ClientSecret() {
		return nil, ErrNoSuchIntent
	}

	current, err := r.decodeIntent()
	if err != nil {
		return nil, err
	}
	if current.Type != intentType {
		return nil, fmt.Errorf("%w: %s is not a %s", ErrNoSuchIntent, current.ID, intentType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		current.Status = r.scenario.finalStatus()
		current.NextAction = intent.NoAction{}
	}
	return current, nil
}

// Start3DS2Auth returns the scripted authentication start response.
func (r *Repository) Start3DS2Auth(ctx context.Context, request threeds2.AuthStartRequest, intentID string,
	opts intent.RequestOptions) (*threeds2.AuthStartResult, error) {
	if err := r.checkRequest(ctx, opts); err != nil {
		return nil, err
	}
	if r.scenario.Failures.StartAuth != "" {
		return nil, errors.New(r.scenario.Failures.StartAuth)
	}
	if id, _ := r.scenario.Intent["id"].(string); id != intentID {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchIntent, intentID)
	}

	params, err := request.ToParams()
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Starting 3DS2 authentication", log.String(log.LoggerKeyIntentID, intentID),
		log.String("source", params["source"]), log.Int("maxTimeout", request.MaxTimeout))

	data, err := r.render(r.scenario.AuthResponse)
	if err != nil {
		return nil, err
	}
	result, err := threeds2.DecodeAuthStartResult(data)
	if err != nil {
		return nil, err
	}
	if result.ARes != nil && !result.ARes.ShouldChallenge() {
		r.finish()
	}
	return result, nil
}

// Complete3DS2Auth records the completion and settles the intent.
func (r *Repository) Complete3DS2Auth(ctx context.Context, sourceID string,
	opts intent.RequestOptions) (bool, error) {
	if err := r.checkRequest(ctx, opts); err != nil {
		return false, err
	}
	if r.scenario.Failures.Complete != "" {
		return false, errors.New(r.scenario.Failures.Complete)
	}

	r.mu.Lock()
	r.completions++
	r.mu.Unlock()
	r.finish()

	r.logger.Debug("Completed 3DS2 authentication", log.String("source", sourceID))
	return true, nil
}

// Completions returns how many times authentication was completed.
func (r *Repository) Completions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions
}

func (r *Repository) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = true
}

func (r *Repository) checkRequest(ctx context.Context, opts intent.RequestOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return opts.ValidatePublishableKey()
}

func (r *Repository) decodeIntent() (*intent.Intent, error) {
	data, err := r.render(r.scenario.Intent)
	if err != nil {
		return nil, err
	}
	return intent.DecodeIntent(data)
}

// render encodes a scripted API object, substituting the directory server certificate.
func (r *Repository) render(object map[string]any) ([]byte, error) {
	data, err := json.Marshal(object)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scripted response: %w", err)
	}
	placeholder, err := json.Marshal(CertificatePlaceholder)
	if err != nil {
		return nil, err
	}
	certificate, err := json.Marshal(r.certificate)
	if err != nil {
		return nil, err
	}
	return bytes.ReplaceAll(data, placeholder, certificate), nil
}
