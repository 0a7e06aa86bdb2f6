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

// Package paymentauth drives payment and setup intents through the authentication the issuer
// asks for: frictionless 3DS2, a native 3DS2 challenge, or a browser redirect.
package paymentauth

import (
	"context"
	"errors"
	"time"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/repository"
	"github.com/asgardeo/paymentauth/internal/system/config"
	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/telemetry"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

const loggerComponentName = "PaymentAuthOrchestrator"

var errEmptyIntent = errors.New("repository returned no intent")

// Options tunes an Orchestrator.
type Options struct {
	// Timeout is the challenge protocol timeout in minutes. Values outside the accepted range
	// fall back to config.MinProtocolTimeout.
	Timeout             int
	ChallengeStartDelay time.Duration
	MessageVersions     *threeds2.MessageVersionRegistry
	// Scheduler runs challenge UI tasks. A dedicated scheduler is started when nil.
	Scheduler ChallengeSchedulerInterface
}

// Orchestrator runs authentication attempts against the transaction repository.
type Orchestrator struct {
	repo            repository.RepositoryInterface
	engine          threeds2.ChallengeEngineInterface
	host            relay.HostInterface
	emitter         telemetry.EmitterInterface
	timeout         int
	startDelay      time.Duration
	messageVersions *threeds2.MessageVersionRegistry
	scheduler       ChallengeSchedulerInterface
	ownsScheduler   bool
	logger          *log.Logger
}

// NewOrchestrator creates an orchestrator over the given collaborators.
func NewOrchestrator(repo repository.RepositoryInterface, engine threeds2.ChallengeEngineInterface,
	host relay.HostInterface, emitter telemetry.EmitterInterface, opts Options) *Orchestrator {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	timeout := opts.Timeout
	if timeout < config.MinProtocolTimeout || timeout > config.MaxProtocolTimeout {
		if timeout != 0 {
			logger.Warn("Challenge timeout out of range, using the minimum",
				log.Int("timeout", timeout), log.Int("minimum", config.MinProtocolTimeout))
		}
		timeout = config.MinProtocolTimeout
	}
	startDelay := opts.ChallengeStartDelay
	if startDelay < 0 {
		startDelay = 0
	}
	messageVersions := opts.MessageVersions
	if messageVersions == nil {
		messageVersions = threeds2.NewMessageVersionRegistry("")
	}
	if emitter == nil {
		emitter = telemetry.NewEmitter(nil)
	}

	o := &Orchestrator{
		repo:            repo,
		engine:          engine,
		host:            host,
		emitter:         emitter,
		timeout:         timeout,
		startDelay:      startDelay,
		messageVersions: messageVersions,
		scheduler:       opts.Scheduler,
		logger:          logger,
	}
	if o.scheduler == nil {
		o.scheduler = NewChallengeScheduler()
		o.ownsScheduler = true
	}
	return o
}

// NewOrchestratorFromConfig creates an orchestrator tuned by the 3DS2 configuration.
func NewOrchestratorFromConfig(cfg config.PaymentAuthConfig, repo repository.RepositoryInterface,
	engine threeds2.ChallengeEngineInterface, host relay.HostInterface,
	emitter telemetry.EmitterInterface) *Orchestrator {
	return NewOrchestrator(repo, engine, host, emitter, Options{
		Timeout:             cfg.ThreeDS2.Timeout,
		ChallengeStartDelay: cfg.ThreeDS2.ChallengeStartDelay,
		MessageVersions:     threeds2.NewMessageVersionRegistry(cfg.ThreeDS2.MessageVersion),
	})
}

// Close stops the challenge worker if the orchestrator started it.
func (o *Orchestrator) Close() {
	if o.ownsScheduler {
		o.scheduler.Close()
	}
}

// ConfirmAndAuthenticate confirms the intent and runs the authentication it requires. The
// returned channel receives exactly one result and is then closed.
func (o *Orchestrator) ConfirmAndAuthenticate(ctx context.Context, params intent.ConfirmParams,
	opts intent.RequestOptions) <-chan relay.Result {
	return o.runAttempt(func() relay.Result {
		return o.confirmAndAuthenticate(ctx, params, opts)
	})
}

// Authenticate retrieves the intent behind the client secret and runs the authentication it
// requires. The returned channel receives exactly one result and is then closed.
func (o *Orchestrator) Authenticate(ctx context.Context, clientSecret string,
	opts intent.RequestOptions) <-chan relay.Result {
	return o.runAttempt(func() relay.Result {
		return o.authenticate(ctx, clientSecret, opts)
	})
}

func (o *Orchestrator) runAttempt(attempt func() relay.Result) <-chan relay.Result {
	results := make(chan relay.Result, 1)
	go func() {
		defer close(results)
		results <- attempt()
	}()
	return results
}

func (o *Orchestrator) confirmAndAuthenticate(ctx context.Context, params intent.ConfirmParams,
	opts intent.RequestOptions) relay.Result {
	if err := opts.ValidatePublishableKey(); err != nil {
		return relay.NewErrorResult(newAuthError(ErrorInvalidAPIKey, err))
	}
	if params == nil || params.GetClientSecret() == "" {
		return relay.NewErrorResult(newAuthError(ErrorInvalidConfirmParams, nil))
	}

	confirmed, err := o.repo.Confirm(ctx, params.WithUseSDK(true), opts)
	if err == nil && confirmed == nil {
		err = errEmptyIntent
	}
	if err != nil {
		o.logger.Error("Failed to confirm intent", log.Error(err))
		return relay.NewErrorResult(newAuthError(ErrorTransport, err))
	}

	payload := o.handleNextAction(ctx, confirmed, params.GetClientSecret(), opts)
	return o.HandleResult(ctx, payload, opts)
}

func (o *Orchestrator) authenticate(ctx context.Context, clientSecret string,
	opts intent.RequestOptions) relay.Result {
	if err := opts.ValidatePublishableKey(); err != nil {
		return relay.NewErrorResult(newAuthError(ErrorInvalidAPIKey, err))
	}
	intentType, ok := intent.IntentTypeFromClientSecret(clientSecret)
	if !ok {
		return relay.NewErrorResult(newAuthError(ErrorUnrecognizedIntentType, nil))
	}

	current, err := o.repo.Retrieve(ctx, intentType, clientSecret, opts)
	if err == nil && current == nil {
		err = errEmptyIntent
	}
	if err != nil {
		o.logger.Error("Failed to retrieve intent", log.Error(err))
		return relay.NewErrorResult(newAuthError(ErrorTransport, err))
	}

	payload := o.handleNextAction(ctx, current, clientSecret, opts)
	return o.HandleResult(ctx, payload, opts)
}

// HandleResult turns a relayed payload into the final result. Error payloads pass through;
// otherwise the intent is retrieved again so the result carries its latest state.
func (o *Orchestrator) HandleResult(ctx context.Context, payload relay.Payload,
	opts intent.RequestOptions) relay.Result {
	if payload.Err != nil {
		return relay.NewErrorResult(payload.Err)
	}

	intentType, ok := intent.IntentTypeFromClientSecret(payload.ClientSecret)
	if !ok {
		return relay.NewErrorResult(newAuthError(ErrorUnrecognizedIntentType, nil))
	}

	latest, err := o.repo.Retrieve(ctx, intentType, payload.ClientSecret, opts)
	if err == nil && latest == nil {
		err = errEmptyIntent
	}
	if err != nil {
		o.logger.Error("Failed to retrieve intent for the result", log.Error(err))
		return relay.NewErrorResult(newAuthError(ErrorTransport, err))
	}

	if o.logger.IsDebugEnabled() {
		o.logger.Debug("Authentication attempt finished", log.String(log.LoggerKeyIntentID, latest.ID),
			log.String("outcome", payload.Outcome.String()))
	}
	return relay.NewResult(latest, payload.Outcome)
}

// handleNextAction picks the authentication path for the intent and runs it.
func (o *Orchestrator) handleNextAction(ctx context.Context, current *intent.Intent,
	requestSecret string, opts intent.RequestOptions) relay.Payload {
	clientSecret := current.ClientSecret
	if clientSecret == "" {
		clientSecret = requestSecret
	}
	if !current.RequiresAction() {
		return o.bypass(current, clientSecret)
	}

	switch action := current.NextAction.(type) {
	case intent.UseSDKAction:
		switch data := action.Data.(type) {
		case intent.ThreeDS2Data:
			o.emit(telemetry.NewAuthEvent(telemetry.EventAuth3DS2Fingerprint, current.ID, opts.PublishableKey))
			fingerprint, err := threeds2.NewFingerprint(data)
			if err != nil {
				o.logger.Error("Failed to build 3DS2 fingerprint", log.String(log.LoggerKeyIntentID, current.ID),
					log.Error(err))
				return relay.NewErrorPayload(newAuthError(ErrorAuthConstruction, err))
			}
			return o.run3DS2(ctx, current, clientSecret, fingerprint, opts)
		case intent.ThreeDS1Data:
			return o.redirect(ctx, clientSecret, data.URL, "")
		}
	case intent.RedirectToURLAction:
		o.emit(telemetry.NewAuthEvent(telemetry.EventAuthRedirect, current.ID, opts.PublishableKey))
		return o.redirect(ctx, clientSecret, action.URL, action.ReturnURL)
	}

	return o.bypass(current, clientSecret)
}

func (o *Orchestrator) bypass(current *intent.Intent, clientSecret string) relay.Payload {
	if o.logger.IsDebugEnabled() {
		o.logger.Debug("No supported authentication required", log.String(log.LoggerKeyIntentID, current.ID),
			log.String("status", current.Status))
	}
	return relay.NewPayload(clientSecret, relay.OutcomeUnknown)
}

// redirect hands the URL to the host and relays what the browser round trip returned.
func (o *Orchestrator) redirect(ctx context.Context, clientSecret, url, returnURL string) relay.Payload {
	result, err := o.host.AuthenticateRedirect(ctx, relay.RedirectRequest{
		ClientSecret: clientSecret,
		URL:          url,
		ReturnURL:    returnURL,
	})
	if err != nil {
		return relay.NewErrorPayload(err)
	}
	if result.ClientSecret == "" {
		result.ClientSecret = clientSecret
	}
	return relay.NewPayload(result.ClientSecret, result.Outcome)
}

func (o *Orchestrator) emit(event telemetry.Event) {
	o.emitter.Emit(event)
}
