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

package paymentauth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/telemetry"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

// run3DS2 starts 3DS2 authentication with the fingerprint and follows the issuer's decision.
func (o *Orchestrator) run3DS2(ctx context.Context, current *intent.Intent, clientSecret string,
	fingerprint *threeds2.Fingerprint, opts intent.RequestOptions) relay.Payload {
	logger := o.logger.With(log.String(log.LoggerKeyIntentID, current.ID))

	session, err := o.engine.CreateSession(ctx,
		fingerprint.SessionConfig(o.messageVersions.Current(), current.LiveMode))
	if err != nil {
		logger.Error("Failed to create challenge session", log.Error(err))
		return relay.NewErrorPayload(newAuthError(ErrorChallengeSession, err))
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Error("Failed to close challenge session", log.Error(closeErr))
		}
	}()

	o.host.ShowChallengeProgress(ctx, fingerprint.DirectoryServer.Name)

	request := threeds2.AuthStartRequest{
		SourceID:          fingerprint.SourceID,
		SessionParameters: session.SessionParameters(),
		MaxTimeout:        o.timeout,
	}
	if redirectData, ok := current.RedirectData(); ok {
		request.ReturnURL = redirectData.ReturnURL
	}

	result, err := o.repo.Start3DS2Auth(ctx, request, current.ID, opts)
	if err != nil {
		logger.Error("Failed to start 3DS2 authentication", log.Error(err))
		return relay.NewErrorPayload(newAuthError(ErrorTransport, err))
	}

	switch response := result.Classify().(type) {
	case threeds2.ChallengeRequired:
		return o.runChallenge(ctx, current, clientSecret, fingerprint.SourceID, session, response.Params, opts)
	case threeds2.Frictionless:
		o.emit(telemetry.NewAuthEvent(telemetry.EventAuth3DS2Frictionless, current.ID, opts.PublishableKey))
		return relay.NewPayload(clientSecret, relay.OutcomeSucceeded)
	case threeds2.FallbackRedirect:
		return o.redirect(ctx, clientSecret, response.URL, "")
	case threeds2.Malformed:
		message := response.Message()
		logger.Error("Invalid 3DS2 authentication response", log.String("detail", message))
		return relay.NewErrorPayload(newAuthError(ErrorInvalidAuthResponse.WithDescription(message), nil))
	default:
		return relay.NewErrorPayload(newAuthError(ErrorInvalidAuthResponse, nil))
	}
}

// runChallenge presents the challenge on the scheduler, waits for its single outcome and
// completes authentication with the repository.
func (o *Orchestrator) runChallenge(ctx context.Context, current *intent.Intent, clientSecret,
	sourceID string, session threeds2.ChallengeSessionInterface, params threeds2.ChallengeParameters,
	opts intent.RequestOptions) relay.Payload {
	logger := o.logger.With(log.String(log.LoggerKeyIntentID, current.ID))

	outcomes := make(chan threeds2.ChallengeOutcome, 1)
	var once sync.Once
	receiver := func(outcome threeds2.ChallengeOutcome) {
		once.Do(func() {
			outcomes <- outcome
		})
	}

	failures := make(chan error, 1)
	timeout := time.Duration(o.timeout) * time.Minute
	err := o.scheduler.Schedule(ctx, o.startDelay, func(taskCtx context.Context) {
		if err := taskCtx.Err(); err != nil {
			failures <- err
			return
		}
		defer func() {
			if r := recover(); r != nil {
				failures <- fmt.Errorf("challenge execution panicked: %v", r)
			}
		}()
		if err := session.ExecuteChallenge(taskCtx, params, receiver, timeout); err != nil {
			failures <- err
		}
	})
	if err != nil {
		logger.Error("Failed to schedule challenge", log.Error(err))
		return relay.NewErrorPayload(newAuthError(ErrorChallengeSession, err))
	}

	outcome, err := awaitOutcome(ctx, outcomes, failures)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return relay.NewErrorPayload(newAuthError(ErrorChallengeSession, ctxErr))
		}
		// Engine failures are runtime error outcomes and still complete authentication.
		logger.Error("Failed to execute challenge", log.Error(err))
		outcome = threeds2.ChallengeOutcome{Kind: threeds2.OutcomeRuntimeError, ErrorMessage: err.Error()}
	}

	mapped := o.emitChallengeOutcome(current.ID, outcome, opts.PublishableKey)
	o.emit(telemetry.NewChallengeEvent(telemetry.EventAuth3DS2ChallengePresented, current.ID,
		session.InitialChallengeUIType(), opts.PublishableKey))

	completed, err := o.repo.Complete3DS2Auth(ctx, sourceID, opts)
	if err != nil {
		logger.Error("Failed to complete 3DS2 authentication", log.Error(err))
		return relay.NewErrorPayload(newAuthError(ErrorTransport, err))
	}
	if !completed {
		logger.Warn("3DS2 authentication completion was not acknowledged",
			log.String("outcome", mapped.String()))
	}
	return relay.NewPayload(clientSecret, mapped)
}

// awaitOutcome waits for the challenge outcome. An outcome delivered before an execution
// failure wins.
func awaitOutcome(ctx context.Context, outcomes <-chan threeds2.ChallengeOutcome,
	failures <-chan error) (threeds2.ChallengeOutcome, error) {
	select {
	case outcome := <-outcomes:
		return outcome, nil
	case err := <-failures:
		select {
		case outcome := <-outcomes:
			return outcome, nil
		default:
			return threeds2.ChallengeOutcome{}, err
		}
	case <-ctx.Done():
		return threeds2.ChallengeOutcome{}, ctx.Err()
	}
}

// emitChallengeOutcome emits the event for the challenge outcome and returns its relay outcome.
func (o *Orchestrator) emitChallengeOutcome(intentID string, outcome threeds2.ChallengeOutcome,
	publishableKey string) relay.Outcome {
	switch outcome.Kind {
	case threeds2.OutcomeCompleted:
		o.emit(telemetry.NewChallengeEvent(telemetry.EventAuth3DS2ChallengeCompleted, intentID,
			outcome.UIType, publishableKey))
		if outcome.TransactionStatus == threeds2.TransStatusAuthenticated {
			return relay.OutcomeSucceeded
		}
		return relay.OutcomeFailed
	case threeds2.OutcomeCancelled:
		o.emit(telemetry.NewChallengeEvent(telemetry.EventAuth3DS2ChallengeCanceled, intentID,
			outcome.UIType, publishableKey))
		return relay.OutcomeCancelled
	case threeds2.OutcomeTimedOut:
		o.emit(telemetry.NewChallengeEvent(telemetry.EventAuth3DS2ChallengeTimedOut, intentID,
			outcome.UIType, publishableKey))
		return relay.OutcomeTimedOut
	case threeds2.OutcomeProtocolError:
		o.emit(telemetry.NewChallengeErrorEvent(telemetry.ChallengeErrorProtocol, intentID,
			outcome.ErrorCode, outcome.ErrorMessage, publishableKey))
		return relay.OutcomeFailed
	default:
		o.emit(telemetry.NewChallengeErrorEvent(telemetry.ChallengeErrorRuntime, intentID,
			outcome.ErrorCode, outcome.ErrorMessage, publishableKey))
		return relay.OutcomeFailed
	}
}
