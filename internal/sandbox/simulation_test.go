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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/paymentauth"
	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/telemetry"
	"github.com/asgardeo/paymentauth/tests/mocks/telemetrymock"
)

type SimulationTestSuite struct {
	suite.Suite
	scenarios []Scenario
}

func TestSimulationTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationTestSuite))
}

func (suite *SimulationTestSuite) SetupSuite() {
	scenarios, err := LoadScenarios(scenarioFilePath)
	suite.Require().NoError(err)
	suite.scenarios = scenarios
}

type simulationExpectation struct {
	outcome     relay.Outcome
	status      string
	err         error
	completions int
	events      []telemetry.EventName
}

func (suite *SimulationTestSuite) TestBundledScenarios() {
	challengeEvents := func(mapped telemetry.EventName) []telemetry.EventName {
		return []telemetry.EventName{telemetry.EventAuth3DS2Fingerprint, mapped,
			telemetry.EventAuth3DS2ChallengePresented}
	}
	expectations := map[string]simulationExpectation{
		"no-action": {outcome: relay.OutcomeUnknown, status: intent.StatusSucceeded},
		"frictionless": {outcome: relay.OutcomeSucceeded, status: intent.StatusSucceeded,
			events: []telemetry.EventName{telemetry.EventAuth3DS2Fingerprint, telemetry.EventAuth3DS2Frictionless}},
		"challenge-authenticated": {outcome: relay.OutcomeSucceeded, status: intent.StatusSucceeded,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeCompleted)},
		"challenge-declined": {outcome: relay.OutcomeFailed, status: intent.StatusRequiresPaymentMethod,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeCompleted)},
		"challenge-cancelled": {outcome: relay.OutcomeCancelled, status: intent.StatusRequiresPaymentMethod,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeCanceled)},
		"challenge-timed-out": {outcome: relay.OutcomeTimedOut, status: intent.StatusRequiresPaymentMethod,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeTimedOut)},
		"challenge-protocol-error": {outcome: relay.OutcomeFailed, status: intent.StatusRequiresPaymentMethod,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeErrored)},
		"challenge-completion-failure": {err: paymentauth.ErrTransport,
			events: challengeEvents(telemetry.EventAuth3DS2ChallengeCanceled)},
		"fallback-redirect": {outcome: relay.OutcomeSucceeded, status: intent.StatusSucceeded,
			events: []telemetry.EventName{telemetry.EventAuth3DS2Fingerprint}},
		"malformed-response": {err: paymentauth.ErrInvalidAuthResponse,
			events: []telemetry.EventName{telemetry.EventAuth3DS2Fingerprint}},
		"redirect-to-url": {outcome: relay.OutcomeSucceeded, status: intent.StatusSucceeded,
			events: []telemetry.EventName{telemetry.EventAuthRedirect}},
		"three-ds1": {outcome: relay.OutcomeCancelled, status: intent.StatusRequiresPaymentMethod},
		"setup-challenge": {outcome: relay.OutcomeSucceeded, status: intent.StatusSucceeded,
			completions: 1, events: challengeEvents(telemetry.EventAuth3DS2ChallengeCompleted)},
	}
	suite.Require().Len(expectations, len(suite.scenarios))

	for _, scenario := range suite.scenarios {
		expected, ok := expectations[scenario.Name]
		suite.Require().True(ok, "no expectation for scenario %s", scenario.Name)

		suite.Run(scenario.Name, func() {
			env, err := NewEnvironment(scenario)
			suite.Require().NoError(err)

			sink := telemetrymock.NewSinkInterfaceMock(suite.T())
			sink.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()
			emitter := telemetry.NewEmitter(sink)
			orchestrator := paymentauth.NewOrchestrator(env.Repository, env.Engine, env.Host, emitter,
				paymentauth.Options{Timeout: 5})
			defer orchestrator.Close()

			var result relay.Result
			select {
			case result = <-orchestrator.ConfirmAndAuthenticate(context.Background(), scenario.ConfirmParams(),
				sandboxOpts):
			case <-time.After(10 * time.Second):
				suite.FailNow("scenario did not finish")
			}
			emitter.Wait()

			suite.Require().NoError(result.Validate())
			if expected.err != nil {
				assert.ErrorIs(suite.T(), result.Err, expected.err)
			} else {
				suite.Require().NoError(result.Err)
				assert.Equal(suite.T(), expected.outcome, result.Outcome)
				assert.Equal(suite.T(), expected.status, result.Intent.Status)
			}
			assert.Equal(suite.T(), expected.completions, env.Repository.Completions())

			names := make([]telemetry.EventName, 0, len(sink.Calls))
			for _, call := range sink.Calls {
				event := call.Arguments.Get(1).(telemetry.Event)
				assert.Equal(suite.T(), "pk_test_sandbox", event.PublishableKey)
				names = append(names, event.Name)
			}
			assert.ElementsMatch(suite.T(), expected.events, names)
		})
	}
}
