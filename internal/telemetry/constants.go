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

// Package telemetry emits fire-and-forget analytics events about authentication attempts.
package telemetry

// EventName is the name of an analytics event.
type EventName string

// Analytics event names.
const (
	EventAuth3DS2Fingerprint        EventName = "auth_3ds2_fingerprint"
	EventAuth3DS2Frictionless       EventName = "auth_3ds2_frictionless"
	EventAuthRedirect               EventName = "auth_redirect"
	EventAuth3DS2ChallengePresented EventName = "auth_3ds2_challenge_presented"
	EventAuth3DS2ChallengeCompleted EventName = "auth_3ds2_challenge_completed"
	EventAuth3DS2ChallengeCanceled  EventName = "auth_3ds2_challenge_canceled"
	EventAuth3DS2ChallengeTimedOut  EventName = "auth_3ds2_challenge_timedout"
	EventAuth3DS2ChallengeErrored   EventName = "auth_3ds2_challenge_errored"
)

// ChallengeErrorKind tells protocol errors from runtime errors in challenge error events.
type ChallengeErrorKind string

// Challenge error kinds.
const (
	ChallengeErrorProtocol ChallengeErrorKind = "protocol"
	ChallengeErrorRuntime  ChallengeErrorKind = "runtime"
)

const loggerComponentName = "Telemetry"
