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

// Package threeds2 holds the 3-D Secure 2 data model shared by the orchestrator and the
// challenge engine, along with the contract a challenge engine has to fulfil.
package threeds2

import (
	"crypto"
	"crypto/x509"
)

// Transaction status values reported by the access control server.
const (
	TransStatusAuthenticated = "Y"
	TransStatusChallenge     = "C"
)

// DirectoryServer identifies a card network directory server.
type DirectoryServer struct {
	ID   string
	Name string
}

// Fingerprint is the directory server identity and key material needed to start a challenge.
type Fingerprint struct {
	SourceID                 string
	DirectoryServer          DirectoryServer
	ServerTransactionID      string
	DirectoryServerPublicKey crypto.PublicKey
	RootCerts                []*x509.Certificate
	KeyID                    string
}

// SessionConfig holds what the engine needs to create a challenge session.
type SessionConfig struct {
	DirectoryServerID   string
	MessageVersion      string
	LiveMode            bool
	DirectoryServerName string
	RootCerts           []*x509.Certificate
	PublicKey           crypto.PublicKey
	KeyID               string
}

// SessionParameters are the device and session values sent to the server when starting
// authentication.
type SessionParameters struct {
	SDKAppID              string
	SDKReferenceNumber    string
	SDKTransactionID      string
	DeviceData            string
	SDKEphemeralPublicKey string
	MessageVersion        string
}

// ChallengeParameters are taken from the authentication response and drive the challenge UI.
type ChallengeParameters struct {
	ACSSignedContent           string
	ThreeDSServerTransactionID string
	ACSTransactionID           string
}

// OutcomeKind enumerates the completion signals of a challenge.
type OutcomeKind int

const (
	// OutcomeCompleted means the cardholder finished the challenge.
	OutcomeCompleted OutcomeKind = iota
	// OutcomeCancelled means the cardholder abandoned the challenge.
	OutcomeCancelled
	// OutcomeTimedOut means the protocol timeout elapsed.
	OutcomeTimedOut
	// OutcomeProtocolError means the access control server reported an error.
	OutcomeProtocolError
	// OutcomeRuntimeError means the engine failed locally.
	OutcomeRuntimeError
)

// String returns the name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTimedOut:
		return "timedout"
	case OutcomeProtocolError:
		return "protocol_error"
	case OutcomeRuntimeError:
		return "runtime_error"
	default:
		return "unknown"
	}
}

// ChallengeOutcome is the single completion signal of a challenge session.
type ChallengeOutcome struct {
	Kind OutcomeKind
	// TransactionStatus is set for OutcomeCompleted.
	TransactionStatus string
	// UIType is the UI type code of the last challenge screen.
	UIType string
	// Error fields are set for OutcomeProtocolError and OutcomeRuntimeError.
	ErrorCode    string
	ErrorMessage string
	ErrorDetail  string
}

// StatusReceiver receives the completion signal of a challenge.
type StatusReceiver func(outcome ChallengeOutcome)
