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
	"errors"
	"sync"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/system/utils"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

const (
	sdkReferenceNumber   = "3DS_LOA_SDK_SBOX_020100_00001"
	sandboxDeviceData    = "sandbox-device-data"
	defaultChallengeType = "01"
)

var (
	errSessionClosed   = errors.New("challenge session is closed")
	errSessionExecuted = errors.New("challenge already executed for this session")
)

// ChallengeEngine creates sessions that answer challenges from a script.
type ChallengeEngine struct {
	script ChallengeScript
	logger *log.Logger
}

// NewChallengeEngine creates a challenge engine for the script.
func NewChallengeEngine(script ChallengeScript) *ChallengeEngine {
	return &ChallengeEngine{
		script: script,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// CreateSession creates a session with fresh transaction identifiers.
func (e *ChallengeEngine) CreateSession(ctx context.Context,
	config threeds2.SessionConfig) (threeds2.ChallengeSessionInterface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if config.DirectoryServerID == "" {
		return nil, errors.New("directory server id is required")
	}
	if config.PublicKey == nil {
		return nil, errors.New("directory server public key is required")
	}

	ephemeralKey, err := ephemeralPublicKeyJWK()
	if err != nil {
		return nil, err
	}

	session := &challengeSession{
		script: e.script,
		params: threeds2.SessionParameters{
			SDKAppID:              utils.GenerateUUID(),
			SDKReferenceNumber:    sdkReferenceNumber,
			SDKTransactionID:      utils.GenerateUUID(),
			DeviceData:            sandboxDeviceData,
			SDKEphemeralPublicKey: ephemeralKey,
			MessageVersion:        config.MessageVersion,
		},
		logger: e.logger,
	}
	e.logger.Debug("Created challenge session", log.String("directoryServer", config.DirectoryServerName),
		log.String("sdkTransactionId", session.params.SDKTransactionID),
		log.String("messageVersion", config.MessageVersion))
	return session, nil
}

type challengeSession struct {
	script   ChallengeScript
	params   threeds2.SessionParameters
	mu       sync.Mutex
	closed   bool
	executed bool
	logger   *log.Logger
}

func (s *challengeSession) SessionParameters() threeds2.SessionParameters {
	return s.params
}

// ExecuteChallenge answers the challenge asynchronously with the scripted outcome.
func (s *challengeSession) ExecuteChallenge(ctx context.Context, params threeds2.ChallengeParameters,
	receiver threeds2.StatusReceiver, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSessionClosed
	}
	if s.executed {
		return errSessionExecuted
	}
	if params.ACSTransactionID == "" {
		return errors.New("ACS transaction id is required")
	}
	s.executed = true

	outcome := s.script.outcome()
	s.logger.Debug("Presenting challenge", log.String("acsTransactionId", params.ACSTransactionID),
		log.Duration("timeout", timeout), log.String("outcome", outcome.Kind.String()))
	go func() {
		select {
		case <-ctx.Done():
			receiver(threeds2.ChallengeOutcome{Kind: threeds2.OutcomeRuntimeError, ErrorMessage: ctx.Err().Error()})
		default:
			receiver(outcome)
		}
	}()
	return nil
}

func (s *challengeSession) InitialChallengeUIType() string {
	if s.script.InitialUIType == "" {
		return defaultChallengeType
	}
	return s.script.InitialUIType
}

func (s *challengeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// outcome returns the challenge outcome the script describes.
func (c ChallengeScript) outcome() threeds2.ChallengeOutcome {
	uiType := c.UIType
	if uiType == "" {
		uiType = defaultChallengeType
	}

	switch c.Outcome {
	case ChallengeCancelled:
		return threeds2.ChallengeOutcome{Kind: threeds2.OutcomeCancelled, UIType: uiType}
	case ChallengeTimedOut:
		return threeds2.ChallengeOutcome{Kind: threeds2.OutcomeTimedOut, UIType: uiType}
	case ChallengeProtocolError:
		return threeds2.ChallengeOutcome{Kind: threeds2.OutcomeProtocolError, ErrorCode: c.ErrorCode,
			ErrorMessage: c.ErrorMessage, ErrorDetail: c.ErrorDetail}
	case ChallengeRuntimeError:
		return threeds2.ChallengeOutcome{Kind: threeds2.OutcomeRuntimeError, ErrorCode: c.ErrorCode,
			ErrorMessage: c.ErrorMessage, ErrorDetail: c.ErrorDetail}
	default:
		status := c.TransStatus
		if status == "" {
			status = threeds2.TransStatusAuthenticated
		}
		return threeds2.ChallengeOutcome{Kind: threeds2.OutcomeCompleted, TransactionStatus: status,
			UIType: uiType}
	}
}
