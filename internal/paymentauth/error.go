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
	"github.com/asgardeo/paymentauth/internal/system/error/serviceerror"
)

// AuthError is the error relayed when an authentication attempt fails.
type AuthError struct {
	ServiceError serviceerror.ServiceError
	Cause        error
}

// newAuthError wraps a cause with the given service error.
func newAuthError(serviceError serviceerror.ServiceError, cause error) *AuthError {
	return &AuthError{ServiceError: serviceError, Cause: cause}
}

// Error returns the code, the description and the cause, if any.
func (e *AuthError) Error() string {
	msg := e.ServiceError.Code + ": " + e.ServiceError.ErrorDescription
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AuthError with the same code.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.ServiceError.Code == e.ServiceError.Code
}

// Sentinels for errors.Is checks against relayed errors.
var (
	ErrInvalidAPIKey          = &AuthError{ServiceError: ErrorInvalidAPIKey}
	ErrInvalidConfirmParams   = &AuthError{ServiceError: ErrorInvalidConfirmParams}
	ErrUnrecognizedIntentType = &AuthError{ServiceError: ErrorUnrecognizedIntentType}
	ErrAuthConstruction       = &AuthError{ServiceError: ErrorAuthConstruction}
	ErrTransport              = &AuthError{ServiceError: ErrorTransport}
	ErrInvalidAuthResponse    = &AuthError{ServiceError: ErrorInvalidAuthResponse}
	ErrChallengeSession       = &AuthError{ServiceError: ErrorChallengeSession}
)
