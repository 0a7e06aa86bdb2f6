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

// Client errors for authentication attempts.
var (
	// ErrorInvalidAPIKey is the error returned when the publishable key is blank or a secret key.
	ErrorInvalidAPIKey = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PAU-60001",
		Error:            "Invalid API key",
		ErrorDescription: "A non-empty publishable key is required",
	}
	// ErrorInvalidConfirmParams is the error returned when the confirm parameters are missing.
	ErrorInvalidConfirmParams = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PAU-60002",
		Error:            "Invalid confirm parameters",
		ErrorDescription: "Confirm parameters with a client secret are required",
	}
	// ErrorUnrecognizedIntentType is the error returned when a client secret has no known prefix.
	ErrorUnrecognizedIntentType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PAU-60003",
		Error:            "Unrecognized intent type",
		ErrorDescription: "The client secret does not belong to a payment intent or a setup intent",
	}
)

// Server errors for authentication attempts.
var (
	// ErrorAuthConstruction is the error returned when the 3DS2 fingerprint cannot be built.
	ErrorAuthConstruction = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PAU-65001",
		Error:            "Authentication construction failed",
		ErrorDescription: "The 3DS2 directory server data could not be used to start authentication",
	}
	// ErrorTransport is the error returned when a repository call fails.
	ErrorTransport = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PAU-65002",
		Error:            "Transaction repository request failed",
		ErrorDescription: "The transaction repository could not complete the request",
	}
	// ErrorInvalidAuthResponse is the error returned when the 3DS2 authentication response has
	// neither a challenge decision nor a fallback redirect.
	ErrorInvalidAuthResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PAU-65003",
		Error:            "Invalid 3DS2 authentication response",
		ErrorDescription: "Invalid 3DS2 authentication response",
	}
	// ErrorChallengeSession is the error returned when the challenge session cannot be created or run.
	ErrorChallengeSession = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PAU-65004",
		Error:            "Challenge session failed",
		ErrorDescription: "The 3DS2 challenge session could not be created or started",
	}
)
