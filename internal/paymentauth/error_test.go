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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthErrorMessage(t *testing.T) {
	err := newAuthError(ErrorTransport, errors.New("connection refused"))

	assert.Equal(t, "PAU-65002: The transaction repository could not complete the request: connection refused",
		err.Error())
	assert.Equal(t, "PAU-60003: The client secret does not belong to a payment intent or a setup intent",
		newAuthError(ErrorUnrecognizedIntentType, nil).Error())
}

func TestAuthErrorMatchesByCode(t *testing.T) {
	cause := errors.New("offline")
	wrapped := fmt.Errorf("attempt failed: %w", newAuthError(ErrorTransport, cause))

	assert.ErrorIs(t, wrapped, ErrTransport)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrChallengeSession)
	assert.False(t, ErrTransport.Is(cause))
}

func TestAuthErrorWithDescription(t *testing.T) {
	err := newAuthError(ErrorInvalidAuthResponse.WithDescription("custom detail"), nil)

	assert.ErrorIs(t, err, ErrInvalidAuthResponse)
	assert.Equal(t, "PAU-65003: custom detail", err.Error())
	assert.Equal(t, "Invalid 3DS2 authentication response", ErrorInvalidAuthResponse.ErrorDescription)
}
