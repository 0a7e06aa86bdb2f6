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

package relay

import (
	"errors"

	"github.com/asgardeo/paymentauth/internal/intent"
)

// ErrInvalidResult is returned by Validate when a result breaks the one of value or error rule.
var ErrInvalidResult = errors.New("result must carry either an intent or an error")

// Payload is what an authentication path relays before the intent is re-fetched. It carries
// either an error or a client secret with an outcome.
type Payload struct {
	ClientSecret string
	Outcome      Outcome
	Err          error
}

// NewPayload creates a payload for a finished authentication path.
func NewPayload(clientSecret string, outcome Outcome) Payload {
	return Payload{ClientSecret: clientSecret, Outcome: outcome}
}

// NewErrorPayload creates a payload for a failed authentication path.
func NewErrorPayload(err error) Payload {
	return Payload{Err: err}
}

// Result is the terminal signal delivered to the caller: either a fresh intent snapshot with
// its outcome, or an error.
type Result struct {
	Intent  *intent.Intent
	Outcome Outcome
	Err     error
}

// NewResult creates a successful result.
func NewResult(i *intent.Intent, outcome Outcome) Result {
	return Result{Intent: i, Outcome: outcome}
}

// NewErrorResult creates a failed result.
func NewErrorResult(err error) Result {
	return Result{Err: err}
}

// Validate checks that exactly one of the intent and the error is set.
func (r Result) Validate() error {
	if (r.Intent == nil) == (r.Err == nil) {
		return ErrInvalidResult
	}
	return nil
}
