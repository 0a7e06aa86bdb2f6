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

// Package relay defines the terminal outcome of an authentication attempt, the envelopes that
// carry it back to the caller and the UI surface that performs browser redirects.
package relay

import "fmt"

// Outcome is the terminal outcome of an authentication attempt.
type Outcome int

const (
	// OutcomeUnknown means no authentication took place or its result is not known locally.
	OutcomeUnknown Outcome = iota
	// OutcomeSucceeded means the cardholder authenticated.
	OutcomeSucceeded
	// OutcomeFailed means authentication failed.
	OutcomeFailed
	// OutcomeCancelled means the cardholder abandoned authentication.
	OutcomeCancelled
	// OutcomeTimedOut means authentication timed out.
	OutcomeTimedOut
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnknown:
		return "unknown"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTimedOut:
		return "timedout"
	default:
		return "invalid"
	}
}

// ParseOutcome returns the outcome with the given name.
func ParseOutcome(name string) (Outcome, error) {
	for o := OutcomeUnknown; o <= OutcomeTimedOut; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	return OutcomeUnknown, fmt.Errorf("unknown outcome: %s", name)
}
