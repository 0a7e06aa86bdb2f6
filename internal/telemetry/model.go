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

package telemetry

import (
	"fmt"
	"strings"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/utils"
)

// Event is a single analytics event.
type Event struct {
	ID             string    `json:"id"`
	Name           EventName `json:"event"`
	IntentID       string    `json:"intent_id"`
	PublishableKey string    `json:"publishable_key"`
	UIType         string    `json:"3ds2_ui_type,omitempty"`
	ErrorDetail    string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created"`
}

// NewAuthEvent creates an event about an authentication path being taken.
func NewAuthEvent(name EventName, intentID, publishableKey string) Event {
	return Event{
		ID:             utils.GenerateUUID(),
		Name:           name,
		IntentID:       intentID,
		PublishableKey: publishableKey,
		CreatedAt:      time.Now().UTC(),
	}
}

// NewChallengeEvent creates an event about a challenge carrying the challenge UI type.
func NewChallengeEvent(name EventName, intentID, uiType, publishableKey string) Event {
	event := NewAuthEvent(name, intentID, publishableKey)
	event.UIType = uiType
	return event
}

// NewChallengeErrorEvent creates an auth_3ds2_challenge_errored event.
func NewChallengeErrorEvent(kind ChallengeErrorKind, intentID, errorCode, errorMessage,
	publishableKey string) Event {
	event := NewAuthEvent(EventAuth3DS2ChallengeErrored, intentID, publishableKey)
	event.ErrorDetail = strings.TrimSpace(fmt.Sprintf("%s: %s %s", kind, errorCode, errorMessage))
	return event
}
