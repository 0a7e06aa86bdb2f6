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

package threeds2

import (
	"context"
	"time"
)

// ChallengeEngineInterface creates challenge sessions.
type ChallengeEngineInterface interface {
	CreateSession(ctx context.Context, config SessionConfig) (ChallengeSessionInterface, error)
}

// ChallengeSessionInterface is a single use challenge session. It must be closed once the
// authentication attempt ends.
type ChallengeSessionInterface interface {
	SessionParameters() SessionParameters
	// ExecuteChallenge runs the challenge UI. The receiver is invoked exactly once, possibly
	// after ExecuteChallenge has returned.
	ExecuteChallenge(ctx context.Context, params ChallengeParameters, receiver StatusReceiver,
		timeout time.Duration) error
	InitialChallengeUIType() string
	Close() error
}
