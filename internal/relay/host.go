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

import "context"

// RedirectRequest asks the UI surface to authenticate the intent in a browser.
type RedirectRequest struct {
	ClientSecret string
	URL          string
	// ReturnURL is optional.
	ReturnURL string
}

// RedirectResult is returned by the UI surface once the browser round trip finishes.
type RedirectResult struct {
	ClientSecret string
	Outcome      Outcome
}

// HostInterface is the UI surface the orchestrator hands presentation work to.
type HostInterface interface {
	// ShowChallengeProgress tells the surface a 3DS2 challenge is being prepared. Advisory only.
	ShowChallengeProgress(ctx context.Context, directoryServerName string)
	// AuthenticateRedirect runs the browser redirect and blocks until it finishes.
	AuthenticateRedirect(ctx context.Context, request RedirectRequest) (RedirectResult, error)
}
