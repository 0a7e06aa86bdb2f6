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

	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

// Host stands in for the UI surface. Redirects end with the scripted outcome.
type Host struct {
	script   RedirectScript
	repo     *Repository
	mu       sync.Mutex
	progress []string
	logger   *log.Logger
}

// NewHost creates a host whose redirects settle the intent held by repo.
func NewHost(script RedirectScript, repo *Repository) *Host {
	return &Host{
		script: script,
		repo:   repo,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// ShowChallengeProgress records the progress signal.
func (h *Host) ShowChallengeProgress(ctx context.Context, directoryServerName string) {
	h.mu.Lock()
	h.progress = append(h.progress, directoryServerName)
	h.mu.Unlock()
	h.logger.Info("Preparing 3DS2 challenge", log.String("directoryServer", directoryServerName))
}

// AuthenticateRedirect completes the redirect with the scripted outcome.
func (h *Host) AuthenticateRedirect(ctx context.Context, request relay.RedirectRequest) (relay.RedirectResult, error) {
	if err := ctx.Err(); err != nil {
		return relay.RedirectResult{}, err
	}
	if request.URL == "" {
		return relay.RedirectResult{}, errors.New("redirect url is required")
	}

	outcome := relay.OutcomeSucceeded
	if h.script.Outcome != "" {
		parsed, err := relay.ParseOutcome(h.script.Outcome)
		if err != nil {
			return relay.RedirectResult{}, err
		}
		outcome = parsed
	}
	if h.repo != nil {
		h.repo.finish()
	}

	h.logger.Info("Browser redirect finished", log.String("url", request.URL),
		log.String("returnUrl", request.ReturnURL), log.String("outcome", outcome.String()))
	return relay.RedirectResult{ClientSecret: request.ClientSecret, Outcome: outcome}, nil
}

// ProgressSignals returns the directory server names shown so far.
func (h *Host) ProgressSignals() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.progress...)
}
