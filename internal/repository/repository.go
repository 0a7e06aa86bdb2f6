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

// Package repository defines the contract of the payments API client used by the orchestrator.
package repository

import (
	"context"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

// RepositoryInterface performs the intent and 3DS2 authentication calls of the payments API.
// Every call returns either a value or an error, never both.
type RepositoryInterface interface {
	// Confirm confirms a payment or setup intent.
	Confirm(ctx context.Context, params intent.ConfirmParams, opts intent.RequestOptions) (*intent.Intent, error)
	// Retrieve fetches the current snapshot of an intent by its client secret.
	Retrieve(ctx context.Context, intentType intent.IntentType, clientSecret string,
		opts intent.RequestOptions) (*intent.Intent, error)
	// Start3DS2Auth creates the server side 3DS2 authentication record.
	Start3DS2Auth(ctx context.Context, request threeds2.AuthStartRequest, intentID string,
		opts intent.RequestOptions) (*threeds2.AuthStartResult, error)
	// Complete3DS2Auth finalizes the server side 3DS2 authentication record of the source.
	Complete3DS2Auth(ctx context.Context, sourceID string, opts intent.RequestOptions) (bool, error)
}
