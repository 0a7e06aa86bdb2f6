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

package intent

import (
	"errors"
	"strings"
)

var (
	// ErrBlankPublishableKey is returned when no publishable key is configured.
	ErrBlankPublishableKey = errors.New("invalid publishable key: you must use a valid publishable key " +
		"to create a token")
	// ErrSecretKeyUsed is returned when a secret key is used in place of a publishable key.
	ErrSecretKeyUsed = errors.New("invalid publishable key: you are using a secret key to create a token, " +
		"instead of the publishable one")
)

// RequestOptions carries the per request credentials sent to the payments API.
type RequestOptions struct {
	PublishableKey string
	// StripeAccount is the connected account the request acts on behalf of, if any.
	StripeAccount string
}

// ValidatePublishableKey checks that the options carry a usable publishable key.
func (o RequestOptions) ValidatePublishableKey() error {
	key := strings.TrimSpace(o.PublishableKey)
	if key == "" {
		return ErrBlankPublishableKey
	}
	if strings.HasPrefix(key, secretKeyPrefix) {
		return ErrSecretKeyUsed
	}
	return nil
}

// ConfirmParams are the parameters of a confirm call. Implementations: ConfirmPaymentParams and
// ConfirmSetupParams.
type ConfirmParams interface {
	// IntentType returns the type of intent being confirmed.
	IntentType() IntentType
	// GetClientSecret returns the client secret of the intent being confirmed.
	GetClientSecret() string
	// WithUseSDK returns a copy of the params with the SDK authentication flag set.
	WithUseSDK(useSDK bool) ConfirmParams
	confirmParams()
}

// ConfirmPaymentParams confirms a payment intent.
type ConfirmPaymentParams struct {
	ClientSecret      string
	PaymentMethodID   string
	ReturnURL         string
	UseSDK            bool
	SavePaymentMethod bool
}

// IntentType returns IntentTypePayment.
func (p ConfirmPaymentParams) IntentType() IntentType {
	return IntentTypePayment
}

// GetClientSecret returns the client secret of the payment intent.
func (p ConfirmPaymentParams) GetClientSecret() string {
	return p.ClientSecret
}

// WithUseSDK returns a copy of the params with the SDK authentication flag set.
func (p ConfirmPaymentParams) WithUseSDK(useSDK bool) ConfirmParams {
	p.UseSDK = useSDK
	return p
}

func (ConfirmPaymentParams) confirmParams() {}

// ConfirmSetupParams confirms a setup intent.
type ConfirmSetupParams struct {
	ClientSecret    string
	PaymentMethodID string
	ReturnURL       string
	UseSDK          bool
}

// IntentType returns IntentTypeSetup.
func (p ConfirmSetupParams) IntentType() IntentType {
	return IntentTypeSetup
}

// GetClientSecret returns the client secret of the setup intent.
func (p ConfirmSetupParams) GetClientSecret() string {
	return p.ClientSecret
}

// WithUseSDK returns a copy of the params with the SDK authentication flag set.
func (p ConfirmSetupParams) WithUseSDK(useSDK bool) ConfirmParams {
	p.UseSDK = useSDK
	return p
}

func (ConfirmSetupParams) confirmParams() {}
