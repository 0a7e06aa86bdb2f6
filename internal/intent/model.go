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

// Package intent defines the payment and setup intent snapshots returned by the payments API,
// together with the next action the server requires before the intent can proceed.
package intent

import "strings"

// IntentType distinguishes payment intents from setup intents.
type IntentType string

const (
	// IntentTypePayment is a payment intent.
	IntentTypePayment IntentType = "payment_intent"
	// IntentTypeSetup is a setup intent.
	IntentTypeSetup IntentType = "setup_intent"
)

// Intent is an immutable snapshot of a payment or setup intent.
type Intent struct {
	Type         IntentType
	ID           string
	ClientSecret string
	Status       string
	LiveMode     bool
	NextAction   NextAction
	// Redirect is the redirect_to_url data sent with the next action, whatever its type.
	Redirect *RedirectToURLAction
}

// RequiresAction reports whether the intent waits on a customer action.
func (i *Intent) RequiresAction() bool {
	if i.Status == StatusRequiresAction || i.Status == StatusRequiresSourceAction {
		return true
	}
	if i.NextAction == nil {
		return false
	}
	_, none := i.NextAction.(NoAction)
	return !none
}

// RedirectData returns the redirect the intent carries, if any.
func (i *Intent) RedirectData() (RedirectToURLAction, bool) {
	if i.Redirect == nil {
		return RedirectToURLAction{}, false
	}
	return *i.Redirect, true
}

// IntentTypeFromClientSecret resolves the intent type from the client secret prefix.
func IntentTypeFromClientSecret(clientSecret string) (IntentType, bool) {
	switch {
	case strings.HasPrefix(clientSecret, PaymentIntentPrefix):
		return IntentTypePayment, true
	case strings.HasPrefix(clientSecret, SetupIntentPrefix):
		return IntentTypeSetup, true
	default:
		return "", false
	}
}

// NextAction is the action the server requires before the intent can proceed.
// The set of implementations is closed: NoAction, UseSDKAction, RedirectToURLAction and
// UnsupportedAction.
type NextAction interface {
	nextAction()
}

// NoAction signals that nothing is required.
type NoAction struct{}

// UseSDKAction asks the client to authenticate through the SDK challenge flow.
type UseSDKAction struct {
	Data SDKData
}

// RedirectToURLAction asks the client to authenticate in a browser.
type RedirectToURLAction struct {
	URL       string
	ReturnURL string
}

// UnsupportedAction is a next action type this client does not recognize.
type UnsupportedAction struct {
	Type string
}

func (NoAction) nextAction()            {}
func (UseSDKAction) nextAction()        {}
func (RedirectToURLAction) nextAction() {}
func (UnsupportedAction) nextAction()   {}

// SDKData is the payload of a UseSDKAction. Implementations: ThreeDS2Data, ThreeDS1Data and
// UnknownSDKData.
type SDKData interface {
	sdkData()
}

// DirectoryServerEncryption holds the key material of the card network directory server.
type DirectoryServerEncryption struct {
	DirectoryServerID string
	// Certificate is the PEM encoded directory server certificate.
	Certificate string
	KeyID       string
	// RootCertificateAuthorities are PEM encoded root certificates.
	RootCertificateAuthorities []string
}

// ThreeDS2Data carries the fingerprint material for a 3DS2 challenge.
type ThreeDS2Data struct {
	SourceID                  string
	DirectoryServerName       string
	ServerTransactionID       string
	DirectoryServerEncryption DirectoryServerEncryption
}

// ThreeDS1Data carries the 3DS1 redirect descriptor.
type ThreeDS1Data struct {
	URL string
}

// UnknownSDKData is an SDK payload type this client does not recognize.
type UnknownSDKData struct {
	Type string
}

func (ThreeDS2Data) sdkData()   {}
func (ThreeDS1Data) sdkData()   {}
func (UnknownSDKData) sdkData() {}
