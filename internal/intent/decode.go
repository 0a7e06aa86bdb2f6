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
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedObject is returned when the payload is neither a payment nor a setup intent.
var ErrUnrecognizedObject = errors.New("unrecognized intent object")

type intentJSON struct {
	ID           string          `json:"id"`
	Object       string          `json:"object"`
	ClientSecret string          `json:"client_secret"`
	Status       string          `json:"status"`
	LiveMode     bool            `json:"livemode"`
	NextAction   *nextActionJSON `json:"next_action"`
}

type nextActionJSON struct {
	Type          string             `json:"type"`
	RedirectToURL *redirectToURLJSON `json:"redirect_to_url"`
	UseSDK        *sdkDataJSON       `json:"use_stripe_sdk"`
}

type redirectToURLJSON struct {
	URL       string `json:"url"`
	ReturnURL string `json:"return_url"`
}

type sdkDataJSON struct {
	Type                      string                         `json:"type"`
	Source                    string                         `json:"three_d_secure_2_source"`
	DirectoryServerName       string                         `json:"directory_server_name"`
	ServerTransactionID       string                         `json:"server_transaction_id"`
	DirectoryServerEncryption *directoryServerEncryptionJSON `json:"directory_server_encryption"`
	StripeJS                  string                         `json:"stripe_js"`
}

type directoryServerEncryptionJSON struct {
	DirectoryServerID          string   `json:"directory_server_id"`
	Certificate                string   `json:"certificate"`
	KeyID                      string   `json:"key_id"`
	RootCertificateAuthorities []string `json:"root_certificate_authorities"`
}

// DecodeIntent decodes a payment or setup intent from its API JSON representation.
// Next action and SDK payload types that are not known decode to UnsupportedAction and
// UnknownSDKData rather than failing.
func DecodeIntent(data []byte) (*Intent, error) {
	var raw intentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode intent: %w", err)
	}

	intentType := IntentType(raw.Object)
	if intentType != IntentTypePayment && intentType != IntentTypeSetup {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedObject, raw.Object)
	}

	return &Intent{
		Type:         intentType,
		ID:           raw.ID,
		ClientSecret: raw.ClientSecret,
		Status:       raw.Status,
		LiveMode:     raw.LiveMode,
		NextAction:   raw.NextAction.toNextAction(),
		Redirect:     raw.NextAction.redirect(),
	}, nil
}

func (n *nextActionJSON) redirect() *RedirectToURLAction {
	if n == nil || n.RedirectToURL == nil {
		return nil
	}
	return &RedirectToURLAction{URL: n.RedirectToURL.URL, ReturnURL: n.RedirectToURL.ReturnURL}
}

func (n *nextActionJSON) toNextAction() NextAction {
	if n == nil {
		return NoAction{}
	}

	switch n.Type {
	case nextActionTypeUseSDK:
		if n.UseSDK == nil {
			return UseSDKAction{Data: UnknownSDKData{}}
		}
		return UseSDKAction{Data: n.UseSDK.toSDKData()}
	case nextActionTypeRedirectToURL:
		if n.RedirectToURL == nil {
			return UnsupportedAction{Type: n.Type}
		}
		return RedirectToURLAction{URL: n.RedirectToURL.URL, ReturnURL: n.RedirectToURL.ReturnURL}
	default:
		return UnsupportedAction{Type: n.Type}
	}
}

func (s *sdkDataJSON) toSDKData() SDKData {
	switch s.Type {
	case sdkTypeThreeDS2Fingerprint:
		data := ThreeDS2Data{
			SourceID:            s.Source,
			DirectoryServerName: s.DirectoryServerName,
			ServerTransactionID: s.ServerTransactionID,
		}
		if enc := s.DirectoryServerEncryption; enc != nil {
			data.DirectoryServerEncryption = DirectoryServerEncryption{
				DirectoryServerID:          enc.DirectoryServerID,
				Certificate:                enc.Certificate,
				KeyID:                      enc.KeyID,
				RootCertificateAuthorities: enc.RootCertificateAuthorities,
			}
		}
		return data
	case sdkTypeThreeDS1Redirect:
		return ThreeDS1Data{URL: s.StripeJS}
	default:
		return UnknownSDKData{Type: s.Type}
	}
}
