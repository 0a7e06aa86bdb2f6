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
	"encoding/json"
	"fmt"
	"strings"
)

const (
	paramSource            = "source"
	paramApp               = "app"
	paramFallbackReturnURL = "fallback_return_url"

	sdkInterfaceBoth = "03"
)

var sdkUITypes = []string{"01", "02", "03", "04", "05"}

// AuthStartRequest is sent once per attempt to start server side 3DS2 authentication.
type AuthStartRequest struct {
	SourceID          string
	SessionParameters SessionParameters
	// MaxTimeout is the challenge protocol timeout in minutes.
	MaxTimeout int
	// ReturnURL is optional.
	ReturnURL string
}

type deviceRenderOptions struct {
	SDKInterface string   `json:"sdkInterface"`
	SDKUIType    []string `json:"sdkUiType"`
}

type appParams struct {
	SDKAppID            string              `json:"sdkAppID"`
	SDKTransID          string              `json:"sdkTransID"`
	SDKEncData          string              `json:"sdkEncData"`
	SDKEphemPubKey      json.RawMessage     `json:"sdkEphemPubKey"`
	SDKMaxTimeout       string              `json:"sdkMaxTimeout"`
	SDKReferenceNumber  string              `json:"sdkReferenceNumber"`
	MessageVersion      string              `json:"messageVersion"`
	DeviceRenderOptions deviceRenderOptions `json:"deviceRenderOptions"`
}

// ToParams builds the form parameters of the start authentication call.
func (r AuthStartRequest) ToParams() (map[string]string, error) {
	ephemeralKey := json.RawMessage(r.SessionParameters.SDKEphemeralPublicKey)
	if !json.Valid(ephemeralKey) {
		// Engines that do not hand out a JWK get their key sent as a plain string.
		quoted, err := json.Marshal(r.SessionParameters.SDKEphemeralPublicKey)
		if err != nil {
			return nil, err
		}
		ephemeralKey = quoted
	}

	app, err := json.Marshal(appParams{
		SDKAppID:           r.SessionParameters.SDKAppID,
		SDKTransID:         r.SessionParameters.SDKTransactionID,
		SDKEncData:         r.SessionParameters.DeviceData,
		SDKEphemPubKey:     ephemeralKey,
		SDKMaxTimeout:      fmt.Sprintf("%02d", r.MaxTimeout),
		SDKReferenceNumber: r.SessionParameters.SDKReferenceNumber,
		MessageVersion:     r.SessionParameters.MessageVersion,
		DeviceRenderOptions: deviceRenderOptions{
			SDKInterface: sdkInterfaceBoth,
			SDKUIType:    sdkUITypes,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode 3DS2 app parameters: %w", err)
	}

	params := map[string]string{
		paramSource: r.SourceID,
		paramApp:    string(app),
	}
	if r.ReturnURL != "" {
		params[paramFallbackReturnURL] = r.ReturnURL
	}
	return params, nil
}

// ARes is the authentication response of the access control server.
type ARes struct {
	ThreeDSServerTransID string `json:"threeDSServerTransID"`
	ACSChallengeMandated string `json:"acsChallengeMandated"`
	ACSSignedContent     string `json:"acsSignedContent"`
	ACSTransID           string `json:"acsTransID"`
	ACSURL               string `json:"acsURL"`
	AuthenticationType   string `json:"authenticationType"`
	MessageType          string `json:"messageType"`
	MessageVersion       string `json:"messageVersion"`
	SDKTransID           string `json:"sdkTransID"`
	TransStatus          string `json:"transStatus"`
}

// ShouldChallenge reports whether the cardholder has to complete a challenge.
func (a *ARes) ShouldChallenge() bool {
	return a.TransStatus == TransStatusChallenge
}

// AuthError is the error object of a start authentication response.
type AuthError struct {
	ThreeDSServerTransID string `json:"threeDSServerTransID"`
	ACSTransID           string `json:"acsTransID"`
	DSTransID            string `json:"dsTransID"`
	ErrorCode            string `json:"errorCode"`
	ErrorComponent       string `json:"errorComponent"`
	ErrorDescription     string `json:"errorDescription"`
	ErrorDetail          string `json:"errorDetail"`
	ErrorMessageType     string `json:"errorMessageType"`
	MessageType          string `json:"messageType"`
	MessageVersion       string `json:"messageVersion"`
	SDKTransID           string `json:"sdkTransID"`
}

// AuthStartResult is the raw server response of the start authentication call.
type AuthStartResult struct {
	ID                  string     `json:"id"`
	Source              string     `json:"source"`
	State               string     `json:"state"`
	LiveMode            bool       `json:"livemode"`
	ARes                *ARes      `json:"ares"`
	FallbackRedirectURL string     `json:"fallback_redirect_url"`
	Error               *AuthError `json:"error"`
}

// DecodeAuthStartResult decodes a start authentication response body.
func DecodeAuthStartResult(data []byte) (*AuthStartResult, error) {
	var result AuthStartResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode 3DS2 authentication response: %w", err)
	}
	return &result, nil
}

// AuthStartResponse is the classified start authentication response. Implementations:
// ChallengeRequired, Frictionless, FallbackRedirect and Malformed.
type AuthStartResponse interface {
	authStartResponse()
}

// ChallengeRequired means the issuer requires a challenge.
type ChallengeRequired struct {
	Params ChallengeParameters
}

// Frictionless means the issuer authenticated the cardholder without a challenge.
type Frictionless struct {
	ARes ARes
}

// FallbackRedirect means authentication has to continue in a browser.
type FallbackRedirect struct {
	URL string
}

// Malformed means none of the expected response fields were present.
type Malformed struct {
	// Error carries the server supplied error, if any.
	Error *AuthError
}

func (ChallengeRequired) authStartResponse() {}
func (Frictionless) authStartResponse()      {}
func (FallbackRedirect) authStartResponse()  {}
func (Malformed) authStartResponse()         {}

// Message describes the malformed response for diagnostics.
func (m Malformed) Message() string {
	var sb strings.Builder
	sb.WriteString("Error encountered during 3DS2 authentication request. ")
	if m.Error == nil {
		sb.WriteString("Invalid 3DS2 authentication response")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Code: %s, Detail: %s, Description: %s, Component: %s",
		m.Error.ErrorCode, m.Error.ErrorDetail, m.Error.ErrorDescription, m.Error.ErrorComponent)
	return sb.String()
}

// Classify maps the raw response onto exactly one AuthStartResponse variant.
func (r *AuthStartResult) Classify() AuthStartResponse {
	switch {
	case r == nil:
		return Malformed{}
	case r.ARes != nil:
		if r.ARes.ShouldChallenge() {
			return ChallengeRequired{Params: ChallengeParameters{
				ACSSignedContent:           r.ARes.ACSSignedContent,
				ThreeDSServerTransactionID: r.ARes.ThreeDSServerTransID,
				ACSTransactionID:           r.ARes.ACSTransID,
			}}
		}
		return Frictionless{ARes: *r.ARes}
	case r.FallbackRedirectURL != "":
		return FallbackRedirect{URL: r.FallbackRedirectURL}
	default:
		return Malformed{Error: r.Error}
	}
}
