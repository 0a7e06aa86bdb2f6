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

// Client secret prefixes used to route an intent to its retrieval endpoint.
const (
	PaymentIntentPrefix = "pi_"
	SetupIntentPrefix   = "seti_"
)

// Intent statuses.
const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusRequiresAction        = "requires_action"
	StatusRequiresSourceAction  = "requires_source_action"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// Wire names of next actions and SDK payloads.
const (
	nextActionTypeUseSDK        = "use_stripe_sdk"
	nextActionTypeRedirectToURL = "redirect_to_url"
	sdkTypeThreeDS2Fingerprint  = "stripe_3ds2_fingerprint"
	sdkTypeThreeDS1Redirect     = "three_d_secure_redirect"
)

// secretKeyPrefix marks a secret API key, which must never be used from a client.
const secretKeyPrefix = "sk_"
