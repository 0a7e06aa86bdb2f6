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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ModelTestSuite struct {
	suite.Suite
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (suite *ModelTestSuite) TestIntentTypeFromClientSecret() {
	testCases := []struct {
		secret       string
		expectedType IntentType
		expectedOK   bool
	}{
		{"pi_123_secret_456", IntentTypePayment, true},
		{"seti_123_secret_456", IntentTypeSetup, true},
		{"src_123_secret_456", "", false},
		{"", "", false},
		{"PI_123", "", false},
	}

	for _, tc := range testCases {
		intentType, ok := IntentTypeFromClientSecret(tc.secret)
		assert.Equal(suite.T(), tc.expectedType, intentType, tc.secret)
		assert.Equal(suite.T(), tc.expectedOK, ok, tc.secret)
	}
}

func (suite *ModelTestSuite) TestRequiresAction() {
	testCases := []struct {
		name     string
		intent   Intent
		expected bool
	}{
		{"StatusRequiresAction", Intent{Status: StatusRequiresAction}, true},
		{"StatusRequiresSourceAction", Intent{Status: StatusRequiresSourceAction}, true},
		{"NextActionPresent", Intent{Status: StatusProcessing,
			NextAction: RedirectToURLAction{URL: "https://example.com"}}, true},
		{"NoAction", Intent{Status: StatusSucceeded, NextAction: NoAction{}}, false},
		{"NilNextAction", Intent{Status: StatusSucceeded}, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, tc.intent.RequiresAction())
		})
	}
}

func (suite *ModelTestSuite) TestRedirectDataAbsent() {
	i := Intent{NextAction: UseSDKAction{Data: ThreeDS1Data{URL: "https://example.com"}}}

	_, ok := i.RedirectData()
	assert.False(suite.T(), ok)
}

func (suite *ModelTestSuite) TestRedirectDataIndependentOfNextAction() {
	i := Intent{
		NextAction: UseSDKAction{Data: ThreeDS2Data{SourceID: "src_1"}},
		Redirect:   &RedirectToURLAction{ReturnURL: "app://return"},
	}

	redirect, ok := i.RedirectData()
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "app://return", redirect.ReturnURL)
}
