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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/paymentauth/internal/intent"
)

const scenarioFilePath = "../../repository/resources/scenarios.yaml"

type ScenarioTestSuite struct {
	suite.Suite
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (suite *ScenarioTestSuite) writeScenarios(content string) string {
	path := filepath.Join(suite.T().TempDir(), "scenarios.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *ScenarioTestSuite) TestLoadBundledScenarios() {
	scenarios, err := LoadScenarios(scenarioFilePath)

	suite.Require().NoError(err)
	assert.Len(suite.T(), scenarios, 13)

	frictionless, err := FindScenario(scenarios, "frictionless")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "pi_sbx_frictionless_secret_b2", frictionless.ClientSecret())
	assert.IsType(suite.T(), intent.ConfirmPaymentParams{}, frictionless.ConfirmParams())

	setup, err := FindScenario(scenarios, "setup-challenge")
	suite.Require().NoError(err)
	assert.IsType(suite.T(), intent.ConfirmSetupParams{}, setup.ConfirmParams())
	assert.Equal(suite.T(), "seti_sbx_challenge_secret_h8", setup.ConfirmParams().GetClientSecret())

	declined, err := FindScenario(scenarios, "challenge-declined")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), intent.StatusRequiresPaymentMethod, declined.finalStatus())
	assert.Equal(suite.T(), intent.StatusSucceeded, frictionless.finalStatus())
}

func (suite *ScenarioTestSuite) TestFindScenarioNotFound() {
	_, err := FindScenario(nil, "missing")

	assert.ErrorIs(suite.T(), err, ErrScenarioNotFound)
}

func (suite *ScenarioTestSuite) TestLoadScenariosInvalid() {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "MissingName",
			content:  "scenarios:\n  - intent:\n      client_secret: pi_1_secret\n",
			expected: "scenario name is required",
		},
		{
			name:     "UnknownSecretPrefix",
			content:  "scenarios:\n  - name: bad\n    intent:\n      client_secret: src_1_secret\n",
			expected: "intent client_secret must start with",
		},
		{
			name: "UnknownChallengeOutcome",
			content: "scenarios:\n  - name: bad\n    intent:\n      client_secret: pi_1_secret\n" +
				"    challenge:\n      outcome: abandoned\n",
			expected: "unknown challenge outcome: abandoned",
		},
		{
			name: "UnknownRedirectOutcome",
			content: "scenarios:\n  - name: bad\n    intent:\n      client_secret: pi_1_secret\n" +
				"    redirect:\n      outcome: maybe\n",
			expected: "unknown outcome: maybe",
		},
		{
			name: "Duplicate",
			content: "scenarios:\n  - name: twice\n    intent:\n      client_secret: pi_1_secret\n" +
				"  - name: twice\n    intent:\n      client_secret: pi_2_secret\n",
			expected: "duplicate scenario: twice",
		},
		{
			name:     "InvalidYAML",
			content:  "scenarios: [",
			expected: "failed to parse scenario file",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := LoadScenarios(suite.writeScenarios(tc.content))

			suite.Require().Error(err)
			assert.Contains(suite.T(), err.Error(), tc.expected)
		})
	}
}

func (suite *ScenarioTestSuite) TestLoadScenariosMissingFile() {
	_, err := LoadScenarios(filepath.Join(suite.T().TempDir(), "missing.yaml"))

	suite.Require().Error(err)
	assert.Contains(suite.T(), err.Error(), "failed to read scenario file")
}
