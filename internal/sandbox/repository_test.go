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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

var sandboxOpts = intent.RequestOptions{PublishableKey: "pk_test_sandbox"}

type RepositoryTestSuite struct {
	suite.Suite
	scenarios   []Scenario
	certificate string
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	scenarios, err := LoadScenarios(scenarioFilePath)
	suite.Require().NoError(err)
	suite.scenarios = scenarios

	certificate, err := NewDirectoryServerCertificate("Test Directory Server")
	suite.Require().NoError(err)
	suite.certificate = certificate
}

func (suite *RepositoryTestSuite) repository(name string) (*Repository, Scenario) {
	scenario, err := FindScenario(suite.scenarios, name)
	suite.Require().NoError(err)
	return NewRepository(scenario, suite.certificate), scenario
}

func (suite *RepositoryTestSuite) TestConfirmRendersCertificate() {
	repo, scenario := suite.repository("challenge-authenticated")

	confirmed, err := repo.Confirm(context.Background(), scenario.ConfirmParams(), sandboxOpts)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "pi_sbx_challenge", confirmed.ID)
	assert.True(suite.T(), confirmed.RequiresAction())
	action, ok := confirmed.NextAction.(intent.UseSDKAction)
	suite.Require().True(ok)
	data, ok := action.Data.(intent.ThreeDS2Data)
	suite.Require().True(ok)
	assert.Equal(suite.T(), suite.certificate, data.DirectoryServerEncryption.Certificate)
	assert.Equal(suite.T(), []string{suite.certificate}, data.DirectoryServerEncryption.RootCertificateAuthorities)

	fingerprint, err := threeds2.NewFingerprint(data)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "A000000003", fingerprint.DirectoryServer.ID)
}

func (suite *RepositoryTestSuite) TestConfirmRejectsRequests() {
	repo, scenario := suite.repository("frictionless")

	_, err := repo.Confirm(context.Background(), intent.ConfirmPaymentParams{ClientSecret: "pi_other_secret"},
		sandboxOpts)
	assert.ErrorIs(suite.T(), err, ErrNoSuchIntent)

	_, err = repo.Confirm(context.Background(), scenario.ConfirmParams(),
		intent.RequestOptions{PublishableKey: "sk_test_secret"})
	assert.ErrorIs(suite.T(), err, intent.ErrSecretKeyUsed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.Confirm(ctx, scenario.ConfirmParams(), sandboxOpts)
	assert.ErrorIs(suite.T(), err, context.Canceled)
}

func (suite *RepositoryTestSuite) TestRetrieveReflectsCompletion() {
	repo, scenario := suite.repository("challenge-declined")

	before, err := repo.Retrieve(context.Background(), intent.IntentTypePayment, scenario.ClientSecret(), sandboxOpts)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), intent.StatusRequiresAction, before.Status)

	completed, err := repo.Complete3DS2Auth(context.Background(), "src_sbx_challenge", sandboxOpts)
	suite.Require().NoError(err)
	assert.True(suite.T(), completed)
	assert.Equal(suite.T(), 1, repo.Completions())

	after, err := repo.Retrieve(context.Background(), intent.IntentTypePayment, scenario.ClientSecret(), sandboxOpts)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), intent.StatusRequiresPaymentMethod, after.Status)
	assert.Equal(suite.T(), intent.NoAction{}, after.NextAction)

	_, err = repo.Retrieve(context.Background(), intent.IntentTypeSetup, scenario.ClientSecret(), sandboxOpts)
	assert.ErrorIs(suite.T(), err, ErrNoSuchIntent)
}

func (suite *RepositoryTestSuite) TestStart3DS2Auth() {
	testCases := []struct {
		scenario string
		check    func(response threeds2.AuthStartResponse)
	}{
		{"challenge-authenticated", func(response threeds2.AuthStartResponse) {
			challenge, ok := response.(threeds2.ChallengeRequired)
			suite.Require().True(ok)
			assert.Equal(suite.T(), "5e2a9f31-7d4c-4f6b-8a0e-2b9c1d3f4e55", challenge.Params.ACSTransactionID)
		}},
		{"frictionless", func(response threeds2.AuthStartResponse) {
			assert.IsType(suite.T(), threeds2.Frictionless{}, response)
		}},
		{"fallback-redirect", func(response threeds2.AuthStartResponse) {
			assert.Equal(suite.T(), threeds2.FallbackRedirect{
				URL: "https://hooks.sandbox.example/3d_secure_2_eap/fallback",
			}, response)
		}},
		{"malformed-response", func(response threeds2.AuthStartResponse) {
			malformed, ok := response.(threeds2.Malformed)
			suite.Require().True(ok)
			assert.Contains(suite.T(), malformed.Message(), "Code: 302")
		}},
	}

	for _, tc := range testCases {
		suite.Run(tc.scenario, func() {
			repo, scenario := suite.repository(tc.scenario)
			id, _ := scenario.Intent["id"].(string)
			request := threeds2.AuthStartRequest{SourceID: "src_sbx", MaxTimeout: 5}

			result, err := repo.Start3DS2Auth(context.Background(), request, id, sandboxOpts)

			suite.Require().NoError(err)
			tc.check(result.Classify())
		})
	}
}

func (suite *RepositoryTestSuite) TestFrictionlessSettlesIntent() {
	repo, scenario := suite.repository("frictionless")

	_, err := repo.Start3DS2Auth(context.Background(), threeds2.AuthStartRequest{SourceID: "src_sbx_frictionless"},
		"pi_sbx_frictionless", sandboxOpts)
	suite.Require().NoError(err)

	current, err := repo.Retrieve(context.Background(), intent.IntentTypePayment, scenario.ClientSecret(), sandboxOpts)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), intent.StatusSucceeded, current.Status)
}

func (suite *RepositoryTestSuite) TestInjectedFailures() {
	repo, _ := suite.repository("challenge-completion-failure")

	completed, err := repo.Complete3DS2Auth(context.Background(), "src_sbx_challenge", sandboxOpts)

	assert.False(suite.T(), completed)
	assert.EqualError(suite.T(), err, "complete 3ds2 authentication: 500 internal server error")
	assert.Equal(suite.T(), 0, repo.Completions())
}

func (suite *RepositoryTestSuite) TestStart3DS2AuthUnknownIntent() {
	repo, _ := suite.repository("frictionless")

	_, err := repo.Start3DS2Auth(context.Background(), threeds2.AuthStartRequest{SourceID: "src"}, "pi_other",
		sandboxOpts)

	assert.ErrorIs(suite.T(), err, ErrNoSuchIntent)
}
