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

// Environment bundles the collaborators for one scenario.
type Environment struct {
	Scenario   Scenario
	Repository *Repository
	Engine     *ChallengeEngine
	Host       *Host
}

// NewEnvironment wires a repository, challenge engine and host for the scenario.
func NewEnvironment(scenario Scenario) (*Environment, error) {
	certificate, err := NewDirectoryServerCertificate("Sandbox Directory Server")
	if err != nil {
		return nil, err
	}
	repo := NewRepository(scenario, certificate)
	return &Environment{
		Scenario:   scenario,
		Repository: repo,
		Engine:     NewChallengeEngine(scenario.Challenge),
		Host:       NewHost(scenario.Redirect, repo),
	}, nil
}
