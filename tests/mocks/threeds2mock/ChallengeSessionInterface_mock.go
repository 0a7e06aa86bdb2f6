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

package threeds2mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/paymentauth/internal/threeds2"
)

// ChallengeSessionInterfaceMock is a mock type for the ChallengeSessionInterface type.
type ChallengeSessionInterfaceMock struct {
	mock.Mock
}

// SessionParameters provides a mock function with no fields
func (_m *ChallengeSessionInterfaceMock) SessionParameters() threeds2.SessionParameters {
	ret := _m.Called()
	return ret.Get(0).(threeds2.SessionParameters)
}

// ExecuteChallenge provides a mock function with the given fields: ctx, params, receiver, timeout
func (_m *ChallengeSessionInterfaceMock) ExecuteChallenge(ctx context.Context,
	params threeds2.ChallengeParameters, receiver threeds2.StatusReceiver, timeout time.Duration) error {
	ret := _m.Called(ctx, params, receiver, timeout)
	return ret.Error(0)
}

// InitialChallengeUIType provides a mock function with no fields
func (_m *ChallengeSessionInterfaceMock) InitialChallengeUIType() string {
	ret := _m.Called()
	return ret.String(0)
}

// Close provides a mock function with no fields
func (_m *ChallengeSessionInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

// NewChallengeSessionInterfaceMock creates a new instance of ChallengeSessionInterfaceMock. It also
// registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewChallengeSessionInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChallengeSessionInterfaceMock {
	m := &ChallengeSessionInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
