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

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/paymentauth/internal/threeds2"
)

// ChallengeEngineInterfaceMock is a mock type for the ChallengeEngineInterface type.
type ChallengeEngineInterfaceMock struct {
	mock.Mock
}

// CreateSession provides a mock function with the given fields: ctx, config
func (_m *ChallengeEngineInterfaceMock) CreateSession(ctx context.Context,
	config threeds2.SessionConfig) (threeds2.ChallengeSessionInterface, error) {
	ret := _m.Called(ctx, config)

	var r0 threeds2.ChallengeSessionInterface
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(threeds2.ChallengeSessionInterface)
	}
	return r0, ret.Error(1)
}

// NewChallengeEngineInterfaceMock creates a new instance of ChallengeEngineInterfaceMock. It also
// registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewChallengeEngineInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChallengeEngineInterfaceMock {
	m := &ChallengeEngineInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
