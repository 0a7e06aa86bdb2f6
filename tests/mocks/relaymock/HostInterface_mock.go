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

package relaymock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/paymentauth/internal/relay"
)

// HostInterfaceMock is a mock type for the HostInterface type.
type HostInterfaceMock struct {
	mock.Mock
}

// ShowChallengeProgress provides a mock function with the given fields: ctx, directoryServerName
func (_m *HostInterfaceMock) ShowChallengeProgress(ctx context.Context, directoryServerName string) {
	_m.Called(ctx, directoryServerName)
}

// AuthenticateRedirect provides a mock function with the given fields: ctx, request
func (_m *HostInterfaceMock) AuthenticateRedirect(ctx context.Context,
	request relay.RedirectRequest) (relay.RedirectResult, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(relay.RedirectResult), ret.Error(1)
}

// NewHostInterfaceMock creates a new instance of HostInterfaceMock. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewHostInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *HostInterfaceMock {
	m := &HostInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
