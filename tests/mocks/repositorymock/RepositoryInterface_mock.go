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

package repositorymock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/threeds2"
)

// RepositoryInterfaceMock is a mock type for the RepositoryInterface type.
type RepositoryInterfaceMock struct {
	mock.Mock
}

// Confirm provides a mock function with the given fields: ctx, params, opts
func (_m *RepositoryInterfaceMock) Confirm(ctx context.Context, params intent.ConfirmParams,
	opts intent.RequestOptions) (*intent.Intent, error) {
	ret := _m.Called(ctx, params, opts)

	var r0 *intent.Intent
	if rf, ok := ret.Get(0).(func(context.Context, intent.ConfirmParams, intent.RequestOptions) *intent.Intent); ok {
		r0 = rf(ctx, params, opts)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*intent.Intent)
	}
	return r0, ret.Error(1)
}

// Retrieve provides a mock function with the given fields: ctx, intentType, clientSecret, opts
func (_m *RepositoryInterfaceMock) Retrieve(ctx context.Context, intentType intent.IntentType,
	clientSecret string, opts intent.RequestOptions) (*intent.Intent, error) {
	ret := _m.Called(ctx, intentType, clientSecret, opts)

	var r0 *intent.Intent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*intent.Intent)
	}
	return r0, ret.Error(1)
}

// Start3DS2Auth provides a mock function with the given fields: ctx, request, intentID, opts
func (_m *RepositoryInterfaceMock) Start3DS2Auth(ctx context.Context, request threeds2.AuthStartRequest,
	intentID string, opts intent.RequestOptions) (*threeds2.AuthStartResult, error) {
	ret := _m.Called(ctx, request, intentID, opts)

	var r0 *threeds2.AuthStartResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*threeds2.AuthStartResult)
	}
	return r0, ret.Error(1)
}

// Complete3DS2Auth provides a mock function with the given fields: ctx, sourceID, opts
func (_m *RepositoryInterfaceMock) Complete3DS2Auth(ctx context.Context, sourceID string,
	opts intent.RequestOptions) (bool, error) {
	ret := _m.Called(ctx, sourceID, opts)
	return ret.Bool(0), ret.Error(1)
}

// NewRepositoryInterfaceMock creates a new instance of RepositoryInterfaceMock. It also registers
// a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRepositoryInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *RepositoryInterfaceMock {
	m := &RepositoryInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
