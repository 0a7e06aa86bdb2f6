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

package telemetrymock

import (
	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/paymentauth/internal/telemetry"
)

// EmitterInterfaceMock is a mock type for the EmitterInterface type.
type EmitterInterfaceMock struct {
	mock.Mock
}

// Emit provides a mock function with the given fields: event
func (_m *EmitterInterfaceMock) Emit(event telemetry.Event) {
	_m.Called(event)
}

// NewEmitterInterfaceMock creates a new instance of EmitterInterfaceMock. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEmitterInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmitterInterfaceMock {
	m := &EmitterInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
