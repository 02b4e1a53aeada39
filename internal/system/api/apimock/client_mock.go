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

// Package apimock provides a testify mock of the inventory API client.
package apimock

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/plc-corse/concentrator-inventory/internal/system/api"
)

// ClientMock is a mock implementation of api.ClientInterface. Register replies with
// On("Get", ...) and Run to fill the out argument.
type ClientMock struct {
	mock.Mock
}

var _ api.ClientInterface = (*ClientMock)(nil)

// Get mocks the Get method of the ClientInterface.
func (m *ClientMock) Get(ctx context.Context, path string, query url.Values, out any) error {
	args := m.Called(ctx, path, query, out)
	return args.Error(0)
}

// Post mocks the Post method of the ClientInterface.
func (m *ClientMock) Post(ctx context.Context, path string, body any, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}
