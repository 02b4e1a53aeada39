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

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite
}

func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (suite *HTTPClientTestSuite) TestTimeouts() {
	testCases := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{"Custom", 5 * time.Second, 5 * time.Second},
		{"Zero", 0, defaultTimeout},
		{"Negative", -time.Second, defaultTimeout},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			client := NewHTTPClientWithTimeout(tc.timeout).(*HTTPClient)
			assert.Equal(t, tc.expected, client.client.Timeout)
		})
	}

	assert.Equal(suite.T(), defaultTimeout, NewHTTPClient().(*HTTPClient).client.Timeout)
}

func (suite *HTTPClientTestSuite) TestDo() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r.Method + " " + r.URL.Path))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/concentrateurs", nil)
	suite.Require().NoError(err)

	resp, err := NewHTTPClient().Do(req)
	suite.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	suite.Equal("GET /concentrateurs", string(body))
}

func (suite *HTTPClientTestSuite) TestTLSClientTrustsServer() {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	suite.Require().NoError(err)

	_, err = NewHTTPClientWithTLS(time.Second, nil).Do(req)
	suite.Error(err)

	tlsConfig := server.Client().Transport.(*http.Transport).TLSClientConfig
	resp, err := NewHTTPClientWithTLS(time.Second, tlsConfig).Do(req)
	suite.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	suite.Equal(http.StatusNoContent, resp.StatusCode)
}
