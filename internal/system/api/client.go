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

// Package api provides the REST client for the concentrator inventory backend.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plc-corse/concentrator-inventory/internal/system/config"
	"github.com/plc-corse/concentrator-inventory/internal/system/constants"
	syshttp "github.com/plc-corse/concentrator-inventory/internal/system/http"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const (
	loggerComponentName = "APIClient"
	defaultBaseURL      = "http://localhost:8000/api/v1"
)

// ClientInterface is the subset of the REST client the domain services depend on.
type ClientInterface interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// TokenProvider supplies the bearer token attached to outgoing requests. An empty
// token sends the request unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

// Token calls f.
func (f TokenProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Client sends JSON requests to the backend.
type Client struct {
	baseURL    string
	httpClient syshttp.HTTPClientInterface
	tokens     TokenProvider
	logger     *log.Logger

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)
}

var _ ClientInterface = (*Client)(nil)

// NewClient creates a client for baseURL. A nil tokens provider sends every request
// unauthenticated.
func NewClient(baseURL string, httpClient syshttp.HTTPClientInterface, tokens TokenProvider) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = syshttp.NewHTTPClient()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// NewClientFromConfig creates a client from the api section of the configuration.
// tlsConfig may be nil.
func NewClientFromConfig(apiConfig config.APIConfig, tlsConfig *tls.Config, tokens TokenProvider) *Client {
	httpClient := syshttp.NewHTTPClientWithTLS(time.Duration(apiConfig.Timeout)*time.Second, tlsConfig)
	return NewClient(apiConfig.BaseURL, httpClient, tokens)
}

// SetUnauthorizedHandler registers fn to run after any 401 response.
func (c *Client) SetUnauthorizedHandler(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get sends a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the JSON response into out. A nil body sends
// an empty request body; a nil out discards the response.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	requestID := uuid.NewString()
	logger := c.logger.With(log.String(log.LoggerKeyRequestID, requestID))

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read access token: %w", err)
		}
		if token != "" {
			req.Header.Set(constants.AuthorizationHeaderName, constants.TokenTypeBearer+" "+token)
		}
	}

	logger.Debug("Sending request", log.String("method", method), log.String("path", path))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr := &ResponseError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Detail:     parseDetail(resp.StatusCode, respBody),
		}
		logger.Debug("Request failed", log.String("path", path), log.Int("status", resp.StatusCode),
			log.String("detail", respErr.Detail))
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized(ctx)
		}
		return respErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) handleUnauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	if fn != nil {
		fn(ctx)
	}
}
