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

// Package service provides login, logout and session lookups for the inventory client.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/session/constants"
	"github.com/plc-corse/concentrator-inventory/internal/session/model"
	"github.com/plc-corse/concentrator-inventory/internal/session/store"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const (
	loggerComponentName = "SessionService"
	loginPath           = "/auth/login"
)

// SessionServiceInterface defines the session operations.
type SessionServiceInterface interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*model.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	HandleUnauthorized(ctx context.Context)
}

// SessionService stores the bearer token and user returned by the backend. Logging out
// also drops every cached response so the next user never sees them.
type SessionService struct {
	client     api.ClientInterface
	store      store.SessionStoreInterface
	cacheStore *cache.Store
	logger     *log.Logger
}

var (
	_ SessionServiceInterface = (*SessionService)(nil)
	_ api.TokenProvider       = (*SessionService)(nil)
)

// NewSessionService creates a session service. cacheStore may be nil.
func NewSessionService(client api.ClientInterface, sessionStore store.SessionStoreInterface,
	cacheStore *cache.Store) *SessionService {
	return &SessionService{
		client:     client,
		store:      sessionStore,
		cacheStore: cacheStore,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// TokenProvider returns an api.TokenProvider reading straight from sessionStore, for
// building the API client before the session service exists.
func TokenProvider(sessionStore store.SessionStoreInterface) api.TokenProvider {
	return api.TokenProviderFunc(func(ctx context.Context) (string, error) {
		token, _, err := sessionStore.Get(ctx, store.KeyToken)
		return token, err
	})
}

// Login authenticates against the backend and persists the returned token and user.
func (s *SessionService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &constants.ErrorMissingCredentials
	}

	var resp model.LoginResponse
	err := s.client.Post(ctx, loginPath, model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var respErr *api.ResponseError
		if errors.As(err, &respErr) &&
			(respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusBadRequest) {
			return nil, constants.ErrorInvalidCredentials.WithDescription(respErr.Detail)
		}
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, constants.ErrorInvalidCredentials.WithDescription("The backend returned no access token")
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyToken, resp.AccessToken); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, store.KeyUser, string(userJSON)); err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", log.String("email", log.MaskString(email)),
		log.String("role", resp.User.Role))
	return &resp.User, nil
}

// Logout removes the persisted session and clears the response cache.
func (s *SessionService) Logout(ctx context.Context) error {
	if s.cacheStore != nil {
		s.cacheStore.Clear()
	}
	if err := s.store.Delete(ctx, store.KeyToken, store.KeyUser); err != nil {
		return err
	}
	s.logger.Info("User logged out")
	return nil
}

// Token returns the stored bearer token, or an empty string when logged out.
func (s *SessionService) Token(ctx context.Context) (string, error) {
	token, _, err := s.store.Get(ctx, store.KeyToken)
	return token, err
}

// User returns the stored user, or nil when logged out. An unreadable stored user is
// treated as absent.
func (s *SessionService) User(ctx context.Context) (*model.User, error) {
	raw, found, err := s.store.Get(ctx, store.KeyUser)
	if err != nil || !found {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("Discarding unreadable stored user", log.Error(err))
		return nil, nil
	}
	return &user, nil
}

// IsAuthenticated reports whether a token is stored.
func (s *SessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	return token != "", err
}

// HandleUnauthorized ends the session after the backend rejected the token. Register it
// with api.Client.SetUnauthorizedHandler.
func (s *SessionService) HandleUnauthorized(ctx context.Context) {
	s.logger.Warn("Backend rejected the access token, ending session")
	if err := s.Logout(ctx); err != nil {
		s.logger.Error("Failed to clear session", log.Error(err))
	}
}
