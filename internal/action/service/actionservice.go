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

// Package service records lifecycle actions and reads the action history.
package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/action/constants"
	"github.com/plc-corse/concentrator-inventory/internal/action/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	sysconst "github.com/plc-corse/concentrator-inventory/internal/system/constants"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "ActionService"

var pathMine = cache.ResourceKey(cache.ResourceActions, "me")

// resourcesTouchedBy lists, per action type, the resources an action changes besides
// the inventory itself and the action history.
var resourcesTouchedBy = map[model.ActionType][]cache.Resource{
	model.ActionLivraisonMagasin: {cache.ResourceMagasin},
	model.ActionReceptionMagasin: {cache.ResourceMagasin},
	model.ActionTransfertBO:      {cache.ResourceMagasin, cache.ResourceBO},
	model.ActionPose:             {cache.ResourceBO},
	model.ActionDepose:           {cache.ResourceBO},
	model.ActionTestLabo:         {cache.ResourceLabo},
	model.ActionMiseAuRebut:      {cache.ResourceLabo},
}

// ActionServiceInterface defines the lifecycle action operations.
type ActionServiceInterface interface {
	Create(ctx context.Context, action model.ActionCreate) (*model.Action, error)
	List(ctx context.Context, params model.ListParams) (*model.ListResponse, error)
	Mine(ctx context.Context, page, limit int) (*model.ListResponse, error)
}

// ActionService records actions and reads the action history through the response cache.
type ActionService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ ActionServiceInterface = (*ActionService)(nil)

// NewActionService creates an action service.
func NewActionService(client api.ClientInterface, store *cache.Store, tiers cache.TTLTiers) *ActionService {
	return &ActionService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Create records an action and invalidates every cached view it changes.
func (s *ActionService) Create(ctx context.Context, action model.ActionCreate) (*model.Action, error) {
	action.ConcentrateurID = strings.TrimSpace(action.ConcentrateurID)
	if action.ConcentrateurID == "" {
		return nil, &constants.ErrorMissingConcentrateurID
	}
	if !action.TypeAction.Valid() {
		return nil, &constants.ErrorInvalidActionType
	}

	var created model.Action
	if err := s.client.Post(ctx, string(cache.ResourceActions), action, &created); err != nil {
		return nil, err
	}

	resources := append([]cache.Resource{cache.ResourceConcentrateurs, cache.ResourceActions},
		resourcesTouchedBy[action.TypeAction]...)
	removed := s.store.InvalidateMutation(resources...)
	s.logger.Info("Recorded action", log.String("type", string(action.TypeAction)),
		log.String("concentrateur", action.ConcentrateurID), log.Int("invalidated", removed))
	return &created, nil
}

// List returns one page of the action history.
func (s *ActionService) List(ctx context.Context, params model.ListParams) (*model.ListResponse, error) {
	if params.Page < 0 || params.Limit < 0 {
		return nil, &constants.ErrorInvalidPagination
	}
	if params.TypeAction != "" && !params.TypeAction.Valid() {
		return nil, &constants.ErrorInvalidActionType
	}

	keyValues := map[string]any{}
	values := url.Values{}
	if params.Page != 0 {
		keyValues["page"] = params.Page
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit != 0 {
		keyValues["limit"] = params.Limit
		values.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.ConcentrateurID != "" {
		keyValues["concentrateur_id"] = params.ConcentrateurID
		values.Set("concentrateur_id", params.ConcentrateurID)
	}
	if params.UserID != 0 {
		keyValues["user_id"] = params.UserID
		values.Set("user_id", strconv.Itoa(params.UserID))
	}
	if params.TypeAction != "" {
		keyValues["type_action"] = string(params.TypeAction)
		values.Set("type_action", string(params.TypeAction))
	}

	key, err := cache.GenerateKey(string(cache.ResourceActions), keyValues)
	if err != nil {
		return nil, err
	}
	return s.fetchPage(ctx, key, string(cache.ResourceActions), values)
}

// Mine returns one page of the current user's actions. Zero page and limit select the
// first page and the default page size.
func (s *ActionService) Mine(ctx context.Context, page, limit int) (*model.ListResponse, error) {
	if page < 0 || limit < 0 {
		return nil, &constants.ErrorInvalidPagination
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = sysconst.DefaultPageSize
	}

	key, err := cache.GenerateKey(pathMine, map[string]any{"page": page, "limit": limit})
	if err != nil {
		return nil, err
	}
	values := url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}}
	return s.fetchPage(ctx, key, pathMine, values)
}

func (s *ActionService) fetchPage(ctx context.Context, key, path string,
	values url.Values) (*model.ListResponse, error) {
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Short, func(ctx context.Context) (*model.ListResponse, error) {
		var resp model.ListResponse
		if err := s.client.Get(ctx, path, values, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
}
