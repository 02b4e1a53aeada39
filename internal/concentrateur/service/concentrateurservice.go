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

// Package service provides cached access to the concentrateur inventory.
package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/concentrateur/constants"
	"github.com/plc-corse/concentrator-inventory/internal/concentrateur/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache/query"
	sysconst "github.com/plc-corse/concentrator-inventory/internal/system/constants"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "ConcentrateurService"

// ConcentrateurServiceInterface defines the concentrateur operations.
type ConcentrateurServiceInterface interface {
	List(ctx context.Context, params model.ListParams) (*model.ListResponse, error)
	Get(ctx context.Context, numeroSerie string) (*model.DetailResponse, error)
	Verify(ctx context.Context, numeroSerie string) (*model.VerifyResponse, error)
	InvalidateCache() int
}

// ConcentrateurService lists and reads concentrateurs through the response cache.
// Listings are kept for the medium tier and details for the long tier; verification
// always reaches the backend.
type ConcentrateurService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ ConcentrateurServiceInterface = (*ConcentrateurService)(nil)

// NewConcentrateurService creates a concentrateur service.
func NewConcentrateurService(client api.ClientInterface, store *cache.Store,
	tiers cache.TTLTiers) *ConcentrateurService {
	return &ConcentrateurService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// List returns one page of the inventory.
func (s *ConcentrateurService) List(ctx context.Context, params model.ListParams) (*model.ListResponse, error) {
	key, err := s.ListKey(params)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Medium, s.ListFetcher(params))
}

// ListQuery binds the listing for params to a cached query. Rebind it with ListKey
// and ListFetcher when the filters change.
func (s *ConcentrateurService) ListQuery(params model.ListParams,
	opts query.Options[*model.ListResponse]) (*query.Query[*model.ListResponse], error) {
	key, err := s.ListKey(params)
	if err != nil {
		return nil, err
	}
	opts.Key = key
	opts.Fetcher = s.ListFetcher(params)
	opts.TTL = s.tiers.Medium
	return query.New(s.store, opts)
}

// ListKey returns the cache key of the listing for params.
func (s *ConcentrateurService) ListKey(params model.ListParams) (string, error) {
	if err := validateListParams(params); err != nil {
		return "", err
	}
	return cache.GenerateKey(string(cache.ResourceConcentrateurs), keyParams(params))
}

// ListFetcher returns the uncached fetch of the listing for params.
func (s *ConcentrateurService) ListFetcher(params model.ListParams) query.Fetcher[*model.ListResponse] {
	return func(ctx context.Context) (*model.ListResponse, error) {
		var resp model.ListResponse
		if err := s.client.Get(ctx, string(cache.ResourceConcentrateurs), listQuery(params), &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	}
}

// Get returns a concentrateur and its history.
func (s *ConcentrateurService) Get(ctx context.Context, numeroSerie string) (*model.DetailResponse, error) {
	numeroSerie = strings.TrimSpace(numeroSerie)
	if numeroSerie == "" {
		return nil, &constants.ErrorMissingSerialNumber
	}

	key := cache.ResourceKey(cache.ResourceConcentrateurs, numeroSerie)
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Long,
		func(ctx context.Context) (*model.DetailResponse, error) {
			var resp model.DetailResponse
			path := cache.ResourceKey(cache.ResourceConcentrateurs, url.PathEscape(numeroSerie))
			if err := s.client.Get(ctx, path, nil, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		})
}

// Verify tells whether a serial number exists. The answer is never cached.
func (s *ConcentrateurService) Verify(ctx context.Context, numeroSerie string) (*model.VerifyResponse, error) {
	numeroSerie = strings.TrimSpace(numeroSerie)
	if numeroSerie == "" {
		return nil, &constants.ErrorMissingSerialNumber
	}

	var resp model.VerifyResponse
	path := cache.ResourceKey(cache.ResourceConcentrateurs, "verify", url.PathEscape(numeroSerie))
	if err := s.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InvalidateCache drops every cached listing and detail.
func (s *ConcentrateurService) InvalidateCache() int {
	removed := s.store.InvalidateResource(string(cache.ResourceConcentrateurs))
	s.logger.Debug("Invalidated concentrateur cache", log.Int("count", removed))
	return removed
}

func validateListParams(params model.ListParams) error {
	if params.Page < 0 || params.Limit < 0 {
		return &constants.ErrorInvalidPagination
	}
	if params.Etat != "" && !params.Etat.Valid() {
		return &constants.ErrorInvalidEtat
	}
	return nil
}

// keyParams holds the effective page and limit and only the filters the caller set, so
// that requests sending the same query share a key.
func keyParams(params model.ListParams) map[string]any {
	page, limit := pagination(params)
	out := map[string]any{
		"page":  page,
		"limit": limit,
	}
	if params.Search != "" {
		out["search"] = params.Search
	}
	if params.Etat != "" {
		out["etat"] = string(params.Etat)
	}
	if params.Affectation != "" {
		out["affectation"] = params.Affectation
	}
	if params.Operateur != "" {
		out["operateur"] = params.Operateur
	}
	return out
}

// pagination returns the page and limit sent to the backend, defaulting to the first
// page of DefaultPageSize items.
func pagination(params model.ListParams) (int, int) {
	page := params.Page
	if page == 0 {
		page = 1
	}
	limit := params.Limit
	if limit == 0 {
		limit = sysconst.DefaultPageSize
	}
	return page, limit
}

func listQuery(params model.ListParams) url.Values {
	page, limit := pagination(params)

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	if params.Search != "" {
		values.Set("search", params.Search)
	}
	if params.Etat != "" {
		values.Set("etat", string(params.Etat))
	}
	if params.Affectation != "" {
		values.Set("affectation", params.Affectation)
	}
	if params.Operateur != "" {
		values.Set("operateur", params.Operateur)
	}
	return values
}
