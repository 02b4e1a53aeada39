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

// Package service provides cached dashboard statistics.
package service

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/plc-corse/concentrator-inventory/internal/stats/constants"
	"github.com/plc-corse/concentrator-inventory/internal/stats/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	sysconst "github.com/plc-corse/concentrator-inventory/internal/system/constants"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const (
	loggerComponentName = "StatsService"

	pathOverview        = "/stats/overview"
	pathStocksParBase   = "/stats/stocks-par-base"
	pathActionsRecentes = "/stats/actions-recentes"
	pathParOperateur    = "/stats/par-operateur"
)

var (
	keyOverview        = cache.ResourceKey(cache.ResourceDashboard, "overview")
	keyStocksParBase   = cache.ResourceKey(cache.ResourceDashboard, "stocks-par-base")
	keyActionsRecentes = cache.ResourceKey(cache.ResourceDashboard, "actions-recentes")
	keyParOperateur    = cache.ResourceKey(cache.ResourceDashboard, "par-operateur")
)

// StatsServiceInterface defines the dashboard statistics operations.
type StatsServiceInterface interface {
	Overview(ctx context.Context) (*model.Overview, error)
	StocksParBase(ctx context.Context) ([]model.BaseStock, error)
	ActionsRecentes(ctx context.Context, limit int) ([]model.ActionRecente, error)
	ParOperateur(ctx context.Context) ([]model.OperateurStats, error)
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

// StatsService reads dashboard aggregates through the response cache. The aggregates
// are stored under the dashboard prefix so that every inventory mutation drops them.
type StatsService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ StatsServiceInterface = (*StatsService)(nil)

// NewStatsService creates a statistics service.
func NewStatsService(client api.ClientInterface, store *cache.Store, tiers cache.TTLTiers) *StatsService {
	return &StatsService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Overview returns the fleet-wide counters.
func (s *StatsService) Overview(ctx context.Context) (*model.Overview, error) {
	return cache.GetOrFetch(ctx, s.store, keyOverview, s.tiers.Short, func(ctx context.Context) (*model.Overview, error) {
		var overview model.Overview
		if err := s.client.Get(ctx, pathOverview, nil, &overview); err != nil {
			return nil, err
		}
		return &overview, nil
	})
}

// StocksParBase returns the state breakdown of every operational base.
func (s *StatsService) StocksParBase(ctx context.Context) ([]model.BaseStock, error) {
	return fetchList[model.BaseStock](ctx, s, keyStocksParBase, pathStocksParBase, nil)
}

// ActionsRecentes returns the latest actions. A zero limit selects the default of ten.
func (s *StatsService) ActionsRecentes(ctx context.Context, limit int) ([]model.ActionRecente, error) {
	if limit < 0 {
		return nil, &constants.ErrorInvalidLimit
	}
	if limit == 0 {
		limit = sysconst.DefaultRecentActionsLimit
	}

	key, err := cache.GenerateKey(keyActionsRecentes, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return fetchList[model.ActionRecente](ctx, s, key, pathActionsRecentes,
		url.Values{"limit": {strconv.Itoa(limit)}})
}

// ParOperateur returns the state breakdown of every operator.
func (s *StatsService) ParOperateur(ctx context.Context) ([]model.OperateurStats, error) {
	return fetchList[model.OperateurStats](ctx, s, keyParOperateur, pathParOperateur, nil)
}

// Dashboard loads the overview, the per-base stock and the default recent actions
// concurrently. It fails with the first error when any of them fails.
func (s *StatsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var dashboard model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := s.Overview(gctx)
		dashboard.Overview = overview
		return err
	})
	g.Go(func() error {
		stocks, err := s.StocksParBase(gctx)
		dashboard.StocksParBase = stocks
		return err
	})
	g.Go(func() error {
		actions, err := s.ActionsRecentes(gctx, 0)
		dashboard.ActionsRecentes = actions
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Debug("Dashboard load failed", log.Error(err))
		return nil, err
	}
	return &dashboard, nil
}

func fetchList[T any](ctx context.Context, s *StatsService, key, path string, query url.Values) ([]T, error) {
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Short, func(ctx context.Context) ([]T, error) {
		var items []T
		if err := s.client.Get(ctx, path, query, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}
