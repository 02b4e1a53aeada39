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

// Package service provides cached access to the central warehouse.
package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/magasin/constants"
	"github.com/plc-corse/concentrator-inventory/internal/magasin/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache/query"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "MagasinService"

var (
	keyStats                = cache.ResourceKey(cache.ResourceMagasin, "stats")
	keyOperateurs           = cache.ResourceKey(cache.ResourceMagasin, "operateurs")
	keyBasesOperationnelles = cache.ResourceKey(cache.ResourceMagasin, "bases-operationnelles")
)

// MagasinServiceInterface defines the warehouse operations.
type MagasinServiceInterface interface {
	Stats(ctx context.Context) (*model.Stats, error)
	Carton(ctx context.Context, numeroCarton string) (*model.CartonInfo, error)
	CreateCarton(ctx context.Context, carton model.CartonCreate) (*model.CartonResult, error)
	CheckConcentrateur(ctx context.Context, numeroSerie string) (*model.ConcentrateurCheck, error)
	Operateurs(ctx context.Context) ([]model.SelectOption, error)
	BasesOperationnelles(ctx context.Context) ([]model.SelectOption, error)
	Reception(ctx context.Context, req model.ReceptionRequest) (*model.ReceptionResult, error)
	Transfert(ctx context.Context, boDestination string, concentrateurs []string) (*model.TransfertResult, error)
}

// MagasinService reads warehouse data through the response cache and invalidates the
// derived entries after every stock movement.
type MagasinService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ MagasinServiceInterface = (*MagasinService)(nil)

// NewMagasinService creates a warehouse service.
func NewMagasinService(client api.ClientInterface, store *cache.Store, tiers cache.TTLTiers) *MagasinService {
	return &MagasinService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Stats returns the warehouse stock summary.
func (s *MagasinService) Stats(ctx context.Context) (*model.Stats, error) {
	return cache.GetOrFetch(ctx, s.store, keyStats, s.tiers.Medium,
		func(ctx context.Context) (*model.Stats, error) {
			var stats model.Stats
			if err := s.client.Get(ctx, keyStats, nil, &stats); err != nil {
				return nil, err
			}
			return &stats, nil
		})
}

// Carton returns what the backend knows about a carton.
func (s *MagasinService) Carton(ctx context.Context, numeroCarton string) (*model.CartonInfo, error) {
	numeroCarton = strings.TrimSpace(numeroCarton)
	if numeroCarton == "" {
		return nil, &constants.ErrorMissingCartonNumber
	}

	key := cache.ResourceKey(cache.ResourceMagasin, "carton", numeroCarton)
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Medium,
		func(ctx context.Context) (*model.CartonInfo, error) {
			var info model.CartonInfo
			path := cache.ResourceKey(cache.ResourceMagasin, "carton", url.PathEscape(numeroCarton))
			if err := s.client.Get(ctx, path, nil, &info); err != nil {
				return nil, err
			}
			return &info, nil
		})
}

// CreateCarton registers a carton, or updates it when the number is known.
func (s *MagasinService) CreateCarton(ctx context.Context, carton model.CartonCreate) (*model.CartonResult, error) {
	carton.NumeroCarton = strings.TrimSpace(carton.NumeroCarton)
	if carton.NumeroCarton == "" {
		return nil, &constants.ErrorMissingCartonNumber
	}
	if strings.TrimSpace(carton.Operateur) == "" {
		return nil, &constants.ErrorMissingOperateur
	}

	var result model.CartonResult
	if err := s.client.Post(ctx, cache.ResourceKey(cache.ResourceMagasin, "carton"), carton, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceMagasin)
	return &result, nil
}

// CheckConcentrateur tells whether a serial number is already registered. The answer
// is never cached.
func (s *MagasinService) CheckConcentrateur(ctx context.Context, numeroSerie string) (*model.ConcentrateurCheck, error) {
	numeroSerie = strings.TrimSpace(numeroSerie)
	if numeroSerie == "" {
		return nil, &constants.ErrorMissingSerialNumber
	}

	var check model.ConcentrateurCheck
	path := cache.ResourceKey(cache.ResourceMagasin, "concentrateur", url.PathEscape(numeroSerie))
	if err := s.client.Get(ctx, path, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// Operateurs returns the manufacturer/operator reference list.
func (s *MagasinService) Operateurs(ctx context.Context) ([]model.SelectOption, error) {
	return cache.GetOrFetch(ctx, s.store, keyOperateurs, s.tiers.Static, s.fetchOptions(keyOperateurs))
}

// OperateursQuery binds the operator reference list to a cached query.
func (s *MagasinService) OperateursQuery() (*query.Query[[]model.SelectOption], error) {
	return query.NewList(s.store, keyOperateurs, s.fetchOptions(keyOperateurs), s.tiers.Static)
}

// BasesOperationnelles returns the operational base reference list.
func (s *MagasinService) BasesOperationnelles(ctx context.Context) ([]model.SelectOption, error) {
	return cache.GetOrFetch(ctx, s.store, keyBasesOperationnelles, s.tiers.Static,
		s.fetchOptions(keyBasesOperationnelles))
}

func (s *MagasinService) fetchOptions(path string) query.Fetcher[[]model.SelectOption] {
	return func(ctx context.Context) ([]model.SelectOption, error) {
		var options []model.SelectOption
		if err := s.client.Get(ctx, path, nil, &options); err != nil {
			return nil, err
		}
		return options, nil
	}
}

// Reception records a received carton and its concentrateurs.
func (s *MagasinService) Reception(ctx context.Context, req model.ReceptionRequest) (*model.ReceptionResult, error) {
	if strings.TrimSpace(req.NumeroCarton) == "" {
		return nil, &constants.ErrorMissingCartonNumber
	}
	if strings.TrimSpace(req.Operateur) == "" {
		return nil, &constants.ErrorMissingOperateur
	}
	if len(req.Concentrateurs) == 0 {
		return nil, &constants.ErrorEmptyReception
	}

	var result model.ReceptionResult
	if err := s.client.Post(ctx, cache.ResourceKey(cache.ResourceMagasin, "reception"), req, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceMagasin, cache.ResourceConcentrateurs)
	s.logger.Info("Recorded carton reception", log.String("carton", req.NumeroCarton),
		log.Int("created", result.Created))
	return &result, nil
}

// Transfert moves concentrateurs from the warehouse to an operational base.
func (s *MagasinService) Transfert(ctx context.Context, boDestination string,
	concentrateurs []string) (*model.TransfertResult, error) {
	if strings.TrimSpace(boDestination) == "" || len(concentrateurs) == 0 {
		return nil, &constants.ErrorInvalidTransfert
	}

	req := model.TransfertRequest{BODestination: boDestination, Concentrateurs: concentrateurs}
	var result model.TransfertResult
	if err := s.client.Post(ctx, cache.ResourceKey(cache.ResourceMagasin, "transfert"), req, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceMagasin, cache.ResourceConcentrateurs, cache.ResourceBO)
	s.logger.Info("Transferred concentrateurs", log.String("destination", boDestination),
		log.Int("transferred", result.Transferred))
	return &result, nil
}

