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

// Package service provides cached access to operational base stock and field actions.
package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/bo/constants"
	"github.com/plc-corse/concentrator-inventory/internal/bo/model"
	conmodel "github.com/plc-corse/concentrator-inventory/internal/concentrateur/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
)

const loggerComponentName = "BOService"

var (
	keyListe          = cache.ResourceKey(cache.ResourceBO, "liste")
	keyInfo           = cache.ResourceKey(cache.ResourceBO, "info")
	keyDemandes       = cache.ResourceKey(cache.ResourceBO, "demandes")
	pathConcentrateur = cache.ResourceKey(cache.ResourceBO, "concentrateurs")
)

// BOServiceInterface defines the operational base operations.
type BOServiceInterface interface {
	Liste(ctx context.Context) ([]string, error)
	Stats(ctx context.Context, boName string) (*model.Stats, error)
	Info(ctx context.Context) (*model.Info, error)
	Concentrateurs(ctx context.Context, etat conmodel.Etat) ([]conmodel.Concentrateur, error)
	Demandes(ctx context.Context) ([]model.Demande, error)
	Pose(ctx context.Context, numeroSerie string) (*model.ActionResult, error)
	Depose(ctx context.Context, numeroSerie string) (*model.ActionResult, error)
	Reception(ctx context.Context, numeroSerie string) (*model.ActionResult, error)
	DemandeTransfert(ctx context.Context, quantite int, operateur string) (*model.DemandeTransfertResult, error)
}

// BOService reads base stock through the response cache. Every field action drops
// the cached base, inventory and dashboard views.
type BOService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ BOServiceInterface = (*BOService)(nil)

// NewBOService creates an operational base service.
func NewBOService(client api.ClientInterface, store *cache.Store, tiers cache.TTLTiers) *BOService {
	return &BOService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Liste returns the names of every operational base.
func (s *BOService) Liste(ctx context.Context) ([]string, error) {
	return cache.GetOrFetch(ctx, s.store, keyListe, s.tiers.Static, func(ctx context.Context) ([]string, error) {
		var names []string
		if err := s.client.Get(ctx, keyListe, nil, &names); err != nil {
			return nil, err
		}
		return names, nil
	})
}

// Stats returns the stock summary of one base.
func (s *BOService) Stats(ctx context.Context, boName string) (*model.Stats, error) {
	boName = strings.TrimSpace(boName)
	if boName == "" {
		return nil, &constants.ErrorMissingBOName
	}

	key := cache.ResourceKey(cache.ResourceBO, "stats", boName)
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Short, func(ctx context.Context) (*model.Stats, error) {
		var stats model.Stats
		path := cache.ResourceKey(cache.ResourceBO, "stats", url.PathEscape(boName))
		if err := s.client.Get(ctx, path, nil, &stats); err != nil {
			return nil, err
		}
		return &stats, nil
	})
}

// Info returns the base assigned to the current user.
func (s *BOService) Info(ctx context.Context) (*model.Info, error) {
	return cache.GetOrFetch(ctx, s.store, keyInfo, s.tiers.Short, func(ctx context.Context) (*model.Info, error) {
		var info model.Info
		if err := s.client.Get(ctx, keyInfo, nil, &info); err != nil {
			return nil, err
		}
		return &info, nil
	})
}

// Concentrateurs lists the concentrateurs of the current user's base, optionally
// filtered by state.
func (s *BOService) Concentrateurs(ctx context.Context, etat conmodel.Etat) ([]conmodel.Concentrateur, error) {
	params := map[string]any{}
	var values url.Values
	if etat != "" {
		if !etat.Valid() {
			return nil, &constants.ErrorInvalidEtat
		}
		params["etat"] = string(etat)
		values = url.Values{"etat": {string(etat)}}
	}

	key, err := cache.GenerateKey(pathConcentrateur, params)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Medium,
		func(ctx context.Context) ([]conmodel.Concentrateur, error) {
			var items []conmodel.Concentrateur
			if err := s.client.Get(ctx, pathConcentrateur, values, &items); err != nil {
				return nil, err
			}
			return items, nil
		})
}

// Demandes lists the transfer requests issued by the current user's base.
func (s *BOService) Demandes(ctx context.Context) ([]model.Demande, error) {
	return cache.GetOrFetch(ctx, s.store, keyDemandes, s.tiers.Medium,
		func(ctx context.Context) ([]model.Demande, error) {
			var demandes []model.Demande
			if err := s.client.Get(ctx, keyDemandes, nil, &demandes); err != nil {
				return nil, err
			}
			return demandes, nil
		})
}

// Pose records the installation of a concentrateur.
func (s *BOService) Pose(ctx context.Context, numeroSerie string) (*model.ActionResult, error) {
	return s.fieldAction(ctx, "pose", numeroSerie)
}

// Depose records the removal of an installed concentrateur.
func (s *BOService) Depose(ctx context.Context, numeroSerie string) (*model.ActionResult, error) {
	return s.fieldAction(ctx, "depose", numeroSerie)
}

// Reception records the arrival at the base of a transferred concentrateur.
func (s *BOService) Reception(ctx context.Context, numeroSerie string) (*model.ActionResult, error) {
	return s.fieldAction(ctx, "reception", numeroSerie)
}

func (s *BOService) fieldAction(ctx context.Context, action, numeroSerie string) (*model.ActionResult, error) {
	numeroSerie = strings.TrimSpace(numeroSerie)
	if numeroSerie == "" {
		return nil, &constants.ErrorMissingSerialNumber
	}

	var result model.ActionResult
	path := cache.ResourceKey(cache.ResourceBO, action)
	if err := s.client.Post(ctx, path, model.ActionRequest{NumeroSerie: numeroSerie}, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceBO, cache.ResourceConcentrateurs)
	s.logger.Info("Recorded field action", log.String("action", action),
		log.String("numeroSerie", numeroSerie), log.String("nouvelEtat", result.NouvelEtat))
	return &result, nil
}

// DemandeTransfert asks the warehouse for quantite concentrateurs, optionally from one operator.
func (s *BOService) DemandeTransfert(ctx context.Context, quantite int,
	operateur string) (*model.DemandeTransfertResult, error) {
	if quantite <= 0 {
		return nil, &constants.ErrorInvalidQuantite
	}

	req := model.DemandeTransfertRequest{Quantite: quantite, OperateurSouhaite: strings.TrimSpace(operateur)}
	var result model.DemandeTransfertResult
	if err := s.client.Post(ctx, cache.ResourceKey(cache.ResourceBO, "demande-transfert"), req, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceBO, cache.ResourceTransferts)
	return &result, nil
}
