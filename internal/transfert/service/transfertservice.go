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

// Package service manages transfer orders through the response cache.
package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
	"github.com/plc-corse/concentrator-inventory/internal/transfert/constants"
	"github.com/plc-corse/concentrator-inventory/internal/transfert/model"
)

const loggerComponentName = "TransfertService"

var pathCartonsDisponibles = cache.ResourceKey(cache.ResourceTransferts, "cartons", "disponibles")

// TransfertServiceInterface defines the transfer order operations.
type TransfertServiceInterface interface {
	Commandes(ctx context.Context, statut string) ([]model.Commande, error)
	Commande(ctx context.Context, id int) (*model.Commande, error)
	CartonsDisponibles(ctx context.Context, operateur string) ([]model.CartonDisponible, error)
	Create(ctx context.Context, commande model.CommandeCreate) (*model.Commande, error)
	Valider(ctx context.Context, id int, numeroCarton string) (*model.ValidationResult, error)
	Annuler(ctx context.Context, id int) (*model.AnnulationResult, error)
}

// TransfertService reads orders through the response cache. Creating, validating or
// cancelling an order drops cached orders together with the warehouse and base views.
type TransfertService struct {
	client api.ClientInterface
	store  *cache.Store
	tiers  cache.TTLTiers
	logger *log.Logger
}

var _ TransfertServiceInterface = (*TransfertService)(nil)

// NewTransfertService creates a transfer order service.
func NewTransfertService(client api.ClientInterface, store *cache.Store, tiers cache.TTLTiers) *TransfertService {
	return &TransfertService{
		client: client,
		store:  store,
		tiers:  tiers,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Commandes lists orders, optionally filtered by status.
func (s *TransfertService) Commandes(ctx context.Context, statut string) ([]model.Commande, error) {
	return fetchFiltered[model.Commande](ctx, s, string(cache.ResourceTransferts), "statut", statut)
}

// CartonsDisponibles lists the cartons able to fulfil an order, optionally for one operator.
func (s *TransfertService) CartonsDisponibles(ctx context.Context, operateur string) ([]model.CartonDisponible, error) {
	return fetchFiltered[model.CartonDisponible](ctx, s, pathCartonsDisponibles, "operateur", operateur)
}

func fetchFiltered[T any](ctx context.Context, s *TransfertService, path, filter, value string) ([]T, error) {
	value = strings.TrimSpace(value)
	params := map[string]any{}
	var values url.Values
	if value != "" {
		params[filter] = value
		values = url.Values{filter: {value}}
	}

	key, err := cache.GenerateKey(path, params)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Medium, func(ctx context.Context) ([]T, error) {
		var items []T
		if err := s.client.Get(ctx, path, values, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Commande returns one order.
func (s *TransfertService) Commande(ctx context.Context, id int) (*model.Commande, error) {
	if id <= 0 {
		return nil, &constants.ErrorInvalidCommandeID
	}

	key := cache.ResourceKey(cache.ResourceTransferts, strconv.Itoa(id))
	return cache.GetOrFetch(ctx, s.store, key, s.tiers.Medium, func(ctx context.Context) (*model.Commande, error) {
		var commande model.Commande
		if err := s.client.Get(ctx, key, nil, &commande); err != nil {
			return nil, err
		}
		return &commande, nil
	})
}

// Create records a new order.
func (s *TransfertService) Create(ctx context.Context, commande model.CommandeCreate) (*model.Commande, error) {
	commande.BODemandeur = strings.TrimSpace(commande.BODemandeur)
	if commande.BODemandeur == "" || commande.Quantite <= 0 {
		return nil, &constants.ErrorInvalidCommande
	}

	var created model.Commande
	if err := s.client.Post(ctx, string(cache.ResourceTransferts), commande, &created); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceTransferts)
	s.logger.Info("Created transfer order", log.Int("id", created.IDCommande),
		log.String("bo", commande.BODemandeur), log.Int("quantite", commande.Quantite))
	return &created, nil
}

// Valider fulfils an order from a carton, moving its concentrateurs to the requesting base.
func (s *TransfertService) Valider(ctx context.Context, id int, numeroCarton string) (*model.ValidationResult, error) {
	if id <= 0 {
		return nil, &constants.ErrorInvalidCommandeID
	}
	numeroCarton = strings.TrimSpace(numeroCarton)
	if numeroCarton == "" {
		return nil, &constants.ErrorMissingCartonNumber
	}

	var result model.ValidationResult
	path := cache.ResourceKey(cache.ResourceTransferts, strconv.Itoa(id), "valider")
	if err := s.client.Post(ctx, path, model.ValidationRequest{NumeroCarton: numeroCarton}, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceTransferts, cache.ResourceConcentrateurs)
	s.logger.Info("Validated transfer order", log.Int("id", id), log.String("carton", numeroCarton),
		log.Int("transferes", result.ConcentrateursTransferes))
	return &result, nil
}

// Annuler cancels an order.
func (s *TransfertService) Annuler(ctx context.Context, id int) (*model.AnnulationResult, error) {
	if id <= 0 {
		return nil, &constants.ErrorInvalidCommandeID
	}

	var result model.AnnulationResult
	path := cache.ResourceKey(cache.ResourceTransferts, strconv.Itoa(id), "annuler")
	if err := s.client.Post(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	s.store.InvalidateMutation(cache.ResourceTransferts)
	return &result, nil
}
