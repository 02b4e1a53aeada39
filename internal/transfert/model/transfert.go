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

// Package model defines the data structures of transfer orders between the warehouse
// and operational bases.
package model

// Order statuses.
const (
	StatutEnAttente = "en_attente"
	StatutValidee   = "validee"
	StatutLivree    = "livree"
	StatutAnnulee   = "annulee"
)

// Commande is a transfer order.
type Commande struct {
	IDCommande        int    `json:"id_commande"`
	BODemandeur       string `json:"bo_demandeur"`
	Quantite          int    `json:"quantite"`
	OperateurSouhaite string `json:"operateur_souhaite,omitempty"`
	StatutCommande    string `json:"statut_commande"`
	UserID            int    `json:"user_id"`
	DateCommande      string `json:"date_commande"`
	DateValidation    string `json:"date_validation,omitempty"`
	DateLivraison     string `json:"date_livraison,omitempty"`
	DemandeurNom      string `json:"demandeur_nom,omitempty"`
	DemandeurPrenom   string `json:"demandeur_prenom,omitempty"`
}

// CommandeCreate creates a transfer order.
type CommandeCreate struct {
	BODemandeur       string `json:"bo_demandeur"`
	Quantite          int    `json:"quantite"`
	OperateurSouhaite string `json:"operateur_souhaite,omitempty"`
}

// ValidationRequest fulfils an order from one carton.
type ValidationRequest struct {
	NumeroCarton string `json:"numero_carton"`
}

// ValidationResult is the backend reply to an order validation.
type ValidationResult struct {
	Message                  string   `json:"message"`
	CommandeID               int      `json:"commande_id"`
	Carton                   string   `json:"carton"`
	BODestination            string   `json:"bo_destination"`
	ConcentrateursTransferes int      `json:"concentrateurs_transferes"`
	NumerosSerie             []string `json:"numeros_serie"`
}

// AnnulationResult is the backend reply to an order cancellation.
type AnnulationResult struct {
	Message    string `json:"message"`
	IDCommande int    `json:"id_commande"`
}

// CartonDisponible is a warehouse carton that can fulfil an order.
type CartonDisponible struct {
	NumeroCarton              string `json:"numero_carton"`
	Operateur                 string `json:"operateur"`
	DateReception             string `json:"date_reception"`
	ConcentrateursDisponibles int    `json:"concentrateurs_disponibles"`
}
