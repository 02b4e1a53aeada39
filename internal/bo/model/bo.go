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

// Package model defines the data structures of operational bases (BO).
package model

// Stats summarizes the stock of one operational base.
type Stats struct {
	BOName      string `json:"bo_name"`
	Total       int    `json:"total"`
	EnStock     int    `json:"en_stock"`
	Poses       int    `json:"poses"`
	ATester     int    `json:"a_tester"`
	EnLivraison int    `json:"en_livraison"`
}

// InfoStats is the stock summary embedded in Info.
type InfoStats struct {
	Total           int `json:"total"`
	EnStock         int `json:"en_stock"`
	Poses           int `json:"poses"`
	ATester         int `json:"a_tester"`
	DemandesEnCours int `json:"demandes_en_cours"`
}

// Info describes the base assigned to the current user.
type Info struct {
	NomBO       string    `json:"nom_bo"`
	Utilisateur string    `json:"utilisateur"`
	Role        string    `json:"role"`
	Stats       InfoStats `json:"stats"`
}

// ActionRequest names the concentrateur a field action applies to.
type ActionRequest struct {
	NumeroSerie string `json:"numero_serie"`
}

// ActionResult is the backend reply to a field action.
type ActionResult struct {
	Message     string `json:"message"`
	NumeroSerie string `json:"numero_serie"`
	AncienEtat  string `json:"ancien_etat,omitempty"`
	NouvelEtat  string `json:"nouvel_etat,omitempty"`
	DatePose    string `json:"date_pose,omitempty"`
}

// DemandeTransfertRequest asks the warehouse for concentrateurs.
type DemandeTransfertRequest struct {
	Quantite          int    `json:"quantite"`
	OperateurSouhaite string `json:"operateur_souhaite,omitempty"`
}

// DemandeTransfertResult is the backend reply to a transfer request.
type DemandeTransfertResult struct {
	Message           string `json:"message"`
	IDCommande        int    `json:"id_commande"`
	BODemandeur       string `json:"bo_demandeur"`
	Quantite          int    `json:"quantite"`
	OperateurSouhaite string `json:"operateur_souhaite,omitempty"`
	Statut            string `json:"statut"`
}

// Demande is a transfer request issued by the base.
type Demande struct {
	IDCommande        int    `json:"id_commande"`
	Quantite          int    `json:"quantite"`
	OperateurSouhaite string `json:"operateur_souhaite,omitempty"`
	DateCommande      string `json:"date_commande"`
	Statut            string `json:"statut"`
	DateValidation    string `json:"date_validation,omitempty"`
	DateLivraison     string `json:"date_livraison,omitempty"`
}
