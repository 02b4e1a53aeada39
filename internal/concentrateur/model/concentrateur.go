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

// Package model defines the data structures of inventory items and their history.
package model

// Etat is the lifecycle state of a concentrateur.
type Etat string

// Lifecycle states.
const (
	EtatEnLivraison        Etat = "en_livraison"
	EtatEnStock            Etat = "en_stock"
	EtatPose               Etat = "pose"
	EtatRetourConstructeur Etat = "retour_constructeur"
	EtatHS                 Etat = "hs"
)

// Valid reports whether e is a known state.
func (e Etat) Valid() bool {
	switch e {
	case EtatEnLivraison, EtatEnStock, EtatPose, EtatRetourConstructeur, EtatHS:
		return true
	}
	return false
}

// Concentrateur is one PLC concentrator tracked by serial number.
type Concentrateur struct {
	NumeroSerie     string `json:"numero_serie"`
	Modele          string `json:"modele,omitempty"`
	Operateur       string `json:"operateur"`
	Etat            Etat   `json:"etat"`
	Affectation     string `json:"affectation,omitempty"`
	HS              bool   `json:"hs"`
	DateAffectation string `json:"date_affectation,omitempty"`
	DatePose        string `json:"date_pose,omitempty"`
	DateDernierEtat string `json:"date_dernier_etat,omitempty"`
	Commentaire     string `json:"commentaire,omitempty"`
	Photo           string `json:"photo,omitempty"`
	NumeroCarton    string `json:"numero_carton,omitempty"`
	PosteID         *int   `json:"poste_id,omitempty"`
}

// HistoriqueAction is one recorded lifecycle action on a concentrateur.
type HistoriqueAction struct {
	IDAction            int    `json:"id_action"`
	TypeAction          string `json:"type_action"`
	DateAction          string `json:"date_action"`
	AncienEtat          string `json:"ancien_etat,omitempty"`
	NouvelEtat          string `json:"nouvel_etat,omitempty"`
	AncienneAffectation string `json:"ancienne_affectation,omitempty"`
	NouvelleAffectation string `json:"nouvelle_affectation,omitempty"`
	Commentaire         string `json:"commentaire,omitempty"`
	ScanQR              bool   `json:"scan_qr"`
	Photo               string `json:"photo,omitempty"`
	UserID              int    `json:"user_id"`
}

// ListParams filters and pages the inventory listing. Zero values are omitted.
type ListParams struct {
	Page        int
	Limit       int
	Search      string
	Etat        Etat
	Affectation string
	Operateur   string
}

// ListResponse is one page of the inventory listing.
type ListResponse struct {
	Data       []Concentrateur `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// DetailResponse is a concentrateur with its action history.
type DetailResponse struct {
	Concentrateur Concentrateur      `json:"concentrateur"`
	Historique    []HistoriqueAction `json:"historique"`
}

// VerifyResponse tells whether a serial number is known.
type VerifyResponse struct {
	Exists        bool           `json:"exists"`
	Concentrateur *Concentrateur `json:"concentrateur"`
}
