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

// Package model defines the data structures of lifecycle actions.
package model

// ActionType is the kind of lifecycle action recorded on a concentrateur.
type ActionType string

// Action types.
const (
	ActionLivraisonMagasin ActionType = "livraison_magasin"
	ActionReceptionMagasin ActionType = "reception_magasin"
	ActionTransfertBO      ActionType = "transfert_bo"
	ActionPose             ActionType = "pose"
	ActionDepose           ActionType = "depose"
	ActionTestLabo         ActionType = "test_labo"
	ActionMiseAuRebut      ActionType = "mise_au_rebut"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	switch t {
	case ActionLivraisonMagasin, ActionReceptionMagasin, ActionTransfertBO, ActionPose,
		ActionDepose, ActionTestLabo, ActionMiseAuRebut:
		return true
	}
	return false
}

// ActionCreate records a lifecycle action.
type ActionCreate struct {
	ConcentrateurID     string     `json:"concentrateur_id"`
	TypeAction          ActionType `json:"type_action"`
	NouvelEtat          string     `json:"nouvel_etat,omitempty"`
	NouvelleAffectation string     `json:"nouvelle_affectation,omitempty"`
	PosteID             *int       `json:"poste_id,omitempty"`
	Commentaire         string     `json:"commentaire,omitempty"`
	Photo               string     `json:"photo,omitempty"`
	ScanQR              bool       `json:"scan_qr,omitempty"`
}

// Action is a recorded lifecycle action.
type Action struct {
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
	ConcentrateurID     string `json:"concentrateur_id,omitempty"`
	CartonID            string `json:"carton_id,omitempty"`
	PosteID             *int   `json:"poste_id,omitempty"`
}

// ListParams filters and pages the action history. Zero values are omitted.
type ListParams struct {
	Page            int
	Limit           int
	ConcentrateurID string
	UserID          int
	TypeAction      ActionType
}

// ListResponse is one page of the action history.
type ListResponse struct {
	Data       []Action `json:"data"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
}
