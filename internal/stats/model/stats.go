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

// Package model defines the dashboard aggregates returned by the statistics endpoints.
package model

// Overview holds fleet-wide counters.
type Overview struct {
	TotalConcentrateurs int `json:"total_concentrateurs"`
	EnLivraison         int `json:"en_livraison"`
	EnStock             int `json:"en_stock"`
	EnStockMagasin      int `json:"en_stock_magasin"`
	EnStockBO           int `json:"en_stock_bo"`
	Pose                int `json:"pose"`
	RetourConstructeur  int `json:"retour_constructeur"`
	HS                  int `json:"hs"`
	ActionsToday        int `json:"actions_today"`
	TotalPostes         int `json:"total_postes"`
	TotalCartons        int `json:"total_cartons"`
	TotalUtilisateurs   int `json:"total_utilisateurs"`
}

// BaseStock is the state breakdown of one operational base.
type BaseStock struct {
	BaseOperationnelle string  `json:"base_operationnelle"`
	Total              int     `json:"total"`
	EnLivraison        int     `json:"en_livraison"`
	EnStock            int     `json:"en_stock"`
	Pose               int     `json:"pose"`
	RetourConstructeur int     `json:"retour_constructeur"`
	HS                 int     `json:"hs"`
	Percentage         float64 `json:"percentage"`
}

// ActionUser is the author of a recent action.
type ActionUser struct {
	ID     int    `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Role   string `json:"role"`
}

// ActionRecente is an entry of the recent activity feed.
type ActionRecente struct {
	IDAction            int         `json:"id_action"`
	TypeAction          string      `json:"type_action"`
	DateAction          string      `json:"date_action"`
	AncienEtat          string      `json:"ancien_etat,omitempty"`
	NouvelEtat          string      `json:"nouvel_etat,omitempty"`
	AncienneAffectation string      `json:"ancienne_affectation,omitempty"`
	NouvelleAffectation string      `json:"nouvelle_affectation,omitempty"`
	Commentaire         string      `json:"commentaire,omitempty"`
	ConcentrateurID     string      `json:"concentrateur_id,omitempty"`
	User                *ActionUser `json:"user,omitempty"`
}

// OperateurStats is the state breakdown of one operator.
type OperateurStats struct {
	Operateur string `json:"operateur"`
	Total     int    `json:"total"`
	EnStock   int    `json:"en_stock"`
	Pose      int    `json:"pose"`
	HS        int    `json:"hs"`
}

// Dashboard is the set of aggregates shown on the home screen.
type Dashboard struct {
	Overview        *Overview
	StocksParBase   []BaseStock
	ActionsRecentes []ActionRecente
}
