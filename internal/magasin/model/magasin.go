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

// Package model defines the data structures of the central warehouse.
package model

// Stats summarizes the warehouse stock.
type Stats struct {
	Total       int `json:"total"`
	EnStock     int `json:"en_stock"`
	EnLivraison int `json:"en_livraison"`
	NbCartons   int `json:"nb_cartons"`
}

// CartonInfo describes a shipping carton.
type CartonInfo struct {
	Found                     bool   `json:"found"`
	NumeroCarton              string `json:"numero_carton"`
	Operateur                 string `json:"operateur,omitempty"`
	DateReception             string `json:"date_reception,omitempty"`
	NombreConcentrateurs      int    `json:"nombre_concentrateurs,omitempty"`
	ConcentrateursEnregistres int    `json:"concentrateurs_enregistres,omitempty"`
	Statut                    string `json:"statut,omitempty"`
	Message                   string `json:"message,omitempty"`
}

// CartonCreate registers or updates a carton.
type CartonCreate struct {
	NumeroCarton         string `json:"numero_carton"`
	Operateur            string `json:"operateur"`
	NombreConcentrateurs int    `json:"nombre_concentrateurs"`
}

// CartonResult is the backend reply to a carton registration.
type CartonResult struct {
	Message      string `json:"message"`
	NumeroCarton string `json:"numero_carton"`
	Operateur    string `json:"operateur"`
}

// ConcentrateurCheck tells whether a serial number is already registered.
type ConcentrateurCheck struct {
	Exists       bool   `json:"exists"`
	NumeroSerie  string `json:"numero_serie"`
	Operateur    string `json:"operateur,omitempty"`
	Etat         string `json:"etat,omitempty"`
	Affectation  string `json:"affectation,omitempty"`
	NumeroCarton string `json:"numero_carton,omitempty"`
}

// ConcentrateurCreate is one concentrateur received in a carton.
type ConcentrateurCreate struct {
	NumeroSerie  string `json:"numero_serie"`
	Modele       string `json:"modele,omitempty"`
	Operateur    string `json:"operateur"`
	NumeroCarton string `json:"numero_carton"`
}

// ReceptionRequest records the reception of a carton and its content.
type ReceptionRequest struct {
	NumeroCarton   string                `json:"numero_carton"`
	Operateur      string                `json:"operateur"`
	Concentrateurs []ConcentrateurCreate `json:"concentrateurs"`
}

// ReceptionResult is the backend reply to a reception.
type ReceptionResult struct {
	Message        string   `json:"message"`
	Carton         string   `json:"carton"`
	Operateur      string   `json:"operateur"`
	Created        int      `json:"created"`
	Concentrateurs []string `json:"concentrateurs"`
	Errors         []string `json:"errors,omitempty"`
}

// TransfertRequest moves concentrateurs from the warehouse to an operational base.
type TransfertRequest struct {
	BODestination  string   `json:"bo_destination"`
	Concentrateurs []string `json:"concentrateurs"`
}

// TransfertResult is the backend reply to a transfer.
type TransfertResult struct {
	Message        string   `json:"message"`
	Transferred    int      `json:"transferred"`
	Concentrateurs []string `json:"concentrateurs"`
	Destination    string   `json:"destination"`
	Errors         []string `json:"errors,omitempty"`
}

// SelectOption is one entry of a reference list.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
