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

// Package model defines the data structures for the user session.
package model

// Role values assigned to inventory users.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
	RoleAgentTerrain = "agent_terrain"
)

// User is the authenticated inventory user.
type User struct {
	ID              int    `json:"id_utilisateur"`
	Email           string `json:"email"`
	Nom             string `json:"nom"`
	Prenom          string `json:"prenom"`
	Role            string `json:"role"`
	BaseAffectee    string `json:"base_affectee"`
	Telephone       string `json:"telephone,omitempty"`
	Actif           bool   `json:"actif"`
	DateInscription string `json:"date_inscription,omitempty"`
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend reply to a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
