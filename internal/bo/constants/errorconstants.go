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

// Package constants defines error constants for operational base operations.
package constants

import (
	"net/http"

	"github.com/plc-corse/concentrator-inventory/internal/system/error/serviceerror"
)

// Client errors for operational base operations.
var (
	// ErrorMissingBOName is the error returned when the base name is empty.
	ErrorMissingBOName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BO-1001",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Operational base name is required",
	}
	// ErrorMissingSerialNumber is the error returned when the serial number is empty.
	ErrorMissingSerialNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BO-1002",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Serial number is required",
	}
	// ErrorInvalidQuantite is the error returned when a transfer request quantity is not positive.
	ErrorInvalidQuantite = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BO-1003",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid quantity",
		ErrorDescription: "Quantity must be greater than zero",
	}
	// ErrorInvalidEtat is the error returned when a state filter is not a known state.
	ErrorInvalidEtat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BO-1004",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid state",
		ErrorDescription: "State must be one of en_livraison, en_stock, pose, retour_constructeur, hs",
	}
)
