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

// Package constants defines error constants for lifecycle action operations.
package constants

import (
	"net/http"

	"github.com/plc-corse/concentrator-inventory/internal/system/error/serviceerror"
)

// Client errors for lifecycle action operations.
var (
	// ErrorMissingConcentrateurID is the error returned when the action names no concentrateur.
	ErrorMissingConcentrateurID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ACT-1001",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Concentrateur serial number is required",
	}
	// ErrorInvalidActionType is the error returned when the action type is unknown.
	ErrorInvalidActionType = serviceerror.ServiceError{
		Type:       serviceerror.ClientErrorType,
		Code:       "ACT-1002",
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid action type",
		ErrorDescription: "Action type must be one of livraison_magasin, reception_magasin, transfert_bo, " +
			"pose, depose, test_labo, mise_au_rebut",
	}
	// ErrorInvalidPagination is the error returned when page or limit is negative.
	ErrorInvalidPagination = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ACT-1003",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid pagination parameters",
		ErrorDescription: "Page and limit must not be negative",
	}
)
