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

// Package constants defines error constants for warehouse operations.
package constants

import (
	"net/http"

	"github.com/plc-corse/concentrator-inventory/internal/system/error/serviceerror"
)

// Client errors for warehouse operations.
var (
	// ErrorMissingCartonNumber is the error returned when the carton number is empty.
	ErrorMissingCartonNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAG-1001",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Carton number is required",
	}
	// ErrorMissingSerialNumber is the error returned when the serial number is empty.
	ErrorMissingSerialNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAG-1002",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Serial number is required",
	}
	// ErrorMissingOperateur is the error returned when the operator is empty.
	ErrorMissingOperateur = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAG-1003",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Operator is required",
	}
	// ErrorEmptyReception is the error returned when a reception lists no concentrateur.
	ErrorEmptyReception = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAG-1004",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "At least one concentrateur is required",
	}
	// ErrorInvalidTransfert is the error returned when a transfer has no destination or no item.
	ErrorInvalidTransfert = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAG-1005",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "A destination base and at least one concentrateur are required",
	}
)
