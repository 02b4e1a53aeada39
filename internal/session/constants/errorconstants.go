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

// Package constants defines error constants for session operations.
package constants

import (
	"net/http"

	"github.com/plc-corse/concentrator-inventory/internal/system/error/serviceerror"
)

// Client errors for session operations.
var (
	// ErrorMissingCredentials is the error returned when the email or password is empty.
	ErrorMissingCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-1001",
		StatusCode:       http.StatusBadRequest,
		Message:          "Invalid request format",
		ErrorDescription: "Email and password are required",
	}
	// ErrorInvalidCredentials is the error returned when the backend rejects the credentials.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:       serviceerror.ClientErrorType,
		Code:       "SES-1002",
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid credentials",
	}
	// ErrorNotAuthenticated is the error returned when an operation needs a session and none exists.
	ErrorNotAuthenticated = serviceerror.ServiceError{
		Type:       serviceerror.ClientErrorType,
		Code:       "SES-1003",
		StatusCode: http.StatusUnauthorized,
		Message:    "Not authenticated",
	}
)
