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

// Package serviceerror defines the error structures for the service layer.
package serviceerror

import (
	"errors"
	"fmt"
)

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ClientErrorType denotes the client error type.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType denotes the server error type.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceError defines a generic error structure that can be used across the service layer.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	StatusCode       int              `json:"-"`
	Message          string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.ErrorDescription == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.ErrorDescription)
}

// Is reports whether target is a service error with the same code.
func (e *ServiceError) Is(target error) bool {
	var other *ServiceError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// WithDescription returns a copy of the error carrying the given description.
func (e *ServiceError) WithDescription(description string) *ServiceError {
	described := *e
	described.ErrorDescription = description
	return &described
}

// IsClientError reports whether err is a client side service error.
func IsClientError(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Type == ClientErrorType
}
