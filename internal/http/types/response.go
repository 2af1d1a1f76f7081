// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/internal/validation"
)

// Response is the envelope of every json answer of the API.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
}

const (
	CodeInvalidToken    = "invalid_token"
	CodeBadCredentials  = "invalid_credentials"
	CodeAccountInactive = "account_inactive"
	CodeForbidden       = "insufficient_permissions"
	CodeNotFound        = "not_found"
	CodeValidation      = "validation_error"
	CodeConflict        = "conflict"
	CodeInternal        = "internal_error"
	defaultErrorMessage = "internal server error"
	defaultOKMessage    = "ok"
	maxRequestBodyBytes = 1 << 20
)

// ErrorStatus classifies err into an HTTP status, a stable code and a client facing message.
func ErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, types.ErrInactiveAccount):
		return http.StatusUnauthorized, CodeAccountInactive, "User not found or inactive"
	case errors.Is(err, types.ErrInvalidCredentials):
		return http.StatusUnauthorized, CodeBadCredentials, "Invalid email or password"
	case errors.Is(err, types.ErrAuthentication):
		return http.StatusUnauthorized, CodeInvalidToken, "Invalid token"
	case errors.Is(err, types.ErrAuthorization):
		return http.StatusForbidden, CodeForbidden, "Insufficient permissions"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, "Not found"
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case errors.Is(err, storage.ErrForeignKeyViolation), errors.Is(err, storage.ErrCheckViolation):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case errors.Is(err, types.ErrConflict), errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, CodeConflict, err.Error()
	}
	return http.StatusInternalServerError, CodeInternal, defaultErrorMessage
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: defaultOKMessage,
			Status:  status,
		},
	)
}

// WriteError renders err in the response envelope, unexpected errors are logged and masked.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status, code, message := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Message: message,
			Status:  status,
			Code:    code,
		},
	)
}

// DecodeJSON reads the request body into dst and validates it.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return types.Invalid("request body is required")
		}
		return types.Invalid("invalid request body: %v", err)
	}

	return validation.Struct(dst)
}
