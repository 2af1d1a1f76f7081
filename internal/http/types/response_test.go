// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "authentication", err: types.ErrAuthentication, status: http.StatusUnauthorized, code: CodeInvalidToken},
		{name: "invalid credentials", err: types.ErrInvalidCredentials, status: http.StatusUnauthorized, code: CodeBadCredentials},
		{name: "inactive account", err: fmt.Errorf("user x: %w", types.ErrInactiveAccount), status: http.StatusUnauthorized, code: CodeAccountInactive},
		{name: "authorization", err: types.ErrAuthorization, status: http.StatusForbidden, code: CodeForbidden},
		{name: "not found", err: storage.ErrNotFound, status: http.StatusNotFound, code: CodeNotFound},
		{name: "validation", err: types.Invalid("name is required"), status: http.StatusBadRequest, code: CodeValidation},
		{name: "check violation", err: storage.ErrCheckViolation, status: http.StatusBadRequest, code: CodeValidation},
		{name: "conflict", err: types.Conflict("lead already converted"), status: http.StatusConflict, code: CodeConflict},
		{name: "duplicate key", err: fmt.Errorf("insert customer: %w", storage.ErrDuplicateKey), status: http.StatusConflict, code: CodeConflict},
		{name: "unexpected", err: errors.New("connection refused"), status: http.StatusInternalServerError, code: CodeInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			status, code, _ := ErrorStatus(test.err)

			if status != test.status {
				t.Errorf("expected status %d, got %d", test.status, status)
			}
			if code != test.code {
				t.Errorf("expected code %s, got %s", test.code, code)
			}
		})
	}
}

func TestWriteErrorMasksInternalErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, errors.New("pq: password authentication failed"), logging.NewNoopLogger())

	var resp Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != http.StatusInternalServerError || resp.Message != defaultErrorMessage {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, map[string]string{"id": "1"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %s", ct)
	}
	if !strings.Contains(rr.Body.String(), `"data":{"id":"1"}`) {
		t.Errorf("unexpected body %s", rr.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Acme"}`},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "missing field", body: `{}`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(test.body))

			var p payload
			err := DecodeJSON(req, &p)

			if test.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if err != nil && !errors.Is(err, types.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
