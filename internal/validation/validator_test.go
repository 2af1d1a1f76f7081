// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/canonical/erp-service/internal/types"
)

type leadPayload struct {
	CompanyName string `json:"company_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Status      string `json:"status" validate:"omitempty,lead_status"`
	Stage       string `json:"stage" validate:"max=10"`
	Timezone    string `json:"timezone" validate:"omitempty,timezone"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		payload  leadPayload
		contains string
	}{
		{name: "valid", payload: leadPayload{CompanyName: "Acme", Status: "qualified"}},
		{name: "missing company", payload: leadPayload{}, contains: "company_name is required"},
		{name: "bad email", payload: leadPayload{CompanyName: "Acme", Email: "nope"}, contains: "email must be a valid email"},
		{name: "bad status", payload: leadPayload{CompanyName: "Acme", Status: "won"}, contains: "status has an invalid value"},
		{name: "long stage", payload: leadPayload{CompanyName: "Acme", Stage: "negotiating terms"}, contains: "stage must be at most 10"},
		{name: "known timezone", payload: leadPayload{CompanyName: "Acme", Timezone: "Europe/London"}},
		{name: "unknown timezone", payload: leadPayload{CompanyName: "Acme", Timezone: "Mars/Olympus"}, contains: "timezone must be an IANA timezone name"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Struct(test.payload)

			if test.contains == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("expected %q in %q", test.contains, err.Error())
			}
		})
	}
}
