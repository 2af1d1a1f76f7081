// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/pkg/authentication"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints registers the sign-in endpoints, they do not require a token.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/register", a.register)
	mux.Post("/api/v0/auth/login", a.login)
	mux.Post("/api/v0/auth/refresh", a.refresh)
	mux.Post("/api/v0/auth/oidc", a.signInExternal)
}

// RegisterProtectedEndpoints registers the endpoints served to authenticated callers.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Get("/api/v0/auth/me", a.me)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	session, err := a.service.Register(r.Context(), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, session)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	session, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, session)
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	req := new(RefreshRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	token, err := a.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

func (a *API) signInExternal(w http.ResponseWriter, r *http.Request) {
	req := new(ExternalSignInRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	session, err := a.service.SignInExternal(r.Context(), req.IDToken)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, session)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	profile, err := a.service.Me(r.Context(), user)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, profile)
}
