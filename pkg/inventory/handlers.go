// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/pkg/authentication"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

type API struct {
	service ServiceInterface
	guard   authorization.GuardInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, guard authorization.GuardInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		guard:   guard,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	view := mux.With(a.guard.RequirePermission(authorization.INVENTORY_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.INVENTORY_EDIT))

	view.Get("/api/v0/warehouses", a.listWarehouses)
	view.Get("/api/v0/warehouses/{id}", a.getWarehouse)
	edit.Post("/api/v0/warehouses", a.createWarehouse)
	edit.Put("/api/v0/warehouses/{id}", a.updateWarehouse)
	edit.Patch("/api/v0/warehouses/{id}", a.updateWarehouse)
	edit.Delete("/api/v0/warehouses/{id}", a.deleteWarehouse)

	view.Get("/api/v0/skus", a.listSKUs)
	view.Get("/api/v0/skus/{id}", a.getSKU)
	edit.Post("/api/v0/skus", a.createSKU)
	edit.Put("/api/v0/skus/{id}", a.updateSKU)
	edit.Patch("/api/v0/skus/{id}", a.updateSKU)
	edit.Delete("/api/v0/skus/{id}", a.deleteSKU)

	view.Get("/api/v0/stock", a.listStock)
	edit.Post("/api/v0/stock/adjust", a.adjustStock)

	view.Get("/api/v0/purchase-orders", a.listPurchaseOrders)
	view.Get("/api/v0/purchase-orders/{id}", a.getPurchaseOrder)
	edit.Post("/api/v0/purchase-orders", a.createPurchaseOrder)
	edit.Post("/api/v0/purchase-orders/{id}/receive", a.receivePurchaseOrder)
}

func (a *API) listWarehouses(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	warehouses, err := a.service.ListWarehouses(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, warehouses)
}

func (a *API) getWarehouse(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	warehouse, err := a.service.GetWarehouse(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, warehouse)
}

func (a *API) createWarehouse(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(WarehouseRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	warehouse, err := a.service.CreateWarehouse(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, warehouse)
}

func (a *API) updateWarehouse(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(WarehouseUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	warehouse, err := a.service.UpdateWarehouse(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, warehouse)
}

func (a *API) deleteWarehouse(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteWarehouse(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) listSKUs(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	skus, err := a.service.ListSKUs(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, skus)
}

func (a *API) getSKU(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	sku, err := a.service.GetSKU(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, sku)
}

func (a *API) createSKU(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(SKURequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	sku, err := a.service.CreateSKU(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, sku)
}

func (a *API) updateSKU(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(SKUUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	sku, err := a.service.UpdateSKU(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, sku)
}

func (a *API) deleteSKU(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteSKU(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) listStock(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	q := r.URL.Query()
	levels, err := a.service.ListStockLevels(r.Context(), user.TenantID, q.Get("warehouse_id"), q.Get("sku_id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, levels)
}

func (a *API) adjustStock(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(StockAdjustment)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	level, err := a.service.AdjustStock(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, level)
}

func (a *API) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	orders, err := a.service.ListPurchaseOrders(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, orders)
}

func (a *API) getPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	order, err := a.service.GetPurchaseOrder(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, order)
}

func (a *API) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(PurchaseOrderRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	order, err := a.service.CreatePurchaseOrder(r.Context(), user, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, order)
}

func (a *API) receivePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	order, err := a.service.ReceivePurchaseOrder(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "receive", "purchase_order", order.ID)
	httpTypes.WriteJSON(w, http.StatusOK, order)
}
