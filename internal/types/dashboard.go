// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "github.com/shopspring/decimal"

// Dashboard is the tenant overview shown on the home page.
type Dashboard struct {
	CustomersCount      int64             `json:"customers_count"`
	EmployeesCount      int64             `json:"employees_count"`
	PurchaseOrdersCount int64             `json:"purchase_orders_count"`
	ProjectsCount       int64             `json:"projects_count"`
	InvoicesCount       int64             `json:"invoices_count"`
	LeadsCount          int64             `json:"leads_count"`
	LeadsByStatus       []*StatusCount    `json:"leads_by_status"`
	StockByWarehouse    []*WarehouseStock `json:"stock_by_warehouse"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type WarehouseStock struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}
