// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListWarehouses(ctx context.Context, tenantID string) ([]*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListWarehouses")
	defer span.End()

	return s.storage.ListWarehouses(ctx, tenantID)
}

func (s *Service) GetWarehouse(ctx context.Context, tenantID, id string) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.GetWarehouse")
	defer span.End()

	return s.storage.GetWarehouse(ctx, tenantID, id)
}

func (s *Service) CreateWarehouse(ctx context.Context, tenantID string, req *WarehouseRequest) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreateWarehouse")
	defer span.End()

	w := &types.Warehouse{
		TenantID:  tenantID,
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.TrimSpace(req.Code),
		Address:   strings.TrimSpace(req.Address),
		IsDefault: req.IsDefault,
	}
	if w.Name == "" {
		return nil, types.Invalid("name is required")
	}

	var created *types.Warehouse
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if w.Code == "" {
			code, err := s.storage.NextCode(ctx, tenantID, storage.SequenceWarehouse)
			if err != nil {
				return err
			}
			w.Code = code
		}

		var err error
		created, err = s.storage.CreateWarehouse(ctx, w)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("warehouse code %s already exists", w.Code)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateWarehouse(ctx context.Context, tenantID, id string, req *WarehouseUpdateRequest) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.UpdateWarehouse")
	defer span.End()

	w := &types.Warehouse{ID: id}
	paths := make([]string, 0, 4)

	if req.Name != nil {
		if w.Name = strings.TrimSpace(*req.Name); w.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Code != nil {
		if w.Code = strings.TrimSpace(*req.Code); w.Code == "" {
			return nil, types.Invalid("code cannot be empty")
		}
		paths = append(paths, "code")
	}
	if req.Address != nil {
		w.Address = strings.TrimSpace(*req.Address)
		paths = append(paths, "address")
	}
	if req.IsDefault != nil {
		w.IsDefault = *req.IsDefault
		paths = append(paths, "is_default")
	}

	updated, err := s.storage.UpdateWarehouse(ctx, tenantID, w, paths)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("warehouse code %s already exists", w.Code)
	}

	return updated, err
}

func (s *Service) DeleteWarehouse(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeleteWarehouse")
	defer span.End()

	return s.storage.DeleteWarehouse(ctx, tenantID, id)
}
