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

func (s *Service) ListSKUs(ctx context.Context, tenantID string) ([]*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListSKUs")
	defer span.End()

	return s.storage.ListSKUs(ctx, tenantID)
}

func (s *Service) GetSKU(ctx context.Context, tenantID, id string) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.GetSKU")
	defer span.End()

	return s.storage.GetSKU(ctx, tenantID, id)
}

func (s *Service) CreateSKU(ctx context.Context, tenantID string, req *SKURequest) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreateSKU")
	defer span.End()

	k := &types.SKU{
		TenantID:        tenantID,
		Name:            strings.TrimSpace(req.Name),
		Code:            strings.TrimSpace(req.Code),
		Unit:            strings.TrimSpace(req.Unit),
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		Active:          true,
	}
	if req.IsActive != nil {
		k.Active = *req.IsActive
	}
	if k.Unit == "" {
		k.Unit = defaultUnit
	}

	if k.Name == "" {
		return nil, types.Invalid("name is required")
	}
	if err := nonNegative(k.ReorderPoint, "reorder_point"); err != nil {
		return nil, err
	}
	if err := nonNegative(k.ReorderQuantity, "reorder_quantity"); err != nil {
		return nil, err
	}

	var created *types.SKU
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if k.Code == "" {
			code, err := s.storage.NextCode(ctx, tenantID, storage.SequenceSKU)
			if err != nil {
				return err
			}
			k.Code = code
		}

		var err error
		created, err = s.storage.CreateSKU(ctx, k)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("sku code %s already exists", k.Code)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateSKU(ctx context.Context, tenantID, id string, req *SKUUpdateRequest) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.UpdateSKU")
	defer span.End()

	k := &types.SKU{ID: id}
	paths := make([]string, 0, 6)

	if req.Name != nil {
		if k.Name = strings.TrimSpace(*req.Name); k.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Code != nil {
		if k.Code = strings.TrimSpace(*req.Code); k.Code == "" {
			return nil, types.Invalid("code cannot be empty")
		}
		paths = append(paths, "code")
	}
	if req.Unit != nil {
		if k.Unit = strings.TrimSpace(*req.Unit); k.Unit == "" {
			k.Unit = defaultUnit
		}
		paths = append(paths, "unit")
	}
	if req.ReorderPoint != nil {
		if err := nonNegative(*req.ReorderPoint, "reorder_point"); err != nil {
			return nil, err
		}
		k.ReorderPoint = *req.ReorderPoint
		paths = append(paths, "reorder_point")
	}
	if req.ReorderQuantity != nil {
		if err := nonNegative(*req.ReorderQuantity, "reorder_quantity"); err != nil {
			return nil, err
		}
		k.ReorderQuantity = *req.ReorderQuantity
		paths = append(paths, "reorder_quantity")
	}
	if req.IsActive != nil {
		k.Active = *req.IsActive
		paths = append(paths, "is_active")
	}

	updated, err := s.storage.UpdateSKU(ctx, tenantID, k, paths)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("sku code %s already exists", k.Code)
	}

	return updated, err
}

func (s *Service) DeleteSKU(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeleteSKU")
	defer span.End()

	return s.storage.DeleteSKU(ctx, tenantID, id)
}
