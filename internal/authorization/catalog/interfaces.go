// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

type StorageInterface interface {
	InsertPermission(ctx context.Context, p *types.Permission) (bool, error)
}
