// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package catalog holds the default permission catalog and seeds it into storage.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type document struct {
	Permissions []*types.Permission `yaml:"permissions"`
}

// Parse decodes a catalog document, rejecting entries whose id is not module.action.
func Parse(data []byte) ([]*types.Permission, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse permission catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Permissions))
	for _, p := range doc.Permissions {
		if p.ID != p.Module+"."+p.Action {
			return nil, fmt.Errorf("permission %q does not match %s.%s", p.ID, p.Module, p.Action)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("permission %q declared twice", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return doc.Permissions, nil
}

// Default returns the embedded catalog.
func Default() []*types.Permission {
	permissions, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return permissions
}

// Keys returns the ids of the given permissions.
func Keys(permissions []*types.Permission) []string {
	keys := make([]string, 0, len(permissions))
	for _, p := range permissions {
		keys = append(keys, p.ID)
	}
	return keys
}

type Seeder struct {
	storage     StorageInterface
	permissions []*types.Permission

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Seed inserts the catalog entries missing from storage and returns how many were created.
// Entries already present are left untouched, any storage failure aborts the seeding.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Seeder.Seed")
	defer span.End()

	created := make([]string, 0)
	for _, p := range s.permissions {
		ok, err := s.storage.InsertPermission(ctx, p)
		if err != nil {
			return len(created), fmt.Errorf("failed to seed permission %s: %w", p.ID, err)
		}
		if ok {
			created = append(created, p.ID)
		}
	}

	if len(created) == 0 {
		s.logger.Debug("permission catalog already seeded")
	} else {
		s.logger.Infof("seeded permissions: %s", strings.Join(created, ", "))
	}

	return len(created), nil
}

func NewSeeder(storage StorageInterface, permissions []*types.Permission, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Seeder {
	s := new(Seeder)
	s.storage = storage
	s.permissions = permissions
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
