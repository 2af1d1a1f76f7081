// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/erp-service/internal/types"
)

var tenantColumns = []string{"id", "name", "code", "timezone", "created_at", "updated_at"}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Code, &t.Timezone, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

var userColumns = []string{"id", "tenant_id", "email", "password_hash", "external_id", "full_name", "is_active", "created_at", "updated_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.ExternalID, &u.FullName, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

var roleColumns = []string{"id", "tenant_id", "name", "description", "created_at", "updated_at"}

func scanRole(row sq.RowScanner) (*types.Role, error) {
	var r types.Role
	if err := row.Scan(&r.ID, &r.TenantID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.PermissionIDs = []string{}
	return &r, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	timezone := t.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "code", "timezone").
		Values(id, t.Name, t.Code, timezone).
		Suffix(returning(tenantColumns)).
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, writeError(err, "insert tenant")
	}

	return tenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, readError(err, "get tenant")
	}

	return t, nil
}

func (s *Storage) GetTenantByCode(ctx context.Context, code string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByCode")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"code": code}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, readError(err, "get tenant")
	}

	return t, nil
}

// UpdateTenant changes the display fields of a tenant, the code is immutable.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = t.Name
		case "timezone":
			updateMap["timezone"] = t.Timezone
		}
	}

	if len(updateMap) == 0 {
		return s.GetTenantByID(ctx, t.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		Suffix(returning(tenantColumns)).
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, writeError(err, "update tenant")
	}

	return tenant, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "tenant_id", "email", "password_hash", "external_id", "full_name", "is_active").
		Values(id, u.TenantID, strings.ToLower(u.Email), u.PasswordHash, u.ExternalID, u.FullName, u.Active).
		Suffix(returning(userColumns)).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if err != nil {
		return nil, writeError(err, "insert user")
	}

	return user, nil
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, readError(err, "get user")
	}

	return u, nil
}

// GetUserByID looks a user up across tenants, it backs request authentication.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (s *Storage) GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByExternalID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"external_id": externalID})
}

func (s *Storage) GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantUser")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id, "tenant_id": tenantID})
}

func (s *Storage) ListUsers(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return collect(rows, scanUser)
}

// UpdateUser updates the fields named in paths, following PATCH semantics.
func (s *Storage) UpdateUser(ctx context.Context, tenantID string, u *types.User, paths []string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "full_name":
			updateMap["full_name"] = u.FullName
		case "is_active":
			updateMap["is_active"] = u.Active
		case "password_hash":
			updateMap["password_hash"] = u.PasswordHash
		}
	}

	if len(updateMap) == 0 {
		return s.GetTenantUser(ctx, tenantID, u.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID, "tenant_id": tenantID}).
		Suffix(returning(userColumns)).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if err != nil {
		return nil, writeError(err, "update user")
	}

	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("users").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"user",
	)
}

func (s *Storage) LinkExternalIdentity(ctx context.Context, userID, externalID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkExternalIdentity")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("external_id", externalID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "link external identity")
	}

	return nil
}

func (s *Storage) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("roles").
		Columns("id", "tenant_id", "name", "description").
		Values(id, r.TenantID, r.Name, r.Description).
		Suffix(returning(roleColumns)).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		return nil, writeError(err, "insert role")
	}

	return role, nil
}

// roleQuery selects roles with their permission keys folded into one column.
func (s *Storage) roleQuery(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(prefixed("r", roleColumns)...).
		Column("COALESCE(string_agg(rp.permission_id, ',' ORDER BY rp.permission_id), '')").
		From("roles r").
		LeftJoin("role_permissions rp ON rp.role_id = r.id").
		GroupBy("r.id")
}

func scanRoleWithPermissions(row sq.RowScanner) (*types.Role, error) {
	var r types.Role
	var keys string
	if err := row.Scan(&r.ID, &r.TenantID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt, &keys); err != nil {
		return nil, err
	}

	r.PermissionIDs = []string{}
	if keys != "" {
		r.PermissionIDs = strings.Split(keys, ",")
	}

	return &r, nil
}

func (s *Storage) GetRole(ctx context.Context, tenantID, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRole")
	defer span.End()

	row := s.roleQuery(ctx).
		Where(sq.Eq{"r.id": id, "r.tenant_id": tenantID}).
		QueryRowContext(ctx)

	r, err := scanRoleWithPermissions(row)
	if err != nil {
		return nil, readError(err, "get role")
	}

	return r, nil
}

func (s *Storage) ListRoles(ctx context.Context, tenantID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	rows, err := s.roleQuery(ctx).
		Where(sq.Eq{"r.tenant_id": tenantID}).
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return collect(rows, scanRoleWithPermissions)
}

func (s *Storage) UpdateRole(ctx context.Context, tenantID string, r *types.Role, paths []string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRole")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = r.Name
		case "description":
			updateMap["description"] = r.Description
		}
	}

	if len(updateMap) == 0 {
		return s.GetRole(ctx, tenantID, r.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("roles").
		SetMap(updateMap).
		Where(sq.Eq{"id": r.ID, "tenant_id": tenantID}).
		Suffix(returning(roleColumns)).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		return nil, writeError(err, "update role")
	}

	return role, nil
}

func (s *Storage) DeleteRole(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRole")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("roles").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"role",
	)
}

// SetRolePermissions replaces the permissions of a role, keys missing from the catalog are skipped.
func (s *Storage) SetRolePermissions(ctx context.Context, roleID string, keys []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetRolePermissions")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "clear role permissions")
	}

	if len(keys) == 0 {
		return nil
	}

	known := sq.Select().
		Column(sq.Expr("?::uuid", roleID)).
		Column("id").
		From("permissions").
		Where(sq.Eq{"id": keys})

	_, err = s.db.Statement(ctx).
		Insert("role_permissions").
		Columns("role_id", "permission_id").
		Select(known).
		Suffix("ON CONFLICT DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "insert role permissions")
	}

	return nil
}

func (s *Storage) AssignRole(ctx context.Context, userID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role_id").
		Values(userID, roleID).
		Suffix("ON CONFLICT DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "assign role")
	}

	return nil
}

func (s *Storage) UnassignRole(ctx context.Context, userID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnassignRole")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("user_roles").Where(sq.Eq{"user_id": userID, "role_id": roleID}),
		"role assignment",
	)
}

// SetUserRoles replaces the roles of a user, roles outside the tenant are skipped.
func (s *Storage) SetUserRoles(ctx context.Context, tenantID, userID string, roleIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserRoles")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "clear user roles")
	}

	if len(roleIDs) == 0 {
		return nil
	}

	owned := sq.Select().
		Column(sq.Expr("?::uuid", userID)).
		Column("id").
		From("roles").
		Where(sq.Eq{"id": roleIDs, "tenant_id": tenantID})

	_, err = s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role_id").
		Select(owned).
		Suffix("ON CONFLICT DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "insert user roles")
	}

	return nil
}

func (s *Storage) ListUserRoles(ctx context.Context, tenantID, userID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserRoles")
	defer span.End()

	rows, err := s.roleQuery(ctx).
		Join("user_roles ur ON ur.role_id = r.id").
		Where(sq.Eq{"ur.user_id": userID, "r.tenant_id": tenantID}).
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}

	return collect(rows, scanRoleWithPermissions)
}

func scanPermission(row sq.RowScanner) (*types.Permission, error) {
	var p types.Permission
	if err := row.Scan(&p.ID, &p.Module, &p.Action, &p.Description); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "module", "action", "description").
		From("permissions").
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return collect(rows, scanPermission)
}

// InsertPermission adds a catalog entry, reporting false when the key already exists.
func (s *Storage) InsertPermission(ctx context.Context, p *types.Permission) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertPermission")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Insert("permissions").
		Columns("id", "module", "action", "description").
		Values(p.ID, p.Module, p.Action, p.Description).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return false, writeError(err, "insert permission")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

// ListPermissionKeysByUserID returns the union of permission keys granted by every role of the user.
func (s *Storage) ListPermissionKeysByUserID(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionKeysByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("rp.permission_id").
		Distinct().
		From("user_roles ur").
		Join("role_permissions rp ON rp.role_id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user permissions: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}
