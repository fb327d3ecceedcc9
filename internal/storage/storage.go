// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/entitlement-service/internal/db"
	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"id", "name", "coalesce(slug, '')", "coalesce(domain, '')", "coalesce(subdomain, '')",
	"type", "status", "plan", "features", "limits", "usage", "admin_users",
	"created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// nullable maps an empty string to SQL NULL so unique constraints on optional
// identity columns ignore absent values.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Domain, &t.Subdomain,
		&t.Type, &t.Status, &t.Plan, &t.Features, &t.Limits, &t.Usage, &t.AdminUsers,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id := t.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
		}
		id = uid.String()
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "domain", "subdomain", "type", "status", "plan", "features", "limits", "usage", "admin_users").
		Values(id, t.Name, nullable(t.Slug), nullable(t.Domain), nullable(t.Subdomain), t.Type, t.Status, t.Plan, t.Features, t.Limits, t.Usage, t.AdminUsers).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySlug")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"slug": slug}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	return t, nil
}

func (s *Storage) ListActiveTenantIDs(ctx context.Context, offset, limit uint64) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("tenants").
		Where(sq.Eq{"status": types.TenantStatusActive}).
		OrderBy("id").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tenants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) UpdateTenantFeatures(ctx context.Context, id string, features types.FeatureMap) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantFeatures")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("features", features).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant features: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateTenantAdminUsers(ctx context.Context, id string, adminUsers types.AdminUsers) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantAdminUsers")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("admin_users", adminUsers).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant admin users: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ResetUsageCounters zeroes the given usage counters on every tenant,
// regardless of status, and returns the number of tenants touched.
func (s *Storage) ResetUsageCounters(ctx context.Context, resources []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ResetUsageCounters")
	defer span.End()

	zeroes := make(map[string]int64, len(resources))
	for _, r := range resources {
		zeroes[r] = 0
	}
	patch, err := json.Marshal(zeroes)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal usage patch: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("usage", sq.Expr("usage || ?::jsonb", string(patch))).
		Set("updated_at", sq.Expr("now()")).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset usage counters: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id := u.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}
		id = uid.String()
	}

	var created types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "tenant_id", "email", "password_hash", "first_name", "last_name", "role", "permissions", "is_active").
		Values(id, u.TenantID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.Permissions, u.IsActive).
		Suffix("RETURNING id, tenant_id, email, password_hash, first_name, last_name, role, permissions, is_active, last_login, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Email, &created.PasswordHash, &created.FirstName, &created.LastName,
			&created.Role, &created.Permissions, &created.IsActive, &created.LastLogin, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOwnerByTenantID(ctx context.Context, tenantID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOwnerByTenantID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "password_hash", "first_name", "last_name", "role", "permissions", "is_active", "last_login", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"tenant_id": tenantID, "role": types.RoleOwner}).
		OrderBy("created_at").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.Role, &u.Permissions, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return &u, nil
}

// CreatePermission inserts a grant, ignoring an already existing grant for the
// same (tenant, feature, action, role) key. It reports whether a row was
// actually created.
func (s *Storage) CreatePermission(ctx context.Context, p *types.FeaturePermission) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePermission")
	defer span.End()

	id := p.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return false, fmt.Errorf("failed to generate permission ID: %w", err)
		}
		id = uid.String()
	}

	res, err := s.db.Statement(ctx).
		Insert("feature_permissions").
		Columns("id", "tenant_id", "feature", "action", "role", "conditions", "is_active").
		Values(id, p.TenantID, p.Feature, p.Action, p.Role, p.Conditions, p.IsActive).
		Suffix("ON CONFLICT (tenant_id, feature, action, role) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, ErrForeignKeyViolation
		}
		return false, fmt.Errorf("failed to insert permission: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) ListPermissionsByTenantID(ctx context.Context, tenantID string) ([]*types.FeaturePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "feature", "action", "role", "conditions", "is_active", "created_at", "updated_at").
		From("feature_permissions").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("feature", "role", "action").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var perms []*types.FeaturePermission
	for rows.Next() {
		var p types.FeaturePermission
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Feature, &p.Action, &p.Role, &p.Conditions, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return perms, nil
}

// SetPermissionActivation reconciles the active flag of every grant belonging
// to the tenant against the enabled feature set. Set-based, so re-running with
// the same input always converges to the same state.
func (s *Storage) SetPermissionActivation(ctx context.Context, tenantID string, enabledFeatures []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPermissionActivation")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		deactivate := s.db.Statement(ctx).
			Update("feature_permissions").
			Set("is_active", false).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"tenant_id": tenantID})
		if len(enabledFeatures) > 0 {
			deactivate = deactivate.Where(sq.NotEq{"feature": enabledFeatures})
		}
		if _, err := deactivate.ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to deactivate permissions: %w", err)
		}

		if len(enabledFeatures) == 0 {
			return nil
		}

		_, err := s.db.Statement(ctx).
			Update("feature_permissions").
			Set("is_active", true).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"tenant_id": tenantID, "feature": enabledFeatures}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to activate permissions: %w", err)
		}

		return nil
	})
}

func (s *Storage) HasActivePermission(ctx context.Context, tenantID, feature, action, role string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasActivePermission")
	defer span.End()

	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From("feature_permissions").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"feature":   feature,
			"action":    action,
			"role":      role,
			"is_active": true,
		}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check permission: %w", err)
	}

	return true, nil
}

func (s *Storage) AppendActivity(ctx context.Context, a *types.TenantActivity) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendActivity")
	defer span.End()

	id := a.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate activity ID: %w", err)
		}
		id = uid.String()
	}

	userID := a.UserID
	if userID == "" {
		userID = types.SystemUserID
	}

	_, err := s.db.Statement(ctx).
		Insert("tenant_activities").
		Columns("id", "tenant_id", "user_id", "action", "resource", "details").
		Values(id, a.TenantID, userID, a.Action, a.Resource, a.Details).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return nil
}

func (s *Storage) ListActivitiesByTenantID(ctx context.Context, tenantID string, since time.Time) ([]*types.TenantActivity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivitiesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "action", "resource", "details", "created_at").
		From("tenant_activities").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*types.TenantActivity
	for rows.Next() {
		var a types.TenantActivity
		if err := rows.Scan(&a.ID, &a.TenantID, &a.UserID, &a.Action, &a.Resource, &a.Details, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}
