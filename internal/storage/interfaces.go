// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/entitlement-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListActiveTenantIDs(ctx context.Context, offset, limit uint64) ([]string, error)
	UpdateTenantFeatures(ctx context.Context, id string, features types.FeatureMap) error
	UpdateTenantAdminUsers(ctx context.Context, id string, adminUsers types.AdminUsers) error
	ResetUsageCounters(ctx context.Context, resources []string) (int64, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetOwnerByTenantID(ctx context.Context, tenantID string) (*types.User, error)

	CreatePermission(ctx context.Context, p *types.FeaturePermission) (bool, error)
	ListPermissionsByTenantID(ctx context.Context, tenantID string) ([]*types.FeaturePermission, error)
	SetPermissionActivation(ctx context.Context, tenantID string, enabledFeatures []string) error
	HasActivePermission(ctx context.Context, tenantID, feature, action, role string) (bool, error)

	AppendActivity(ctx context.Context, a *types.TenantActivity) error
	ListActivitiesByTenantID(ctx context.Context, tenantID string, since time.Time) ([]*types.TenantActivity, error)
}
