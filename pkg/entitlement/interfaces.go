// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"time"

	"github.com/canonical/entitlement-service/internal/events"
	"github.com/canonical/entitlement-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, in *CreateTenantInput) (*types.Tenant, error)
	UpdateFeatures(ctx context.Context, in *UpdateFeaturesInput) (*types.Tenant, error)
	SyncPermissions(ctx context.Context, tenantID string) error
	CheckLimits(ctx context.Context, tenantID string) ([]types.LimitViolation, error)
	GenerateReport(ctx context.Context, in *GenerateReportInput) (*types.Report, error)
	GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error)
	CheckFeatureAccess(ctx context.Context, tenantID, feature, action, role string) (bool, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	UpdateTenantFeatures(ctx context.Context, id string, features types.FeatureMap) error
	UpdateTenantAdminUsers(ctx context.Context, id string, adminUsers types.AdminUsers) error
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetOwnerByTenantID(ctx context.Context, tenantID string) (*types.User, error)
	CreatePermission(ctx context.Context, p *types.FeaturePermission) (bool, error)
	SetPermissionActivation(ctx context.Context, tenantID string, enabledFeatures []string) error
	HasActivePermission(ctx context.Context, tenantID, feature, action, role string) (bool, error)
	AppendActivity(ctx context.Context, a *types.TenantActivity) error
	ListActivitiesByTenantID(ctx context.Context, tenantID string, since time.Time) ([]*types.TenantActivity, error)
}

type BroadcasterInterface interface {
	Publish(ev events.Event)
}

type QueueInterface interface {
	Enqueue(ctx context.Context, jobType string, data any) (string, error)
}
