// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package worker

import (
	"context"

	"github.com/canonical/entitlement-service/internal/types"
	"github.com/canonical/entitlement-service/pkg/entitlement"
)

type QueueInterface interface {
	Dequeue(ctx context.Context) (*types.Job, error)
	Complete(ctx context.Context, id string, result any) error
	Fail(ctx context.Context, id string, jobErr error) error
	ReclaimStale(ctx context.Context) (int64, error)
}

type ServiceInterface interface {
	CreateTenant(ctx context.Context, in *entitlement.CreateTenantInput) (*types.Tenant, error)
	UpdateFeatures(ctx context.Context, in *entitlement.UpdateFeaturesInput) (*types.Tenant, error)
	SyncPermissions(ctx context.Context, tenantID string) error
	CheckLimits(ctx context.Context, tenantID string) ([]types.LimitViolation, error)
	GenerateReport(ctx context.Context, in *entitlement.GenerateReportInput) (*types.Report, error)
}
