// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/canonical/entitlement-service/internal/types"
	"github.com/canonical/entitlement-service/pkg/entitlement"
	"github.com/go-playground/validator/v10"
)

type tenantIDPayload struct {
	TenantID string `json:"tenantId" validate:"required"`
}

// JobHandlers binds each lifecycle job type to an entitlement service call.
type JobHandlers struct {
	service  ServiceInterface
	validate *validator.Validate
}

func NewJobHandlers(service ServiceInterface) *JobHandlers {
	h := new(JobHandlers)

	h.service = service
	h.validate = validator.New(validator.WithRequiredStructEnabled())

	return h
}

func (h *JobHandlers) RegisterAll(r *Registry) {
	r.Register(types.JobTypeCreateTenant, h.createTenant)
	r.Register(types.JobTypeUpdateFeatures, h.updateFeatures)
	r.Register(types.JobTypeCheckLimits, h.checkLimits)
	r.Register(types.JobTypeSyncPermissions, h.syncPermissions)
	r.Register(types.JobTypeGenerateReport, h.generateReport)
}

func (h *JobHandlers) createTenant(ctx context.Context, data json.RawMessage) (any, error) {
	var in entitlement.CreateTenantInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid create_tenant payload: %w", err)
	}

	tenant, err := h.service.CreateTenant(ctx, &in)
	if err != nil {
		return nil, err
	}

	return map[string]any{"tenantId": tenant.ID, "status": tenant.Status}, nil
}

func (h *JobHandlers) updateFeatures(ctx context.Context, data json.RawMessage) (any, error) {
	var in entitlement.UpdateFeaturesInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid update_features payload: %w", err)
	}

	tenant, err := h.service.UpdateFeatures(ctx, &in)
	if err != nil {
		return nil, err
	}

	return map[string]any{"tenantId": tenant.ID, "enabledFeatures": tenant.EnabledFeatures()}, nil
}

func (h *JobHandlers) checkLimits(ctx context.Context, data json.RawMessage) (any, error) {
	var in tenantIDPayload
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid check_limits payload: %w", err)
	}
	if err := h.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("invalid check_limits payload: %w", err)
	}

	violations, err := h.service.CheckLimits(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	return map[string]any{"tenantId": in.TenantID, "violations": violations}, nil
}

func (h *JobHandlers) syncPermissions(ctx context.Context, data json.RawMessage) (any, error) {
	var in tenantIDPayload
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid sync_permissions payload: %w", err)
	}
	if err := h.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("invalid sync_permissions payload: %w", err)
	}

	if err := h.service.SyncPermissions(ctx, in.TenantID); err != nil {
		return nil, err
	}

	return map[string]any{"tenantId": in.TenantID, "synced": true}, nil
}

func (h *JobHandlers) generateReport(ctx context.Context, data json.RawMessage) (any, error) {
	var in entitlement.GenerateReportInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid generate_report payload: %w", err)
	}

	report, err := h.service.GenerateReport(ctx, &in)
	if err != nil {
		return nil, err
	}

	return report, nil
}
