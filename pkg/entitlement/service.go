// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package entitlement implements the tenant provisioning and entitlement
// engine: tenant creation, feature toggling, permission reconciliation, quota
// checks and reporting.
package entitlement

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/canonical/entitlement-service/internal/events"
	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/storage"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	broadcaster BroadcasterInterface
	hashCost    int
	validate    *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, broadcaster BroadcasterInterface, hashCost int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s
	svc.broadcaster = broadcaster
	svc.hashCost = hashCost
	svc.validate = validator.New(validator.WithRequiredStructEnabled())

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}

// CreateTenant provisions a tenant together with its owner account and the
// default permission seed. The operation is safe to re-run: a tenant matched
// by id or slug is resumed rather than recreated, and each provisioning step
// only fills in what a previous attempt left missing.
func (s *Service) CreateTenant(ctx context.Context, in *CreateTenantInput) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.CreateTenant")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid tenant input: %w", err)
	}

	tenant, err := s.findExistingTenant(ctx, in.TenantData.ID, in.TenantData.Slug)
	if err != nil {
		return nil, err
	}

	if tenant == nil {
		tenant, err = s.insertTenant(ctx, &in.TenantData)
		if err != nil {
			return nil, err
		}
	} else {
		s.logger.Infof("resuming provisioning for existing tenant %s", tenant.ID)
	}

	owner, err := s.ensureOwner(ctx, tenant.ID, &in.AdminUser)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAdminUserEntry(ctx, tenant, owner); err != nil {
		return nil, err
	}

	if err := s.seedDefaultPermissions(ctx, tenant); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, tenant.ID, types.SystemUserID, "tenant_created", "tenant", types.JSONMap{
		"tenantName": tenant.Name,
		"plan":       tenant.Plan.Name,
		"ownerEmail": owner.Email,
	})

	s.broadcaster.Publish(events.Event{
		Type:     events.TenantCreated,
		TenantID: tenant.ID,
		Payload: map[string]any{
			"name": tenant.Name,
			"plan": tenant.Plan.Name,
		},
	})

	return tenant, nil
}

func (s *Service) findExistingTenant(ctx context.Context, id, slug string) (*types.Tenant, error) {
	if id != "" {
		t, err := s.storage.GetTenantByID(ctx, id)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	if slug != "" {
		t, err := s.storage.GetTenantBySlug(ctx, slug)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

func (s *Service) insertTenant(ctx context.Context, data *TenantData) (*types.Tenant, error) {
	status := data.Status
	if status == "" {
		status = types.TenantStatusTrial
	}

	features := data.Features
	if features == nil {
		features = types.FeatureMap{}
	}

	limits := data.Limits
	if limits == nil {
		limits = types.CountMap{}
	}

	// Usage counters mirror the limit key set, all starting at zero.
	usage := make(types.CountMap, len(limits))
	for resource := range limits {
		usage[resource] = 0
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		Domain:     data.Domain,
		Subdomain:  data.Subdomain,
		Type:       data.Type,
		Status:     status,
		Plan:       data.Plan,
		Features:   features,
		Limits:     limits,
		Usage:      usage,
		AdminUsers: types.AdminUsers{},
	})
	if err != nil {
		// A concurrent attempt may have won the insert race.
		if errors.Is(err, storage.ErrDuplicateKey) && data.Slug != "" {
			return s.storage.GetTenantBySlug(ctx, data.Slug)
		}
		return nil, err
	}

	return tenant, nil
}

func (s *Service) ensureOwner(ctx context.Context, tenantID string, admin *AdminUserData) (*types.User, error) {
	owner, err := s.storage.GetOwnerByTenantID(ctx, tenantID)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash owner password: %w", err)
	}

	owner, err = s.storage.CreateUser(ctx, &types.User{
		TenantID:     tenantID,
		Email:        admin.Email,
		PasswordHash: string(hash),
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		Role:         types.RoleOwner,
		Permissions:  types.StringList{types.PermissionWildcard},
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return s.storage.GetOwnerByTenantID(ctx, tenantID)
		}
		return nil, err
	}

	return owner, nil
}

func (s *Service) ensureAdminUserEntry(ctx context.Context, tenant *types.Tenant, owner *types.User) error {
	for _, au := range tenant.AdminUsers {
		if au.UserID == owner.ID {
			return nil
		}
	}

	tenant.AdminUsers = append(tenant.AdminUsers, types.AdminUser{
		UserID:      owner.ID,
		Email:       owner.Email,
		Role:        owner.Role,
		Permissions: owner.Permissions,
		IsActive:    owner.IsActive,
	})

	return s.storage.UpdateTenantAdminUsers(ctx, tenant.ID, tenant.AdminUsers)
}

func (s *Service) seedDefaultPermissions(ctx context.Context, tenant *types.Tenant) error {
	for _, feature := range types.CoreFeatures {
		enabled := tenant.Features[feature].Enabled
		for _, grant := range defaultPermissionSeed[feature] {
			_, err := s.storage.CreatePermission(ctx, &types.FeaturePermission{
				TenantID: tenant.ID,
				Feature:  feature,
				Action:   grant.action,
				Role:     grant.role,
				IsActive: enabled,
			})
			if err != nil {
				return fmt.Errorf("failed to seed permission %s:%s:%s: %w", feature, grant.action, grant.role, err)
			}
		}
	}

	return nil
}

// UpdateFeatures merges the given feature states into the tenant's feature map
// and reconciles the permission table against the result. Keys absent from the
// input keep their current state.
func (s *Service) UpdateFeatures(ctx context.Context, in *UpdateFeaturesInput) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.UpdateFeatures")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid feature update input: %w", err)
	}

	tenant, err := s.storage.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	if tenant.Features == nil {
		tenant.Features = types.FeatureMap{}
	}

	changed := make([]string, 0, len(in.Features))
	for key, state := range in.Features {
		tenant.Features[key] = state
		changed = append(changed, key)
	}
	sort.Strings(changed)

	if err := s.storage.UpdateTenantFeatures(ctx, tenant.ID, tenant.Features); err != nil {
		return nil, err
	}

	if err := s.storage.SetPermissionActivation(ctx, tenant.ID, tenant.EnabledFeatures()); err != nil {
		return nil, fmt.Errorf("failed to sync permissions for tenant %s: %w", tenant.ID, err)
	}

	s.recordActivity(ctx, tenant.ID, in.UpdatedBy, "features_updated", "features", types.JSONMap{
		"changedFeatures": changed,
	})

	s.broadcaster.Publish(events.Event{
		Type:     events.TenantFeaturesUpdated,
		TenantID: tenant.ID,
		Payload: map[string]any{
			"features": tenant.Features,
		},
	})

	return tenant, nil
}

// SyncPermissions reconciles the tenant's permission rows against its current
// feature map. Re-running it without a feature change is a no-op.
func (s *Service) SyncPermissions(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.SyncPermissions")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return err
	}

	return s.storage.SetPermissionActivation(ctx, tenant.ID, tenant.EnabledFeatures())
}

// CheckLimits compares usage against limits and reports every resource whose
// usage strictly exceeds its ceiling. Reaching a limit exactly is fine.
func (s *Service) CheckLimits(ctx context.Context, tenantID string) ([]types.LimitViolation, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.CheckLimits")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resources := make([]string, 0, len(tenant.Limits))
	for resource := range tenant.Limits {
		resources = append(resources, resource)
	}
	sort.Strings(resources)

	var violations []types.LimitViolation
	for _, resource := range resources {
		limit := tenant.Limits[resource]
		usage := tenant.Usage[resource]
		if usage > limit {
			violations = append(violations, types.LimitViolation{
				Resource: resource,
				Limit:    limit,
				Usage:    usage,
				Exceeded: usage - limit,
			})
		}
	}

	if len(violations) == 0 {
		return nil, nil
	}

	s.logger.Warnf("tenant %s exceeds %d resource limits", tenant.ID, len(violations))

	s.recordActivity(ctx, tenant.ID, types.SystemUserID, "limit_violation", "limits", types.JSONMap{
		"violations": violations,
	})

	s.broadcaster.Publish(events.Event{
		Type:     events.TenantLimitViolation,
		TenantID: tenant.ID,
		Payload: map[string]any{
			"violations": violations,
		},
	})

	return violations, nil
}

// GenerateReport assembles a point-in-time report for the tenant. Unknown
// report types fall back to the general report.
func (s *Service) GenerateReport(ctx context.Context, in *GenerateReportInput) (*types.Report, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.GenerateReport")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid report input: %w", err)
	}

	tenant, err := s.storage.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	period := in.PeriodDays
	if period <= 0 {
		period = types.DefaultReportPeriodDays
	}

	reportType := in.ReportType
	switch reportType {
	case types.ReportTypeUsage, types.ReportTypeFeatures, types.ReportTypeActivity:
	default:
		reportType = types.ReportTypeGeneral
	}

	report := &types.Report{
		TenantID:    tenant.ID,
		ReportType:  reportType,
		PeriodDays:  period,
		GeneratedAt: time.Now().UTC(),
	}

	if reportType == types.ReportTypeUsage || reportType == types.ReportTypeGeneral {
		report.Usage = buildUsageReport(tenant)
	}

	if reportType == types.ReportTypeFeatures || reportType == types.ReportTypeGeneral {
		report.Features = buildFeatureReport(tenant)
	}

	if reportType == types.ReportTypeActivity || reportType == types.ReportTypeGeneral {
		activity, err := s.buildActivityReport(ctx, tenant.ID, period)
		if err != nil {
			return nil, err
		}
		report.Activity = activity
	}

	if reportType == types.ReportTypeGeneral {
		report.Summary = &types.TenantSummary{
			Name:     tenant.Name,
			Type:     tenant.Type,
			Status:   tenant.Status,
			PlanTier: tenant.Plan.Tier,
		}
	}

	return report, nil
}

func buildUsageReport(tenant *types.Tenant) *types.UsageReport {
	utilization := make(map[string]types.ResourceUtilization, len(tenant.Limits))
	for resource, limit := range tenant.Limits {
		usage := tenant.Usage[resource]
		var pct int64
		if limit > 0 {
			pct = int64(math.Round(float64(usage) / float64(limit) * 100))
		}
		utilization[resource] = types.ResourceUtilization{
			Limit:      limit,
			Usage:      usage,
			Percentage: pct,
		}
	}

	return &types.UsageReport{Utilization: utilization}
}

func buildFeatureReport(tenant *types.Tenant) *types.FeatureReport {
	enabled := make([]string, 0, len(tenant.Features))
	disabled := make([]string, 0, len(tenant.Features))
	for key, state := range tenant.Features {
		if state.Enabled {
			enabled = append(enabled, key)
		} else {
			disabled = append(disabled, key)
		}
	}
	sort.Strings(enabled)
	sort.Strings(disabled)

	return &types.FeatureReport{
		EnabledFeatures:  enabled,
		DisabledFeatures: disabled,
		Features:         tenant.Features,
	}
}

func (s *Service) buildActivityReport(ctx context.Context, tenantID string, periodDays int) (*types.ActivityReport, error) {
	since := time.Now().UTC().AddDate(0, 0, -periodDays)

	activities, err := s.storage.ListActivitiesByTenantID(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}

	entries := make([]types.ActivityEntry, 0, len(activities))
	for _, a := range activities {
		entries = append(entries, types.ActivityEntry{
			Action:    a.Action,
			Resource:  a.Resource,
			Timestamp: a.CreatedAt,
			UserID:    a.UserID,
		})
	}

	return &types.ActivityReport{Entries: entries}, nil
}

func (s *Service) GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, tenantID)
}

// CheckFeatureAccess decides whether a role may perform an action on a
// feature. Owners always may; everyone else needs the feature enabled on the
// tenant and a matching active grant.
func (s *Service) CheckFeatureAccess(ctx context.Context, tenantID, feature, action, role string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "entitlement.Service.CheckFeatureAccess")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return false, err
	}

	if role == types.RoleOwner {
		return true, nil
	}

	if state, ok := tenant.Features[feature]; !ok || !state.Enabled {
		return false, nil
	}

	return s.storage.HasActivePermission(ctx, tenant.ID, feature, action, role)
}

// recordActivity is best-effort: a failed audit write is logged, never fatal
// to the operation that produced it.
func (s *Service) recordActivity(ctx context.Context, tenantID, userID, action, resource string, details types.JSONMap) {
	err := s.storage.AppendActivity(ctx, &types.TenantActivity{
		TenantID: tenantID,
		UserID:   userID,
		Action:   action,
		Resource: resource,
		Details:  details,
	})
	if err != nil {
		s.logger.Errorf("failed to record %s activity for tenant %s: %v", action, tenantID, err)
	}
}
