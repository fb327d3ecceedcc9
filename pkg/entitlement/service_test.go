// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canonical/entitlement-service/internal/events"
	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/storage"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -build_flags=--mod=mod -package entitlement -destination ./mock_entitlement.go -source=./interfaces.go

const defaultSeedSize = 13

func newTestService(mockStorage *MockStorageInterface, mockBroadcaster *MockBroadcasterInterface) *Service {
	return NewService(
		mockStorage,
		mockBroadcaster,
		bcrypt.MinCost,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func validCreateInput() *CreateTenantInput {
	return &CreateTenantInput{
		TenantData: TenantData{
			Name: "Acme School",
			Slug: "acme-school",
			Type: types.TenantTypeSchool,
			Plan: types.Plan{Name: "Basic", Tier: types.PlanTierBasic},
			Features: types.FeatureMap{
				"userManagement": {Enabled: true},
				"attendance":     {Enabled: true},
			},
			Limits: types.CountMap{"users": 100, "students": 500},
		},
		AdminUser: AdminUserData{
			Email:     "owner@acme.example",
			Password:  "s3cret-password",
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
	}
}

func TestService_CreateTenant_ProvisionsNewTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	in := validCreateInput()
	created := &types.Tenant{
		ID:       "tenant-1",
		Name:     in.TenantData.Name,
		Slug:     in.TenantData.Slug,
		Status:   types.TenantStatusTrial,
		Plan:     in.TenantData.Plan,
		Features: in.TenantData.Features,
		Limits:   in.TenantData.Limits,
		Usage:    types.CountMap{"users": 0, "students": 0},
	}
	owner := &types.User{
		ID:          "user-1",
		TenantID:    "tenant-1",
		Email:       in.AdminUser.Email,
		Role:        types.RoleOwner,
		Permissions: types.StringList{types.PermissionWildcard},
		IsActive:    true,
	}

	mockStorage.EXPECT().GetTenantBySlug(gomock.Any(), "acme-school").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			if tenant.Status != types.TenantStatusTrial {
				t.Errorf("expected trial status by default, got %s", tenant.Status)
			}
			if len(tenant.Usage) != len(tenant.Limits) {
				t.Errorf("expected usage keys to mirror limits, got %v", tenant.Usage)
			}
			for resource, count := range tenant.Usage {
				if count != 0 {
					t.Errorf("expected zero usage for %s, got %d", resource, count)
				}
			}
			return created, nil
		})
	mockStorage.EXPECT().GetOwnerByTenantID(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			if u.Role != types.RoleOwner {
				t.Errorf("expected owner role, got %s", u.Role)
			}
			if u.PasswordHash == in.AdminUser.Password {
				t.Error("expected password to be hashed")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.AdminUser.Password)); err != nil {
				t.Errorf("stored hash does not match password: %v", err)
			}
			return owner, nil
		})
	mockStorage.EXPECT().UpdateTenantAdminUsers(gomock.Any(), "tenant-1", gomock.Any()).Return(nil)
	mockStorage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(true, nil).Times(defaultSeedSize)
	mockStorage.EXPECT().AppendActivity(gomock.Any(), gomock.Any()).Return(nil)
	mockBroadcaster.EXPECT().Publish(gomock.Any()).Do(func(ev events.Event) {
		if ev.Type != events.TenantCreated {
			t.Errorf("expected %s event, got %s", events.TenantCreated, ev.Type)
		}
		if ev.TenantID != "tenant-1" {
			t.Errorf("expected tenant-1, got %s", ev.TenantID)
		}
	})

	tenant, err := s.CreateTenant(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.ID != "tenant-1" {
		t.Errorf("expected tenant-1, got %s", tenant.ID)
	}
}

func TestService_CreateTenant_ResumesExistingTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	in := validCreateInput()
	owner := &types.User{ID: "user-1", TenantID: "tenant-1", Email: in.AdminUser.Email, Role: types.RoleOwner, IsActive: true}
	existing := &types.Tenant{
		ID:       "tenant-1",
		Name:     in.TenantData.Name,
		Slug:     in.TenantData.Slug,
		Status:   types.TenantStatusTrial,
		Features: in.TenantData.Features,
		AdminUsers: types.AdminUsers{
			{UserID: "user-1", Email: owner.Email, Role: types.RoleOwner, IsActive: true},
		},
	}

	// A second run must not insert anything that already exists.
	mockStorage.EXPECT().GetTenantBySlug(gomock.Any(), "acme-school").Return(existing, nil)
	mockStorage.EXPECT().GetOwnerByTenantID(gomock.Any(), "tenant-1").Return(owner, nil)
	mockStorage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(false, nil).Times(defaultSeedSize)
	mockStorage.EXPECT().AppendActivity(gomock.Any(), gomock.Any()).Return(nil)
	mockBroadcaster.EXPECT().Publish(gomock.Any())

	tenant, err := s.CreateTenant(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.ID != existing.ID {
		t.Errorf("expected %s, got %s", existing.ID, tenant.ID)
	}
}

func TestService_CreateTenant_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*CreateTenantInput)
	}{
		{
			name:   "missing name",
			mutate: func(in *CreateTenantInput) { in.TenantData.Name = "" },
		},
		{
			name:   "invalid type",
			mutate: func(in *CreateTenantInput) { in.TenantData.Type = "franchise" },
		},
		{
			name:   "invalid email",
			mutate: func(in *CreateTenantInput) { in.AdminUser.Email = "not-an-email" },
		},
		{
			name:   "short password",
			mutate: func(in *CreateTenantInput) { in.AdminUser.Password = "short" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockBroadcaster := NewMockBroadcasterInterface(ctrl)
			s := newTestService(mockStorage, mockBroadcaster)

			in := validCreateInput()
			tc.mutate(in)

			if _, err := s.CreateTenant(context.Background(), in); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestService_CreateTenant_ActivityFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	in := validCreateInput()
	owner := &types.User{ID: "user-1", TenantID: "tenant-1", Role: types.RoleOwner, IsActive: true}
	existing := &types.Tenant{
		ID:         "tenant-1",
		Slug:       in.TenantData.Slug,
		Features:   in.TenantData.Features,
		AdminUsers: types.AdminUsers{{UserID: "user-1", Role: types.RoleOwner}},
	}

	mockStorage.EXPECT().GetTenantBySlug(gomock.Any(), "acme-school").Return(existing, nil)
	mockStorage.EXPECT().GetOwnerByTenantID(gomock.Any(), "tenant-1").Return(owner, nil)
	mockStorage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(false, nil).Times(defaultSeedSize)
	mockStorage.EXPECT().AppendActivity(gomock.Any(), gomock.Any()).Return(errors.New("audit table down"))
	mockBroadcaster.EXPECT().Publish(gomock.Any())

	if _, err := s.CreateTenant(context.Background(), in); err != nil {
		t.Fatalf("expected activity failure to be swallowed, got %v", err)
	}
}

func TestService_UpdateFeatures(t *testing.T) {
	notFoundErr := storage.ErrNotFound

	testCases := []struct {
		name        string
		input       *UpdateFeaturesInput
		setupMocks  func(*MockStorageInterface, *MockBroadcasterInterface)
		expectedErr error
	}{
		{
			name: "merges and reconciles",
			input: &UpdateFeaturesInput{
				TenantID:  "tenant-1",
				Features:  types.FeatureMap{"attendance": {Enabled: false}},
				UpdatedBy: "user-9",
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockBroadcaster *MockBroadcasterInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{
					ID: "tenant-1",
					Features: types.FeatureMap{
						"reports":    {Enabled: true},
						"attendance": {Enabled: true},
					},
				}, nil)
				mockStorage.EXPECT().UpdateTenantFeatures(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, features types.FeatureMap) error {
						if features["attendance"].Enabled {
							t.Error("expected attendance to be disabled after merge")
						}
						if !features["reports"].Enabled {
							t.Error("expected untouched reports key to stay enabled")
						}
						return nil
					})
				mockStorage.EXPECT().SetPermissionActivation(gomock.Any(), "tenant-1", []string{"reports"}).Return(nil)
				mockStorage.EXPECT().AppendActivity(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.TenantActivity) error {
						if a.UserID != "user-9" {
							t.Errorf("expected actor user-9, got %s", a.UserID)
						}
						if a.Action != "features_updated" {
							t.Errorf("expected features_updated action, got %s", a.Action)
						}
						return nil
					})
				mockBroadcaster.EXPECT().Publish(gomock.Any()).Do(func(ev events.Event) {
					if ev.Type != events.TenantFeaturesUpdated {
						t.Errorf("expected %s event, got %s", events.TenantFeaturesUpdated, ev.Type)
					}
				})
			},
		},
		{
			name: "tenant not found",
			input: &UpdateFeaturesInput{
				TenantID: "missing",
				Features: types.FeatureMap{"reports": {Enabled: true}},
			},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockBroadcasterInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "missing").Return(nil, notFoundErr)
			},
			expectedErr: notFoundErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockBroadcaster := NewMockBroadcasterInterface(ctrl)
			s := newTestService(mockStorage, mockBroadcaster)

			tc.setupMocks(mockStorage, mockBroadcaster)

			_, err := s.UpdateFeatures(context.Background(), tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_SyncPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{
		ID: "tenant-1",
		Features: types.FeatureMap{
			"reports":    {Enabled: true},
			"attendance": {Enabled: false},
		},
	}, nil)
	mockStorage.EXPECT().SetPermissionActivation(gomock.Any(), "tenant-1", []string{"reports"}).Return(nil)

	if err := s.SyncPermissions(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CheckLimits(t *testing.T) {
	testCases := []struct {
		name               string
		tenant             *types.Tenant
		expectedViolations []types.LimitViolation
		expectSideEffects  bool
	}{
		{
			name: "at limit is not a violation",
			tenant: &types.Tenant{
				ID:     "tenant-1",
				Limits: types.CountMap{"users": 100},
				Usage:  types.CountMap{"users": 100},
			},
			expectedViolations: nil,
			expectSideEffects:  false,
		},
		{
			name: "one over the limit",
			tenant: &types.Tenant{
				ID:     "tenant-1",
				Limits: types.CountMap{"users": 100},
				Usage:  types.CountMap{"users": 101},
			},
			expectedViolations: []types.LimitViolation{
				{Resource: "users", Limit: 100, Usage: 101, Exceeded: 1},
			},
			expectSideEffects: true,
		},
		{
			name: "multiple violations reported in resource order",
			tenant: &types.Tenant{
				ID:     "tenant-1",
				Limits: types.CountMap{"users": 10, "emails": 50, "storage": 1000},
				Usage:  types.CountMap{"users": 25, "emails": 60, "storage": 400},
			},
			expectedViolations: []types.LimitViolation{
				{Resource: "emails", Limit: 50, Usage: 60, Exceeded: 10},
				{Resource: "users", Limit: 10, Usage: 25, Exceeded: 15},
			},
			expectSideEffects: true,
		},
		{
			name: "missing usage counter counts as zero",
			tenant: &types.Tenant{
				ID:     "tenant-1",
				Limits: types.CountMap{"users": 100},
				Usage:  types.CountMap{},
			},
			expectedViolations: nil,
			expectSideEffects:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockBroadcaster := NewMockBroadcasterInterface(ctrl)
			s := newTestService(mockStorage, mockBroadcaster)

			mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tc.tenant, nil)
			if tc.expectSideEffects {
				mockStorage.EXPECT().AppendActivity(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.TenantActivity) error {
						if a.UserID != types.SystemUserID {
							t.Errorf("expected system actor, got %s", a.UserID)
						}
						return nil
					})
				mockBroadcaster.EXPECT().Publish(gomock.Any()).Do(func(ev events.Event) {
					if ev.Type != events.TenantLimitViolation {
						t.Errorf("expected %s event, got %s", events.TenantLimitViolation, ev.Type)
					}
				})
			}

			violations, err := s.CheckLimits(context.Background(), "tenant-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(violations) != len(tc.expectedViolations) {
				t.Fatalf("expected %d violations, got %d", len(tc.expectedViolations), len(violations))
			}
			for i, expected := range tc.expectedViolations {
				if violations[i] != expected {
					t.Errorf("violation %d: expected %+v, got %+v", i, expected, violations[i])
				}
			}
		})
	}
}

func TestService_GenerateReport_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{
		ID:     "tenant-1",
		Limits: types.CountMap{"storage": 200, "users": 3, "apiCalls": 0},
		Usage:  types.CountMap{"storage": 50, "users": 2, "apiCalls": 10},
	}, nil)

	report, err := s.GenerateReport(context.Background(), &GenerateReportInput{
		TenantID:   "tenant-1",
		ReportType: types.ReportTypeUsage,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ReportType != types.ReportTypeUsage {
		t.Errorf("expected usage report, got %s", report.ReportType)
	}
	if report.PeriodDays != types.DefaultReportPeriodDays {
		t.Errorf("expected default period %d, got %d", types.DefaultReportPeriodDays, report.PeriodDays)
	}
	if report.Summary != nil || report.Features != nil || report.Activity != nil {
		t.Error("expected only the usage section to be populated")
	}

	expected := map[string]types.ResourceUtilization{
		"storage":  {Limit: 200, Usage: 50, Percentage: 25},
		"users":    {Limit: 3, Usage: 2, Percentage: 67},
		"apiCalls": {Limit: 0, Usage: 10, Percentage: 0},
	}
	for resource, want := range expected {
		got, ok := report.Usage.Utilization[resource]
		if !ok {
			t.Errorf("missing utilization entry for %s", resource)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %+v, got %+v", resource, want, got)
		}
	}
}

func TestService_GenerateReport_General(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockBroadcaster := NewMockBroadcasterInterface(ctrl)
	s := newTestService(mockStorage, mockBroadcaster)

	now := time.Now().UTC()
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{
		ID:     "tenant-1",
		Name:   "Acme School",
		Type:   types.TenantTypeSchool,
		Status: types.TenantStatusActive,
		Plan:   types.Plan{Name: "Premium", Tier: types.PlanTierPremium},
		Features: types.FeatureMap{
			"reports":    {Enabled: true},
			"attendance": {Enabled: false},
		},
		Limits: types.CountMap{"users": 100},
		Usage:  types.CountMap{"users": 10},
	}, nil)
	mockStorage.EXPECT().ListActivitiesByTenantID(gomock.Any(), "tenant-1", gomock.Any()).Return([]*types.TenantActivity{
		{TenantID: "tenant-1", UserID: "user-1", Action: "features_updated", Resource: "features", CreatedAt: now},
	}, nil)

	// An unknown report type falls back to the general report.
	report, err := s.GenerateReport(context.Background(), &GenerateReportInput{
		TenantID:   "tenant-1",
		ReportType: "quarterly",
		PeriodDays: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ReportType != types.ReportTypeGeneral {
		t.Errorf("expected general report, got %s", report.ReportType)
	}
	if report.PeriodDays != 7 {
		t.Errorf("expected period 7, got %d", report.PeriodDays)
	}
	if report.Summary == nil || report.Usage == nil || report.Features == nil || report.Activity == nil {
		t.Fatal("expected all sections to be populated")
	}
	if report.Summary.PlanTier != types.PlanTierPremium {
		t.Errorf("expected premium tier, got %s", report.Summary.PlanTier)
	}
	if len(report.Features.EnabledFeatures) != 1 || report.Features.EnabledFeatures[0] != "reports" {
		t.Errorf("expected [reports] enabled, got %v", report.Features.EnabledFeatures)
	}
	if len(report.Features.DisabledFeatures) != 1 || report.Features.DisabledFeatures[0] != "attendance" {
		t.Errorf("expected [attendance] disabled, got %v", report.Features.DisabledFeatures)
	}
	if len(report.Activity.Entries) != 1 || report.Activity.Entries[0].Action != "features_updated" {
		t.Errorf("unexpected activity entries: %v", report.Activity.Entries)
	}
}

func TestService_CheckFeatureAccess(t *testing.T) {
	tenant := &types.Tenant{
		ID: "tenant-1",
		Features: types.FeatureMap{
			"reports":    {Enabled: true},
			"attendance": {Enabled: false},
		},
	}

	testCases := []struct {
		name       string
		feature    string
		action     string
		role       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:    "owner bypasses grants",
			feature: "attendance",
			action:  types.ActionManage,
			role:    types.RoleOwner,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expected: true,
		},
		{
			name:    "disabled feature denies even with a grant",
			feature: "attendance",
			action:  types.ActionRead,
			role:    types.RoleTeacher,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expected: false,
		},
		{
			name:    "unknown feature denies",
			feature: "socialMedia",
			action:  types.ActionRead,
			role:    types.RoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expected: false,
		},
		{
			name:    "enabled feature with active grant",
			feature: "reports",
			action:  types.ActionRead,
			role:    types.RoleManager,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
				mockStorage.EXPECT().HasActivePermission(gomock.Any(), "tenant-1", "reports", types.ActionRead, types.RoleManager).Return(true, nil)
			},
			expected: true,
		},
		{
			name:    "enabled feature without grant",
			feature: "reports",
			action:  types.ActionDelete,
			role:    types.RoleStudent,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
				mockStorage.EXPECT().HasActivePermission(gomock.Any(), "tenant-1", "reports", types.ActionDelete, types.RoleStudent).Return(false, nil)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockBroadcaster := NewMockBroadcasterInterface(ctrl)
			s := newTestService(mockStorage, mockBroadcaster)

			tc.setupMocks(mockStorage)

			authorized, err := s.CheckFeatureAccess(context.Background(), "tenant-1", tc.feature, tc.action, tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if authorized != tc.expected {
				t.Errorf("expected authorized=%v, got %v", tc.expected, authorized)
			}
		})
	}
}
