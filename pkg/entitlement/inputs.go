// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"github.com/canonical/entitlement-service/internal/types"
)

type TenantData struct {
	ID        string           `json:"id,omitempty" validate:"omitempty,uuid"`
	Name      string           `json:"name" validate:"required"`
	Slug      string           `json:"slug,omitempty"`
	Domain    string           `json:"domain,omitempty"`
	Subdomain string           `json:"subdomain,omitempty"`
	Type      string           `json:"type" validate:"required,oneof=library school university coaching training corporate"`
	Status    string           `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended trial"`
	Plan      types.Plan       `json:"plan"`
	Features  types.FeatureMap `json:"features,omitempty"`
	Limits    types.CountMap   `json:"limits,omitempty"`
}

type AdminUserData struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type CreateTenantInput struct {
	TenantData TenantData    `json:"tenantData" validate:"required"`
	AdminUser  AdminUserData `json:"adminUser" validate:"required"`
}

type UpdateFeaturesInput struct {
	TenantID  string           `json:"tenantId" validate:"required"`
	Features  types.FeatureMap `json:"features" validate:"required,min=1"`
	UpdatedBy string           `json:"updatedBy,omitempty"`
}

type GenerateReportInput struct {
	TenantID   string `json:"tenantId" validate:"required"`
	ReportType string `json:"reportType,omitempty"`
	PeriodDays int    `json:"periodDays,omitempty" validate:"omitempty,min=1,max=365"`
}
