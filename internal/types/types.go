// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant statuses. New tenants start as trial unless the caller says otherwise.
const (
	TenantStatusActive    = "active"
	TenantStatusInactive  = "inactive"
	TenantStatusSuspended = "suspended"
	TenantStatusTrial     = "trial"
)

// Tenant organization types.
const (
	TenantTypeLibrary    = "library"
	TenantTypeSchool     = "school"
	TenantTypeUniversity = "university"
	TenantTypeCoaching   = "coaching"
	TenantTypeTraining   = "training"
	TenantTypeCorporate  = "corporate"
)

// Plan tiers.
const (
	PlanTierFree       = "free"
	PlanTierBasic      = "basic"
	PlanTierPremium    = "premium"
	PlanTierEnterprise = "enterprise"
)

// User roles. Owners are created transactionally with their tenant and hold
// the implicit wildcard permission.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Permission actions.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionManage = "manage"
)

// PermissionWildcard is stored on owner user rows for display parity; the
// access check short-circuits on the owner role instead of matching it.
const PermissionWildcard = "*"

// FeatureCatalog is the fixed set of feature keys a tenant's feature map may
// contain.
var FeatureCatalog = []string{
	"userManagement",
	"feeManagement",
	"attendance",
	"reports",
	"socialMedia",
	"aiAgents",
	"courseManagement",
	"studentManagement",
	"library",
	"examinations",
	"timetable",
	"communication",
	"transport",
	"hostel",
	"inventory",
	"certificates",
	"events",
	"integrations",
}

// CoreFeatures receive the default permission seed at provisioning.
var CoreFeatures = []string{
	"userManagement",
	"feeManagement",
	"attendance",
	"reports",
}

// ResourceKeys is the shared key set of the limits and usage maps.
var ResourceKeys = []string{
	"users",
	"students",
	"courses",
	"storage",
	"apiCalls",
	"emails",
	"sms",
	"integrations",
}

// AutoResetResources are zeroed by the daily reset; the remaining counters are
// cumulative and never auto-reset.
var AutoResetResources = []string{"apiCalls", "emails", "sms"}

type Plan struct {
	Name           string     `json:"name"`
	Tier           string     `json:"tier"`
	Pricing        float64    `json:"pricing,omitempty"`
	BillingCycle   string     `json:"billingCycle,omitempty"`
	TrialEndsAt    *time.Time `json:"trialEndsAt,omitempty"`
	SubscriptionID string     `json:"subscriptionId,omitempty"`
	CustomerID     string     `json:"customerId,omitempty"`
}

type FeatureState struct {
	Enabled     bool     `json:"enabled"`
	Permissions []string `json:"permissions,omitempty"`
}

type AdminUser struct {
	UserID      string     `json:"userId"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions,omitempty"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	IsActive    bool       `json:"isActive"`
}

type Tenant struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Slug       string     `db:"slug"`
	Domain     string     `db:"domain"`
	Subdomain  string     `db:"subdomain"`
	Type       string     `db:"type"`
	Status     string     `db:"status"`
	Plan       Plan       `db:"plan"`
	Features   FeatureMap `db:"features"`
	Limits     CountMap   `db:"limits"`
	Usage      CountMap   `db:"usage"`
	AdminUsers AdminUsers `db:"admin_users"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// EnabledFeatures returns the feature keys currently enabled for the tenant.
func (t *Tenant) EnabledFeatures() []string {
	var enabled []string
	for key, state := range t.Features {
		if state.Enabled {
			enabled = append(enabled, key)
		}
	}
	return enabled
}

type User struct {
	ID           string     `db:"id"`
	TenantID     string     `db:"tenant_id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Role         string     `db:"role"`
	Permissions  StringList `db:"permissions"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type FeaturePermission struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	Feature    string    `db:"feature"`
	Action     string    `db:"action"`
	Role       string    `db:"role"`
	Conditions JSONMap   `db:"conditions"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// SystemUserID marks activity entries produced by automated jobs rather than
// a human actor.
const SystemUserID = "system"

type TenantActivity struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	Resource  string    `db:"resource"`
	Details   JSONMap   `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

// LimitViolation records one resource whose usage exceeded its ceiling.
// Reaching the limit exactly is not a violation.
type LimitViolation struct {
	Resource string `json:"resource"`
	Limit    int64  `json:"limit"`
	Usage    int64  `json:"usage"`
	Exceeded int64  `json:"exceeded"`
}
