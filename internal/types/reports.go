// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Report types accepted by generate_report. Anything else falls back to
// ReportTypeGeneral.
const (
	ReportTypeUsage    = "usage"
	ReportTypeFeatures = "features"
	ReportTypeActivity = "activity"
	ReportTypeGeneral  = "general"
)

// DefaultReportPeriodDays bounds the activity window when the caller omits a
// period.
const DefaultReportPeriodDays = 30

type ResourceUtilization struct {
	Limit      int64 `json:"limit"`
	Usage      int64 `json:"usage"`
	Percentage int64 `json:"percentage"`
}

type UsageReport struct {
	Utilization map[string]ResourceUtilization `json:"utilization"`
}

type FeatureReport struct {
	EnabledFeatures  []string   `json:"enabledFeatures"`
	DisabledFeatures []string   `json:"disabledFeatures"`
	Features         FeatureMap `json:"features"`
}

type ActivityEntry struct {
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
}

type ActivityReport struct {
	Entries []ActivityEntry `json:"entries"`
}

type TenantSummary struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	PlanTier string `json:"planTier"`
}

// Report is the composed generate_report output. Only the sections for the
// requested report type are populated; general fills everything.
type Report struct {
	TenantID    string          `json:"tenantId"`
	ReportType  string          `json:"reportType"`
	PeriodDays  int             `json:"periodDays"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Summary     *TenantSummary  `json:"summary,omitempty"`
	Usage       *UsageReport    `json:"usage,omitempty"`
	Features    *FeatureReport  `json:"features,omitempty"`
	Activity    *ActivityReport `json:"activity,omitempty"`
}
