// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

// Job types carried by the tenant lifecycle queue.
const (
	JobTypeCreateTenant    = "create_tenant"
	JobTypeUpdateFeatures  = "update_features"
	JobTypeCheckLimits     = "check_limits"
	JobTypeSyncPermissions = "sync_permissions"
	JobTypeGenerateReport  = "generate_report"
)

// Job statuses.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job is one unit of asynchronous work. Delivery is at-least-once; handlers
// must tolerate re-execution.
type Job struct {
	ID          string          `db:"id"`
	Queue       string          `db:"queue"`
	JobType     string          `db:"job_type"`
	Data        json.RawMessage `db:"data"`
	Status      string          `db:"status"`
	Attempts    int             `db:"attempts"`
	MaxAttempts int             `db:"max_attempts"`
	LastError   string          `db:"last_error"`
	ScheduledAt time.Time       `db:"scheduled_at"`
	CreatedAt   time.Time       `db:"created_at"`
}
