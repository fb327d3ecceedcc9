// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scheduler

import (
	"context"
)

type StorageInterface interface {
	ListActiveTenantIDs(ctx context.Context, offset, limit uint64) ([]string, error)
	ResetUsageCounters(ctx context.Context, resources []string) (int64, error)
}

type QueueInterface interface {
	Enqueue(ctx context.Context, jobType string, data any) (string, error)
}
