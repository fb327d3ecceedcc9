// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"

	"github.com/canonical/entitlement-service/internal/types"
)

type QueueInterface interface {
	Enqueue(ctx context.Context, jobType string, data any) (string, error)
	Dequeue(ctx context.Context) (*types.Job, error)
	Complete(ctx context.Context, id string, result any) error
	Fail(ctx context.Context, id string, jobErr error) error
	ReclaimStale(ctx context.Context) (int64, error)
}
