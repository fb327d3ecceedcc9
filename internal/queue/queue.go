// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package queue implements a durable, at-least-once job queue on top of the
// jobs table. Claims use FOR UPDATE SKIP LOCKED so multiple consumers never
// double-process a pending job; redelivery of a failed job is governed by an
// attempt counter with exponential backoff.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/entitlement-service/internal/db"
	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const retryBackoffBase = 30 * time.Second

var _ QueueInterface = (*Queue)(nil)

type Config struct {
	Name              string
	MaxAttempts       int
	VisibilityTimeout time.Duration
}

type Queue struct {
	db  db.DBClientInterface
	cfg Config

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewQueue(cfg Config, c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Queue {
	q := new(Queue)

	q.cfg = cfg
	q.db = c

	q.logger = logger
	q.tracer = tracer
	q.monitor = monitor

	return q
}

// Enqueue persists a new pending job and returns its id.
func (q *Queue) Enqueue(ctx context.Context, jobType string, data any) (string, error) {
	ctx, span := q.tracer.Start(ctx, "queue.Enqueue")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate job ID: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job data: %w", err)
	}

	_, err = q.db.Statement(ctx).
		Insert("jobs").
		Columns("id", "queue", "job_type", "data", "status", "attempts", "max_attempts", "scheduled_at").
		Values(id.String(), q.cfg.Name, jobType, payload, types.JobStatusPending, 0, q.cfg.MaxAttempts, sq.Expr("now()")).
		ExecContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}

	return id.String(), nil
}

// Dequeue claims the oldest due pending job, marking it running and bumping
// its attempt counter. Returns (nil, nil) when the queue is empty.
func (q *Queue) Dequeue(ctx context.Context) (*types.Job, error) {
	ctx, span := q.tracer.Start(ctx, "queue.Dequeue")
	defer span.End()

	var j types.Job
	err := q.db.Statement(ctx).
		Update("jobs").
		Set("status", types.JobStatusRunning).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("started_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Expr(
			"id = (SELECT id FROM jobs WHERE queue = ? AND status = ? AND scheduled_at <= now() ORDER BY created_at LIMIT 1 FOR UPDATE SKIP LOCKED)",
			q.cfg.Name, types.JobStatusPending,
		)).
		Suffix("RETURNING id, queue, job_type, data, status, attempts, max_attempts, coalesce(last_error, ''), scheduled_at, created_at").
		QueryRowContext(ctx).
		Scan(&j.ID, &j.Queue, &j.JobType, &j.Data, &j.Status, &j.Attempts, &j.MaxAttempts, &j.LastError, &j.ScheduledAt, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue job: %w", err)
	}

	return &j, nil
}

// Complete marks a job done, persisting the handler's result when there is one.
func (q *Queue) Complete(ctx context.Context, id string, result any) error {
	ctx, span := q.tracer.Start(ctx, "queue.Complete")
	defer span.End()

	stmt := q.db.Statement(ctx).
		Update("jobs").
		Set("status", types.JobStatusCompleted).
		Set("finished_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if result != nil {
		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal job result: %w", err)
		}
		stmt = stmt.Set("result", payload)
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return nil
}

// Fail records the handler error. The job goes back to pending with
// exponential backoff until its attempts are exhausted, then it is marked
// failed for good.
func (q *Queue) Fail(ctx context.Context, id string, jobErr error) error {
	ctx, span := q.tracer.Start(ctx, "queue.Fail")
	defer span.End()

	_, err := q.db.Statement(ctx).
		Update("jobs").
		Set("status", sq.Expr("CASE WHEN attempts >= max_attempts THEN ? ELSE ? END",
			types.JobStatusFailed, types.JobStatusPending)).
		Set("scheduled_at", sq.Expr("now() + (? * power(2, greatest(attempts - 1, 0)) * interval '1 second')",
			retryBackoffBase.Seconds())).
		Set("last_error", jobErr.Error()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}

	return nil
}

// ReclaimStale returns running jobs whose visibility timeout has elapsed to
// the pending state, so a crashed consumer cannot strand them forever.
func (q *Queue) ReclaimStale(ctx context.Context) (int64, error) {
	ctx, span := q.tracer.Start(ctx, "queue.ReclaimStale")
	defer span.End()

	res, err := q.db.Statement(ctx).
		Update("jobs").
		Set("status", types.JobStatusPending).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"queue": q.cfg.Name, "status": types.JobStatusRunning}).
		Where(sq.Expr("started_at < now() - (? * interval '1 second')", q.cfg.VisibilityTimeout.Seconds())).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim stale jobs: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rows > 0 {
		q.logger.Warnf("reclaimed %d stale jobs on queue %s", rows, q.cfg.Name)
	}

	return rows, nil
}
