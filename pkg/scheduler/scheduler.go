// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package scheduler runs the periodic entitlement maintenance: fanning out
// limit checks over active tenants and resetting the daily usage counters.
package scheduler

import (
	"context"

	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"github.com/robfig/cron/v3"
)

type Config struct {
	LimitCheckSchedule string
	UsageResetSchedule string
	PageSize           uint64
}

type Scheduler struct {
	cron    *cron.Cron
	cfg     Config
	storage StorageInterface
	queue   QueueInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewScheduler(cfg Config, storage StorageInterface, queue QueueInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Scheduler {
	s := new(Scheduler)

	if cfg.PageSize == 0 {
		cfg.PageSize = 200
	}

	s.cfg = cfg
	s.storage = storage
	s.queue = queue
	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Start registers the cron entries and launches the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.LimitCheckSchedule, func() {
		s.enqueueLimitChecks(ctx)
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.cfg.UsageResetSchedule, func() {
		s.resetUsageCounters(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Infof("scheduler started: limit checks %q, usage reset %q", s.cfg.LimitCheckSchedule, s.cfg.UsageResetSchedule)

	return nil
}

// Stop halts the cron loop. The returned context is done once in-flight
// entries have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// enqueueLimitChecks submits one check_limits job per active tenant. A
// failed enqueue for one tenant never blocks the rest of the sweep.
func (s *Scheduler) enqueueLimitChecks(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "scheduler.Scheduler.enqueueLimitChecks")
	defer span.End()

	var enqueued, failed int
	for offset := uint64(0); ; offset += s.cfg.PageSize {
		ids, err := s.storage.ListActiveTenantIDs(ctx, offset, s.cfg.PageSize)
		if err != nil {
			s.logger.Errorf("failed to list active tenants at offset %d: %v", offset, err)
			return
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if _, err := s.queue.Enqueue(ctx, types.JobTypeCheckLimits, map[string]any{"tenantId": id}); err != nil {
				s.logger.Errorf("failed to enqueue limit check for tenant %s: %v", id, err)
				failed++
				continue
			}
			enqueued++
		}

		if uint64(len(ids)) < s.cfg.PageSize {
			break
		}
	}

	s.logger.Infof("limit check sweep enqueued %d jobs, %d failures", enqueued, failed)
}

func (s *Scheduler) resetUsageCounters(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "scheduler.Scheduler.resetUsageCounters")
	defer span.End()

	tenants, err := s.storage.ResetUsageCounters(ctx, types.AutoResetResources)
	if err != nil {
		s.logger.Errorf("failed to reset usage counters: %v", err)
		return
	}

	s.logger.Infof("reset %v counters on %d tenants", types.AutoResetResources, tenants)
}
