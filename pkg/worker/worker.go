// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
)

const defaultReclaimInterval = time.Minute

type Config struct {
	Concurrency  int
	PollInterval time.Duration
}

// Worker runs a fixed pool of consumer loops over the job queue. Each loop
// claims one job at a time, so total in-flight work is bounded by Concurrency.
type Worker struct {
	queue    QueueInterface
	registry *Registry
	cfg      Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewWorker(cfg Config, queue QueueInterface, registry *Registry, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Worker {
	w := new(Worker)

	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}

	w.cfg = cfg
	w.queue = queue
	w.registry = registry

	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}

// Run blocks until the context is cancelled and every consumer loop has
// drained its current job.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.cfg.Concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w.consume(ctx, id)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.reclaimLoop(ctx)
	}()

	wg.Wait()
}

func (w *Worker) consume(ctx context.Context, id int) {
	w.logger.Debugf("worker consumer %d started", id)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debugf("worker consumer %d stopping", id)
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			w.logger.Errorf("failed to dequeue job: %v", err)
			w.sleep(ctx)
			continue
		}

		if job == nil {
			w.sleep(ctx)
			continue
		}

		w.process(ctx, job)
	}
}

func (w *Worker) process(ctx context.Context, job *types.Job) {
	ctx, span := w.tracer.Start(ctx, "worker.Worker.process")
	defer span.End()

	handler, ok := w.registry.Get(job.JobType)
	if !ok {
		// Unknown types are dropped, not retried: redelivery cannot fix them.
		w.logger.Errorf("unknown job type %s, dropping job %s", job.JobType, job.ID)
		if err := w.queue.Complete(ctx, job.ID, map[string]any{"dropped": true, "reason": "unknown job type"}); err != nil {
			w.logger.Errorf("failed to drop job %s: %v", job.ID, err)
		}
		return
	}

	result, err := handler(ctx, job.Data)
	if err != nil {
		w.logger.Errorf("job %s (%s) attempt %d failed: %v", job.ID, job.JobType, job.Attempts, err)
		if failErr := w.queue.Fail(ctx, job.ID, err); failErr != nil {
			w.logger.Errorf("failed to record failure for job %s: %v", job.ID, failErr)
		}
		return
	}

	if err := w.queue.Complete(ctx, job.ID, result); err != nil {
		w.logger.Errorf("failed to complete job %s: %v", job.ID, err)
	}
}

func (w *Worker) reclaimLoop(ctx context.Context) {
	ticker := time.NewTicker(defaultReclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.queue.ReclaimStale(ctx); err != nil {
				w.logger.Errorf("failed to reclaim stale jobs: %v", err)
			}
		}
	}
}

func (w *Worker) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(w.cfg.PollInterval):
	}
}
