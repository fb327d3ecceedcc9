// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canonical/entitlement-service/internal/config"
	"github.com/canonical/entitlement-service/internal/db"
	"github.com/canonical/entitlement-service/internal/events"
	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring/prometheus"
	"github.com/canonical/entitlement-service/internal/queue"
	"github.com/canonical/entitlement-service/internal/storage"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/pkg/entitlement"
	"github.com/canonical/entitlement-service/pkg/scheduler"
	"github.com/canonical/entitlement-service/pkg/web"
	"github.com/canonical/entitlement-service/pkg/worker"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const minBcryptCost = 12

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server and job workers",
	Long:  `Launch the web application, the queue workers and the maintenance scheduler. The list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	if specs.BcryptCost < minBcryptCost {
		logger.Warnf("bcrypt cost %d below minimum, using %d", specs.BcryptCost, minBcryptCost)
		specs.BcryptCost = minBcryptCost
	}

	monitor := prometheus.NewMonitor("entitlement-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	q := queue.NewQueue(
		queue.Config{
			Name:              specs.QueueName,
			MaxAttempts:       specs.QueueMaxAttempts,
			VisibilityTimeout: specs.QueueVisibilityTimeout,
		},
		dbClient,
		tracer,
		monitor,
		logger,
	)

	broadcaster := events.NewBroadcaster(logger)

	entitlementService := entitlement.NewService(
		s,
		broadcaster,
		specs.BcryptCost,
		tracer,
		monitor,
		logger,
	)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	registry := worker.NewRegistry()
	worker.NewJobHandlers(entitlementService).RegisterAll(registry)

	w := worker.NewWorker(
		worker.Config{
			Concurrency:  specs.WorkerConcurrency,
			PollInterval: specs.WorkerPollInterval,
		},
		q,
		registry,
		tracer,
		monitor,
		logger,
	)
	go w.Run(workerCtx)

	sched := scheduler.NewScheduler(
		scheduler.Config{
			LimitCheckSchedule: specs.LimitCheckSchedule,
			UsageResetSchedule: specs.UsageResetSchedule,
			PageSize:           specs.SchedulerPageSize,
		},
		s,
		q,
		tracer,
		monitor,
		logger,
	)
	if err := sched.Start(workerCtx); err != nil {
		return fmt.Errorf("failed to start scheduler: %v", err)
	}

	if specs.Debug {
		subID, eventCh := broadcaster.Subscribe()
		defer broadcaster.Unsubscribe(subID)
		go func() {
			for ev := range eventCh {
				logger.Debugf("event %s for tenant %s: %v", ev.Type, ev.TenantID, ev.Payload)
			}
		}()
	}

	entitlementAPI := entitlement.NewAPI(entitlementService, q, tracer, monitor, logger)
	router := web.NewRouter(entitlementAPI, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()

	stopWorkers()
	<-sched.Stop().Done()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
