// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	QueueName              string        `envconfig:"queue_name" default:"tenant-lifecycle"`
	WorkerConcurrency      int           `envconfig:"worker_concurrency" default:"4"`
	WorkerPollInterval     time.Duration `envconfig:"worker_poll_interval" default:"1s"`
	QueueMaxAttempts       int           `envconfig:"queue_max_attempts" default:"5"`
	QueueVisibilityTimeout time.Duration `envconfig:"queue_visibility_timeout" default:"5m"`

	LimitCheckSchedule string `envconfig:"limit_check_schedule" default:"@every 6h"`
	UsageResetSchedule string `envconfig:"usage_reset_schedule" default:"0 0 * * *"`
	SchedulerPageSize  uint64 `envconfig:"scheduler_page_size" default:"200"`

	BcryptCost int `envconfig:"bcrypt_cost" default:"12"`
}
