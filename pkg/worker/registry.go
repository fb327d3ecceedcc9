// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package worker consumes lifecycle jobs from the queue and dispatches them to
// the entitlement service.
package worker

import (
	"context"
	"encoding/json"
)

// HandlerFunc processes one job payload and returns the result to persist on
// the job row.
type HandlerFunc func(ctx context.Context, data json.RawMessage) (any, error)

// Registry maps job types to their handlers. Registration happens during
// startup only; lookups are read-only after that.
type Registry struct {
	handlers map[string]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

func (r *Registry) Register(jobType string, h HandlerFunc) {
	r.handlers[jobType] = h
}

func (r *Registry) Get(jobType string) (HandlerFunc, bool) {
	h, ok := r.handlers[jobType]
	return h, ok
}
