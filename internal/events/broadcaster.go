// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package events fans tenant state changes out to in-process subscribers.
package events

import (
	"sync"
	"time"

	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/google/uuid"
)

// Event types emitted by the entitlement engine.
const (
	TenantCreated         = "tenant-created"
	TenantFeaturesUpdated = "tenant-features-updated"
	TenantLimitViolation  = "tenant-limit-violation"
)

const defaultBufferSize = 64

type Event struct {
	Type      string         `json:"type"`
	TenantID  string         `json:"tenantId"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type BroadcasterInterface interface {
	Publish(ev Event)
	Subscribe() (string, <-chan Event)
	Unsubscribe(id string)
}

var _ BroadcasterInterface = (*Broadcaster)(nil)

// Broadcaster is a map-based subscriber registry. Publishing never blocks:
// a subscriber that cannot keep up with its buffer loses events.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]chan Event

	logger logging.LoggerInterface
}

func NewBroadcaster(logger logging.LoggerInterface) *Broadcaster {
	b := new(Broadcaster)

	b.subs = make(map[string]chan Event)
	b.logger = logger

	return b
}

func (b *Broadcaster) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, defaultBufferSize)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Broadcaster) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.Warnf("dropping event %s for slow subscriber %s", ev.Type, id)
		}
	}
}
