// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"testing"

	"github.com/canonical/entitlement-service/internal/logging"
)

func TestBroadcaster_PublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster(logging.NewNoopLogger())

	id1, ch1 := b.Subscribe()
	id2, ch2 := b.Subscribe()
	defer b.Unsubscribe(id1)
	defer b.Unsubscribe(id2)

	b.Publish(Event{Type: TenantCreated, TenantID: "tenant-1"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Type != TenantCreated {
				t.Errorf("expected event type %s, got %s", TenantCreated, ev.Type)
			}
			if ev.TenantID != "tenant-1" {
				t.Errorf("expected tenant-1, got %s", ev.TenantID)
			}
			if ev.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		default:
			t.Fatal("expected event on subscriber channel")
		}
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster(logging.NewNoopLogger())

	id, ch := b.Subscribe()
	b.Unsubscribe(id)

	if _, open := <-ch; open {
		t.Error("expected channel to be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic or deliver.
	b.Publish(Event{Type: TenantFeaturesUpdated, TenantID: "tenant-1"})
}

func TestBroadcaster_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroadcaster(logging.NewNoopLogger())

	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	for i := 0; i < defaultBufferSize+10; i++ {
		b.Publish(Event{Type: TenantLimitViolation, TenantID: "tenant-1"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}

	if received != defaultBufferSize {
		t.Errorf("expected %d buffered events, got %d", defaultBufferSize, received)
	}
}
