// Package notify implements the transient message queue: every notification
// is rendered immediately and removed again after a fixed display window.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/metrics"
)

// DisplayWindow is how long a message stays on screen.
const DisplayWindow = 3500 * time.Millisecond

// Center implements ports.Notifier against a Document. Each message owns an
// independent expiry timer; concurrent messages never interfere because they
// target disjoint rendered elements keyed by message ID.
type Center struct {
	doc ports.Document
	ttl time.Duration
	log zerolog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewCenter creates a Center with the standard display window.
func NewCenter(doc ports.Document, log zerolog.Logger) *Center {
	return NewCenterTTL(doc, DisplayWindow, log)
}

// NewCenterTTL creates a Center with a custom display window. Intended for
// tests that cannot wait out the full window.
func NewCenterTTL(doc ports.Document, ttl time.Duration, log zerolog.Logger) *Center {
	return &Center{
		doc:    doc,
		ttl:    ttl,
		log:    log,
		timers: make(map[string]*time.Timer),
	}
}

// Notify renders a message and schedules its removal. A Center without a
// document surface is a no-op: pages without a message region simply drop
// notifications rather than fail.
func (c *Center) Notify(text string, kind domain.MessageKind) {
	if c == nil || c.doc == nil {
		return
	}

	msg := domain.NewMessage(text, kind)
	c.doc.AppendMessage(msg)
	metrics.MessagesShownTotal.WithLabelValues(string(kind)).Inc()
	c.log.Debug().Str("kind", string(kind)).Str("text", text).Msg("message shown")

	key := msg.ID.String()
	t := time.AfterFunc(c.ttl, func() {
		c.doc.RemoveMessage(msg.ID)
		c.mu.Lock()
		delete(c.timers, key)
		c.mu.Unlock()
	})

	c.mu.Lock()
	c.timers[key] = t
	c.mu.Unlock()
}

// Stop cancels all pending expiry timers without removing rendered messages.
// Used on teardown; a navigated-away page does not need its timers to fire.
func (c *Center) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, t := range c.timers {
		t.Stop()
		delete(c.timers, key)
	}
}
