// Package metrics provides lightweight, lock-free counters for
// tracking dispatch activity on an sshkit session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks routing statistics for a single session.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	packetsDispatched atomic.Int64
	packetsUsed       atomic.Int64
	packetsUnhandled  atomic.Int64
	handlersInvoked   atomic.Int64
	entriesRegistered atomic.Int64
	entriesActive     atomic.Int64

	mu                sync.RWMutex
	startTime         time.Time
	lastUnhandled     time.Time
	lastUnhandledType uint8
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Registration metrics ─────────────────────────────────────────────

// EntryRegistered increments both the active and lifetime entry counters.
func (c *Collector) EntryRegistered() {
	if c == nil {
		return
	}
	c.entriesRegistered.Add(1)
	c.entriesActive.Add(1)
}

// EntryUnregistered decrements the active entry counter.
func (c *Collector) EntryUnregistered() {
	if c == nil {
		return
	}
	c.entriesActive.Add(-1)
}

// ActiveEntries returns the number of currently registered entries.
func (c *Collector) ActiveEntries() int64 {
	if c == nil {
		return 0
	}
	return c.entriesActive.Load()
}

// ── Dispatch metrics ─────────────────────────────────────────────────

// PacketDispatched records a dispatch call and how many handlers ran.
func (c *Collector) PacketDispatched(handlers int) {
	if c == nil {
		return
	}
	c.packetsDispatched.Add(1)
	c.handlersInvoked.Add(int64(handlers))
}

// PacketUsed records a dispatch that ended with a Used outcome.
func (c *Collector) PacketUsed() {
	if c == nil {
		return
	}
	c.packetsUsed.Add(1)
}

// PacketUnhandled records a dispatch where no handler consumed the
// packet, remembering the offending type for diagnostics.
func (c *Collector) PacketUnhandled(msgType uint8) {
	if c == nil {
		return
	}
	c.packetsUnhandled.Add(1)
	c.mu.Lock()
	c.lastUnhandled = time.Now()
	c.lastUnhandledType = msgType
	c.mu.Unlock()
}

// PacketsDispatched returns the lifetime dispatch call count.
func (c *Collector) PacketsDispatched() int64 {
	if c == nil {
		return 0
	}
	return c.packetsDispatched.Load()
}

// PacketsUsed returns the number of dispatches consumed by a handler.
func (c *Collector) PacketsUsed() int64 {
	if c == nil {
		return 0
	}
	return c.packetsUsed.Load()
}

// PacketsUnhandled returns the number of dispatches nobody consumed.
func (c *Collector) PacketsUnhandled() int64 {
	if c == nil {
		return 0
	}
	return c.packetsUnhandled.Load()
}

// HandlersInvoked returns the total number of handler invocations.
func (c *Collector) HandlersInvoked() int64 {
	if c == nil {
		return 0
	}
	return c.handlersInvoked.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime            string `json:"uptime"`
	EntriesRegistered int64  `json:"entries_registered"`
	EntriesActive     int64  `json:"entries_active"`
	PacketsDispatched int64  `json:"packets_dispatched"`
	PacketsUsed       int64  `json:"packets_used"`
	PacketsUnhandled  int64  `json:"packets_unhandled"`
	HandlersInvoked   int64  `json:"handlers_invoked"`
	LastUnhandled     string `json:"last_unhandled,omitempty"`
	LastUnhandledType uint8  `json:"last_unhandled_type,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:            time.Since(c.startTime).Truncate(time.Second).String(),
		EntriesRegistered: c.entriesRegistered.Load(),
		EntriesActive:     c.entriesActive.Load(),
		PacketsDispatched: c.packetsDispatched.Load(),
		PacketsUsed:       c.packetsUsed.Load(),
		PacketsUnhandled:  c.packetsUnhandled.Load(),
		HandlersInvoked:   c.handlersInvoked.Load(),
	}
	if !c.lastUnhandled.IsZero() {
		s.LastUnhandled = c.lastUnhandled.Format(time.RFC3339)
		s.LastUnhandledType = c.lastUnhandledType
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
