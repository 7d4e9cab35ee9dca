package metrics

import (
	"strings"
	"testing"
)

func TestCollector_RegistrationCounters(t *testing.T) {
	c := New()
	c.EntryRegistered()
	c.EntryRegistered()
	c.EntryUnregistered()

	if got := c.ActiveEntries(); got != 1 {
		t.Errorf("ActiveEntries = %d, want 1", got)
	}
	s := c.Snapshot()
	if s.EntriesRegistered != 2 {
		t.Errorf("EntriesRegistered = %d, want 2", s.EntriesRegistered)
	}
}

func TestCollector_DispatchCounters(t *testing.T) {
	c := New()
	c.PacketDispatched(3)
	c.PacketUsed()
	c.PacketDispatched(0)
	c.PacketUnhandled(42)

	if got := c.PacketsDispatched(); got != 2 {
		t.Errorf("PacketsDispatched = %d, want 2", got)
	}
	if got := c.PacketsUsed(); got != 1 {
		t.Errorf("PacketsUsed = %d, want 1", got)
	}
	if got := c.PacketsUnhandled(); got != 1 {
		t.Errorf("PacketsUnhandled = %d, want 1", got)
	}
	if got := c.HandlersInvoked(); got != 3 {
		t.Errorf("HandlersInvoked = %d, want 3", got)
	}
}

func TestCollector_UnhandledTypeRecorded(t *testing.T) {
	c := New()
	c.PacketUnhandled(92)

	s := c.Snapshot()
	if s.LastUnhandledType != 92 {
		t.Errorf("LastUnhandledType = %d, want 92", s.LastUnhandledType)
	}
	if s.LastUnhandled == "" {
		t.Error("LastUnhandled timestamp should be set")
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.EntryRegistered()
	c.EntryUnregistered()
	c.PacketDispatched(1)
	c.PacketUsed()
	c.PacketUnhandled(5)

	if c.PacketsDispatched() != 0 || c.ActiveEntries() != 0 {
		t.Error("nil collector should report zeros")
	}
	if s := c.Snapshot(); s.PacketsDispatched != 0 {
		t.Error("nil collector snapshot should be zero")
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.PacketDispatched(1)
	c.PacketUsed()

	out := c.JSON()
	if !strings.Contains(out, `"packets_dispatched": 1`) {
		t.Errorf("JSON missing dispatched count:\n%s", out)
	}
	if !strings.Contains(out, `"packets_used": 1`) {
		t.Errorf("JSON missing used count:\n%s", out)
	}
}
