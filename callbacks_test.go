package sshkit

import (
	"testing"

	"sshkit/wire"
)

func TestPacketCallbacks_Covers(t *testing.T) {
	noop := func(_ *Session, _ wire.Type, _ []byte, _ any) Outcome { return NotUsed }
	cb, err := NewPacketCallbacks(20, nil, noop, noop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		typ  wire.Type
		want bool
	}{
		{19, false},
		{20, true},
		{21, true},
		{22, false},
		{0, false},
		{255, false},
	}
	for _, tt := range tests {
		if got := cb.Covers(tt.typ); got != tt.want {
			t.Errorf("Covers(%d) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestPacketCallbacks_CoversNeverWrapsAround(t *testing.T) {
	// A hand-built entry that violates the range invariant must not
	// match low types through 8-bit wraparound.
	bad := &PacketCallbacks{Start: 250, Handlers: make([]PacketHandler, 10)}
	for typ := 0; typ < 4; typ++ {
		if bad.Covers(wire.Type(typ)) {
			t.Errorf("overflowing entry must not cover type %d", typ)
		}
	}
	if !bad.Covers(255) {
		t.Error("overflowing entry should still cover in-bounds types")
	}
}

func TestPacketCallbacks_EmptyRange(t *testing.T) {
	cb, err := NewPacketCallbacks(30, nil)
	if err != nil {
		t.Fatalf("zero-count entry should be constructible: %v", err)
	}
	if cb.Covers(30) {
		t.Error("zero-count entry covers nothing")
	}
}

func TestOutcome_String(t *testing.T) {
	if Used.String() != "used" || NotUsed.String() != "not used" {
		t.Errorf("Outcome strings: %q, %q", Used, NotUsed)
	}
}

func TestCallbacks_Init(t *testing.T) {
	var cb Callbacks
	if cb.validVersion() {
		t.Error("uninitialized struct must not validate")
	}
	cb.Init()
	if cb.Version != CallbacksVersion {
		t.Errorf("Version = %d, want %d", cb.Version, CallbacksVersion)
	}
	if !cb.validVersion() {
		t.Error("initialized struct must validate")
	}
}

func TestCallbacks_VersionMatrix(t *testing.T) {
	tests := []struct {
		version int
		ok      bool
	}{
		{0, false}, // Init never called
		{1, true},  // current
		{CallbacksVersion + 1, false}, // from a newer library
		{-1, false},
	}
	for _, tt := range tests {
		cb := &Callbacks{Version: tt.version}
		if got := cb.validVersion(); got != tt.ok {
			t.Errorf("version %d: valid = %v, want %v", tt.version, got, tt.ok)
		}
	}
}
