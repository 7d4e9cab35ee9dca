package sshkit

import (
	"sshkit/internal/errors"
	"sshkit/util"
	"sshkit/wire"
)

// Sentinel errors surfaced by the callback machinery.
var (
	// ErrRangeOverflow rejects a callback entry whose range would wrap
	// past message type 255.
	ErrRangeOverflow = errors.ErrRangeOverflow

	// ErrCallbacksVersion rejects a Callbacks struct that was not
	// initialized, or was built against a newer library version.
	ErrCallbacksVersion = errors.ErrCallbacksVersion

	// ErrNoAuthCallback is returned by [Session.AuthPrompt] when no
	// auth slot is set.
	ErrNoAuthCallback = errors.ErrNoAuthCallback
)

// Outcome is a packet handler's verdict on a dispatched message.
type Outcome uint8

const (
	// NotUsed means the handler declines the packet; dispatch falls
	// through to the next covering entry.  It is the zero value, and
	// it is a normal result, never an error.
	NotUsed Outcome = iota

	// Used means the packet was fully consumed; dispatch stops.
	Used
)

func (o Outcome) String() string {
	if o == Used {
		return "used"
	}
	return "not used"
}

// PacketHandler processes one decoded packet.  The payload excludes
// the type byte and belongs to the caller only for the duration of
// the call; user is the opaque context the handler's entry was
// registered with.
type PacketHandler func(s *Session, t wire.Type, payload []byte, user any) Outcome

// PacketCallbacks binds a contiguous range of message types to an
// ordered array of handlers.  Handlers[i] is the unique handler for
// type Start+i.  An entry with no handlers is valid and never
// matches.
//
// Entries are registered by pointer: the same *PacketCallbacks value
// passed to Register must be passed to Unregister.  An entry is never
// shared across sessions.
type PacketCallbacks struct {
	// Start is the smallest message type this entry handles.
	Start wire.Type
	// Handlers covers types Start through Start+len(Handlers)-1.
	Handlers []PacketHandler
	// User is passed unchanged to every handler invocation.
	User any
}

// NewPacketCallbacks builds an entry covering len(handlers)
// consecutive types from start.  It returns [ErrRangeOverflow]
// (wrapped with the offending range) when the range would wrap past
// type 255.
func NewPacketCallbacks(start wire.Type, user any, handlers ...PacketHandler) (*PacketCallbacks, error) {
	cb := &PacketCallbacks{Start: start, Handlers: handlers, User: user}
	if err := cb.validate(); err != nil {
		return nil, err
	}
	return cb, nil
}

func (cb *PacketCallbacks) validate() error {
	if int(cb.Start)+len(cb.Handlers) > 256 {
		return errors.WrapEntry(uint8(cb.Start), len(cb.Handlers), errors.ErrRangeOverflow)
	}
	return nil
}

// Covers reports whether t falls inside the entry's range.  The
// comparison is done in int so a hand-built overflowing entry can
// never match through wraparound.
func (cb *PacketCallbacks) Covers(t wire.Type) bool {
	return int(t) >= int(cb.Start) && int(t) < int(cb.Start)+len(cb.Handlers)
}

// handler returns the handler responsible for t, or nil when t is
// outside the range or the slot is unset.
func (cb *PacketCallbacks) handler(t wire.Type) PacketHandler {
	if !cb.Covers(t) {
		return nil
	}
	return cb.Handlers[int(t)-int(cb.Start)]
}

// CallbacksVersion is the slot struct version this library build
// understands.  A [Callbacks] carrying a higher version was built
// against a newer sshkit and is rejected by [Session.SetCallbacks].
const CallbacksVersion = 1

// AuthCallback supplies a secret for an authentication prompt.  echo
// reports whether the user's input may be shown; verify asks for the
// input to be confirmed (e.g. typed twice).
type AuthCallback func(prompt string, echo, verify bool, user any) (string, error)

// LogCallback receives every loggable session event.
type LogCallback func(s *Session, level util.LogLevel, message string, user any)

// StatusCallback reports connection progress from 0.0 to 1.0.
type StatusCallback func(s *Session, progress float64, user any)

// Callbacks is the fixed-shape slot struct for session events: at
// most one function per event kind.  Unset slots are silently
// skipped.  This is a direct call-through, not a registry — exactly
// one consumer is expected; use packet callbacks for chained
// dispatch.
//
// Version must be stamped with [Callbacks.Init] before the struct is
// handed to [Session.SetCallbacks]; it is how a library build tells
// slot structs from older or newer callers apart.
type Callbacks struct {
	// Version of the struct layout, set by Init.
	Version int
	// User is passed unchanged to every slot invocation.
	User any

	Auth   AuthCallback
	Log    LogCallback
	Status StatusCallback
}

// Init stamps the struct with the version it was compiled against.
// Call it once after filling in the slots.
func (cb *Callbacks) Init() {
	cb.Version = CallbacksVersion
}

// validVersion accepts the current version and every recognized older
// one; version 0 means Init was never called.
func (cb *Callbacks) validVersion() bool {
	return cb.Version >= 1 && cb.Version <= CallbacksVersion
}
