package sshkit

import (
	"fmt"

	"sshkit/metrics"
	"sshkit/util"
	"sshkit/wire"
)

// Session holds the per-connection routing state: the packet
// dispatcher, the event callback slots, a logger and the metrics
// collector.  It is the value handed to every packet handler.
//
// A Session must be driven from a single goroutine, or under an
// external session-level lock held by the transport loop.
type Session struct {
	logger     *util.Logger
	dispatcher *Dispatcher
	collector  *metrics.Collector
	cb         *Callbacks
}

// NewSession creates a session with an empty dispatch registry.
// logger may be nil, in which case logging is quiet.
func NewSession(logger *util.Logger) *Session {
	if logger == nil {
		logger = util.NewLogger(0)
	}
	collector := metrics.New()
	return &Session{
		logger:     logger.WithPrefix("session"),
		dispatcher: NewDispatcher(logger, collector),
		collector:  collector,
	}
}

// SetCallbacks installs the event slot struct.  The struct must have
// been stamped with [Callbacks.Init]; an unstamped struct, or one
// carrying a version newer than [CallbacksVersion], is rejected with
// [ErrCallbacksVersion] and the previous slots stay in effect.
func (s *Session) SetCallbacks(cb *Callbacks) error {
	if cb == nil || !cb.validVersion() {
		return ErrCallbacksVersion
	}
	s.cb = cb
	return nil
}

// Register attaches a packet callback entry to the session's
// dispatcher.  Earlier registrations have priority.
func (s *Session) Register(cb *PacketCallbacks) error {
	return s.dispatcher.Register(cb)
}

// Unregister detaches an entry; a no-op when the entry is not
// registered.
func (s *Session) Unregister(cb *PacketCallbacks) {
	s.dispatcher.Unregister(cb)
}

// Dispatcher exposes the session's registry, for handlers that need
// to inspect or modify it reentrantly.
func (s *Session) Dispatcher() *Dispatcher { return s.dispatcher }

// Metrics returns the session's collector.
func (s *Session) Metrics() *metrics.Collector { return s.collector }

// HandlePacket routes one decoded packet through the dispatcher.
// The payload excludes the type byte and is only valid for the
// duration of the call.  A [NotUsed] result means no registered
// handler consumed the packet; the transport decides whether that is
// a protocol violation or a type with default handling.
func (s *Session) HandlePacket(t wire.Type, payload []byte) Outcome {
	return s.dispatcher.Dispatch(s, t, payload)
}

// AuthPrompt asks the auth slot for a secret.  It returns
// [ErrNoAuthCallback] when no slot is installed.
func (s *Session) AuthPrompt(prompt string, echo, verify bool) (string, error) {
	if s.cb == nil || s.cb.Auth == nil {
		return "", ErrNoAuthCallback
	}
	return s.cb.Auth(prompt, echo, verify, s.cb.User)
}

// Logf writes a levelled message to the session logger and tees it
// into the log slot when one is installed.
func (s *Session) Logf(level util.LogLevel, format string, args ...interface{}) {
	s.logger.At(level, format, args...)
	if s.cb != nil && s.cb.Log != nil {
		s.cb.Log(s, level, fmt.Sprintf(format, args...), s.cb.User)
	}
}

// Progress reports connection progress (0.0 to 1.0) to the status
// slot.  Skipped silently when no slot is installed.
func (s *Session) Progress(p float64) {
	if s.cb == nil || s.cb.Status == nil {
		return
	}
	s.cb.Status(s, p, s.cb.User)
}
