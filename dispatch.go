package sshkit

import (
	"sshkit/metrics"
	"sshkit/seq"
	"sshkit/util"
	"sshkit/wire"
)

// Dispatcher routes decoded message types to registered packet
// callback entries.  Entries are consulted in registration order
// (earliest registered wins); within an entry exactly one handler —
// the one whose slot matches the type — is invoked.
//
// A Dispatcher performs no internal locking.  All Register,
// Unregister and Dispatch calls for one dispatcher must be serialized
// by the caller, normally by confining the session to the transport
// loop's goroutine.  Handlers may call Register and Unregister on the
// dispatcher that is mid-Dispatch; they must not call Dispatch again
// for the same message stream.
type Dispatcher struct {
	entries *seq.List[*PacketCallbacks]
	logger  *util.Logger
	metrics *metrics.Collector
}

// NewDispatcher creates an empty dispatcher.  logger and collector
// may be nil.
func NewDispatcher(logger *util.Logger, collector *metrics.Collector) *Dispatcher {
	if logger == nil {
		logger = util.NewLogger(0)
	}
	return &Dispatcher{
		entries: seq.New[*PacketCallbacks](),
		logger:  logger.WithPrefix("dispatch"),
		metrics: collector,
	}
}

// Register appends the entry with the lowest remaining priority: all
// previously registered entries are consulted first.  The only
// rejection is a range that wraps past type 255 ([ErrRangeOverflow]).
func (d *Dispatcher) Register(cb *PacketCallbacks) error {
	if err := cb.validate(); err != nil {
		return err
	}
	d.entries.Append(cb)
	d.metrics.EntryRegistered()
	d.logger.Debug("registered entry [%v, +%d)", cb.Start, len(cb.Handlers))
	return nil
}

// Unregister removes the first occurrence of the entry.  Entries are
// matched by identity — the pointer passed to Register.  Removing an
// entry that was never registered (or was already removed) is a
// no-op.
func (d *Dispatcher) Unregister(cb *PacketCallbacks) {
	for n := d.entries.Front(); n != nil; {
		next := n.Next()
		if n.Value() == cb {
			d.entries.Remove(n)
			d.metrics.EntryUnregistered()
			d.logger.Debug("unregistered entry [%v, +%d)", cb.Start, len(cb.Handlers))
			return
		}
		n = next
	}
}

// Len returns the number of registered entries.
func (d *Dispatcher) Len() int { return d.entries.Len() }

// Dispatch routes one packet.  Every covering entry is tried in
// registration order until a handler returns [Used]; if none does,
// or no entry covers t, Dispatch returns [NotUsed] and the caller
// applies its own policy for unhandled types.
//
// The set of entries consulted is snapshotted when Dispatch is
// called: a handler unregistering an entry mid-dispatch does not
// prevent that entry from being consulted this round, and an entry
// registered mid-dispatch is first consulted on the next call.  This
// keeps the walk deterministic under reentrant modification.
func (d *Dispatcher) Dispatch(s *Session, t wire.Type, payload []byte) Outcome {
	snapshot := make([]*PacketCallbacks, 0, 8)
	for n := d.entries.Front(); n != nil; n = n.Next() {
		snapshot = append(snapshot, n.Value())
	}

	invoked := 0
	outcome := NotUsed
	for _, cb := range snapshot {
		h := cb.handler(t)
		if h == nil {
			continue
		}
		invoked++
		if h(s, t, payload, cb.User) == Used {
			outcome = Used
			break
		}
		// handler declined, fall through to the next covering entry
	}

	d.metrics.PacketDispatched(invoked)
	if outcome == Used {
		d.metrics.PacketUsed()
		d.logger.Debug("%v consumed after %d handler(s)", t, invoked)
	} else {
		d.metrics.PacketUnhandled(uint8(t))
		d.logger.Verbose("%v not consumed (%d handler(s) declined)", t, invoked)
	}
	return outcome
}
