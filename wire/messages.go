package wire

import (
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Typed structs for the transport-generic messages.  Field order and
// sshtype tags follow the wire layout, so golang.org/x/crypto/ssh can
// marshal them directly.

// Disconnect is SSH_MSG_DISCONNECT (RFC 4253 §11.1).
type Disconnect struct {
	Reason   uint32 `sshtype:"1"`
	Message  string
	Language string
}

// Ignore is SSH_MSG_IGNORE (RFC 4253 §11.2).
type Ignore struct {
	Data string `sshtype:"2"`
}

// Unimplemented is SSH_MSG_UNIMPLEMENTED (RFC 4253 §11.4).
type Unimplemented struct {
	Sequence uint32 `sshtype:"3"`
}

// Debug is SSH_MSG_DEBUG (RFC 4253 §11.3).
type Debug struct {
	AlwaysDisplay bool `sshtype:"4"`
	Message       string
	Language      string
}

// ServiceRequest is SSH_MSG_SERVICE_REQUEST (RFC 4253 §10).
type ServiceRequest struct {
	Service string `sshtype:"5"`
}

// ServiceAccept is SSH_MSG_SERVICE_ACCEPT (RFC 4253 §10).
type ServiceAccept struct {
	Service string `sshtype:"6"`
}

// Encode marshals msg and splits off the leading type byte, yielding
// the (type, payload) pair the dispatch layer works with: payloads
// exclude the type byte.
func Encode(msg interface{}) (Type, []byte, error) {
	packet := ssh.Marshal(msg)
	if len(packet) == 0 {
		return 0, nil, fmt.Errorf("encode %T: empty marshal result", msg)
	}
	return Type(packet[0]), packet[1:], nil
}

// Decode parses a type-stripped payload into out, which must be one of
// the message structs above (or any sshtype-tagged struct matching t).
func Decode(t Type, payload []byte, out interface{}) error {
	packet := make([]byte, 0, len(payload)+1)
	packet = append(packet, byte(t))
	packet = append(packet, payload...)
	if err := ssh.Unmarshal(packet, out); err != nil {
		return fmt.Errorf("decode %v: %w", t, err)
	}
	return nil
}
