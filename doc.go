/*
Package sshkit provides the in-process event-routing core of an SSH
implementation: a per-session dispatch registry that routes decoded
message type codes to ordered chains of packet handlers, and a
versioned callback slot struct for auth, log and status events.

The transport layer decodes a type byte and payload from the wire and
hands them to [Session.HandlePacket].  Registered [PacketCallbacks]
entries are walked in registration order; the first handler to return
[Used] ends the dispatch.  A [NotUsed] result means no handler claimed
the packet and the transport applies its own policy (typically
replying with an unimplemented message or treating it as a protocol
violation).

Wire parsing, key exchange and socket I/O are out of scope; see the
wire subpackage for the message type space and the handful of
transport-generic message codecs.
*/
package sshkit
