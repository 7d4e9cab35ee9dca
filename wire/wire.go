// Package wire defines the SSH message type space and the handful of
// transport-generic messages the dispatch layer routes.
//
// A message type is a single byte (RFC 4250 §4.1.2), so the Type
// representation makes out-of-range codes unconstructible rather than
// silently truncated.
package wire

import "fmt"

// Type is an SSH message type code.  The uint8 representation is the
// range restriction: every value of Type is a valid, routable code.
type Type uint8

// Transport-layer and connection-protocol message numbers, RFC 4250.
const (
	MsgDisconnect     Type = 1
	MsgIgnore         Type = 2
	MsgUnimplemented  Type = 3
	MsgDebug          Type = 4
	MsgServiceRequest Type = 5
	MsgServiceAccept  Type = 6

	MsgKexInit Type = 20
	MsgNewKeys Type = 21

	MsgKexDHInit  Type = 30
	MsgKexDHReply Type = 31

	MsgUserauthRequest Type = 50
	MsgUserauthFailure Type = 51
	MsgUserauthSuccess Type = 52
	MsgUserauthBanner  Type = 53

	MsgGlobalRequest  Type = 80
	MsgRequestSuccess Type = 81
	MsgRequestFailure Type = 82

	MsgChannelOpen           Type = 90
	MsgChannelOpenConfirm    Type = 91
	MsgChannelOpenFailure    Type = 92
	MsgChannelWindowAdjust   Type = 93
	MsgChannelData           Type = 94
	MsgChannelExtendedData   Type = 95
	MsgChannelEOF            Type = 96
	MsgChannelClose          Type = 97
	MsgChannelRequest        Type = 98
	MsgChannelRequestSuccess Type = 99
	MsgChannelRequestFailure Type = 100
)

var typeNames = map[Type]string{
	MsgDisconnect:            "disconnect",
	MsgIgnore:                "ignore",
	MsgUnimplemented:         "unimplemented",
	MsgDebug:                 "debug",
	MsgServiceRequest:        "service request",
	MsgServiceAccept:         "service accept",
	MsgKexInit:               "kexinit",
	MsgNewKeys:               "newkeys",
	MsgKexDHInit:             "kexdh init",
	MsgKexDHReply:            "kexdh reply",
	MsgUserauthRequest:       "userauth request",
	MsgUserauthFailure:       "userauth failure",
	MsgUserauthSuccess:       "userauth success",
	MsgUserauthBanner:        "userauth banner",
	MsgGlobalRequest:         "global request",
	MsgRequestSuccess:        "request success",
	MsgRequestFailure:        "request failure",
	MsgChannelOpen:           "channel open",
	MsgChannelOpenConfirm:    "channel open confirm",
	MsgChannelOpenFailure:    "channel open failure",
	MsgChannelWindowAdjust:   "channel window adjust",
	MsgChannelData:           "channel data",
	MsgChannelExtendedData:   "channel extended data",
	MsgChannelEOF:            "channel eof",
	MsgChannelClose:          "channel close",
	MsgChannelRequest:        "channel request",
	MsgChannelRequestSuccess: "channel request success",
	MsgChannelRequestFailure: "channel request failure",
}

// String returns the RFC name for known codes, or "type(n)".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}
