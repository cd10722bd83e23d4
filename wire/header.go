// Package wire implements the message codec: the header/flags/body/
// extensions/payload pattern shared by every network message (Request,
// OAM, Frame, Close, KeepAlive), plus the extension chain that rides
// inside most of them.
package wire

import "github.com/codebot/zenoh/core"

// Per-message header flags. Z (bit 7) means "extensions follow" in every
// message that carries extensions; Frame, which has none, uses bit 7 as
// its R flag. The other two bits are reused with different meanings per
// message, matching the wire layout in spec §6.1.
const (
	FlagZ byte = 1 << 7
	FlagF1 byte = 1 << 6
	FlagF2 byte = 1 << 5
)

// MsgID extracts the 5-bit message id from a header byte.
func MsgID(header byte) byte {
	return header & core.MsgIDMask
}

// HasFlag reports whether the given flag bit is set in header.
func HasFlag(header, flag byte) bool {
	return header&flag != 0
}
