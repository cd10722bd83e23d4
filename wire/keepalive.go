package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// KeepAlive carries no body; its only purpose is to reset the peer's
// liveness timer (maintained by the link driver, outside this core).
type KeepAlive struct{}

// EncodeKeepAlive writes the single header byte.
func EncodeKeepAlive(w *codec.Writer, _ KeepAlive) error {
	return w.WriteByte(byte(core.MsgIDKeepAlive))
}

// DecodeKeepAlive reads and validates the header byte.
func DecodeKeepAlive(r *codec.Reader) (KeepAlive, error) {
	header, err := r.ReadByte()
	if err != nil {
		return KeepAlive{}, err
	}
	if MsgID(header) != core.MsgIDKeepAlive {
		return KeepAlive{}, fmt.Errorf("%w: expected KEEPALIVE, got id %d", ErrMalformedHeader, MsgID(header))
	}
	return KeepAlive{}, nil
}
