package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// Close header flags: P = peer id present; L = link_only (else the
// whole session is torn down).
const (
	closeFlagP = FlagF1
	closeFlagL = FlagF2
)

// Close tears down a link or a whole transport session (spec §3).
type Close struct {
	PeerID   core.PeerID // nil iff not present on the wire
	Reason   uint8
	LinkOnly bool
}

// EncodeClose writes x in full.
func EncodeClose(w *codec.Writer, x Close) error {
	header := byte(core.MsgIDClose)
	if x.PeerID != nil {
		header |= closeFlagP
	}
	if x.LinkOnly {
		header |= closeFlagL
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}

	if x.PeerID != nil {
		if err := w.WriteByteArray(x.PeerID); err != nil {
			return err
		}
	}
	return w.WriteU8(x.Reason)
}

// DecodeClose reads a Close message.
func DecodeClose(r *codec.Reader) (Close, error) {
	header, err := r.ReadByte()
	if err != nil {
		return Close{}, err
	}
	if MsgID(header) != core.MsgIDClose {
		return Close{}, fmt.Errorf("%w: expected CLOSE, got id %d", ErrMalformedHeader, MsgID(header))
	}

	var x Close
	if HasFlag(header, closeFlagP) {
		id, err := r.ReadByteArray()
		if err != nil {
			return Close{}, err
		}
		x.PeerID = core.PeerID(id)
	}
	x.LinkOnly = HasFlag(header, closeFlagL)

	reason, err := r.ReadU8()
	if err != nil {
		return Close{}, err
	}
	x.Reason = reason

	return x, nil
}
