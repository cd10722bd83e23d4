package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// TransportMessage is the outer tagged union decoded directly off a
// link: Frame, Close and KeepAlive are the kinds the receive pipeline
// (spec §4.F) understands; any other message id is forward-compatible
// (logged and dropped), matching the "Others" case of spec §4.F.
type TransportMessage struct {
	Frame     *Frame
	Close     *Close
	KeepAlive *KeepAlive

	// UnknownID holds the message id when none of the above matched,
	// so the caller can log it without decoding a body it doesn't
	// understand the shape of.
	UnknownID byte
	Unknown   bool
}

// DecodeTransportMessage dispatches on the header's message id.
func DecodeTransportMessage(r *codec.Reader) (TransportMessage, error) {
	header, err := r.PeekByte()
	if err != nil {
		return TransportMessage{}, err
	}
	switch MsgID(header) {
	case core.MsgIDFrame:
		f, err := DecodeFrame(r)
		if err != nil {
			return TransportMessage{}, err
		}
		return TransportMessage{Frame: &f}, nil
	case core.MsgIDClose:
		c, err := DecodeClose(r)
		if err != nil {
			return TransportMessage{}, err
		}
		return TransportMessage{Close: &c}, nil
	case core.MsgIDKeepAlive:
		k, err := DecodeKeepAlive(r)
		if err != nil {
			return TransportMessage{}, err
		}
		return TransportMessage{KeepAlive: &k}, nil
	default:
		// Forward compatibility: consume nothing further, let the
		// caller log and move on. We still need to advance past this
		// message on a shared stream, but without knowing its shape
		// we cannot skip it reliably; unlike extensions, transport
		// messages are not self-framed by an ENC field. Callers that
		// see Unknown=true on a byte-oriented (non-packet) link
		// should treat the remainder of the read as undecodable.
		if _, err := r.ReadByte(); err != nil {
			return TransportMessage{}, err
		}
		return TransportMessage{UnknownID: MsgID(header), Unknown: true}, nil
	}
}

// EncodeTransportMessage writes whichever variant of m is populated.
func EncodeTransportMessage(w *codec.Writer, m TransportMessage) error {
	switch {
	case m.Frame != nil:
		return EncodeFrame(w, *m.Frame)
	case m.Close != nil:
		return EncodeClose(w, *m.Close)
	case m.KeepAlive != nil:
		return EncodeKeepAlive(w, *m.KeepAlive)
	default:
		return fmt.Errorf("%w: empty TransportMessage", ErrMalformedHeader)
	}
}
