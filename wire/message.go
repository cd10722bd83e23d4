package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// ZenohMessage is the application-level message carried inside a Frame,
// either directly (Messages batch) or reassembled from a fragment run.
// It is a tagged union over the message kinds this core knows how to
// decode; exactly one field is non-nil.
type ZenohMessage struct {
	Request *Request
	Oam     *Oam
}

// DecodeZenohMessage peeks the next header byte to dispatch to the right
// message decoder, then hands off to it. Peeking rather than consuming
// lets each message's own decoder re-read (and validate) the header it
// owns, exactly as the transport-level decoders do.
func DecodeZenohMessage(r *codec.Reader) (ZenohMessage, error) {
	header, err := r.PeekByte()
	if err != nil {
		return ZenohMessage{}, err
	}
	switch MsgID(header) {
	case core.MsgIDRequest:
		req, err := DecodeRequest(r)
		if err != nil {
			return ZenohMessage{}, err
		}
		return ZenohMessage{Request: &req}, nil
	case core.MsgIDOAM:
		oam, err := DecodeOam(r)
		if err != nil {
			return ZenohMessage{}, err
		}
		return ZenohMessage{Oam: &oam}, nil
	default:
		return ZenohMessage{}, fmt.Errorf("%w: unknown zenoh message id %d", ErrMalformedHeader, MsgID(header))
	}
}

// EncodeZenohMessage writes whichever variant of m is populated.
func EncodeZenohMessage(w *codec.Writer, m ZenohMessage) error {
	switch {
	case m.Request != nil:
		return EncodeRequest(w, *m.Request)
	case m.Oam != nil:
		return EncodeOam(w, *m.Oam)
	default:
		return fmt.Errorf("%w: empty ZenohMessage", ErrMalformedHeader)
	}
}
