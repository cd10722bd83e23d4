package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// Extension header bit layout, per spec §3/§4.C:
//
//	7 6 5 4 3 2 1 0
//	+-+---+-+-------+
//	|Z|ENC|   id    |
//	+-+---+---------+
const (
	extMoreFlag = 1 << 7
	extEncShift = 5
	extEncMask  = 0x3
	extIDMask   = 0x1f
)

// ErrReservedEncoding is returned when an extension header's ENC field is
// the reserved value 0b11. The encoder must never emit it; the decoder
// must always fail on it.
var ErrReservedEncoding = fmt.Errorf("wire: reserved extension encoding")

// ZExtBody is the tagged-union payload of an extension (or, reused
// verbatim, of an Oam body): Unit carries nothing, Z64 carries one
// varint-encoded 64-bit value, ZBuf carries a length-prefixed byte run.
type ZExtBody struct {
	enc   uint8
	val   uint64
	bytes []byte
}

// ZExtUnit builds a body with no payload.
func ZExtUnit() ZExtBody { return ZExtBody{enc: core.ExtEncUnit} }

// ZExtZ64 builds a body carrying a single 64-bit value.
func ZExtZ64(v uint64) ZExtBody { return ZExtBody{enc: core.ExtEncZ64, val: v} }

// ZExtZBuf builds a body carrying raw bytes.
func ZExtZBuf(b []byte) ZExtBody { return ZExtBody{enc: core.ExtEncZBuf, bytes: b} }

// Enc returns the body's wire encoding tag.
func (b ZExtBody) Enc() uint8 { return b.enc }

// U64 returns the carried value and whether the body is Z64-encoded.
func (b ZExtBody) U64() (uint64, bool) { return b.val, b.enc == core.ExtEncZ64 }

// Buf returns the carried bytes and whether the body is ZBuf-encoded.
func (b ZExtBody) Buf() ([]byte, bool) { return b.bytes, b.enc == core.ExtEncZBuf }

// Equal compares two bodies by encoding and payload.
func (b ZExtBody) Equal(other ZExtBody) bool {
	if b.enc != other.enc {
		return false
	}
	switch b.enc {
	case core.ExtEncUnit:
		return true
	case core.ExtEncZ64:
		return b.val == other.val
	case core.ExtEncZBuf:
		if len(b.bytes) != len(other.bytes) {
			return false
		}
		for i := range b.bytes {
			if b.bytes[i] != other.bytes[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ReadExtension reads one extension unit: header byte, then a body shaped
// by the header's ENC field. Calling this on an unrecognized id is how a
// decoder implements skip-unknown (spec §4.C): the returned body is
// simply discarded by the caller, having consumed exactly as many bytes
// as the ENC field promised.
func ReadExtension(r *codec.Reader) (id uint8, body ZExtBody, more bool, err error) {
	header, err := r.ReadByte()
	if err != nil {
		return 0, ZExtBody{}, false, err
	}
	more = header&extMoreFlag != 0
	enc := (header >> extEncShift) & extEncMask
	id = header & extIDMask

	body, err = readExtBody(r, enc)
	if err != nil {
		return 0, ZExtBody{}, false, err
	}
	return id, body, more, nil
}

func readExtBody(r *codec.Reader, enc uint8) (ZExtBody, error) {
	switch enc {
	case core.ExtEncUnit:
		return ZExtUnit(), nil
	case core.ExtEncZ64:
		v, err := r.ReadVarint()
		if err != nil {
			return ZExtBody{}, err
		}
		return ZExtZ64(v), nil
	case core.ExtEncZBuf:
		b, err := r.ReadByteArray()
		if err != nil {
			return ZExtBody{}, err
		}
		return ZExtZBuf(b), nil
	default:
		return ZExtBody{}, ErrReservedEncoding
	}
}

// WriteExtension writes one extension unit: a header byte packing id, the
// body's ENC and the more-follows bit, then the body itself.
func WriteExtension(w *codec.Writer, id uint8, body ZExtBody, more bool) error {
	if body.enc == core.ExtEncReserved {
		return ErrReservedEncoding
	}
	header := id & extIDMask
	header |= body.enc << extEncShift
	if more {
		header |= extMoreFlag
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}
	return writeExtBody(w, body)
}

func writeExtBody(w *codec.Writer, body ZExtBody) error {
	switch body.enc {
	case core.ExtEncUnit:
		return nil
	case core.ExtEncZ64:
		return w.WriteVarint(body.val)
	case core.ExtEncZBuf:
		return w.WriteByteArray(body.bytes)
	default:
		return ErrReservedEncoding
	}
}
