package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// Oam header layout (spec §6.1):
//
//	7 6 5 4 3 2 1 0
//	+-+-+-+---------+
//	|Z|ENC|  OAM_id  |
//	+-+-+-+---------+
//
// Unlike every other message, OAM's own ENC field (not a trailing
// extension) selects the shape of its body, which follows immediately
// after a 16-bit OAM id. Extensions (QoS, Timestamp) still ride in a
// standard chain gated by Z, same as every other message.
const (
	oamEncShift = 5
	oamEncMask  = 0x3
)

// Oam is an out-of-band admin message (spec §3).
type Oam struct {
	ID   uint16
	Body ZExtBody

	ExtQoS    QoS
	ExtTstamp *Timestamp
}

// EncodeOam writes x in full.
func EncodeOam(w *codec.Writer, x Oam) error {
	nExts := 0
	if !x.ExtQoS.IsDefault() {
		nExts++
	}
	if x.ExtTstamp != nil {
		nExts++
	}

	if x.Body.Enc() == core.ExtEncReserved {
		return ErrReservedEncoding
	}
	header := byte(core.MsgIDOAM)
	header |= x.Body.Enc() << oamEncShift
	if nExts != 0 {
		header |= FlagZ
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}

	if err := w.WriteU16(x.ID); err != nil {
		return err
	}
	if err := writeExtBody(w, x.Body); err != nil {
		return err
	}

	if !x.ExtQoS.IsDefault() {
		nExts--
		if err := WriteExtension(w, QoSExtID, EncodeQoS(x.ExtQoS), nExts != 0); err != nil {
			return err
		}
	}
	if x.ExtTstamp != nil {
		nExts--
		if err := WriteExtension(w, TimestampExtID, EncodeTimestamp(*x.ExtTstamp), nExts != 0); err != nil {
			return err
		}
	}

	return nil
}

// DecodeOam reads an Oam message.
func DecodeOam(r *codec.Reader) (Oam, error) {
	header, err := r.ReadByte()
	if err != nil {
		return Oam{}, err
	}
	if MsgID(header) != core.MsgIDOAM {
		return Oam{}, fmt.Errorf("%w: expected OAM, got id %d", ErrMalformedHeader, MsgID(header))
	}
	enc := (header >> oamEncShift) & oamEncMask

	id, err := r.ReadU16()
	if err != nil {
		return Oam{}, err
	}
	body, err := readExtBody(r, enc)
	if err != nil {
		return Oam{}, err
	}

	x := Oam{ID: id, Body: body, ExtQoS: DefaultQoS}

	hasExt := HasFlag(header, FlagZ)
	for hasExt {
		extID, extBody, more, err := ReadExtension(r)
		if err != nil {
			return Oam{}, err
		}
		switch extID {
		case QoSExtID:
			q, err := DecodeQoS(extBody)
			if err != nil {
				return Oam{}, err
			}
			x.ExtQoS = q
		case TimestampExtID:
			ts, err := DecodeTimestamp(extBody)
			if err != nil {
				return Oam{}, err
			}
			x.ExtTstamp = &ts
		default:
		}
		hasExt = more
	}

	return x, nil
}
