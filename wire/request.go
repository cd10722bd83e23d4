package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// Request header flags (spec §6.1): M = mapping Sender (else Receiver);
// N = wire_expr has suffix; Z = extensions follow.
const (
	requestFlagM = FlagF1
	requestFlagN = FlagF2
)

// RequestBody is the network-layer request payload. Its real shape (Get,
// Pull, ...) is defined by the pub/sub/query API surface, which is out
// of scope here; this core treats it as an opaque, length-prefixed blob
// so that a Request remains self-delimiting inside a Frame's Messages
// batch without needing to understand what is inside.
type RequestBody struct {
	Payload []byte
}

// ReadRequestBody reads the opaque request payload.
func ReadRequestBody(r *codec.Reader) (RequestBody, error) {
	b, err := r.ReadByteArray()
	if err != nil {
		return RequestBody{}, err
	}
	return RequestBody{Payload: b}, nil
}

// WriteRequestBody writes the opaque request payload.
func WriteRequestBody(w *codec.Writer, x RequestBody) error {
	return w.WriteByteArray(x.Payload)
}

// Request is a network-layer query/get request (spec §3, §6.1).
type Request struct {
	ID       uint64
	WireExpr core.WireExpr
	Mapping  core.Mapping
	Payload  RequestBody

	ExtQoS    QoS
	ExtTstamp *Timestamp
	ExtDst    Destination
	ExtTarget Target
}

// EncodeRequest writes x in full: header, body, canonically-ordered
// non-default extensions, payload.
func EncodeRequest(w *codec.Writer, x Request) error {
	nExts := 0
	if !x.ExtQoS.IsDefault() {
		nExts++
	}
	if x.ExtTstamp != nil {
		nExts++
	}
	if x.ExtDst != DefaultDestination {
		nExts++
	}
	if !x.ExtTarget.IsDefault() {
		nExts++
	}

	header := byte(core.MsgIDRequest)
	if nExts != 0 {
		header |= FlagZ
	}
	if x.Mapping == core.MappingSender {
		header |= requestFlagM
	}
	if x.WireExpr.HasSuffix() {
		header |= requestFlagN
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}

	if err := w.WriteVarint(x.ID); err != nil {
		return err
	}
	if err := w.WriteWireExpr(x.WireExpr); err != nil {
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
	if x.ExtDst != DefaultDestination {
		nExts--
		if err := WriteExtension(w, DestinationExtID, EncodeDestination(x.ExtDst), nExts != 0); err != nil {
			return err
		}
	}
	if !x.ExtTarget.IsDefault() {
		nExts--
		body, err := EncodeTarget(x.ExtTarget)
		if err != nil {
			return err
		}
		if err := WriteExtension(w, TargetExtID, body, nExts != 0); err != nil {
			return err
		}
	}

	return WriteRequestBody(w, x.Payload)
}

// DecodeRequest reads a Request, permissively accepting extensions in any
// order (last-write-wins on duplicates) and skipping any it doesn't
// recognize, per spec §4.D's interop requirement.
func DecodeRequest(r *codec.Reader) (Request, error) {
	header, err := r.ReadByte()
	if err != nil {
		return Request{}, err
	}
	if MsgID(header) != core.MsgIDRequest {
		return Request{}, fmt.Errorf("%w: expected REQUEST, got id %d", ErrMalformedHeader, MsgID(header))
	}

	id, err := r.ReadVarint()
	if err != nil {
		return Request{}, err
	}
	wireExpr, err := r.ReadWireExpr(HasFlag(header, requestFlagN))
	if err != nil {
		return Request{}, err
	}
	mapping := core.MappingReceiver
	if HasFlag(header, requestFlagM) {
		mapping = core.MappingSender
	}

	x := Request{
		ID:        id,
		WireExpr:  wireExpr,
		Mapping:   mapping,
		ExtQoS:    DefaultQoS,
		ExtDst:    DefaultDestination,
		ExtTarget: DefaultTarget,
	}

	hasExt := HasFlag(header, FlagZ)
	for hasExt {
		extID, body, more, err := ReadExtension(r)
		if err != nil {
			return Request{}, err
		}
		switch extID {
		case QoSExtID:
			q, err := DecodeQoS(body)
			if err != nil {
				return Request{}, err
			}
			x.ExtQoS = q
		case TimestampExtID:
			ts, err := DecodeTimestamp(body)
			if err != nil {
				return Request{}, err
			}
			x.ExtTstamp = &ts
		case DestinationExtID:
			d, err := DecodeDestination(body)
			if err != nil {
				return Request{}, err
			}
			x.ExtDst = d
		case TargetExtID:
			t, err := DecodeTarget(body)
			if err != nil {
				return Request{}, err
			}
			x.ExtTarget = t
		default:
			// Unknown extension: the body has already been consumed
			// per its ENC field above. Nothing further to do.
		}
		hasExt = more
	}

	payload, err := ReadRequestBody(r)
	if err != nil {
		return Request{}, err
	}
	x.Payload = payload

	return x, nil
}
