package wire

import (
	"github.com/codebot/zenoh/core"
)

// QoSExtID is the extension id used for the QoS extension in every
// message that carries one. Extension ids are namespaced per enclosing
// message; reusing the same numeric id across message kinds is safe
// because each message's decoder only ever looks it up in its own known
// set.
const QoSExtID = 0x01

// CongestionControl selects how a dropped-on-congestion message behaves.
type CongestionControl uint8

const (
	CongestionDrop CongestionControl = iota
	CongestionBlock
)

// QoS is the decoded form of the QoS extension: priority, congestion
// control and the express (do-not-batch) bit, packed into a single byte
// on the wire.
type QoS struct {
	Priority   core.Priority
	Congestion CongestionControl
	Express    bool
}

// DefaultQoS is the value implied by the extension's absence.
var DefaultQoS = QoS{Priority: core.DefaultPriority, Congestion: CongestionDrop, Express: false}

// IsDefault reports whether q equals DefaultQoS, i.e. whether an encoder
// may omit it.
func (q QoS) IsDefault() bool {
	return q == DefaultQoS
}

const (
	qosPriorityMask     = 0x07
	qosCongestionShift  = 3
	qosCongestionMask   = 0x01
	qosExpressShift     = 4
)

// EncodeQoS packs q into the extension's Z64 body.
func EncodeQoS(q QoS) ZExtBody {
	v := uint64(q.Priority) & qosPriorityMask
	if q.Congestion == CongestionBlock {
		v |= 1 << qosCongestionShift
	}
	if q.Express {
		v |= 1 << qosExpressShift
	}
	return ZExtZ64(v)
}

// DecodeQoS unpacks a QoS extension body.
func DecodeQoS(body ZExtBody) (QoS, error) {
	v, ok := body.U64()
	if !ok {
		return QoS{}, ErrMalformedExtension
	}
	q := QoS{Priority: core.Priority(v & qosPriorityMask)}
	if v>>qosCongestionShift&qosCongestionMask != 0 {
		q.Congestion = CongestionBlock
	}
	q.Express = v>>qosExpressShift&0x01 != 0
	return q, nil
}
