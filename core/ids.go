package core

// Transport message ids. Each message's header byte packs its id into the
// low 5 bits (mask MsgIDMask), leaving the high 3 bits for per-message
// flags.
//
// https://github.com/eclipse-zenoh/zenoh (network/transport wire format)
const (
	// MsgIDOAM is an out-of-band admin message.
	MsgIDOAM = 0x02
	// MsgIDClose tears down a link or a whole session.
	MsgIDClose = 0x07
	// MsgIDKeepAlive is a no-op liveness marker.
	MsgIDKeepAlive = 0x06
	// MsgIDFrame carries one or more zenoh messages, reliably-ordered
	// within one (priority, reliability) lane.
	MsgIDFrame = 0x08
	// MsgIDRequest is a network-layer query/get request.
	MsgIDRequest = 0x0c
)

// MsgIDMask isolates the 5-bit message id from a header byte.
const MsgIDMask = 0x1f

// Extension encodings, packed into 2 bits of an extension header.
const (
	// ExtEncUnit carries no body.
	ExtEncUnit = 0b00
	// ExtEncZ64 carries a single varint-encoded 64-bit value.
	ExtEncZ64 = 0b01
	// ExtEncZBuf carries a varint length followed by that many raw bytes.
	ExtEncZBuf = 0b10
	// extEncReserved is never emitted; a decoder must fail on it.
	extEncReserved = 0b11
)

// ExtEncReserved exposes the reserved encoding value for decoders that
// need to recognize and reject it.
const ExtEncReserved = extEncReserved
