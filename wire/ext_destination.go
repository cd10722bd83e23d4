package wire

// DestinationExtID is the extension id for a Request's routing
// destination hint.
const DestinationExtID = 0x03

// Destination narrows which local endpoints a Request should be routed
// to.
type Destination uint8

const (
	DestinationSubscribers Destination = iota
	DestinationQueryables
	DestinationSubscribersAndQueryables
)

// DefaultDestination is the value implied by the extension's absence.
const DefaultDestination = DestinationSubscribers

// EncodeDestination always emits a Unit body: on the wire this
// extension currently only ever marks presence, it carries no distinct
// per-variant encoding yet.
func EncodeDestination(Destination) ZExtBody {
	return ZExtUnit()
}

// DecodeDestination always yields DestinationSubscribers. This mirrors
// the reference implementation, where the extension's read side is a
// stub that ignores the body and hands back a fixed variant; a future
// wire revision is expected to thread the real value through once the
// other variants are routed anywhere.
func DecodeDestination(ZExtBody) (Destination, error) {
	return DestinationSubscribers, nil
}
