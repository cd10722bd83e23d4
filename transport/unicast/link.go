// Package unicast implements the per-link demultiplexing, ordering,
// reassembly and dispatch pipeline of spec §4.F, driven by a link
// driver (out of scope) that decodes a wire.TransportMessage and calls
// Unicast.ReceiveMessage.
package unicast

import "fmt"

// Link is the minimal identity a link driver exposes to this pipeline:
// enough to log about it and to close it during teardown. Locator
// parsing, dialing, listening and scouting all live in the transport's
// send-path/discovery layer, which is out of scope here (spec §1).
type Link interface {
	fmt.Stringer
	Close() error
}
