// Package conduit implements the per-lane receive state: sequence
// tracking and fragment reassembly, one instance per (priority,
// reliability) slot of a Transport (spec §4.E).
package conduit

import "fmt"

// Resolution is the negotiated bit width sequence numbers are compared
// under. It is agreed out of band during session setup, which is out of
// scope here; this core only needs to know the final value.
type Resolution uint8

const (
	Resolution8  Resolution = 8
	Resolution16 Resolution = 16
	Resolution32 Resolution = 32
	Resolution64 Resolution = 64
)

// Valid reports whether r is one of the four negotiable widths.
func (r Resolution) Valid() bool {
	switch r {
	case Resolution8, Resolution16, Resolution32, Resolution64:
		return true
	default:
		return false
	}
}

func (r Resolution) mask() uint64 {
	if r == Resolution64 {
		return ^uint64(0)
	}
	return (uint64(1) << r) - 1
}

// halfWindow is the width of the accepted forward window: the sequence
// numbers precedes() accepts are exactly the halfWindow values
// immediately following the current one, modulo the resolution.
func (r Resolution) halfWindow() uint64 {
	if r == Resolution64 {
		return (uint64(1) << 63) - 1
	}
	return (uint64(1) << (r - 1)) - 1
}

// ErrInvalidResolution is returned by NewSeqTracker for an unsupported
// bit width.
var ErrInvalidResolution = fmt.Errorf("conduit: invalid sequence number resolution")

// SeqTracker holds a lane's current sequence number and enforces the
// total order spec §3 invariant 3 requires: the current value only ever
// moves forward, one accepted frame at a time.
type SeqTracker struct {
	resolution Resolution
	current    uint64
}

// NewSeqTracker builds a tracker starting at initial, under resolution.
func NewSeqTracker(resolution Resolution, initial uint64) (*SeqTracker, error) {
	if !resolution.Valid() {
		return nil, ErrInvalidResolution
	}
	return &SeqTracker{resolution: resolution, current: initial & resolution.mask()}, nil
}

// Get returns the current sequence number.
func (s *SeqTracker) Get() uint64 {
	return s.current
}

// Precedes reports whether next is the immediate successor of the
// current value, or within the accepted forward window, under
// modulo-2^resolution arithmetic. Values outside the forward half of the
// range are rejected as not preceding, which is what makes duplicate or
// badly stale frames safe to drop rather than accidentally accept as a
// huge rollover.
func (s *SeqTracker) Precedes(next uint64) bool {
	diff := (next - s.current) & s.resolution.mask()
	return diff >= 1 && diff <= s.resolution.halfWindow()
}

// Set advances the current value to next. Callers must only invoke this
// after Precedes(next) returned true.
func (s *SeqTracker) Set(next uint64) {
	s.current = next & s.resolution.mask()
}
