package conduit

import (
	"errors"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/wire"
)

// ErrNotSynced is returned by Push when called before Sync on an empty
// defragmenter.
var ErrNotSynced = errors.New("conduit: push before sync")

// ErrSyncNotEmpty is returned by Sync when fragments are already
// buffered; resyncing a non-empty defragmenter would silently drop them.
var ErrSyncNotEmpty = errors.New("conduit: sync called on non-empty defragmenter")

// ErrFragmentGap is returned by Push when the given sn is not the
// expected next one in the run; the defragmenter is cleared before this
// is returned, per spec §3 invariant 4.
var ErrFragmentGap = errors.New("conduit: non-contiguous fragment sn")

// Defragmenter accumulates the fragment payloads of one in-progress
// application message. It holds at most one run at a time: either empty,
// or a contiguous [sync, sync+1, ..., sync+k] of buffered fragment sns
// (spec §3 invariant 4).
type Defragmenter struct {
	resolution   Resolution
	buffers      [][]byte
	expectedNext uint64
	synced       bool
}

// NewDefragmenter builds an empty defragmenter under resolution.
func NewDefragmenter(resolution Resolution) *Defragmenter {
	return &Defragmenter{resolution: resolution}
}

// IsEmpty reports whether no fragments are buffered.
func (d *Defragmenter) IsEmpty() bool {
	return len(d.buffers) == 0
}

// Sync sets the expected first sn of a new run. Legal only when empty.
func (d *Defragmenter) Sync(firstSN uint64) error {
	if !d.IsEmpty() {
		return ErrSyncNotEmpty
	}
	d.expectedNext = firstSN & d.resolution.mask()
	d.synced = true
	return nil
}

// Push appends buf as the fragment at sn. It fails, clearing all
// buffered state, if sn is not the expected next sn of the run.
func (d *Defragmenter) Push(sn uint64, buf []byte) error {
	if !d.synced {
		return ErrNotSynced
	}
	if sn != d.expectedNext {
		d.Clear()
		return ErrFragmentGap
	}
	d.buffers = append(d.buffers, buf)
	d.expectedNext = (sn + 1) & d.resolution.mask()
	return nil
}

// Clear drops all buffered fragments.
func (d *Defragmenter) Clear() {
	d.buffers = nil
	d.synced = false
}

// Defragment attempts to parse the concatenation of all buffered
// fragments as one application message. It always clears the run,
// whether or not parsing succeeds: a fragment run is consumed exactly
// once, successfully or not (spec §3 invariant 5).
func (d *Defragmenter) Defragment() (wire.ZenohMessage, bool) {
	defer d.Clear()

	if d.IsEmpty() {
		return wire.ZenohMessage{}, false
	}

	total := 0
	for _, b := range d.buffers {
		total += len(b)
	}
	concatenated := make([]byte, 0, total)
	for _, b := range d.buffers {
		concatenated = append(concatenated, b...)
	}

	msg, err := wire.DecodeZenohMessage(codec.NewReader(concatenated))
	if err != nil {
		return wire.ZenohMessage{}, false
	}
	return msg, true
}
