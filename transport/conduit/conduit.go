package conduit

import (
	"sync"

	"github.com/pion/randutil"
)

// seqGenerator produces the random initial sequence number each lane
// starts from, the same way the reference packetizer picks a random
// starting RTP sequence number rather than always beginning at zero.
var seqGenerator = randutil.NewMathRandomGenerator()

// ConduitRx is one reliability lane's receive state: a sequence tracker
// and a defragmenter, serialized behind a single mutex so that a lane's
// entire state transitions atomically per frame (spec §4.E, §5).
type ConduitRx struct {
	mu sync.Mutex

	SN     *SeqTracker
	Defrag *Defragmenter
}

// NewConduitRx builds a lane starting at a randomized sequence number, so
// that two peers racing to reconnect never collide on predictable,
// always-zero starting values.
func NewConduitRx(resolution Resolution) (*ConduitRx, error) {
	initial := uint64(seqGenerator.Uint32()) & resolution.mask()
	sn, err := NewSeqTracker(resolution, initial)
	if err != nil {
		return nil, err
	}
	return &ConduitRx{SN: sn, Defrag: NewDefragmenter(resolution)}, nil
}

// Lock acquires the lane's mutex. The critical section guarded by it
// must stay short (one frame's worth of work) and must never block on
// anything but CPU-bound work, per spec §5.
func (c *ConduitRx) Lock() {
	c.mu.Lock()
}

// Unlock releases the lane's mutex.
func (c *ConduitRx) Unlock() {
	c.mu.Unlock()
}

// Conduit is a priority class's pair of receive lanes.
type Conduit struct {
	Reliable   *ConduitRx
	BestEffort *ConduitRx
}

// NewConduit builds a Conduit with both lanes starting at independently
// randomized sequence numbers under resolution.
func NewConduit(resolution Resolution) (*Conduit, error) {
	reliable, err := NewConduitRx(resolution)
	if err != nil {
		return nil, err
	}
	bestEffort, err := NewConduitRx(resolution)
	if err != nil {
		return nil, err
	}
	return &Conduit{Reliable: reliable, BestEffort: bestEffort}, nil
}
