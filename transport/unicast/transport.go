package unicast

import (
	"context"
	"fmt"

	"github.com/codebot/zenoh/core"
	"github.com/codebot/zenoh/transport/conduit"
	"github.com/codebot/zenoh/transport/shm"
	"github.com/codebot/zenoh/transport/stats"
	"golang.org/x/sync/errgroup"
)

// SessionOps is what this pipeline needs from the session/link-discovery
// layer (out of scope per spec §1) to carry out a Close: stopping a
// link's reader/writer tasks, and either dropping one link or tearing
// down the whole session. Every method must be idempotent, since both
// link-only and full teardown can race with an already-stopped link.
type SessionOps interface {
	StopRx(link Link) error
	StopTx(link Link) error
	DelLink(link Link) error
	Delete() error
}

// Unicast is the external-facing analogue of the reference
// implementation's TransportUnicastInner (spec §4.H): it owns the
// per-priority conduit vector, the callback slot, the stats sink, the
// shm registry and local/remote identity, all already negotiated by the
// handshake this core does not implement.
type Unicast struct {
	LocalPeerID  core.PeerID
	RemotePeerID core.PeerID
	QoS          bool

	conduits []*conduit.Conduit

	callback callbackSlot
	stats    stats.Counters
	shm      shm.Registry

	ops      SessionOps
	teardown *errgroup.Group
}

// Option configures optional Unicast fields at construction time.
type Option func(*Unicast)

// WithCallback registers the upper layer's message handler up front;
// equivalent to calling SetCallback after New.
func WithCallback(cb Callback) Option {
	return func(u *Unicast) { u.callback.set(cb) }
}

// WithCounters wires a non-default stats sink (New defaults to
// stats.Noop{}).
func WithCounters(c stats.Counters) Option {
	return func(u *Unicast) { u.stats = c }
}

// WithSHM wires a non-default shared-memory registry (New defaults to
// shm.Disabled{}).
func WithSHM(r shm.Registry) Option {
	return func(u *Unicast) { u.shm = r }
}

// New builds a Unicast transport over already-negotiated parameters.
// ctx bounds the lifetime of the asynchronous teardown pool (spec §5);
// it should be the transport session's own lifetime context, not a
// per-call one.
func New(
	ctx context.Context,
	local, remote core.PeerID,
	qosEnabled bool,
	resolution conduit.Resolution,
	ops SessionOps,
	opts ...Option,
) (*Unicast, error) {
	numConduits := 1
	if qosEnabled {
		numConduits = core.NumPriorities
	}

	conduits := make([]*conduit.Conduit, numConduits)
	for i := range conduits {
		c, err := conduit.NewConduit(resolution)
		if err != nil {
			return nil, fmt.Errorf("transport: building conduit %d: %w", i, err)
		}
		conduits[i] = c
	}

	g, _ := errgroup.WithContext(ctx)

	u := &Unicast{
		LocalPeerID:  local,
		RemotePeerID: remote,
		QoS:          qosEnabled,
		conduits:     conduits,
		stats:        stats.Noop{},
		shm:          shm.Disabled{},
		ops:          ops,
		teardown:     g,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// SetCallback replaces the delivery callback.
func (u *Unicast) SetCallback(cb Callback) {
	u.callback.set(cb)
}

// Wait blocks until every teardown task spawned so far has finished,
// returning the first error any of them reported. It exists for tests
// and for orderly shutdown; the receive path itself never calls it,
// since teardown is fire-and-forget by design (spec §5).
func (u *Unicast) Wait() error {
	return u.teardown.Wait()
}
