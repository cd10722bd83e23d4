package unicast

import (
	"context"

	"github.com/codebot/zenoh/core"
	"github.com/codebot/zenoh/internal/logging"
	"github.com/codebot/zenoh/transport/conduit"
	"github.com/codebot/zenoh/wire"
)

// ReceiveMessage is the single entry point a link driver calls with each
// decoded wire.TransportMessage (spec §4.F). It dispatches by kind:
// Frame goes through lane selection, ordering and reassembly; Close
// tears the link or session down; KeepAlive is a no-op; anything else
// is logged and dropped for forward compatibility.
func (u *Unicast) ReceiveMessage(ctx context.Context, msg wire.TransportMessage, link Link) error {
	switch {
	case msg.Frame != nil:
		return u.handleFrame(ctx, *msg.Frame, link)
	case msg.Close != nil:
		return u.handleClose(ctx, *msg.Close, link)
	case msg.KeepAlive != nil:
		return nil
	default:
		logging.Debug(ctx, "unicast: dropping unknown transport message", "link", link, "msg_id", msg.UnknownID)
		return nil
	}
}

// conduitFor selects the (priority, reliability) lane a Frame belongs
// to. A transport with QoS disabled only ever has one conduit, and
// every Frame on it must carry core.DefaultPriority (spec §4.F); a
// Frame naming any other priority is a protocol violation the caller
// should treat like any other malformed frame.
func (u *Unicast) conduitFor(ch core.Channel) (*conduit.ConduitRx, bool) {
	idx := 0
	if u.QoS {
		idx = int(ch.Priority)
	} else if ch.Priority != core.DefaultPriority {
		return nil, false
	}
	if idx < 0 || idx >= len(u.conduits) {
		return nil, false
	}
	c := u.conduits[idx]
	if ch.Reliability == core.ReliabilityReliable {
		return c.Reliable, true
	}
	return c.BestEffort, true
}

// handleFrame implements the reference handle_frame: validate and
// advance the lane's sequence number, then either buffer a fragment
// (delivering it once a final one completes the run) or deliver every
// message in a Messages batch in order.
func (u *Unicast) handleFrame(ctx context.Context, f wire.Frame, link Link) error {
	lane, ok := u.conduitFor(f.Channel)
	if !ok {
		logging.Debug(ctx, "unicast: dropping frame on unknown lane",
			"link", link, "priority", f.Channel.Priority, "reliability", f.Channel.Reliability)
		return nil
	}

	lane.Lock()
	defer lane.Unlock()

	if !lane.SN.Precedes(f.SN) {
		logging.Debug(ctx, "unicast: dropping frame with stale or duplicate sequence number",
			"link", link, "sn", f.SN, "current", lane.SN.Get())
		return nil
	}
	lane.SN.Set(f.SN)

	if f.Payload.IsFragment {
		return u.handleFragment(ctx, lane, f)
	}

	for _, m := range f.Payload.Messages {
		u.deliver(ctx, m)
	}
	return nil
}

// handleFragment buffers one fragment of a run, syncing the defragmenter
// on the first fragment of a gap-free run and completing (and
// delivering) it when IsFinal arrives. A gap or a failed parse simply
// clears the in-progress run per spec §3 invariants 4 and 5: the next
// fragment run starts fresh rather than poisoning the lane.
func (u *Unicast) handleFragment(ctx context.Context, lane *conduit.ConduitRx, f wire.Frame) error {
	if lane.Defrag.IsEmpty() {
		if err := lane.Defrag.Sync(f.SN); err != nil {
			logging.Debug(ctx, "unicast: defragmenter sync failed", "error", err)
			return nil
		}
	}

	if err := lane.Defrag.Push(f.SN, f.Payload.FragmentBytes); err != nil {
		logging.Debug(ctx, "unicast: dropping fragment run after gap", "sn", f.SN, "error", err)
		return nil
	}

	if !f.Payload.IsFinal {
		return nil
	}

	msg, ok := lane.Defrag.Defragment()
	if !ok {
		logging.Debug(ctx, "unicast: discarding fragment run that failed to decode")
		return nil
	}
	u.deliver(ctx, msg)
	return nil
}

// deliver resolves shared-memory handles via the configured registry
// (spec §4.G: a Disabled registry is a no-op, so this is zero-cost when
// shm is off), updates stats, and invokes the callback with no lock
// held.
func (u *Unicast) deliver(ctx context.Context, msg wire.ZenohMessage) {
	switch {
	case msg.Request != nil:
		if mapped, ok := u.shm.Map(msg.Request.Payload.Payload); ok {
			msg.Request.Payload.Payload = mapped
		}
		u.stats.IncRequest(len(msg.Request.Payload.Payload))
	case msg.Oam != nil:
		if buf, isBuf := msg.Oam.Body.Buf(); isBuf {
			if mapped, ok := u.shm.Map(buf); ok {
				msg.Oam.Body = wire.ZExtZBuf(mapped)
			}
		}
		buf, _ := msg.Oam.Body.Buf()
		u.stats.IncOam(len(buf))
	}

	cb := u.callback.get()
	if cb == nil {
		return
	}
	if err := cb(msg); err != nil {
		logging.Error(ctx, "unicast: callback returned error", "error", err)
	}
}

// handleClose validates that a peer-scoped Close actually names this
// transport's local peer before acting on it — a Close with a
// mismatched id is stale (racing a prior session on the same link) and
// is logged and dropped rather than tearing anything down. Teardown
// itself is dispatched onto the long-lived errgroup so that a slow
// StopRx/StopTx/DelLink/Delete never blocks the caller that is still
// inside this method's own receive loop (spec §5: tearing down a
// transport from within its own receive path must not self-join).
func (u *Unicast) handleClose(ctx context.Context, c wire.Close, link Link) error {
	if c.PeerID != nil && !c.PeerID.Equal(u.LocalPeerID) {
		logging.Debug(ctx, "unicast: dropping close for mismatched peer id",
			"link", link, "got", c.PeerID, "want", u.LocalPeerID)
		return nil
	}

	u.teardown.Go(func() error {
		if err := u.ops.StopRx(link); err != nil {
			logging.Error(ctx, "unicast: stop_rx failed", "link", link, "error", err)
		}
		if err := u.ops.StopTx(link); err != nil {
			logging.Error(ctx, "unicast: stop_tx failed", "link", link, "error", err)
		}
		if c.LinkOnly {
			if err := u.ops.DelLink(link); err != nil {
				logging.Error(ctx, "unicast: del_link failed", "link", link, "error", err)
				return err
			}
			return nil
		}
		if err := u.ops.Delete(); err != nil {
			logging.Error(ctx, "unicast: delete failed", "error", err)
			return err
		}
		return nil
	})

	return nil
}
