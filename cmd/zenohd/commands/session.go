package commands

import (
	"github.com/codebot/zenoh/transport/unicast"
)

// linkSessionOps is the minimal unicast.SessionOps a single-link demo
// process needs: there is no multi-link session to drop one link from
// or a routing table to tear down, so DelLink and Delete both reduce to
// closing the one link, and StopRx and StopTx do nothing. A real session layer (out of scope per spec.md §1) would
// instead stop per-link reader/writer goroutines independently and
// only close the link or delete the whole session based on LinkOnly.
type linkSessionOps struct {
	link unicast.Link
}

var _ unicast.SessionOps = (*linkSessionOps)(nil)

func (o *linkSessionOps) StopRx(link unicast.Link) error { return nil }
func (o *linkSessionOps) StopTx(link unicast.Link) error { return nil }

func (o *linkSessionOps) DelLink(link unicast.Link) error {
	return link.Close()
}

func (o *linkSessionOps) Delete() error {
	return o.link.Close()
}
