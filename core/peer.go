package core

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// PeerID is a variable-length peer identifier, as carried by a Close
// message and compared against a transport's local identity in
// handle_close. Session establishment (which negotiates these) is out of
// scope; PeerID only needs to support construction, comparison and
// logging for the pieces the receive path touches.
type PeerID []byte

// NewPeerID generates a fresh 128-bit peer identifier. It is a convenience
// for the collaborators (session setup, tests) that need one; the receive
// path itself never creates a PeerID, it only compares them.
func NewPeerID() PeerID {
	id := uuid.New()

	return PeerID(id[:])
}

// Equal reports whether two peer ids carry the same bytes.
func (p PeerID) Equal(other PeerID) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the id as lowercase hex for logging.
func (p PeerID) String() string {
	return hex.EncodeToString(p)
}
