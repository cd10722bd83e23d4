// Package shm implements the optional shared-memory mapping hook of
// spec §4.G: after defragmentation and before callback dispatch, a
// message's shared-memory handles are resolved into mapped byte views
// via a process-local registry.
package shm

// Registry resolves a shared-memory handle into its mapped bytes.
// Implementations must be safe for concurrent use from multiple lanes.
type Registry interface {
	// Map resolves handle into its backing bytes. ok is false when
	// handle does not refer to a live mapping, in which case the
	// caller should pass the original bytes through unchanged.
	Map(handle []byte) (mapped []byte, ok bool)
}

// Disabled is a Registry that never resolves anything, used when the
// shared-memory feature is off. Every call is a single branch the
// compiler can trivially devirtualize away in practice.
type Disabled struct{}

func (Disabled) Map([]byte) ([]byte, bool) { return nil, false }
