//go:build !complete_n

package wire

// Without the complete_n capability, Complete(n) cannot be constructed
// and any peer-sent value >= 3 is a protocol violation rather than a
// silently-truncated variant. Interop across this boundary is
// deliberately undefined, per spec §9.

func encodeTargetComplete(uint64) (uint64, error) {
	return 0, ErrProtocolViolation
}

func decodeTargetComplete(uint64) (uint64, error) {
	return 0, ErrProtocolViolation
}
