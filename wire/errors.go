package wire

import "errors"

// Error kinds shared across the message codecs in this package; see
// spec §7. Each decoder wraps these with fmt.Errorf("%w: ...") at the
// point of failure so callers can still errors.Is against the kind.
var (
	// ErrMalformedHeader covers a header byte whose low 5 bits don't
	// match the expected message id, and any other structurally
	// invalid fixed-layout field.
	ErrMalformedHeader = errors.New("wire: malformed header")

	// ErrMalformedExtension covers an extension body whose ENC did not
	// match what the typed extension expected (e.g. QoS read as ZBuf).
	ErrMalformedExtension = errors.New("wire: malformed extension body")

	// ErrProtocolViolation covers an out-of-range enum value inside an
	// otherwise well-formed field, e.g. a Target value the receiver
	// cannot interpret.
	ErrProtocolViolation = errors.New("wire: protocol violation")
)
