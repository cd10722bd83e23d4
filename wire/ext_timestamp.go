package wire

// TimestampExtID is the extension id for a message's optional logical
// timestamp.
const TimestampExtID = 0x02

// Timestamp is a 64-bit logical clock value, opaque to the codec; upper
// layers interpret it (NTP64, Hybrid Logical Clock, ...). Unlike QoS it
// has no meaningful default, which is why it is carried as *Timestamp
// (nil meaning "absent") rather than a zero value in the message structs.
type Timestamp struct {
	Time uint64
}

// EncodeTimestamp packs ts into the extension's Z64 body.
func EncodeTimestamp(ts Timestamp) ZExtBody {
	return ZExtZ64(ts.Time)
}

// DecodeTimestamp unpacks a Timestamp extension body.
func DecodeTimestamp(body ZExtBody) (Timestamp, error) {
	v, ok := body.U64()
	if !ok {
		return Timestamp{}, ErrMalformedExtension
	}
	return Timestamp{Time: v}, nil
}
