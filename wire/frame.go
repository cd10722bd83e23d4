package wire

import (
	"fmt"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
)

// Frame header flags: R = Reliable (else BestEffort); F = payload is a
// Fragment (else a Messages batch); E = is_final, meaningful only when F
// is set. The channel's Priority does not fit alongside R/F/E in the
// three available flag bits, so it rides as a fixed body byte
// immediately after the header; a QoS-disabled transport still reads it
// and simply rejects anything but core.DefaultPriority (spec §4.F).
const (
	frameFlagR = FlagZ  // Reliable
	frameFlagF = FlagF1 // Fragment
	frameFlagE = FlagF2 // is_final
)

// FramePayload is the tagged union of a Frame's body: either one
// fragment of an in-progress reassembly, or a complete batch of
// already-whole messages.
type FramePayload struct {
	// IsFragment discriminates the two variants.
	IsFragment bool

	// Fragment fields, valid iff IsFragment.
	FragmentBytes []byte
	IsFinal       bool

	// Messages fields, valid iff !IsFragment.
	Messages []ZenohMessage
}

// Frame carries one sequence-numbered unit of traffic on a single
// (priority, reliability) lane (spec §3).
type Frame struct {
	Channel core.Channel
	SN      uint64
	Payload FramePayload
}

// EncodeFrame writes x in full.
func EncodeFrame(w *codec.Writer, x Frame) error {
	header := byte(core.MsgIDFrame)
	if x.Channel.Reliability == core.ReliabilityReliable {
		header |= frameFlagR
	}
	if x.Payload.IsFragment {
		header |= frameFlagF
		if x.Payload.IsFinal {
			header |= frameFlagE
		}
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}

	if err := w.WriteU8(uint8(x.Channel.Priority)); err != nil {
		return err
	}
	if err := w.WriteVarint(x.SN); err != nil {
		return err
	}

	if x.Payload.IsFragment {
		return w.WriteByteArray(x.Payload.FragmentBytes)
	}

	if err := w.WriteVarint(uint64(len(x.Payload.Messages))); err != nil {
		return err
	}
	for _, m := range x.Payload.Messages {
		if err := EncodeZenohMessage(w, m); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFrame reads a Frame.
func DecodeFrame(r *codec.Reader) (Frame, error) {
	header, err := r.ReadByte()
	if err != nil {
		return Frame{}, err
	}
	if MsgID(header) != core.MsgIDFrame {
		return Frame{}, fmt.Errorf("%w: expected FRAME, got id %d", ErrMalformedHeader, MsgID(header))
	}

	priorityByte, err := r.ReadU8()
	if err != nil {
		return Frame{}, err
	}
	priority := core.Priority(priorityByte)
	if !priority.Valid() {
		return Frame{}, fmt.Errorf("%w: priority %d out of range", ErrProtocolViolation, priorityByte)
	}

	sn, err := r.ReadVarint()
	if err != nil {
		return Frame{}, err
	}

	reliability := core.ReliabilityBestEffort
	if HasFlag(header, frameFlagR) {
		reliability = core.ReliabilityReliable
	}

	x := Frame{Channel: core.Channel{Priority: priority, Reliability: reliability}, SN: sn}

	if HasFlag(header, frameFlagF) {
		buf, err := r.ReadByteArray()
		if err != nil {
			return Frame{}, err
		}
		x.Payload = FramePayload{IsFragment: true, FragmentBytes: buf, IsFinal: HasFlag(header, frameFlagE)}
		return x, nil
	}

	count, err := r.ReadVarint()
	if err != nil {
		return Frame{}, err
	}
	messages := make([]ZenohMessage, 0, count)
	for i := uint64(0); i < count; i++ {
		m, err := DecodeZenohMessage(r)
		if err != nil {
			return Frame{}, err
		}
		messages = append(messages, m)
	}
	x.Payload = FramePayload{Messages: messages}

	return x, nil
}
