package wire

import (
	"testing"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportMessageDispatchesFrame(t *testing.T) {
	f := Frame{
		Channel: core.Channel{Priority: core.DefaultPriority, Reliability: core.ReliabilityBestEffort},
		SN:      1,
		Payload: FramePayload{Messages: []ZenohMessage{}},
	}
	m := TransportMessage{Frame: &f}

	w := codec.NewWriter()
	require.NoError(t, EncodeTransportMessage(w, m))

	got, err := DecodeTransportMessage(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got.Frame)
	assert.Equal(t, f, *got.Frame)
}

func TestTransportMessageDispatchesClose(t *testing.T) {
	c := Close{Reason: 1}
	m := TransportMessage{Close: &c}

	w := codec.NewWriter()
	require.NoError(t, EncodeTransportMessage(w, m))

	got, err := DecodeTransportMessage(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got.Close)
	assert.Equal(t, c, *got.Close)
}

func TestTransportMessageDispatchesKeepAlive(t *testing.T) {
	m := TransportMessage{KeepAlive: &KeepAlive{}}

	w := codec.NewWriter()
	require.NoError(t, EncodeTransportMessage(w, m))

	got, err := DecodeTransportMessage(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.NotNil(t, got.KeepAlive)
}

func TestTransportMessageUnknownIDIsForwardCompatible(t *testing.T) {
	// Message id 0x1f is not one this core understands; decoding must
	// report it rather than fail, per the forward-compatibility
	// requirement on unrecognized transport messages.
	raw := []byte{0x1f}

	got, err := DecodeTransportMessage(codec.NewReader(raw))
	require.NoError(t, err)
	assert.True(t, got.Unknown)
	assert.EqualValues(t, 0x1f, got.UnknownID)
}

func TestEncodeTransportMessageRejectsEmpty(t *testing.T) {
	w := codec.NewWriter()
	err := EncodeTransportMessage(w, TransportMessage{})
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestZenohMessageDispatchRequestAndOam(t *testing.T) {
	req := Request{
		ID:        1,
		WireExpr:  core.WireExpr{ID: 1},
		Mapping:   core.DefaultMapping,
		Payload:   RequestBody{Payload: []byte{}},
		ExtQoS:    DefaultQoS,
		ExtDst:    DefaultDestination,
		ExtTarget: DefaultTarget,
	}
	w := codec.NewWriter()
	require.NoError(t, EncodeZenohMessage(w, ZenohMessage{Request: &req}))
	got, err := DecodeZenohMessage(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got.Request)
	assert.Equal(t, req, *got.Request)

	oam := Oam{ID: 1, Body: ZExtUnit(), ExtQoS: DefaultQoS}
	w2 := codec.NewWriter()
	require.NoError(t, EncodeZenohMessage(w2, ZenohMessage{Oam: &oam}))
	got2, err := DecodeZenohMessage(codec.NewReader(w2.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got2.Oam)
	assert.Equal(t, oam, *got2.Oam)
}
