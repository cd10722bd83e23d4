package wire

import (
	"testing"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOamRoundTripEachBodyEncoding(t *testing.T) {
	cases := []struct {
		name string
		body ZExtBody
	}{
		{"unit", ZExtUnit()},
		{"z64", ZExtZ64(7)},
		{"zbuf", ZExtZBuf([]byte{1, 2, 3})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := Oam{ID: 99, Body: c.body, ExtQoS: DefaultQoS}

			w := codec.NewWriter()
			require.NoError(t, EncodeOam(w, x))

			got, err := DecodeOam(codec.NewReader(w.Bytes()))
			require.NoError(t, err)
			assert.EqualValues(t, x.ID, got.ID)
			assert.True(t, x.Body.Equal(got.Body))
			assert.Equal(t, x.ExtQoS, got.ExtQoS)
		})
	}
}

func TestOamWithQoSAndTimestampExtensions(t *testing.T) {
	ts := Timestamp{Time: 123}
	x := Oam{
		ID:        1,
		Body:      ZExtZ64(42),
		ExtQoS:    QoS{Priority: core.PriorityBackground, Congestion: CongestionBlock},
		ExtTstamp: &ts,
	}

	w := codec.NewWriter()
	require.NoError(t, EncodeOam(w, x))

	got, err := DecodeOam(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, x, got)
}

func TestDecodeOamRejectsReservedEncoding(t *testing.T) {
	raw := []byte{byte(core.MsgIDOAM) | 0x03<<oamEncShift, 0x00, 0x00}
	_, err := DecodeOam(codec.NewReader(raw))
	assert.ErrorIs(t, err, ErrReservedEncoding)
}
