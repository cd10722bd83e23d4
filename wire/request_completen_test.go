//go:build complete_n

package wire

import (
	"testing"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithTargetCompleteFive(t *testing.T) {
	x := Request{
		ID:        2,
		WireExpr:  core.WireExpr{ID: 3, Suffix: "a/b"},
		Mapping:   core.MappingSender,
		Payload:   RequestBody{Payload: []byte{}},
		ExtQoS:    DefaultQoS,
		ExtDst:    DefaultDestination,
		ExtTarget: Target{Kind: TargetComplete, N: 5},
	}

	w := codec.NewWriter()
	require.NoError(t, EncodeRequest(w, x))

	got, err := DecodeRequest(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, x, got)
}
