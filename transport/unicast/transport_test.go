package unicast

import (
	"context"
	"testing"

	"github.com/codebot/zenoh/core"
	"github.com/codebot/zenoh/transport/conduit"
	"github.com/codebot/zenoh/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsOneConduitWithoutQoS(t *testing.T) {
	u, err := New(context.Background(), core.NewPeerID(), core.NewPeerID(), false, conduit.Resolution32, &fakeOps{})
	require.NoError(t, err)
	assert.Len(t, u.conduits, 1)
}

func TestNewBuildsFullConduitVectorWithQoS(t *testing.T) {
	u, err := New(context.Background(), core.NewPeerID(), core.NewPeerID(), true, conduit.Resolution32, &fakeOps{})
	require.NoError(t, err)
	assert.Len(t, u.conduits, core.NumPriorities)
}

func TestNewRejectsInvalidResolution(t *testing.T) {
	_, err := New(context.Background(), core.NewPeerID(), core.NewPeerID(), false, conduit.Resolution(3), &fakeOps{})
	assert.Error(t, err)
}

func TestWithCallbackOptionAppliedAtConstruction(t *testing.T) {
	called := false
	u, err := New(context.Background(), core.NewPeerID(), core.NewPeerID(), false, conduit.Resolution32, &fakeOps{},
		WithCallback(func(msg wire.ZenohMessage) error { called = true; return nil }),
	)
	require.NoError(t, err)

	cb := u.callback.get()
	require.NotNil(t, cb)
	require.NoError(t, cb(wire.ZenohMessage{}))
	assert.True(t, called)
}
