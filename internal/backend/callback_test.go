package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
	"github.com/vk/framegraph/internal/testutil"
)

type userData struct {
	calls *testutil.CallLog
}

func newCallbacks() Callbacks[*userData] {
	return Callbacks[*userData]{
		CreateCommandResources: func(_ context.Context, _ *rendergraph.UpdateContext, ud *userData) error {
			ud.calls.Add("create-command-resources")
			return nil
		},
		CreateResources: func(_ context.Context, _ *rendergraph.UpdateContext, rs []*resource.Instance, ud *userData) error {
			ud.calls.Add("create-resources %d", len(rs))
			return nil
		},
		DestroyRuntimeResourceDeferred: func(_ context.Context, res *resource.Instance, ud *userData) {
			ud.calls.Add("destroy %s", res.Name)
		},
	}
}

func TestNewRequiresCallbacks(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Callbacks[*userData])
	}{
		{name: "create command resources", modify: func(c *Callbacks[*userData]) { c.CreateCommandResources = nil }},
		{name: "create resources", modify: func(c *Callbacks[*userData]) { c.CreateResources = nil }},
		{name: "destroy", modify: func(c *Callbacks[*userData]) { c.DestroyRuntimeResourceDeferred = nil }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cbs := newCallbacks()
			tc.modify(&cbs)
			_, err := New(cbs, &userData{})
			assert.ErrorIs(t, err, rendergraph.ErrInvalidArguments)
		})
	}

	b, err := New(newCallbacks(), &userData{})
	require.NoError(t, err)
	assert.Empty(t, b.BuiltInNodes())
}

func TestCallbacksReceiveUserData(t *testing.T) {
	ud := &userData{calls: &testutil.CallLog{}}
	b, err := New(newCallbacks(), ud)
	require.NoError(t, err)
	assert.Same(t, ud, b.UserData())

	ctx := context.Background()
	require.NoError(t, b.CreateCommandResources(ctx, &rendergraph.UpdateContext{}))
	require.NoError(t, b.CreateResources(ctx, &rendergraph.UpdateContext{}, []*resource.Instance{
		resource.NewInstance(0, "a", resource.Buffer(4)),
	}))
	b.DestroyRuntimeResourceDeferred(ctx, resource.NewInstance(0, "a", resource.Buffer(4)))

	assert.Equal(t, []string{"create-command-resources", "create-resources 1", "destroy a"}, ud.calls.Calls())
}

func TestCreateHeapsAssignsIncreasingPlaceholders(t *testing.T) {
	// --- Arrange ---
	b, err := New(newCallbacks(), &userData{})
	require.NoError(t, err)
	preBound := &rendergraph.HeapInfo{Index: 1, Size: 1024, RuntimeHeap: "native"}
	first := []*rendergraph.HeapInfo{{Index: 0, Size: 1024}, preBound, {Index: 2, Size: 1024}}
	second := []*rendergraph.HeapInfo{{Index: 0, Size: 2048}, {Index: 1, Size: 2048}}

	// --- Act ---
	require.NoError(t, b.CreateHeaps(context.Background(), &rendergraph.UpdateContext{}, first))
	require.NoError(t, b.CreateHeaps(context.Background(), &rendergraph.UpdateContext{}, second))
	require.NoError(t, b.CreateHeaps(context.Background(), &rendergraph.UpdateContext{}, nil))

	// --- Assert ---
	assert.Equal(t, "native", preBound.RuntimeHeap)
	var handles []PlaceholderHeap
	for _, h := range append(first, second...) {
		if h == preBound {
			continue
		}
		require.True(t, h.Bound())
		handles = append(handles, h.RuntimeHeap.(PlaceholderHeap))
	}
	assert.Equal(t, []PlaceholderHeap{1, 2, 3, 4}, handles)

	// Already bound heaps keep their handle on a second pass.
	require.NoError(t, b.CreateHeaps(context.Background(), &rendergraph.UpdateContext{}, first))
	assert.Equal(t, PlaceholderHeap(1), first[0].RuntimeHeap)
}

func TestBuiltInNodesCarryUserData(t *testing.T) {
	ud := &userData{}
	cbs := newCallbacks()
	cbs.ClearColor = func(context.Context, *rendergraph.CmdCallbackContext) error { return nil }
	b, err := New(cbs, ud)
	require.NoError(t, err)

	nodes := b.BuiltInNodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, NodeClearColor, nodes[0].Name)
	assert.Same(t, ud, nodes[0].Callback.UserContext)

	cbs.ClearDepthStencil = cbs.ClearColor
	b, err = New(cbs, ud)
	require.NoError(t, err)
	names := []string{}
	for _, n := range b.BuiltInNodes() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{NodeClearColor, NodeClearDepthStencil}, names)
}

func TestRecordCommandsPrefersCustomRecorder(t *testing.T) {
	ud := &userData{calls: &testutil.CallLog{}}
	cbs := newCallbacks()
	cbs.RecordCommands = func(_ context.Context, _ *rendergraph.RenderGraph, info rendergraph.RecordCommandInfo, ud *userData) error {
		ud.calls.Add("record %d+%d", info.CmdBeginIndex, info.NumCmds)
		return nil
	}
	b, err := New(cbs, ud)
	require.NoError(t, err)

	require.NoError(t, b.RecordCommands(context.Background(), &rendergraph.RenderGraph{}, rendergraph.RecordCommandInfo{CmdBeginIndex: 2, NumCmds: 3}))
	assert.Equal(t, []string{"record 2+3"}, ud.calls.Calls())
}
