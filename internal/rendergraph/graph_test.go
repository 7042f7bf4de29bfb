package rendergraph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/registry"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
	"github.com/vk/framegraph/internal/testutil"
)

// fakeBackend hands out sequential handles and remembers what it was asked
// to destroy.
type fakeBackend struct {
	next      int
	destroyed []string
	recorded  []rendergraph.RecordCommandInfo
	builtIns  []rendergraph.BuiltInNode
}

func (b *fakeBackend) CreateCommandResources(context.Context, *rendergraph.UpdateContext) error {
	return nil
}

func (b *fakeBackend) CreateResources(_ context.Context, _ *rendergraph.UpdateContext, rs []*resource.Instance) error {
	for _, r := range rs {
		b.next++
		r.RuntimeHandle = b.next
	}
	return nil
}

func (b *fakeBackend) CreateHeaps(context.Context, *rendergraph.UpdateContext, []*rendergraph.HeapInfo) error {
	return nil
}

func (b *fakeBackend) RecordCommands(_ context.Context, _ *rendergraph.RenderGraph, info rendergraph.RecordCommandInfo) error {
	b.recorded = append(b.recorded, info)
	return nil
}

func (b *fakeBackend) DestroyRuntimeResourceDeferred(_ context.Context, res *resource.Instance) {
	b.destroyed = append(b.destroyed, res.Name)
}

func (b *fakeBackend) BuiltInNodes() []rendergraph.BuiltInNode { return b.builtIns }

// backendPhase attaches b and creates the instances that still need a
// native object, the way the execution backend phase does.
func backendPhase(b *fakeBackend) rendergraph.Phase {
	return rendergraph.PhaseFunc{PhaseName: "backend", Fn: func(ctx context.Context, u *rendergraph.UpdateContext) error {
		g := u.Graph
		if err := g.SetBackend(b); err != nil {
			return err
		}
		var pending []*resource.Instance
		for _, r := range g.Resources {
			if r.NeedsCreation() {
				pending = append(pending, r)
			}
		}
		return b.CreateResources(ctx, u, pending)
	}}
}

// schedulePhase schedules every command in declaration order.
var schedulePhase = rendergraph.PhaseFunc{PhaseName: "schedule", Fn: func(_ context.Context, u *rendergraph.UpdateContext) error {
	for i := range u.Graph.Cmds {
		u.Graph.Schedule = append(u.Graph.Schedule, rendergraph.RuntimeCmdInfo{CmdID: i})
	}
	return nil
}}

func newTestGraph(t *testing.T, b *fakeBackend) *rendergraph.RenderGraph {
	t.Helper()
	dev := &scriptedDevice{phases: []rendergraph.Phase{schedulePhase, backendPhase(b)}}
	g, err := rendergraph.Create(context.Background(), rendergraph.CreateInfo{Device: dev})
	require.NoError(t, err)
	return g
}

func update(t *testing.T, g *rendergraph.RenderGraph, frame uint64, decl rendergraph.Declaration) {
	t.Helper()
	require.NoError(t, g.Update(context.Background(), rendergraph.UpdateInfo{FrameIndex: frame, Declaration: &decl}))
}

func TestUpdateKeepsUnchangedResources(t *testing.T) {
	b := &fakeBackend{}
	g := newTestGraph(t, b)

	color := testutil.Image2D("color", format.R8G8B8A8Unorm, 64, 64)
	depth := testutil.Image2D("depth", format.D32Float, 64, 64)
	update(t, g, 1, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{color, depth}})

	require.Len(t, g.Resources, 2)
	colorHandle := g.Resources[0].RuntimeHandle
	require.NotNil(t, colorHandle)
	assert.Equal(t, uint64(1), g.Resources[0].LastUsedFrame)

	// Same color, resized depth, reordered.
	resized := testutil.Image2D("depth", format.D32Float, 128, 128)
	update(t, g, 2, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{resized, color}})

	require.Len(t, g.Resources, 2)
	assert.Equal(t, 0, g.Resources[0].ID)
	assert.Equal(t, 1, g.Resources[1].ID)
	assert.Equal(t, colorHandle, g.Resources[1].RuntimeHandle, "unchanged resource keeps its native object")
	assert.NotNil(t, g.Resources[0].RuntimeHandle)
	assert.Equal(t, []string{"depth"}, b.destroyed)
	assert.Equal(t, uint64(2), g.Resources[1].LastUsedFrame)
}

func TestReleasedResourcesAreDestroyedOnce(t *testing.T) {
	// --- Arrange ---
	b := &fakeBackend{}
	g := newTestGraph(t, b)
	external := rendergraph.ResourceDecl{
		Name:     "swapchain",
		Desc:     resource.Image(resource.TypeImage2D, format.B8G8R8A8Unorm, 64, 64),
		External: true,
		Handle:   "native-swapchain",
	}
	scratch := testutil.BufferDecl("scratch", 256)
	update(t, g, 1, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{external, scratch}})
	require.Equal(t, "native-swapchain", g.Resources[0].RuntimeHandle)

	// --- Act ---
	update(t, g, 2, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{external}})
	update(t, g, 3, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{external}})
	g.Destroy(context.Background())
	g.Destroy(context.Background())

	// --- Assert ---
	assert.Equal(t, []string{"scratch"}, b.destroyed, "external resources are never handed to the backend")
	assert.False(t, g.Ready())
	err := g.Update(context.Background(), rendergraph.UpdateInfo{Declaration: &rendergraph.Declaration{}})
	assert.ErrorIs(t, err, rendergraph.ErrInvalidOperation)
}

func TestDestroyHandsOffEveryCreatedResource(t *testing.T) {
	b := &fakeBackend{}
	g := newTestGraph(t, b)
	update(t, g, 7, rendergraph.Declaration{Resources: []rendergraph.ResourceDecl{
		testutil.Image2D("a", format.R8G8B8A8Unorm, 8, 8),
		testutil.BufferDecl("b", 16),
	}})

	resources := append([]*resource.Instance(nil), g.Resources...)
	g.Destroy(context.Background())

	assert.ElementsMatch(t, []string{"a", "b"}, b.destroyed)
	for _, r := range resources {
		assert.True(t, r.Released())
		assert.Equal(t, uint64(7), r.LastUsedFrame)
	}
}

func TestRecordCommandsChecksRange(t *testing.T) {
	b := &fakeBackend{}
	g := newTestGraph(t, b)

	err := g.RecordCommands(context.Background(), rendergraph.RecordCommandInfo{})
	require.ErrorIs(t, err, rendergraph.ErrInvalidOperation)

	update(t, g, 1, rendergraph.Declaration{
		Resources: []rendergraph.ResourceDecl{testutil.Image2D("color", format.R8G8B8A8Unorm, 8, 8)},
		Cmds: []rendergraph.Cmd{
			testutil.Cmd("clear", testutil.ImageArg(0, access.RenderTarget)),
			testutil.Cmd("blit", testutil.ImageArg(0, access.ShaderResource)),
		},
	})
	require.Len(t, g.Schedule, 2)

	testCases := []struct {
		name  string
		begin int
		num   int
		want  error
	}{
		{name: "whole schedule", begin: 0, num: 2},
		{name: "tail", begin: 1, num: 1},
		{name: "empty", begin: 2, num: 0},
		{name: "past end", begin: 1, num: 2, want: rendergraph.ErrIndexOutOfBounds},
		{name: "negative begin", begin: -1, num: 1, want: rendergraph.ErrIndexOutOfBounds},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.RecordCommands(context.Background(), rendergraph.RecordCommandInfo{CmdBeginIndex: tc.begin, NumCmds: tc.num})
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			assert.NoError(t, err)
		})
	}
	assert.Len(t, b.recorded, 3)
}

func TestSetBackendRegistersBuiltIns(t *testing.T) {
	clearColor := rendergraph.CmdCallback{Fn: func(context.Context, *rendergraph.CmdCallbackContext) error { return nil }}
	b := &fakeBackend{builtIns: []rendergraph.BuiltInNode{{Name: "clear_color", Callback: clearColor}}}
	g := newTestGraph(t, b)
	update(t, g, 0, rendergraph.Declaration{})

	_, src, found := g.Callbacks().Lookup("clear_color")
	assert.True(t, found)
	assert.Equal(t, registry.SourceBuiltIn, src)
	assert.Same(t, b, g.Backend())

	err := g.SetBackend(&fakeBackend{})
	assert.ErrorIs(t, err, rendergraph.ErrInvalidOperation)
}

func TestBindNodeCallback(t *testing.T) {
	g := newTestGraph(t, &fakeBackend{})

	err := g.BindNodeCallback("draw", rendergraph.CmdCallback{})
	assert.ErrorIs(t, err, rendergraph.ErrInvalidArguments)

	want := errors.New("draw")
	require.NoError(t, g.BindNodeCallback("draw", rendergraph.CmdCallback{Fn: func(context.Context, *rendergraph.CmdCallbackContext) error {
		return want
	}}))
	cb, _, found := g.Callbacks().Lookup("draw")
	require.True(t, found)
	assert.ErrorIs(t, cb.Fn(context.Background(), nil), want)
}
