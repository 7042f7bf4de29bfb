package device

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/backend"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/phases"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
	"github.com/vk/framegraph/internal/testutil"
)

type frameLog struct {
	calls *testutil.CallLog
}

func newBackend(t *testing.T, log *frameLog) *backend.CallbackBackend[*frameLog] {
	t.Helper()
	b, err := backend.New(backend.Callbacks[*frameLog]{
		CreateCommandResources: func(context.Context, *rendergraph.UpdateContext, *frameLog) error { return nil },
		CreateResources: func(_ context.Context, _ *rendergraph.UpdateContext, rs []*resource.Instance, l *frameLog) error {
			for _, r := range rs {
				r.RuntimeHandle = r.Name
				l.calls.Add("create %s", r.Name)
			}
			return nil
		},
		DestroyRuntimeResourceDeferred: func(_ context.Context, r *resource.Instance, l *frameLog) {
			l.calls.Add("destroy %s after frame %d", r.Name, r.LastUsedFrame)
		},
		ClearColor: func(_ context.Context, c *rendergraph.CmdCallbackContext) error {
			l := c.UserContext.(*frameLog)
			res, err := c.Resource(0)
			if err != nil {
				return err
			}
			l.calls.Add("clear %s", res.Name)
			return nil
		},
	}, log)
	require.NoError(t, err)
	return b
}

func TestBuildDefaultPhases(t *testing.T) {
	testCases := []struct {
		name      string
		flags     rendergraph.Flags
		publisher bool
		want      []string
	}{
		{
			name:  "default",
			flags: 0,
			want: []string{
				phases.NamePreProcess, phases.NameCmdDebugPrint, phases.NameDAGBuilder, phases.NameAccessDAGBuilder,
				phases.NameDAGPrint, phases.NameDAGSchedule, phases.NameLifetimeAnalysis, phases.NameScheduleDebugPrint,
				phases.NameBackend,
			},
		},
		{
			name:  "quiet with memory schedule",
			flags: rendergraph.FlagNoDebugPrint | rendergraph.FlagEnableMemorySchedule,
			want: []string{
				phases.NamePreProcess, phases.NameDAGBuilder, phases.NameAccessDAGBuilder, phases.NameDAGSchedule,
				phases.NameLifetimeAnalysis, phases.NameMemorySchedule, phases.NameBackend,
			},
		},
		{
			name:  "no lifetime analysis",
			flags: rendergraph.FlagNoDebugPrint | rendergraph.FlagNoLifetimeAnalysis,
			want: []string{
				phases.NamePreProcess, phases.NameDAGBuilder, phases.NameAccessDAGBuilder, phases.NameDAGSchedule,
				phases.NameBackend,
			},
		},
		{
			name:      "quiet but publishing",
			flags:     rendergraph.FlagNoDebugPrint,
			publisher: true,
			want: []string{
				phases.NamePreProcess, phases.NameDAGBuilder, phases.NameAccessDAGBuilder, phases.NameDAGSchedule,
				phases.NameLifetimeAnalysis, phases.NameScheduleDebugPrint, phases.NameBackend,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []Option
			if tc.publisher {
				opts = append(opts, WithPublisher(&testutil.MemoryPublisher{}))
			}
			g, err := CreateRenderGraph(context.Background(), newBackend(t, &frameLog{}), tc.flags, opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.PhaseNames())
			assert.Equal(t, tc.flags, g.Flags())
		})
	}
}

func TestCreateRenderGraphWithoutBackend(t *testing.T) {
	_, err := CreateRenderGraph(context.Background(), nil, 0)
	assert.ErrorIs(t, err, rendergraph.ErrInvalidArguments)
}

func TestDeviceQueries(t *testing.T) {
	d := New(nil)

	inst := resource.NewInstance(0, "depth", resource.Image(resource.TypeImage2D, format.D24UnormS8Uint, 8, 8))
	inst.FullRange = resource.SubresourceRange{}
	require.NoError(t, d.InitializeSubresourceInfos([]*resource.Instance{inst}))
	assert.Equal(t, format.AspectColorOrDepth|format.AspectStencil, inst.FullRange.AspectMask)
	assert.Equal(t, uint32(2), inst.NumSubresources)

	r, err := d.SubresourceRangeFromImageView(inst, access.DepthRead, resource.ImageView{Format: format.R24UnormX8Typeless})
	require.NoError(t, err)
	assert.Equal(t, format.AspectColorOrDepth, r.AspectMask)

	assert.Equal(t, access.ImageAspectUsages(format.AspectStencil), d.ImageAspectUsages(format.AspectStencil))
	assert.Equal(t, []rendergraph.MemoryType{{DefaultHeapSize: 0, MinAlignment: 1}}, d.MemoryTypes())
}

func TestFramesEndToEnd(t *testing.T) {
	// --- Arrange ---
	log := &frameLog{calls: &testutil.CallLog{}}
	g, err := CreateRenderGraph(context.Background(), newBackend(t, log), rendergraph.FlagEnableMemorySchedule)
	require.NoError(t, err)

	blurFailed := errors.New("blur failed")
	require.NoError(t, g.BindNodeCallback("blur", rendergraph.CmdCallback{Fn: func(_ context.Context, c *rendergraph.CmdCallbackContext) error {
		log.calls.Add("blur tag %d", c.Tag)
		if c.FrameIndex == 2 {
			return blurFailed
		}
		return nil
	}}))

	blur := testutil.Cmd("blur", testutil.ImageArg(0, access.ShaderResource), testutil.ImageArg(1, access.UnorderedAccess))
	blur.Tag = 7
	decl := rendergraph.Declaration{
		Resources: []rendergraph.ResourceDecl{
			testutil.Image2D("scene", format.R16G16B16A16Float, 64, 64),
			testutil.Image2D("blurred", format.R16G16B16A16Float, 64, 64),
		},
		Cmds: []rendergraph.Cmd{
			testutil.Cmd(backend.NodeClearColor, testutil.ImageArg(0, access.RenderTarget|access.Clear)),
			blur,
			testutil.Cmd("unbound", testutil.ImageArg(1, access.ShaderResource)),
		},
	}

	// --- Act ---
	ctx := context.Background()
	require.NoError(t, g.Update(ctx, rendergraph.UpdateInfo{FrameIndex: 1, Declaration: &decl}))
	require.NoError(t, g.RecordCommands(ctx, rendergraph.RecordCommandInfo{NumCmds: len(g.Schedule), FrameIndex: 1}))

	require.NoError(t, g.Update(ctx, rendergraph.UpdateInfo{FrameIndex: 2, GPUCompletedFrameIndex: 1, Declaration: &decl}))
	recordErr := g.RecordCommands(ctx, rendergraph.RecordCommandInfo{NumCmds: len(g.Schedule), FrameIndex: 2})

	g.Destroy(ctx)

	// --- Assert ---
	require.ErrorIs(t, recordErr, blurFailed)
	var cmdErr *rendergraph.CmdError
	require.ErrorAs(t, recordErr, &cmdErr)
	assert.Equal(t, 1, cmdErr.CmdID)

	assert.Equal(t, []string{
		"create scene",
		"create blurred",
		"clear scene",
		"blur tag 7",
		"clear scene",
		"blur tag 7",
		"destroy scene after frame 2",
		"destroy blurred after frame 2",
	}, log.calls.Calls())
}
