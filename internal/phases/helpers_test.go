package phases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
	"github.com/vk/framegraph/internal/testutil"
)

// testDevice runs exactly the phases a test asks for.
type testDevice struct {
	phases []rendergraph.Phase
}

func (d *testDevice) BuildDefaultPhases(_ context.Context, g *rendergraph.RenderGraph) error {
	for _, p := range d.phases {
		g.AddPhase(p)
	}
	return nil
}

func (d *testDevice) InitializeSubresourceInfos(rs []*resource.Instance) error {
	for _, r := range rs {
		r.FullRange = resource.FullRange(r.Desc)
		r.NumSubresources = resource.SubresourceCount(r.Desc)
	}
	return nil
}

func (d *testDevice) SubresourceRangeFromImageView(res *resource.Instance, acc access.Flags, view resource.ImageView) (resource.SubresourceRange, error) {
	return resource.ResolveImageViewRange(res, acc, view)
}

func (d *testDevice) ImageAspectUsages(mask uint32) uint32 { return access.ImageAspectUsages(mask) }

func (d *testDevice) MemoryTypes() []rendergraph.MemoryType {
	return []rendergraph.MemoryType{{MinAlignment: 1}}
}

// analysisPhases is the default pipeline up to the memory schedule.
func analysisPhases() []rendergraph.Phase {
	return []rendergraph.Phase{PreProcess{}, DAGBuilder{}, AccessDAGBuilder{}, DAGSchedule{}, LifetimeAnalysis{}}
}

func newGraph(t *testing.T, ps ...rendergraph.Phase) *rendergraph.RenderGraph {
	t.Helper()
	g, err := rendergraph.Create(context.Background(), rendergraph.CreateInfo{Device: &testDevice{phases: ps}})
	require.NoError(t, err)
	return g
}

func mipImage(name string, mips uint32) rendergraph.ResourceDecl {
	d := testutil.Image2D(name, format.R8G8B8A8Unorm, 16, 16)
	d.Desc.MipLevels = mips
	return d
}

func updateErr(g *rendergraph.RenderGraph, decl rendergraph.Declaration) error {
	return g.Update(context.Background(), rendergraph.UpdateInfo{FrameIndex: 1, Declaration: &decl})
}
