package phases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/testutil"
)

func TestAccessDAGOrdersConflictingAccesses(t *testing.T) {
	testCases := []struct {
		name  string
		cmds  []rendergraph.Cmd
		edges map[int][]int // command -> dependencies
	}{
		{
			name: "write then read",
			cmds: []rendergraph.Cmd{
				testutil.Cmd("draw", testutil.ImageArg(0, access.RenderTarget)),
				testutil.Cmd("post", testutil.ImageArg(0, access.ShaderResource)),
			},
			edges: map[int][]int{0: {}, 1: {0}},
		},
		{
			name: "reads stay unordered",
			cmds: []rendergraph.Cmd{
				testutil.Cmd("a", testutil.ImageArg(0, access.ShaderResource)),
				testutil.Cmd("b", testutil.ImageArg(0, access.ShaderResource|access.CopySrc)),
			},
			edges: map[int][]int{0: {}, 1: {}},
		},
		{
			name: "disjoint mips stay unordered",
			cmds: []rendergraph.Cmd{
				testutil.Cmd("mip0", testutil.MipArg(0, 0, access.RenderTarget)),
				testutil.Cmd("mip1", testutil.MipArg(0, 1, access.RenderTarget)),
				testutil.Cmd("resolve", testutil.ImageArg(0, access.ShaderResource)),
			},
			edges: map[int][]int{0: {}, 1: {}, 2: {0, 1}},
		},
		{
			name: "read then write",
			cmds: []rendergraph.Cmd{
				testutil.Cmd("sample", testutil.MipArg(0, 1, access.ShaderResource)),
				testutil.Cmd("overwrite", testutil.ImageArg(0, access.UnorderedAccess)),
			},
			edges: map[int][]int{0: {}, 1: {0}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGraph(t, PreProcess{}, DAGBuilder{}, AccessDAGBuilder{})
			err := updateErr(g, rendergraph.Declaration{
				Resources: []rendergraph.ResourceDecl{mipImage("color", 2)},
				Cmds:      tc.cmds,
			})
			require.NoError(t, err)
			for id, want := range tc.edges {
				deps, err := g.DAG.Dependencies(id)
				require.NoError(t, err)
				assert.ElementsMatch(t, want, deps, "dependencies of command %d", id)
			}
		})
	}
}

func TestDAGBuilderRejectsCycles(t *testing.T) {
	t.Run("explicit cycle", func(t *testing.T) {
		g := newGraph(t, PreProcess{}, DAGBuilder{}, AccessDAGBuilder{})
		a := testutil.Cmd("a")
		a.DependsOn = []int{1}
		b := testutil.Cmd("b")
		b.DependsOn = []int{0}

		err := updateErr(g, rendergraph.Declaration{Cmds: []rendergraph.Cmd{a, b}})

		require.Error(t, err)
		assert.ErrorIs(t, err, rendergraph.ErrInvalidProgram)
		var pe *rendergraph.PhaseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, NameDAGBuilder, pe.Phase)
	})

	t.Run("access order contradicts dependency", func(t *testing.T) {
		g := newGraph(t, PreProcess{}, DAGBuilder{}, AccessDAGBuilder{})
		write := testutil.Cmd("write", testutil.ImageArg(0, access.RenderTarget))
		write.DependsOn = []int{1}
		read := testutil.Cmd("read", testutil.ImageArg(0, access.ShaderResource))

		err := updateErr(g, rendergraph.Declaration{
			Resources: []rendergraph.ResourceDecl{mipImage("color", 1)},
			Cmds:      []rendergraph.Cmd{write, read},
		})

		assert.ErrorIs(t, err, rendergraph.ErrInvalidProgram)
		var pe *rendergraph.PhaseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, NameAccessDAGBuilder, pe.Phase)
	})
}

func TestDAGBuilderAddsExplicitDependencies(t *testing.T) {
	g := newGraph(t, DAGBuilder{})
	c := testutil.Cmd("c")
	c.DependsOn = []int{0, 1}

	err := updateErr(g, rendergraph.Declaration{Cmds: []rendergraph.Cmd{testutil.Cmd("a"), testutil.Cmd("b"), c}})

	require.NoError(t, err)
	assert.Equal(t, 3, g.DAG.Len())
	assert.Equal(t, 2, g.DAG.EdgeCount())
	deps, err := g.DAG.Dependencies(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, deps)
}
