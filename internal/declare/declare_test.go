package declare

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/config"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/hcl"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
	"github.com/zclconf/go-cty/cty"
)

func sampleModel() *config.Model {
	clearColor := cty.TupleVal([]cty.Value{cty.NumberIntVal(0), cty.NumberIntVal(0), cty.NumberIntVal(0), cty.NumberIntVal(1)})
	return &config.Model{
		Graph: &config.Graph{Flags: []string{"no_lifetime_analysis"}},
		Resources: []*config.Resource{
			{Kind: config.KindImage, Name: "color", Format: "R8G8B8A8_UNORM", Width: 64, Height: 32, Dimension: "2d", MipLevels: 3},
			{Kind: config.KindImage, Name: "volume", Format: "R16_FLOAT", Width: 8, Height: 8, Dimension: "3d", ArrayLayers: 8},
			{Kind: config.KindBuffer, Name: "constants", Size: 256, External: true},
		},
		Nodes: []*config.Node{
			{
				Node: "clear_color", Name: "clear", Tag: 3,
				Args: []*config.Arg{
					{Name: "target", View: &config.View{Resource: "color", Access: []string{"render_target", "clear"}, Format: "R8G8B8A8_UNORM_SRGB", MipLevels: 1}},
					{Name: "color", Value: &clearColor},
				},
			},
			{
				Node: "shade", Name: "shade", DependsOn: []string{"clear"},
				Args: []*config.Arg{
					{Name: "constants", View: &config.View{Resource: "constants", Access: []string{"constant_buffer"}}},
					{Name: "source", View: &config.View{Resource: "color", Access: []string{"shader_resource"}, BaseMip: 1}},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	// --- Act ---
	decl, flags, err := Build(context.Background(), sampleModel(), hcl.NewConverter())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, rendergraph.FlagNoLifetimeAnalysis, flags)

	color := resource.Image(resource.TypeImage2D, format.R8G8B8A8Unorm, 64, 32)
	color.MipLevels = 3
	volume := resource.Image(resource.TypeImage3D, format.R16Float, 8, 8)
	volume.DepthOrArrayLayers = 8
	want := &rendergraph.Declaration{
		Resources: []rendergraph.ResourceDecl{
			{Name: "color", Desc: color},
			{Name: "volume", Desc: volume},
			{Name: "constants", Desc: resource.Buffer(256), External: true},
		},
		Cmds: []rendergraph.Cmd{
			{
				Node: "clear_color", Name: "clear", Tag: 3,
				Args: []rendergraph.Arg{
					{Name: "target", Access: access.RenderTarget | access.Clear, Image: &resource.ImageView{Resource: 0, Format: format.R8G8B8A8UnormSRGB, MipLevels: 1}},
					{Name: "color", Value: []any{float64(0), float64(0), float64(0), float64(1)}},
				},
			},
			{
				Node: "shade", Name: "shade", DependsOn: []int{0},
				Args: []rendergraph.Arg{
					{Name: "constants", Access: access.ConstantBuffer, Buffer: &resource.BufferView{Resource: 2}},
					{Name: "source", Access: access.ShaderResource, Image: &resource.ImageView{Resource: 0, BaseMip: 1}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, decl); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, decl.Validate())
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(m *config.Model)
		wantErr string
	}{
		{
			name:    "unknown graph flag",
			modify:  func(m *config.Model) { m.Graph.Flags = []string{"fast"} },
			wantErr: `unknown graph flag "fast"`,
		},
		{
			name:    "unknown format",
			modify:  func(m *config.Model) { m.Resources[0].Format = "RGBA8" },
			wantErr: `unknown format "RGBA8"`,
		},
		{
			name:    "unknown dimension",
			modify:  func(m *config.Model) { m.Resources[0].Dimension = "4d" },
			wantErr: `unknown image dimension "4d"`,
		},
		{
			name:    "1d image with height",
			modify:  func(m *config.Model) { m.Resources[0].Dimension = "1d" },
			wantErr: "1d image height must be 1",
		},
		{
			name:    "duplicate resource",
			modify:  func(m *config.Model) { m.Resources[1].Name = "color" },
			wantErr: `resource "color" declared twice`,
		},
		{
			name:    "duplicate node",
			modify:  func(m *config.Model) { m.Nodes[1].Name = "clear" },
			wantErr: `node "clear" declared twice`,
		},
		{
			name:    "unknown dependency",
			modify:  func(m *config.Model) { m.Nodes[1].DependsOn = []string{"missing"} },
			wantErr: `depends on unknown node "missing"`,
		},
		{
			name:    "unknown view resource",
			modify:  func(m *config.Model) { m.Nodes[1].Args[1].View.Resource = "missing" },
			wantErr: `refers to unknown resource "missing"`,
		},
		{
			name:    "unknown access",
			modify:  func(m *config.Model) { m.Nodes[1].Args[1].View.Access = []string{"sample"} },
			wantErr: `unknown access flag "sample"`,
		},
		{
			name:    "unknown view format",
			modify:  func(m *config.Model) { m.Nodes[0].Args[0].View.Format = "SRGB" },
			wantErr: `unknown format "SRGB"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := sampleModel()
			tc.modify(m)

			_, _, err := Build(context.Background(), m, hcl.NewConverter())

			require.Error(t, err)
			assert.ErrorIs(t, err, rendergraph.ErrInvalidArguments)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
