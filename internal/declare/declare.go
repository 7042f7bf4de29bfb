package declare

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/config"
	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// Build translates m. The converter turns value arguments into their Go
// form; it is the one returned by the loader that produced m.
func Build(ctx context.Context, m *config.Model, conv config.Converter) (*rendergraph.Declaration, rendergraph.Flags, error) {
	logger := ctxlog.FromContext(ctx)

	var flags rendergraph.Flags
	if m.Graph != nil {
		f, err := rendergraph.ParseFlags(m.Graph.Flags...)
		if err != nil {
			return nil, 0, err
		}
		flags = f
	}

	decl := &rendergraph.Declaration{
		Resources: make([]rendergraph.ResourceDecl, 0, len(m.Resources)),
		Cmds:      make([]rendergraph.Cmd, 0, len(m.Nodes)),
	}

	resourceIDs := make(map[string]int, len(m.Resources))
	for _, r := range m.Resources {
		if _, dup := resourceIDs[r.Name]; dup {
			return nil, 0, fmt.Errorf("%w: %s: resource %q declared twice", rendergraph.ErrInvalidArguments, r.DefRange, r.Name)
		}
		rd, err := buildResource(r)
		if err != nil {
			return nil, 0, err
		}
		resourceIDs[r.Name] = len(decl.Resources)
		decl.Resources = append(decl.Resources, rd)
	}

	cmdIDs := make(map[string]int, len(m.Nodes))
	for i, n := range m.Nodes {
		if _, dup := cmdIDs[n.Name]; dup {
			return nil, 0, fmt.Errorf("%w: %s: node %q declared twice", rendergraph.ErrInvalidArguments, n.DefRange, n.Name)
		}
		cmdIDs[n.Name] = i
	}

	for _, n := range m.Nodes {
		c, err := buildCmd(ctx, n, m.Resources, resourceIDs, cmdIDs, conv)
		if err != nil {
			return nil, 0, err
		}
		decl.Cmds = append(decl.Cmds, c)
	}

	logger.Debug("Declaration built.", "resources", len(decl.Resources), "cmds", len(decl.Cmds), "flags", uint32(flags))
	return decl, flags, nil
}

func imageType(dimension string) (resource.Type, error) {
	switch dimension {
	case "1d":
		return resource.TypeImage1D, nil
	case "", "2d":
		return resource.TypeImage2D, nil
	case "3d":
		return resource.TypeImage3D, nil
	}
	return resource.TypeUnknown, fmt.Errorf("unknown image dimension %q", dimension)
}

func buildResource(r *config.Resource) (rendergraph.ResourceDecl, error) {
	rd := rendergraph.ResourceDecl{Name: r.Name, External: r.External}
	if r.Kind == config.KindBuffer {
		rd.Desc = resource.Buffer(r.Size)
		return rd, nil
	}

	t, err := imageType(r.Dimension)
	if err != nil {
		return rd, fmt.Errorf("%w: %s: image %q: %v", rendergraph.ErrInvalidArguments, r.DefRange, r.Name, err)
	}
	f, err := format.Parse(r.Format)
	if err != nil {
		return rd, fmt.Errorf("%w: %s: image %q: %v", rendergraph.ErrInvalidArguments, r.DefRange, r.Name, err)
	}
	rd.Desc = resource.Image(t, f, r.Width, r.Height)
	if r.MipLevels > 0 {
		rd.Desc.MipLevels = r.MipLevels
	}
	if r.ArrayLayers > 0 {
		rd.Desc.DepthOrArrayLayers = r.ArrayLayers
	}
	if err := rd.Desc.Validate(); err != nil {
		return rd, fmt.Errorf("%w: %s: image %q: %v", rendergraph.ErrInvalidArguments, r.DefRange, r.Name, err)
	}
	return rd, nil
}

func buildCmd(
	ctx context.Context,
	n *config.Node,
	resources []*config.Resource,
	resourceIDs, cmdIDs map[string]int,
	conv config.Converter,
) (rendergraph.Cmd, error) {
	c := rendergraph.Cmd{Node: n.Node, Name: n.Name, Tag: n.Tag}

	for _, dep := range n.DependsOn {
		id, ok := cmdIDs[dep]
		if !ok {
			return c, fmt.Errorf("%w: %s: node %q depends on unknown node %q", rendergraph.ErrInvalidArguments, n.DefRange, n.Name, dep)
		}
		c.DependsOn = append(c.DependsOn, id)
	}

	for _, a := range n.Args {
		switch {
		case a.View != nil:
			arg, err := buildView(a, resources, resourceIDs)
			if err != nil {
				return c, fmt.Errorf("%s: node %q: %w", n.DefRange, n.Name, err)
			}
			c.Args = append(c.Args, arg)
		case a.Value != nil:
			var v any
			if err := conv.DecodeValue(ctx, *a.Value, &v); err != nil {
				return c, fmt.Errorf("%w: %s: node %q value %q: %v", rendergraph.ErrInvalidArguments, n.DefRange, n.Name, a.Name, err)
			}
			c.Args = append(c.Args, rendergraph.Arg{Name: a.Name, Value: v})
		}
	}
	return c, nil
}

func buildView(a *config.Arg, resources []*config.Resource, resourceIDs map[string]int) (rendergraph.Arg, error) {
	v := a.View
	id, ok := resourceIDs[v.Resource]
	if !ok {
		return rendergraph.Arg{}, fmt.Errorf("%w: view %q refers to unknown resource %q", rendergraph.ErrInvalidArguments, a.Name, v.Resource)
	}
	flags, err := access.ParseFlags(v.Access...)
	if err != nil {
		return rendergraph.Arg{}, fmt.Errorf("%w: view %q: %v", rendergraph.ErrInvalidArguments, a.Name, err)
	}
	viewFormat := format.Unknown
	if v.Format != "" {
		if viewFormat, err = format.Parse(v.Format); err != nil {
			return rendergraph.Arg{}, fmt.Errorf("%w: view %q: %v", rendergraph.ErrInvalidArguments, a.Name, err)
		}
	}

	arg := rendergraph.Arg{Name: a.Name, Access: flags}
	if resources[id].Kind == config.KindBuffer {
		arg.Buffer = &resource.BufferView{Resource: id, Format: viewFormat}
		return arg, nil
	}
	arg.Image = &resource.ImageView{
		Resource:       id,
		Format:         viewFormat,
		BaseMip:        v.BaseMip,
		MipLevels:      v.MipLevels,
		BaseArrayLayer: v.BaseLayer,
		ArrayLayers:    v.ArrayLayers,
	}
	return arg, nil
}
