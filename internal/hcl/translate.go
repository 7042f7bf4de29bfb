// This file contains the logic for translating the HCL block structs into
// the format-agnostic model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/framegraph/internal/config"
	"github.com/vk/framegraph/internal/ctxlog"
)

func translateGraph(g *graphBlock) *config.Graph {
	return &config.Graph{Flags: g.Flags}
}

// translateResource checks that the kind is known and that its required
// attributes are present.
func translateResource(r *resourceBlock) (*config.Resource, error) {
	res := &config.Resource{
		Kind:        r.Kind,
		Name:        r.Name,
		DefRange:    r.DefRange,
		Format:      r.Format,
		Width:       r.Width,
		Height:      r.Height,
		Dimension:   r.Dimension,
		MipLevels:   r.MipLevels,
		ArrayLayers: r.ArrayLayers,
		External:    r.External,
		Size:        r.Size,
	}
	switch r.Kind {
	case config.KindImage:
		if r.Format == "" || r.Width == 0 {
			return nil, fmt.Errorf("%s: image %q needs format and width", r.DefRange, r.Name)
		}
		if res.Dimension == "" {
			res.Dimension = "2d"
		}
	case config.KindBuffer:
		if r.Size == 0 {
			return nil, fmt.Errorf("%s: buffer %q needs a non-zero size", r.DefRange, r.Name)
		}
	default:
		return nil, fmt.Errorf("%s: resource %q has unknown kind %q, expected %q or %q",
			r.DefRange, r.Name, r.Kind, config.KindImage, config.KindBuffer)
	}
	return res, nil
}

// translateNode merges view and value blocks back into source order.
func translateNode(ctx context.Context, n *nodeBlock) *config.Node {
	logger := ctxlog.FromContext(ctx).With("node", n.Node, "name", n.Name)

	type positioned struct {
		offset int
		arg    *config.Arg
	}
	args := make([]positioned, 0, len(n.Views)+len(n.Values))
	for _, v := range n.Views {
		args = append(args, positioned{v.DefRange.Start.Byte, &config.Arg{
			Name: v.Name,
			View: &config.View{
				Resource:    v.Resource,
				Access:      v.Access,
				Format:      v.Format,
				BaseMip:     v.BaseMip,
				MipLevels:   v.MipLevels,
				BaseLayer:   v.BaseLayer,
				ArrayLayers: v.ArrayLayers,
			},
		}})
	}
	for _, v := range n.Values {
		val := v.Value
		args = append(args, positioned{v.DefRange.Start.Byte, &config.Arg{Name: v.Name, Value: &val}})
	}
	sort.SliceStable(args, func(i, j int) bool { return args[i].offset < args[j].offset })

	node := &config.Node{
		Node:      n.Node,
		Name:      n.Name,
		DefRange:  n.DefRange,
		Tag:       n.Tag,
		DependsOn: n.DependsOn,
		Args:      make([]*config.Arg, len(args)),
	}
	for i, a := range args {
		node.Args[i] = a.arg
	}
	logger.Debug("Translated node.", "args", len(node.Args), "depends_on", n.DependsOn)
	return node
}
