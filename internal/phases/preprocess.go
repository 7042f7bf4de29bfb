package phases

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/registry"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// PreProcess initializes subresource facts, resolves each command's callback
// and resolves the subresource range of every view argument.
type PreProcess struct{}

func (PreProcess) Name() string { return NamePreProcess }

func (PreProcess) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	g := u.Graph
	dev := g.Device()

	if err := dev.InitializeSubresourceInfos(g.Resources); err != nil {
		return fmt.Errorf("initializing subresource infos: %w", err)
	}

	var unbound []string
	for _, c := range g.Cmds {
		if !c.Cmd.Callback.IsSet() {
			cb, src, ok := g.Callbacks().Lookup(c.Cmd.Node)
			if ok {
				c.Cmd.Callback = cb
				c.BuiltIn = src == registry.SourceBuiltIn
			} else {
				unbound = append(unbound, c.Cmd.Node)
			}
		}

		c.Accesses = c.Accesses[:0]
		for i, a := range c.Cmd.Args {
			if !a.IsView() {
				continue
			}
			inst, err := g.Resource(a.ResourceID())
			if err != nil {
				return fmt.Errorf("command %d argument %d: %w", c.ID, i, err)
			}
			var r resource.SubresourceRange
			if a.Image != nil {
				r, err = dev.SubresourceRangeFromImageView(inst, a.Access, *a.Image)
			} else {
				r, err = resource.ResolveBufferViewRange(inst, a.Access, *a.Buffer)
			}
			if err != nil {
				return fmt.Errorf("command %d (%s) argument %d: %w", c.ID, c.Cmd.Label(), i, err)
			}
			c.Accesses = append(c.Accesses, rendergraph.CmdAccess{Arg: i, Resource: inst.ID, Access: a.Access, Range: r})
		}
	}

	if missing := g.Callbacks().Unresolved(unbound); len(missing) > 0 {
		logger.Warn("Commands without a callback will be skipped when recording.", "nodes", missing)
	}
	logger.Debug("PreProcess: Finished.", "cmds", len(g.Cmds), "resources", len(g.Resources))
	return nil
}
