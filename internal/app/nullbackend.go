package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/backend"
	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// NullHandle stands in for a native object on the null backend.
type NullHandle struct {
	ID       uint64
	Name     string
	External bool
}

func (h NullHandle) String() string {
	if h.External {
		return fmt.Sprintf("external#%d(%s)", h.ID, h.Name)
	}
	return fmt.Sprintf("null#%d(%s)", h.ID, h.Name)
}

// nullDevice is the user data of the null backend. Handles are counters and
// nothing is ever submitted to a GPU.
type nullDevice struct {
	nextHandle uint64
	live       int
	pending    []*resource.Instance
	released   []string
}

func (d *nullDevice) newHandle(name string, external bool) NullHandle {
	d.nextHandle++
	return NullHandle{ID: d.nextHandle, Name: name, External: external}
}

// assignExternalHandles gives every external resource of decl a handle,
// keeping handles already assigned.
func (d *nullDevice) assignExternalHandles(decl *rendergraph.Declaration) {
	for i := range decl.Resources {
		r := &decl.Resources[i]
		if r.External && r.Handle == nil {
			r.Handle = d.newHandle(r.Name, true)
		}
	}
}

// releaseCompleted frees pending resources whose last frame the GPU finished.
func (d *nullDevice) releaseCompleted(ctx context.Context, gpuCompleted uint64) {
	logger := ctxlog.FromContext(ctx)
	kept := d.pending[:0]
	for _, r := range d.pending {
		if r.LastUsedFrame > gpuCompleted {
			kept = append(kept, r)
			continue
		}
		logger.Debug("Released native resource.", "resource", r.Name, "handle", r.RuntimeHandle, "last_used_frame", r.LastUsedFrame)
		d.released = append(d.released, r.Name)
		d.live--
	}
	d.pending = kept
}

// releaseAll drains the queue unconditionally, as after a device idle.
func (d *nullDevice) releaseAll(ctx context.Context) {
	if len(d.pending) == 0 {
		return
	}
	last := d.pending[0].LastUsedFrame
	for _, r := range d.pending[1:] {
		last = max(last, r.LastUsedFrame)
	}
	d.releaseCompleted(ctx, last)
}

func newNullBackend(d *nullDevice) (*backend.CallbackBackend[*nullDevice], error) {
	return backend.New(backend.Callbacks[*nullDevice]{
		CreateCommandResources: func(ctx context.Context, u *rendergraph.UpdateContext, d *nullDevice) error {
			d.releaseCompleted(ctx, u.GPUCompletedFrameIndex)
			return nil
		},
		CreateResources: func(ctx context.Context, u *rendergraph.UpdateContext, rs []*resource.Instance, d *nullDevice) error {
			for _, r := range rs {
				if err := describeResource(ctx, u.Graph, r); err != nil {
					return err
				}
				r.RuntimeHandle = d.newHandle(r.Name, false)
				d.live++
			}
			return nil
		},
		DestroyRuntimeResourceDeferred: func(ctx context.Context, r *resource.Instance, d *nullDevice) {
			ctxlog.FromContext(ctx).Debug("Queued resource for release.", "resource", r.Name, "last_used_frame", r.LastUsedFrame)
			d.pending = append(d.pending, r)
		},
		ClearColor:        recordClear,
		ClearDepthStencil: recordClear,
	}, d)
}

// usage collects every access the scheduled commands make to resource id.
func usage(g *rendergraph.RenderGraph, id int) access.Flags {
	var f access.Flags
	for _, c := range g.Cmds {
		for _, a := range c.Accesses {
			if a.Resource == id {
				f |= a.Access
			}
		}
	}
	return f
}

// describeResource logs the WebGPU descriptor a real backend would create.
func describeResource(ctx context.Context, g *rendergraph.RenderGraph, r *resource.Instance) error {
	logger := ctxlog.FromContext(ctx)
	acc := usage(g, r.ID)
	if r.Desc.IsBuffer() {
		logger.Debug("Creating buffer.", "resource", r.Name, "size", r.Desc.BufferSize, "usage", uint64(access.BufferUsage(acc)))
		return nil
	}

	texFormat, ok := format.ToWebGPU(r.Desc.Format)
	if !ok {
		return fmt.Errorf("%w: format %s of %q has no WebGPU equivalent", rendergraph.ErrNotSupported, r.Desc.Format, r.Name)
	}
	dim, ok := resource.WebGPUDimension(r.Desc.Type)
	if !ok {
		return fmt.Errorf("%w: resource %q is not a texture", rendergraph.ErrNotSupported, r.Name)
	}
	extent := resource.WebGPUExtent(r.Desc)
	logger.Debug("Creating texture.",
		"resource", r.Name,
		"format", texFormat,
		"dimension", dim,
		"width", extent.Width,
		"height", extent.Height,
		"depth_or_array_layers", extent.DepthOrArrayLayers,
		"mips", r.Desc.MipLevels,
		"usage", uint64(access.TextureUsage(acc)),
		"alloc_size", r.AllocSize,
	)
	return nil
}

func argValue(c *rendergraph.CmdCallbackContext, name string) any {
	for _, a := range c.Args {
		if a.Name == name && !a.IsView() {
			return a.Value
		}
	}
	return nil
}

// recordClear logs the clear of the command's first view argument.
func recordClear(ctx context.Context, c *rendergraph.CmdCallbackContext) error {
	view := slices.IndexFunc(c.Args, rendergraph.Arg.IsView)
	if view < 0 {
		return fmt.Errorf("%w: %s has no view to clear", rendergraph.ErrInvalidArguments, c.Cmd.Cmd.Label())
	}
	target, err := c.Resource(view)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Clear.",
		"node", c.Cmd.Cmd.Node,
		"target", target.Name,
		"handle", target.RuntimeHandle,
		"value", argValue(c, "color"),
		"frame", c.FrameIndex,
	)
	return nil
}

// recordCmd is bound to every node the backend has no built-in for.
func recordCmd(ctx context.Context, c *rendergraph.CmdCallbackContext) error {
	views := make([]string, 0, len(c.Args))
	for i, a := range c.Args {
		if !a.IsView() {
			continue
		}
		r, err := c.Resource(i)
		if err != nil {
			return err
		}
		views = append(views, fmt.Sprintf("%s=%s", a.Name, r.Name))
	}
	ctxlog.FromContext(ctx).Info("Cmd.",
		"node", c.Cmd.Cmd.Node,
		"name", c.Cmd.Cmd.Label(),
		"tag", c.Tag,
		"views", views,
		"runtime_index", c.RuntimeIndex,
		"frame", c.FrameIndex,
	)
	return nil
}
