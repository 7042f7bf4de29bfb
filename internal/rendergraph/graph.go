package rendergraph

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/dag"
	"github.com/vk/framegraph/internal/registry"
	"github.com/vk/framegraph/internal/resource"
)

// Flags configure a render graph at creation.
type Flags uint32

const (
	// FlagNoLifetimeAnalysis skips lifetime analysis; every resource is then
	// live for the whole schedule.
	FlagNoLifetimeAnalysis Flags = 1 << iota
	// FlagEnableMemorySchedule adds the memory schedule phase.
	FlagEnableMemorySchedule
	// FlagNoDebugPrint leaves the diagnostic print phases out.
	FlagNoDebugPrint
)

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

var flagsByName = map[string]Flags{
	"no_lifetime_analysis": FlagNoLifetimeAnalysis,
	"memory_schedule":      FlagEnableMemorySchedule,
	"no_debug_print":       FlagNoDebugPrint,
}

// ParseFlags combines flags given by their declaration-file names.
func ParseFlags(names ...string) (Flags, error) {
	var f Flags
	for _, n := range names {
		bit, ok := flagsByName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("%w: unknown graph flag %q", ErrInvalidArguments, n)
		}
		f |= bit
	}
	return f, nil
}

// CreateInfo configures Create.
type CreateInfo struct {
	Device RuntimeDevice
	Flags  Flags
}

// UpdateInfo carries one frame's declaration and frame counters.
type UpdateInfo struct {
	FrameIndex             uint64
	GPUCompletedFrameIndex uint64
	Declaration            *Declaration
}

// RenderGraph is the artifact the pipeline builds and the backend executes.
// Phases read and write the exported fields in place.
type RenderGraph struct {
	Resources []*resource.Instance
	Cmds      []*CmdInfo
	DAG       *dag.Graph
	Schedule  []RuntimeCmdInfo
	Heaps     []*HeapInfo

	flags     Flags
	device    RuntimeDevice
	callbacks *registry.Registry[CmdCallback]
	phases    []Phase
	backend   Backend

	frameIndex uint64
	ready      bool
	destroyed  bool
}

// Create builds an empty render graph and asks the device for its phases.
func Create(ctx context.Context, info CreateInfo) (*RenderGraph, error) {
	logger := ctxlog.FromContext(ctx)
	if info.Device == nil {
		return nil, fmt.Errorf("%w: render graph needs a runtime device", ErrInvalidArguments)
	}

	g := &RenderGraph{
		DAG:       dag.New(),
		flags:     info.Flags,
		device:    info.Device,
		callbacks: registry.New[CmdCallback](),
	}
	if err := info.Device.BuildDefaultPhases(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to build default phases: %w", err)
	}
	if err := g.checkPhases(); err != nil {
		return nil, err
	}
	logger.Debug("Render graph created.", "phases", g.PhaseNames(), "flags", uint32(info.Flags))
	return g, nil
}

// Flags returns the creation flags.
func (g *RenderGraph) Flags() Flags { return g.flags }

// Device returns the runtime device the graph was created with.
func (g *RenderGraph) Device() RuntimeDevice { return g.device }

// Backend returns the attached execution backend, or nil before the
// backend phase ran.
func (g *RenderGraph) Backend() Backend { return g.backend }

// Callbacks exposes the node callback registry.
func (g *RenderGraph) Callbacks() *registry.Registry[CmdCallback] { return g.callbacks }

// FrameIndex returns the frame index of the last update.
func (g *RenderGraph) FrameIndex() uint64 { return g.frameIndex }

// Ready reports whether the last update completed and the schedule can be
// recorded.
func (g *RenderGraph) Ready() bool { return g.ready }

// SetBackend attaches the execution backend and registers its built-in
// nodes. A backend is attached once; later calls with the same backend are
// no-ops.
func (g *RenderGraph) SetBackend(b Backend) error {
	if g.backend == b {
		return nil
	}
	if g.backend != nil {
		return fmt.Errorf("%w: a different backend is already attached", ErrInvalidOperation)
	}
	g.backend = b
	for _, n := range b.BuiltInNodes() {
		g.callbacks.RegisterBuiltIn(n.Name, n.Callback)
	}
	return nil
}

// BindNodeCallback binds cb to every command instantiating the named node.
// Bindings take effect on the next update.
func (g *RenderGraph) BindNodeCallback(node string, cb CmdCallback) error {
	if !cb.IsSet() {
		return fmt.Errorf("%w: callback for node %q has no function", ErrInvalidArguments, node)
	}
	return g.callbacks.Bind(node, cb)
}

// Resource returns the live instance with the given ID.
func (g *RenderGraph) Resource(id int) (*resource.Instance, error) {
	if id < 0 || id >= len(g.Resources) {
		return nil, fmt.Errorf("%w: resource %d of %d", ErrIndexOutOfBounds, id, len(g.Resources))
	}
	return g.Resources[id], nil
}

// Cmd returns the command with the given ID.
func (g *RenderGraph) Cmd(id int) (*CmdInfo, error) {
	if id < 0 || id >= len(g.Cmds) {
		return nil, fmt.Errorf("%w: command %d of %d", ErrIndexOutOfBounds, id, len(g.Cmds))
	}
	return g.Cmds[id], nil
}

// Update installs a new declaration and runs every phase. On failure the
// graph is left unready until a later update succeeds.
func (g *RenderGraph) Update(ctx context.Context, info UpdateInfo) error {
	logger := ctxlog.FromContext(ctx)
	if g.destroyed {
		return fmt.Errorf("%w: render graph was destroyed", ErrInvalidOperation)
	}
	if info.Declaration == nil {
		return fmt.Errorf("%w: update without a declaration", ErrInvalidArguments)
	}
	if err := info.Declaration.Validate(); err != nil {
		return err
	}

	g.ready = false
	g.frameIndex = info.FrameIndex
	logger.Debug("Update: Starting.", "frame", info.FrameIndex, "gpu_completed_frame", info.GPUCompletedFrameIndex,
		"resources", len(info.Declaration.Resources), "cmds", len(info.Declaration.Cmds))

	g.reconcileResources(ctx, info.Declaration.Resources)
	g.Cmds = make([]*CmdInfo, len(info.Declaration.Cmds))
	for i, c := range info.Declaration.Cmds {
		g.Cmds[i] = &CmdInfo{ID: i, Cmd: c}
	}
	g.DAG = dag.New()
	g.Schedule = nil

	u := &UpdateContext{Graph: g, FrameIndex: info.FrameIndex, GPUCompletedFrameIndex: info.GPUCompletedFrameIndex}
	if err := g.runPhases(ctx, u); err != nil {
		return err
	}

	for _, r := range g.Resources {
		r.LastUsedFrame = info.FrameIndex
	}
	g.ready = true
	logger.Debug("Update: Finished.", "frame", info.FrameIndex, "schedule_len", len(g.Schedule))
	return nil
}

// reconcileResources keeps instances whose declaration is unchanged and
// releases the rest.
func (g *RenderGraph) reconcileResources(ctx context.Context, decls []ResourceDecl) {
	logger := ctxlog.FromContext(ctx)
	previous := make(map[string]*resource.Instance, len(g.Resources))
	for _, r := range g.Resources {
		previous[r.Name] = r
	}

	next := make([]*resource.Instance, len(decls))
	for i, d := range decls {
		if old, ok := previous[d.Name]; ok {
			delete(previous, d.Name)
			if old.Desc == d.Desc && old.IsExternal == d.External && !old.Released() {
				old.ID = i
				if d.External {
					old.RuntimeHandle = d.Handle
				}
				next[i] = old
				continue
			}
			logger.Debug("Update: Resource declaration changed, replacing instance.", "resource", d.Name)
			g.release(ctx, old)
		}
		inst := resource.NewInstance(i, d.Name, d.Desc)
		inst.IsExternal = d.External
		if d.External {
			inst.RuntimeHandle = d.Handle
		}
		next[i] = inst
	}
	for _, old := range previous {
		logger.Debug("Update: Resource no longer declared, releasing.", "resource", old.Name)
		g.release(ctx, old)
	}
	g.Resources = next
}

// release performs the logical free of inst and, if the backend created a
// native object for it, hands it to the backend exactly once.
func (g *RenderGraph) release(ctx context.Context, inst *resource.Instance) {
	if !inst.MarkReleased() {
		return
	}
	if inst.IsExternal || inst.RuntimeHandle == nil || g.backend == nil {
		return
	}
	ctxlog.FromContext(ctx).Debug("Handing resource off for deferred destruction.",
		"resource", inst.Name, "last_used_frame", inst.LastUsedFrame)
	g.backend.DestroyRuntimeResourceDeferred(ctx, inst)
}

// RecordCommands records the selected schedule range through the backend.
func (g *RenderGraph) RecordCommands(ctx context.Context, info RecordCommandInfo) error {
	if !g.ready {
		return fmt.Errorf("%w: render graph has no completed update", ErrInvalidOperation)
	}
	if g.backend == nil {
		return fmt.Errorf("%w: no execution backend attached", ErrInvalidOperation)
	}
	if info.CmdBeginIndex < 0 || info.NumCmds < 0 || info.CmdBeginIndex+info.NumCmds > len(g.Schedule) {
		return fmt.Errorf("%w: record range [%d,+%d) of %d", ErrIndexOutOfBounds, info.CmdBeginIndex, info.NumCmds, len(g.Schedule))
	}
	return g.backend.RecordCommands(ctx, g, info)
}

// Destroy releases every resource. The graph cannot be updated afterwards.
func (g *RenderGraph) Destroy(ctx context.Context) {
	if g.destroyed {
		return
	}
	for _, r := range g.Resources {
		g.release(ctx, r)
	}
	g.Resources = nil
	g.ready = false
	g.destroyed = true
	ctxlog.FromContext(ctx).Debug("Render graph destroyed.")
}
