package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/device"
	"github.com/vk/framegraph/internal/inspect"
	"github.com/vk/framegraph/internal/registry"
	"github.com/vk/framegraph/internal/rendergraph"
)

// Run compiles the declaration on the null backend and replays the
// configured number of frames, printing each frame's schedule.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var opts []device.Option
	if a.config.InspectURL != "" {
		pub, err := inspect.Dial(ctx, inspect.Options{URL: a.config.InspectURL})
		if err != nil {
			return fmt.Errorf("failed to connect to viewer: %w", err)
		}
		defer pub.Close()
		opts = append(opts, device.WithPublisher(pub))
		a.logger.Info("Publishing schedules to viewer.", "url", a.config.InspectURL)
	}

	nd := &nullDevice{}
	b, err := newNullBackend(nd)
	if err != nil {
		return fmt.Errorf("failed to create null backend: %w", err)
	}
	g, err := device.CreateRenderGraph(ctx, b, a.flags, opts...)
	if err != nil {
		return fmt.Errorf("failed to create render graph: %w", err)
	}
	defer func() {
		g.Destroy(ctx)
		nd.releaseAll(ctx)
		a.logger.Debug("App.Run method finished.", "released", len(nd.released), "live", nd.live)
	}()

	if err := bindNodeCallbacks(g, a.decl); err != nil {
		return err
	}
	nd.assignExternalHandles(a.decl)

	if len(a.decl.Cmds) == 0 {
		a.logger.Warn("No nodes found in graph, recording not required.")
	}
	for frame := uint64(1); frame <= uint64(a.config.Frames); frame++ {
		err := g.Update(ctx, rendergraph.UpdateInfo{
			FrameIndex:             frame,
			GPUCompletedFrameIndex: frame - 1,
			Declaration:            a.decl,
		})
		if err != nil {
			return fmt.Errorf("frame %d: update failed: %w", frame, err)
		}
		err = g.RecordCommands(ctx, rendergraph.RecordCommandInfo{
			NumCmds:    len(g.Schedule),
			FrameIndex: frame,
		})
		if err != nil {
			return fmt.Errorf("frame %d: recording failed: %w", frame, err)
		}
		if err := printSchedule(a.outW, g, frame); err != nil {
			return err
		}
	}
	a.logger.Info("Frames finished.", "frames", a.config.Frames)
	return nil
}

// bindNodeCallbacks binds the logging callback to every node that has no
// built-in implementation.
func bindNodeCallbacks(g *rendergraph.RenderGraph, decl *rendergraph.Declaration) error {
	nodes := make(map[string]struct{})
	for _, c := range decl.Cmds {
		nodes[c.Node] = struct{}{}
	}
	names := make([]string, 0, len(nodes))
	for n := range nodes {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		if _, src, ok := g.Callbacks().Lookup(n); ok && src == registry.SourceBuiltIn {
			continue
		}
		if err := g.BindNodeCallback(n, rendergraph.CmdCallback{Fn: recordCmd}); err != nil {
			return fmt.Errorf("failed to bind node %q: %w", n, err)
		}
	}
	return nil
}

// printSchedule writes one line per scheduled entry, then one per heap.
func printSchedule(w io.Writer, g *rendergraph.RenderGraph, frame uint64) error {
	if _, err := fmt.Fprintf(w, "frame %d: %d entries\n", frame, len(g.Schedule)); err != nil {
		return err
	}
	for i, rc := range g.Schedule {
		var err error
		if rc.IsTransition {
			t := rc.Transition
			_, err = fmt.Fprintf(w, "  [%d] transition %s %s %s -> %s\n", i, g.Resources[t.Resource].Name, t.Range, t.Before, t.After)
		} else {
			c := g.Cmds[rc.CmdID]
			_, err = fmt.Fprintf(w, "  [%d] %s (%s) tag=%d\n", i, c.Cmd.Label(), c.Cmd.Node, c.Cmd.Tag)
		}
		if err != nil {
			return err
		}
	}
	for _, h := range g.Heaps {
		if _, err := fmt.Fprintf(w, "  heap %d: size=%d alignment=%d\n", h.Index, h.Size, h.Alignment); err != nil {
			return err
		}
	}
	return nil
}
