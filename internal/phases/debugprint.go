package phases

import (
	"context"
	"log/slog"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/inspect"
	"github.com/vk/framegraph/internal/rendergraph"
)

// CmdDebugPrint logs every declared command.
type CmdDebugPrint struct{}

func (CmdDebugPrint) Name() string { return NameCmdDebugPrint }

func (CmdDebugPrint) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	for _, c := range u.Graph.Cmds {
		logger.Debug("Cmd.", "id", c.ID, "node", c.Cmd.Node, "name", c.Cmd.Label(), "tag", c.Cmd.Tag,
			"args", len(c.Cmd.Args), "accesses", len(c.Accesses), "built_in", c.BuiltIn, "bound", c.Cmd.Callback.IsSet())
		for _, a := range c.Accesses {
			logger.Debug("Cmd access.", "id", c.ID, "arg", a.Arg, "resource", a.Resource, "access", a.Access.String(), "range", a.Range.String())
		}
	}
	return nil
}

// DAGPrint logs each command's dependencies.
type DAGPrint struct{}

func (DAGPrint) Name() string { return NameDAGPrint }

func (DAGPrint) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	g := u.Graph
	logger.Debug("DAG.", "nodes", g.DAG.Len(), "edges", g.DAG.EdgeCount())
	for _, id := range g.DAG.Nodes() {
		deps, err := g.DAG.Dependencies(id)
		if err != nil {
			return err
		}
		logger.Debug("DAG node.", "id", id, "depends_on", deps)
	}
	return nil
}

// ScheduleDebugPrint logs the final schedule and, when a publisher is set,
// sends a snapshot of it to remote viewers. Publishing problems are logged
// and never fail the update.
type ScheduleDebugPrint struct {
	Publisher inspect.Publisher
}

func (ScheduleDebugPrint) Name() string { return NameScheduleDebugPrint }

func (p ScheduleDebugPrint) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	g := u.Graph
	if logger.Enabled(ctx, slog.LevelDebug) {
		for i, rc := range g.Schedule {
			if rc.IsTransition {
				logger.Debug("Schedule.", "index", i, "entry", rc.String())
				continue
			}
			logger.Debug("Schedule.", "index", i, "cmd", rc.CmdID, "node", g.Cmds[rc.CmdID].Cmd.Label())
		}
		for _, r := range g.Resources {
			logger.Debug("Resource lifetime.", "resource", r.Name, "first", r.Lifetime.First, "last", r.Lifetime.Last,
				"heap", r.HeapIndex, "offset", r.HeapOffset)
		}
	}

	if p.Publisher != nil {
		if err := p.Publisher.Publish(ctx, inspect.Build(g)); err != nil {
			logger.Warn("Failed to publish schedule snapshot.", "error", err)
		}
	}
	return nil
}
