package phases

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
)

// DAGBuilder adds a node per command and the explicit dependency edges.
type DAGBuilder struct{}

func (DAGBuilder) Name() string { return NameDAGBuilder }

func (DAGBuilder) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	g := u.Graph
	for _, c := range g.Cmds {
		g.DAG.AddNode(c.ID)
	}
	for _, c := range g.Cmds {
		for _, dep := range c.Cmd.DependsOn {
			if err := g.DAG.AddEdge(dep, c.ID); err != nil {
				return fmt.Errorf("%w: command %d (%s): %v", rendergraph.ErrInvalidProgram, c.ID, c.Cmd.Label(), err)
			}
		}
	}
	if err := g.DAG.DetectCycles(); err != nil {
		return fmt.Errorf("%w: %v", rendergraph.ErrInvalidProgram, err)
	}
	ctxlog.FromContext(ctx).Debug("DAGBuilder: Explicit dependencies added.", "nodes", g.DAG.Len(), "edges", g.DAG.EdgeCount())
	return nil
}

// AccessDAGBuilder orders commands that touch overlapping subresources when
// at least one of them writes. Declaration order decides the direction.
// Accesses to disjoint subresource ranges stay unordered.
type AccessDAGBuilder struct{}

func (AccessDAGBuilder) Name() string { return NameAccessDAGBuilder }

func (AccessDAGBuilder) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	g := u.Graph

	type use struct {
		cmd int
		acc rendergraph.CmdAccess
	}
	byResource := make(map[int][]use)
	for _, c := range g.Cmds {
		for _, a := range c.Accesses {
			byResource[a.Resource] = append(byResource[a.Resource], use{cmd: c.ID, acc: a})
		}
	}

	added := 0
	for res := 0; res < len(g.Resources); res++ {
		uses := byResource[res]
		for j := 1; j < len(uses); j++ {
			later := uses[j]
			for i := 0; i < j; i++ {
				earlier := uses[i]
				if earlier.cmd == later.cmd {
					continue
				}
				if !earlier.acc.Access.IsWrite() && !later.acc.Access.IsWrite() {
					continue
				}
				if !earlier.acc.Range.Overlaps(later.acc.Range) {
					continue
				}
				if g.DAG.HasEdge(earlier.cmd, later.cmd) {
					continue
				}
				if err := g.DAG.AddEdge(earlier.cmd, later.cmd); err != nil {
					return err
				}
				added++
			}
		}
	}

	if err := g.DAG.DetectCycles(); err != nil {
		return fmt.Errorf("%w: resource accesses contradict explicit dependencies: %v", rendergraph.ErrInvalidProgram, err)
	}
	ctxlog.FromContext(ctx).Debug("AccessDAGBuilder: Access edges added.", "added", added, "edges", g.DAG.EdgeCount())
	return nil
}
