package rendergraph

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/framegraph/internal/ctxlog"
)

// Phase is one stage of the pipeline. Run mutates the graph in place; an
// error aborts the update.
type Phase interface {
	Name() string
	Run(ctx context.Context, u *UpdateContext) error
}

// PhaseFunc adapts a function to the Phase interface.
type PhaseFunc struct {
	PhaseName string
	Fn        func(ctx context.Context, u *UpdateContext) error
}

func (p PhaseFunc) Name() string { return p.PhaseName }

func (p PhaseFunc) Run(ctx context.Context, u *UpdateContext) error { return p.Fn(ctx, u) }

// AddPhase appends p to the pipeline. Phases run in the order they were
// added.
func (g *RenderGraph) AddPhase(p Phase) {
	g.phases = append(g.phases, p)
}

// PhaseNames lists the registered phases in execution order.
func (g *RenderGraph) PhaseNames() []string {
	names := make([]string, len(g.phases))
	for i, p := range g.phases {
		names[i] = p.Name()
	}
	return names
}

// runPhases executes every phase in order and stops at the first failure.
func (g *RenderGraph) runPhases(ctx context.Context, u *UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	for i, p := range g.phases {
		start := time.Now()
		logger.Debug("Pipeline: Running phase.", "index", i, "phase", p.Name())
		if err := p.Run(ctx, u); err != nil {
			logger.Debug("Pipeline: Phase failed, aborting update.", "index", i, "phase", p.Name(), "error", err)
			return &PhaseError{Phase: p.Name(), Index: i, Err: err}
		}
		logger.Debug("Pipeline: Phase finished.", "index", i, "phase", p.Name(), "duration", time.Since(start))
	}
	return nil
}

// checkPhases guards against a pipeline that was never assembled.
func (g *RenderGraph) checkPhases() error {
	if len(g.phases) == 0 {
		return fmt.Errorf("%w: render graph has no phases", ErrInvalidOperation)
	}
	return nil
}
