package phases

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// Backend is the final phase. It attaches the execution backend to the graph,
// then lets it bind heaps, create the resources that still need native
// objects and allocate its command-recording resources, in that order.
type Backend struct {
	Backend rendergraph.Backend
}

func (Backend) Name() string { return NameBackend }

func (p Backend) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	g := u.Graph
	if p.Backend == nil {
		return fmt.Errorf("%w: backend phase has no backend", rendergraph.ErrInvalidArguments)
	}
	if err := g.SetBackend(p.Backend); err != nil {
		return err
	}

	if err := p.Backend.CreateHeaps(ctx, u, g.Heaps); err != nil {
		return fmt.Errorf("creating heaps: %w", err)
	}

	var toCreate []*resource.Instance
	for _, r := range g.Resources {
		if r.NeedsCreation() {
			toCreate = append(toCreate, r)
		}
	}
	if len(toCreate) > 0 {
		if err := p.Backend.CreateResources(ctx, u, toCreate); err != nil {
			return fmt.Errorf("creating resources: %w", err)
		}
	}

	if err := p.Backend.CreateCommandResources(ctx, u); err != nil {
		return fmt.Errorf("creating command resources: %w", err)
	}
	logger.Debug("Backend: Resources ready.", "created", len(toCreate), "heaps", len(g.Heaps))
	return nil
}
