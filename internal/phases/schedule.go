package phases

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// subresourceKey addresses one subresource of one resource.
type subresourceKey struct {
	resource int
	aspect   uint32
	mip      uint32
	layer    uint32
}

func (k subresourceKey) less(o subresourceKey) bool {
	if k.resource != o.resource {
		return k.resource < o.resource
	}
	if k.aspect != o.aspect {
		return k.aspect < o.aspect
	}
	if k.mip != o.mip {
		return k.mip < o.mip
	}
	return k.layer < o.layer
}

// DAGSchedule linearizes the DAG and inserts a transition before each
// command whose required state of a subresource differs from the state its
// previous scheduled use left behind. The first use of a subresource needs
// no transition. Every resource is given a whole-schedule lifetime, which
// lifetime analysis narrows when it runs.
type DAGSchedule struct{}

func (DAGSchedule) Name() string { return NameDAGSchedule }

func (DAGSchedule) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	g := u.Graph
	order, err := g.DAG.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("%w: %v", rendergraph.ErrInvalidProgram, err)
	}

	state := make(map[subresourceKey]access.Flags)
	schedule := make([]rendergraph.RuntimeCmdInfo, 0, len(order))
	transitions := 0

	for _, id := range order {
		c := g.Cmds[id]

		required := make(map[subresourceKey]access.Flags)
		for _, a := range c.Accesses {
			want := a.Access.State()
			a.Range.Each(func(aspect, mip, layer uint32) {
				required[subresourceKey{a.Resource, aspect, mip, layer}] |= want
			})
		}

		for _, t := range pendingTransitions(g, state, required) {
			schedule = append(schedule, rendergraph.RuntimeCmdInfo{CmdID: -1, IsTransition: true, Transition: t})
			transitions++
		}
		for k, f := range required {
			state[k] = f
		}
		schedule = append(schedule, rendergraph.RuntimeCmdInfo{CmdID: id})
	}

	g.Schedule = schedule
	whole := resource.Lifetime{First: 0, Last: len(schedule) - 1}
	for _, r := range g.Resources {
		r.Lifetime = whole
	}
	ctxlog.FromContext(ctx).Debug("DAGSchedule: Schedule built.", "cmds", len(order), "transitions", transitions)
	return nil
}

// pendingTransitions compares required states with the current ones. All
// subresources of a resource that move between the same pair of states are
// merged into one transition when they form a full range of that resource;
// otherwise each subresource gets its own.
func pendingTransitions(g *rendergraph.RenderGraph, state, required map[subresourceKey]access.Flags) []rendergraph.Transition {
	type group struct {
		resource      int
		before, after access.Flags
	}
	groups := make(map[group][]subresourceKey)
	for k, want := range required {
		have, seen := state[k]
		if !seen || have == want {
			continue
		}
		gk := group{k.resource, have, want}
		groups[gk] = append(groups[gk], k)
	}

	var out []rendergraph.Transition
	for gk, keys := range groups {
		sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
		full := g.Resources[gk.resource].FullRange
		if uint32(len(keys)) == subresourceCount(full) {
			out = append(out, rendergraph.Transition{Resource: gk.resource, Range: full, Before: gk.before, After: gk.after})
			continue
		}
		for _, k := range keys {
			out = append(out, rendergraph.Transition{
				Resource: gk.resource,
				Range:    resource.SubresourceRange{AspectMask: k.aspect, BaseMip: k.mip, MipLevels: 1, BaseArrayLayer: k.layer, ArrayLayers: 1},
				Before:   gk.before,
				After:    gk.after,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ka := subresourceKey{a.Resource, a.Range.AspectMask, a.Range.BaseMip, a.Range.BaseArrayLayer}
		kb := subresourceKey{b.Resource, b.Range.AspectMask, b.Range.BaseMip, b.Range.BaseArrayLayer}
		return ka.less(kb)
	})
	return out
}

// subresourceCount counts the (aspect, mip, layer) triples in r.
func subresourceCount(r resource.SubresourceRange) uint32 {
	aspects := uint32(0)
	for m := r.AspectMask; m != 0; m &= m - 1 {
		aspects++
	}
	return aspects * r.MipLevels * r.ArrayLayers
}

// LifetimeAnalysis records, per resource, the first and last schedule index
// that touches it. Untouched resources get an empty lifetime.
type LifetimeAnalysis struct{}

func (LifetimeAnalysis) Name() string { return NameLifetimeAnalysis }

func (LifetimeAnalysis) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	g := u.Graph
	for _, r := range g.Resources {
		r.Lifetime = resource.Lifetime{First: -1, Last: -1}
	}
	touch := func(res, idx int) {
		l := &g.Resources[res].Lifetime
		if l.First < 0 {
			l.First = idx
		}
		l.Last = idx
	}
	for i, rc := range g.Schedule {
		if rc.IsTransition {
			touch(rc.Transition.Resource, i)
			continue
		}
		for _, a := range g.Cmds[rc.CmdID].Accesses {
			touch(a.Resource, i)
		}
	}
	ctxlog.FromContext(ctx).Debug("LifetimeAnalysis: Lifetimes computed.", "resources", len(g.Resources))
	return nil
}
