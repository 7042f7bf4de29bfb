package phases

import (
	"context"
	"sort"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// DefaultPlacementAlignment is the minimum offset alignment inside a heap.
const DefaultPlacementAlignment = 64 * 1024

// MemorySchedule places resources that still need creation into heaps.
// Resources whose lifetimes overlap never share bytes; those that do not may
// alias. Instances created by earlier updates keep their placement and are
// treated as live for the whole schedule. When the existing heaps cannot fit
// a resource a new heap is appended for it and the other leftovers.
type MemorySchedule struct{}

func (MemorySchedule) Name() string { return NameMemorySchedule }

type placement struct {
	offset, size uint64
	lifetime     resource.Lifetime
}

func (MemorySchedule) Run(ctx context.Context, u *rendergraph.UpdateContext) error {
	logger := ctxlog.FromContext(ctx)
	g := u.Graph

	alignment := uint64(DefaultPlacementAlignment)
	if types := g.Device().MemoryTypes(); len(types) > 0 && uint64(types[0].MinAlignment) > alignment {
		alignment = uint64(types[0].MinAlignment)
	}
	whole := resource.Lifetime{First: 0, Last: len(g.Schedule) - 1}

	occupied := make(map[int][]placement)
	var pending []*resource.Instance
	for _, r := range g.Resources {
		if r.IsExternal || r.AllocSize == 0 {
			continue
		}
		if !r.NeedsCreation() && r.HeapIndex != resource.NoHeap {
			occupied[r.HeapIndex] = append(occupied[r.HeapIndex], placement{r.HeapOffset, r.AllocSize, whole})
			continue
		}
		if r.NeedsCreation() && r.Lifetime.Valid() {
			pending = append(pending, r)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].AllocSize != pending[j].AllocSize {
			return pending[i].AllocSize > pending[j].AllocSize
		}
		return pending[i].ID < pending[j].ID
	})

	var overflow []*resource.Instance
	for _, r := range pending {
		placed := false
		for _, h := range g.Heaps {
			off := firstFit(occupied[h.Index], r.AllocSize, r.Lifetime, alignment)
			if off+r.AllocSize <= h.Size {
				place(r, h.Index, off, occupied)
				placed = true
				break
			}
		}
		if !placed {
			overflow = append(overflow, r)
		}
	}

	if len(overflow) > 0 {
		h := &rendergraph.HeapInfo{Index: len(g.Heaps), Alignment: alignment}
		for _, r := range overflow {
			off := firstFit(occupied[h.Index], r.AllocSize, r.Lifetime, alignment)
			place(r, h.Index, off, occupied)
			if end := off + r.AllocSize; end > h.Size {
				h.Size = end
			}
		}
		g.Heaps = append(g.Heaps, h)
		logger.Debug("MemorySchedule: Added heap.", "heap", h.Index, "size", h.Size, "resources", len(overflow))
	}

	logger.Debug("MemorySchedule: Placement finished.", "placed", len(pending), "heaps", len(g.Heaps))
	return nil
}

func place(r *resource.Instance, heap int, off uint64, occupied map[int][]placement) {
	r.HeapIndex = heap
	r.HeapOffset = off
	occupied[heap] = append(occupied[heap], placement{off, r.AllocSize, r.Lifetime})
}

// firstFit returns the lowest aligned offset where size bytes do not collide
// with any placement whose lifetime overlaps lt.
func firstFit(existing []placement, size uint64, lt resource.Lifetime, alignment uint64) uint64 {
	var live []placement
	for _, p := range existing {
		if p.lifetime.Overlaps(lt) {
			live = append(live, p)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].offset < live[j].offset })

	off := uint64(0)
	for _, p := range live {
		if off+size <= p.offset {
			break
		}
		if end := alignUp(p.offset+p.size, alignment); end > off {
			off = end
		}
	}
	return off
}

func alignUp(v, alignment uint64) uint64 {
	return (v + alignment - 1) / alignment * alignment
}
