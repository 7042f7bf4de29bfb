package resource

import (
	"errors"
	"fmt"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/format"
)

// Remaining selects every mip level or array layer from the base onwards.
const Remaining = ^uint32(0)

// ErrRangeOutOfBounds is returned when a requested range starts outside the
// resource it refers to.
var ErrRangeOutOfBounds = errors.New("subresource range out of bounds")

// SubresourceRange is an aspect mask plus mip and array-layer bounds.
type SubresourceRange struct {
	AspectMask     uint32
	BaseMip        uint32
	MipLevels      uint32
	BaseArrayLayer uint32
	ArrayLayers    uint32
}

// FullRange covers every subresource of d.
func FullRange(d Desc) SubresourceRange {
	if d.IsBuffer() {
		return SubresourceRange{AspectMask: format.AspectColorOrDepth, MipLevels: 1, ArrayLayers: 1}
	}
	return SubresourceRange{
		AspectMask:  ResourceAspectMask(d),
		MipLevels:   d.MipLevels,
		ArrayLayers: d.ArrayLayers(),
	}
}

// NewSubresourceRange builds a range on d with the given aspect, clamping the
// mip and layer counts to what d has. Counts of 0 or Remaining extend to the
// end. A base outside d, or an aspect d does not expose, is an error.
func NewSubresourceRange(d Desc, aspect, baseMip, mipLevels, baseLayer, arrayLayers uint32) (SubresourceRange, error) {
	full := FullRange(d)
	if aspect&^full.AspectMask != 0 {
		return SubresourceRange{}, fmt.Errorf("%w: aspect %#x not in resource aspect %#x", ErrRangeOutOfBounds, aspect, full.AspectMask)
	}
	if baseMip >= full.MipLevels {
		return SubresourceRange{}, fmt.Errorf("%w: base mip %d of %d", ErrRangeOutOfBounds, baseMip, full.MipLevels)
	}
	if baseLayer >= full.ArrayLayers {
		return SubresourceRange{}, fmt.Errorf("%w: base layer %d of %d", ErrRangeOutOfBounds, baseLayer, full.ArrayLayers)
	}
	return SubresourceRange{
		AspectMask:     aspect,
		BaseMip:        baseMip,
		MipLevels:      clampCount(mipLevels, full.MipLevels-baseMip),
		BaseArrayLayer: baseLayer,
		ArrayLayers:    clampCount(arrayLayers, full.ArrayLayers-baseLayer),
	}, nil
}

func clampCount(requested, available uint32) uint32 {
	if requested == 0 || requested > available {
		return available
	}
	return requested
}

// Empty reports whether the range touches no subresource.
func (r SubresourceRange) Empty() bool {
	return r.AspectMask == 0 || r.MipLevels == 0 || r.ArrayLayers == 0
}

// Overlaps reports whether r and o share at least one subresource.
func (r SubresourceRange) Overlaps(o SubresourceRange) bool {
	if r.Empty() || o.Empty() || r.AspectMask&o.AspectMask == 0 {
		return false
	}
	return spansOverlap(r.BaseMip, r.MipLevels, o.BaseMip, o.MipLevels) &&
		spansOverlap(r.BaseArrayLayer, r.ArrayLayers, o.BaseArrayLayer, o.ArrayLayers)
}

func spansOverlap(aBase, aCount, bBase, bCount uint32) bool {
	return uint64(aBase) < uint64(bBase)+uint64(bCount) && uint64(bBase) < uint64(aBase)+uint64(aCount)
}

// Contains reports whether o lies entirely inside r.
func (r SubresourceRange) Contains(o SubresourceRange) bool {
	return o.AspectMask&^r.AspectMask == 0 &&
		o.BaseMip >= r.BaseMip && o.BaseMip+o.MipLevels <= r.BaseMip+r.MipLevels &&
		o.BaseArrayLayer >= r.BaseArrayLayer && o.BaseArrayLayer+o.ArrayLayers <= r.BaseArrayLayer+r.ArrayLayers
}

// Each calls fn for every (aspect bit, mip, layer) triple in r, in that
// nesting order.
func (r SubresourceRange) Each(fn func(aspect, mip, layer uint32)) {
	for bit := uint32(1); bit != 0 && bit <= r.AspectMask; bit <<= 1 {
		if r.AspectMask&bit == 0 {
			continue
		}
		for m := r.BaseMip; m < r.BaseMip+r.MipLevels; m++ {
			for l := r.BaseArrayLayer; l < r.BaseArrayLayer+r.ArrayLayers; l++ {
				fn(bit, m, l)
			}
		}
	}
}

func (r SubresourceRange) String() string {
	return fmt.Sprintf("aspect=%#x mips=[%d,+%d) layers=[%d,+%d)", r.AspectMask, r.BaseMip, r.MipLevels, r.BaseArrayLayer, r.ArrayLayers)
}

// ImageView selects part of an image and optionally reinterprets its format.
// Zero counts select everything from the base onwards.
type ImageView struct {
	Resource       int
	Format         format.Format
	BaseMip        uint32
	MipLevels      uint32
	BaseArrayLayer uint32
	ArrayLayers    uint32
}

// BufferView selects a byte span of a buffer. Size 0 spans to the end.
type BufferView struct {
	Resource int
	Format   format.Format
	Offset   uint64
	Size     uint64
}

// ResolveImageViewRange computes the subresources view touches on inst.
// The effective aspect is the intersection of the resource aspect and the
// view aspect. The access is accepted for parity with native resolvers that
// narrow by usage; it does not affect the result.
func ResolveImageViewRange(inst *Instance, _ access.Flags, view ImageView) (SubresourceRange, error) {
	aspect := ResourceAspectMask(inst.Desc) & ViewAspectMask(inst.Desc, view.Format)
	r, err := NewSubresourceRange(inst.Desc, aspect, view.BaseMip, view.MipLevels, view.BaseArrayLayer, view.ArrayLayers)
	if err != nil {
		return SubresourceRange{}, fmt.Errorf("resolving view on resource %q: %w", inst.Name, err)
	}
	return r, nil
}

// ResolveBufferViewRange returns the single subresource of a buffer after
// checking the byte span fits.
func ResolveBufferViewRange(inst *Instance, _ access.Flags, view BufferView) (SubresourceRange, error) {
	if !inst.Desc.IsBuffer() {
		return SubresourceRange{}, fmt.Errorf("resource %q is not a buffer", inst.Name)
	}
	if view.Offset > inst.Desc.BufferSize || view.Size > inst.Desc.BufferSize-view.Offset {
		return SubresourceRange{}, fmt.Errorf("%w: buffer view [%d,+%d) on %q of %d bytes",
			ErrRangeOutOfBounds, view.Offset, view.Size, inst.Name, inst.Desc.BufferSize)
	}
	return FullRange(inst.Desc), nil
}
