package resource

import "github.com/vk/framegraph/internal/format"

// SubresourceCount returns how many individually addressable subresources d
// has. Buffers have one. Depth slices of a 3D image share a subresource.
func SubresourceCount(d Desc) uint32 {
	if d.IsBuffer() {
		return 1
	}
	return d.ArrayLayers() * d.MipLevels * format.PlaneCount(d.Format)
}

// ResourceAspectMask returns the aspects the resource itself exposes.
func ResourceAspectMask(d Desc) uint32 {
	if d.IsBuffer() {
		return format.AspectColorOrDepth
	}
	return format.AspectMask(d.Format)
}

// ViewAspectMask returns the aspects a view reading d through viewFormat
// exposes. format.Unknown selects the resource's own format.
func ViewAspectMask(d Desc, viewFormat format.Format) uint32 {
	if d.IsBuffer() {
		return format.AspectColorOrDepth
	}
	if viewFormat == format.Unknown {
		viewFormat = d.Format
	}
	return format.AspectMask(viewFormat)
}

// EstimateAllocationSize approximates the bytes needed to hold d. Each mip
// level after the first adds base >> (2*i), which over-simplifies odd extents
// but is what heap sizing callers expect.
func EstimateAllocationSize(d Desc) uint64 {
	if d.IsBuffer() {
		return d.BufferSize
	}
	base := uint64(d.Width) * uint64(d.Height) * uint64(d.DepthOrArrayLayers) * uint64(format.ElementBytes(d.Format))
	total := base
	for i := uint32(1); i < d.MipLevels; i++ {
		shift := uint64(i) * 2
		if shift >= 64 {
			break
		}
		total += base >> shift
	}
	return total
}

// Facts are the values derived from a descriptor once at registration.
type Facts struct {
	FullRange       SubresourceRange
	NumSubresources uint32
	AspectMask      uint32
	AllocSize       uint64
}

// Analyze derives every descriptor fact in one call.
func Analyze(d Desc) Facts {
	return Facts{
		FullRange:       FullRange(d),
		NumSubresources: SubresourceCount(d),
		AspectMask:      ResourceAspectMask(d),
		AllocSize:       EstimateAllocationSize(d),
	}
}
