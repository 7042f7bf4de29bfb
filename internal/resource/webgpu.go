package resource

import "github.com/gogpu/gputypes"

// WebGPUDimension maps an image type to its WebGPU texture dimension. The
// second result is false for buffers and unknown types.
func WebGPUDimension(t Type) (gputypes.TextureDimension, bool) {
	switch t {
	case TypeImage1D:
		return gputypes.TextureDimension1D, true
	case TypeImage2D:
		return gputypes.TextureDimension2D, true
	case TypeImage3D:
		return gputypes.TextureDimension3D, true
	}
	return gputypes.TextureDimension2D, false
}

// WebGPUExtent returns the texture size of an image descriptor.
func WebGPUExtent(d Desc) gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              d.Width,
		Height:             d.Height,
		DepthOrArrayLayers: d.DepthOrArrayLayers,
	}
}
