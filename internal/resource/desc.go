package resource

import (
	"fmt"

	"github.com/vk/framegraph/internal/format"
)

// Type discriminates buffers from the image dimensionalities.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeBuffer
	TypeImage1D
	TypeImage2D
	TypeImage3D
)

func (t Type) String() string {
	switch t {
	case TypeBuffer:
		return "buffer"
	case TypeImage1D:
		return "image1d"
	case TypeImage2D:
		return "image2d"
	case TypeImage3D:
		return "image3d"
	}
	return "unknown"
}

// IsImage reports whether t is one of the image dimensionalities.
func (t Type) IsImage() bool {
	return t == TypeImage1D || t == TypeImage2D || t == TypeImage3D
}

// Desc is the packed descriptor of a buffer or image. For 3D images
// DepthOrArrayLayers is the depth and the image has no array layers; for the
// other image types it is the array layer count. Buffers only use BufferSize.
type Desc struct {
	Type               Type
	Format             format.Format
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
	MipLevels          uint32
	SampleCount        uint32
	BufferSize         uint64
}

// Buffer returns the descriptor of a buffer of size bytes.
func Buffer(size uint64) Desc {
	return Desc{Type: TypeBuffer, BufferSize: size}
}

// Image returns an image descriptor with one mip level and one layer. Zero
// height is treated as 1.
func Image(t Type, f format.Format, width, height uint32) Desc {
	if height == 0 {
		height = 1
	}
	return Desc{Type: t, Format: f, Width: width, Height: height, DepthOrArrayLayers: 1, MipLevels: 1, SampleCount: 1}
}

// IsBuffer reports whether d describes a buffer.
func (d Desc) IsBuffer() bool {
	return d.Type == TypeBuffer
}

// ArrayLayers is the number of independently addressable array slices.
// A 3D image always has exactly one.
func (d Desc) ArrayLayers() uint32 {
	if d.IsBuffer() || d.Type == TypeImage3D {
		return 1
	}
	return d.DepthOrArrayLayers
}

// Validate rejects descriptors no later stage can reason about. Formats
// outside the catalog pass: they analyze to zero size and aspect.
func (d Desc) Validate() error {
	switch {
	case d.Type == TypeBuffer:
		return nil
	case !d.Type.IsImage():
		return fmt.Errorf("unsupported resource type %d", d.Type)
	case d.Width == 0 || d.Height == 0 || d.DepthOrArrayLayers == 0:
		return fmt.Errorf("image extent %dx%dx%d must be non-zero", d.Width, d.Height, d.DepthOrArrayLayers)
	case d.MipLevels == 0:
		return fmt.Errorf("image must have at least one mip level")
	case d.Format == format.Unknown:
		return fmt.Errorf("image format %s is not usable", d.Format)
	case d.Type == TypeImage1D && d.Height != 1:
		return fmt.Errorf("1d image height must be 1, got %d", d.Height)
	}
	return nil
}

func (d Desc) String() string {
	if d.IsBuffer() {
		return fmt.Sprintf("buffer(%d bytes)", d.BufferSize)
	}
	return fmt.Sprintf("%s(%s %dx%dx%d mips=%d)", d.Type, d.Format, d.Width, d.Height, d.DepthOrArrayLayers, d.MipLevels)
}
