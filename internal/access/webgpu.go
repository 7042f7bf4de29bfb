package access

import "github.com/gogpu/gputypes"

// TextureUsage derives the WebGPU usage bits a texture needs to serve every
// access in f.
func TextureUsage(f Flags) gputypes.TextureUsage {
	var u gputypes.TextureUsage
	if f&(CopySrc|ResolveSrc) != 0 {
		u |= gputypes.TextureUsageCopySrc
	}
	if f&(CopyDest|ResolveDest) != 0 {
		u |= gputypes.TextureUsageCopyDst
	}
	if f&(ShaderResource|DepthRead|StencilRead|ShadingRate) != 0 {
		u |= gputypes.TextureUsageTextureBinding
	}
	if f&UnorderedAccess != 0 {
		u |= gputypes.TextureUsageStorageBinding
	}
	if f&(RenderTarget|DepthWrite|StencilWrite|Clear) != 0 {
		u |= gputypes.TextureUsageRenderAttachment
	}
	return u
}

// BufferUsage derives the WebGPU usage bits a buffer needs to serve every
// access in f.
func BufferUsage(f Flags) gputypes.BufferUsage {
	var u gputypes.BufferUsage
	if f&CPURead != 0 {
		u |= gputypes.BufferUsageMapRead
	}
	if f&CPUWrite != 0 {
		u |= gputypes.BufferUsageMapWrite
	}
	if f&CopySrc != 0 {
		u |= gputypes.BufferUsageCopySrc
	}
	if f&(CopyDest|Clear) != 0 {
		u |= gputypes.BufferUsageCopyDst
	}
	if f&IndexBuffer != 0 {
		u |= gputypes.BufferUsageIndex
	}
	if f&VertexBuffer != 0 {
		u |= gputypes.BufferUsageVertex
	}
	if f&ConstantBuffer != 0 {
		u |= gputypes.BufferUsageUniform
	}
	if f&(ShaderResource|UnorderedAccess|StreamOut) != 0 {
		u |= gputypes.BufferUsageStorage
	}
	if f&IndirectArgs != 0 {
		u |= gputypes.BufferUsageIndirect
	}
	return u
}
