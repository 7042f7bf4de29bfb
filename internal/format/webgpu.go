package format

import "github.com/gogpu/gputypes"

var toWebGPU = map[Format]gputypes.TextureFormat{
	R8G8B8A8Unorm:     gputypes.TextureFormatRGBA8Unorm,
	R8G8B8A8UnormSRGB: gputypes.TextureFormatRGBA8UnormSrgb,
	B8G8R8A8Unorm:     gputypes.TextureFormatBGRA8Unorm,
	B8G8R8A8UnormSRGB: gputypes.TextureFormatBGRA8UnormSrgb,
	R8Unorm:           gputypes.TextureFormatR8Unorm,
	R32Float:          gputypes.TextureFormatR32Float,
	R32G32Float:       gputypes.TextureFormatRG32Float,
	R32G32B32A32Float: gputypes.TextureFormatRGBA32Float,
	D24UnormS8Uint:    gputypes.TextureFormatDepth24PlusStencil8,
}

var fromWebGPU = func() map[gputypes.TextureFormat]Format {
	m := make(map[gputypes.TextureFormat]Format, len(toWebGPU))
	for f, w := range toWebGPU {
		m[w] = f
	}
	return m
}()

// ToWebGPU maps f to the equivalent WebGPU texture format. The second result
// is false for formats WebGPU has no counterpart for; the returned format is
// then TextureFormatUndefined.
func ToWebGPU(f Format) (gputypes.TextureFormat, bool) {
	w, ok := toWebGPU[f]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return w, true
}

// FromWebGPU is the inverse of ToWebGPU. Unmapped formats yield Unknown.
func FromWebGPU(w gputypes.TextureFormat) Format {
	if f, ok := fromWebGPU[w]; ok {
		return f
	}
	return Unknown
}
