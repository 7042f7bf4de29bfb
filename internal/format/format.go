package format

import (
	"fmt"
	"strings"
)

// Aspect bits of a format or view.
const (
	AspectColorOrDepth uint32 = 1 << 0
	AspectStencil      uint32 = 1 << 1
)

var byName = func() map[string]Format {
	m := make(map[string]Format, Count)
	for f := Unknown; f < Count; f++ {
		m[names[f]] = f
	}
	return m
}()

// String returns the canonical upper-case catalog name of the format.
func (f Format) String() string {
	if f < Count {
		return names[f]
	}
	return fmt.Sprintf("FORMAT(%d)", uint32(f))
}

// Valid reports whether f is inside the catalog.
func (f Format) Valid() bool {
	return f < Count
}

// Parse looks a format up by its catalog name. Matching is case-insensitive.
func Parse(name string) (Format, error) {
	if f, ok := byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return Unknown, fmt.Errorf("unknown format %q", name)
}

// ElementBytes returns the byte size of one element (or compressed block) of
// f, or 0 when the format has no fixed linear size or is outside the catalog.
func ElementBytes(f Format) uint32 {
	if f >= Count {
		return 0
	}
	return elementBytes[f]
}

// PlaneCount returns 2 for the combined depth/stencil families and 1 for
// everything else.
func PlaneCount(f Format) uint32 {
	switch f {
	case R32G8X24Typeless, D32FloatS8X24Uint, R32FloatX8X24Typeless, X32TypelessG8X24Uint,
		R24G8Typeless, D24UnormS8Uint, R24UnormX8Typeless, X24TypelessG8Uint:
		return 2
	}
	return 1
}

// AspectMask returns the aspects addressable through f. Combined
// depth/stencil formats expose both bits; the stencil-extracted views expose
// only the stencil bit. Values outside the catalog have no aspects.
func AspectMask(f Format) uint32 {
	if f >= Count {
		return 0
	}
	switch f {
	case R32G8X24Typeless, D32FloatS8X24Uint, R24G8Typeless, D24UnormS8Uint:
		return AspectColorOrDepth | AspectStencil
	case R32FloatX8X24Typeless, R24UnormX8Typeless:
		return AspectColorOrDepth
	case X32TypelessG8X24Uint, X24TypelessG8Uint:
		return AspectStencil
	}
	return AspectColorOrDepth
}

// IsDepthStencil reports whether f carries depth or stencil data.
func IsDepthStencil(f Format) bool {
	switch f {
	case D32Float, D16Unorm, D24UnormS8Uint, D32FloatS8X24Uint,
		R32G8X24Typeless, R24G8Typeless:
		return true
	}
	return false
}
