// Package access defines the access attributes a command declares for each
// resource view, plus helpers for classifying them.
package access

import (
	"fmt"
	"sort"
	"strings"
)

// Flags is a bit set of resource access kinds.
type Flags uint32

const (
	IndirectArgs Flags = 1 << iota
	IndexBuffer
	VertexBuffer
	ConstantBuffer
	ShaderResource
	UnorderedAccess
	ShadingRate
	RenderTarget
	DepthRead
	DepthWrite
	StencilRead
	StencilWrite
	StreamOut
	CopySrc
	CopyDest
	ResolveSrc
	ResolveDest
	RaytracingASBuild
	RaytracingASRead
	Present
	CPURead
	CPUWrite
	DiscardDataBefore
	DiscardDataAfter
	StencilDiscardDataBefore
	StencilDiscardDataAfter
	Before
	After
	Clear

	None Flags = 0
)

// writeMask lists the flags that modify resource contents.
const writeMask = UnorderedAccess | RenderTarget | DepthWrite | StencilWrite | StreamOut |
	CopyDest | ResolveDest | RaytracingASBuild | CPUWrite | Clear

// modifierMask lists the flags that qualify an access rather than name one.
// They never cause a state transition on their own.
const modifierMask = DiscardDataBefore | DiscardDataAfter | StencilDiscardDataBefore |
	StencilDiscardDataAfter | Before | After

var flagNames = map[Flags]string{
	IndirectArgs:             "indirect_args",
	IndexBuffer:              "index_buffer",
	VertexBuffer:             "vertex_buffer",
	ConstantBuffer:           "constant_buffer",
	ShaderResource:           "shader_resource",
	UnorderedAccess:          "unordered_access",
	ShadingRate:              "shading_rate",
	RenderTarget:             "render_target",
	DepthRead:                "depth_read",
	DepthWrite:               "depth_write",
	StencilRead:              "stencil_read",
	StencilWrite:             "stencil_write",
	StreamOut:                "stream_out",
	CopySrc:                  "copy_src",
	CopyDest:                 "copy_dest",
	ResolveSrc:               "resolve_src",
	ResolveDest:              "resolve_dest",
	RaytracingASBuild:        "raytracing_as_build",
	RaytracingASRead:         "raytracing_as_read",
	Present:                  "present",
	CPURead:                  "cpu_read",
	CPUWrite:                 "cpu_write",
	DiscardDataBefore:        "discard_data_before",
	DiscardDataAfter:         "discard_data_after",
	StencilDiscardDataBefore: "stencil_discard_data_before",
	StencilDiscardDataAfter:  "stencil_discard_data_after",
	Before:                   "before",
	After:                    "after",
	Clear:                    "clear",
}

var flagsByName = func() map[string]Flags {
	m := make(map[string]Flags, len(flagNames))
	for f, n := range flagNames {
		m[n] = f
	}
	return m
}()

// IsWrite reports whether any flag in f modifies resource contents.
func (f Flags) IsWrite() bool {
	return f&writeMask != 0
}

// IsRead reports whether f accesses the resource without writing it.
func (f Flags) IsRead() bool {
	return f&^(writeMask|modifierMask) != 0 && !f.IsWrite()
}

// State strips modifier bits, leaving the part that defines the resource state
// a command requires.
func (f Flags) State() Flags {
	return f &^ modifierMask
}

// String renders the set as a sorted, '|'-joined list of flag names.
func (f Flags) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	for bit, name := range flagNames {
		if f&bit != 0 {
			parts = append(parts, name)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// ParseFlags combines the named flags into one set.
func ParseFlags(names ...string) (Flags, error) {
	var f Flags
	for _, n := range names {
		bit, ok := flagsByName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return None, fmt.Errorf("unknown access flag %q", n)
		}
		f |= bit
	}
	return f, nil
}

// Aspect usages reported for image aspect masks.
const (
	AspectUsageColor   uint32 = 1 << 0
	AspectUsageDepth   uint32 = 1 << 1
	AspectUsageStencil uint32 = 1 << 2
)

// ImageAspectUsages converts an aspect mask into the usage bits a native
// backend works with. The color-or-depth bit is reported as both usages since
// the mask alone cannot tell them apart.
func ImageAspectUsages(aspectMask uint32) uint32 {
	var usages uint32
	if aspectMask&1 != 0 {
		usages |= AspectUsageColor | AspectUsageDepth
	}
	if aspectMask&2 != 0 {
		usages |= AspectUsageStencil
	}
	return usages
}
