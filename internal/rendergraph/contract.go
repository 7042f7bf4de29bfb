package rendergraph

import (
	"context"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/resource"
)

// UpdateContext is shared by every phase and backend call of one update.
type UpdateContext struct {
	Graph                  *RenderGraph
	FrameIndex             uint64
	GPUCompletedFrameIndex uint64
}

// RecordCommandInfo selects the slice of the schedule to record and carries
// the backend's recording target.
type RecordCommandInfo struct {
	CmdBeginIndex     int
	NumCmds           int
	CommandBuffer     any
	UserRecordContext any
	FrameIndex        uint64
}

// HeapInfo is a memory heap requested by the memory schedule. RuntimeHeap
// starts nil and is set exactly once, either by a backend allocator or by
// the heap binder's placeholder.
type HeapInfo struct {
	Index           int
	MemoryTypeIndex uint32
	Size            uint64
	Alignment       uint64
	RuntimeHeap     any
}

// Bound reports whether the heap has a runtime handle.
func (h *HeapInfo) Bound() bool {
	return h.RuntimeHeap != nil
}

// MemoryType describes one memory type a device exposes.
type MemoryType struct {
	DefaultHeapSize uint64
	MinAlignment    uint32
}

// BuiltInNode is a named node implementation supplied by a backend.
type BuiltInNode struct {
	Name     string
	Callback CmdCallback
}

// Backend turns the schedule into native work.
//
// DestroyRuntimeResourceDeferred receives each created instance at most once,
// after the render graph stopped using it. Implementations must not release
// the native object until the GPU finished every frame up to and including
// the instance's LastUsedFrame, as reported by a later update's
// GPUCompletedFrameIndex. The render graph never reads the handle again.
type Backend interface {
	CreateCommandResources(ctx context.Context, u *UpdateContext) error
	CreateResources(ctx context.Context, u *UpdateContext, resources []*resource.Instance) error
	CreateHeaps(ctx context.Context, u *UpdateContext, heaps []*HeapInfo) error
	RecordCommands(ctx context.Context, g *RenderGraph, info RecordCommandInfo) error
	DestroyRuntimeResourceDeferred(ctx context.Context, res *resource.Instance)
	BuiltInNodes() []BuiltInNode
}

// RuntimeDevice supplies device-specific facts and the default phase list.
type RuntimeDevice interface {
	BuildDefaultPhases(ctx context.Context, g *RenderGraph) error
	InitializeSubresourceInfos(resources []*resource.Instance) error
	SubresourceRangeFromImageView(res *resource.Instance, acc access.Flags, view resource.ImageView) (resource.SubresourceRange, error)
	ImageAspectUsages(aspectMask uint32) uint32
	MemoryTypes() []MemoryType
}
