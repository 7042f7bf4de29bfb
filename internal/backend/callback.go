package backend

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// Built-in node names.
const (
	NodeClearColor        = "clear_color"
	NodeClearDepthStencil = "clear_depth_stencil"
)

// Callbacks are the hooks a CallbackBackend forwards to. Each receives the
// same user data value. RecordCommands and the built-in node callbacks are
// optional.
type Callbacks[T any] struct {
	CreateCommandResources         func(ctx context.Context, u *rendergraph.UpdateContext, userData T) error
	CreateResources                func(ctx context.Context, u *rendergraph.UpdateContext, resources []*resource.Instance, userData T) error
	RecordCommands                 func(ctx context.Context, g *rendergraph.RenderGraph, info rendergraph.RecordCommandInfo, userData T) error
	DestroyRuntimeResourceDeferred func(ctx context.Context, res *resource.Instance, userData T)

	ClearColor        rendergraph.CmdCallbackFunc
	ClearDepthStencil rendergraph.CmdCallbackFunc
}

// PlaceholderHeap is the handle CreateHeaps assigns to heaps nothing else
// allocated. It is a counter, not a native object.
type PlaceholderHeap uint64

// CallbackBackend implements rendergraph.Backend on top of Callbacks.
// It is not safe for concurrent use.
type CallbackBackend[T any] struct {
	callbacks   Callbacks[T]
	userData    T
	heapCounter uint64
}

// New validates the callbacks and builds a backend around them.
func New[T any](callbacks Callbacks[T], userData T) (*CallbackBackend[T], error) {
	switch {
	case callbacks.CreateCommandResources == nil:
		return nil, fmt.Errorf("%w: CreateCommandResources callback is required", rendergraph.ErrInvalidArguments)
	case callbacks.CreateResources == nil:
		return nil, fmt.Errorf("%w: CreateResources callback is required", rendergraph.ErrInvalidArguments)
	case callbacks.DestroyRuntimeResourceDeferred == nil:
		return nil, fmt.Errorf("%w: DestroyRuntimeResourceDeferred callback is required", rendergraph.ErrInvalidArguments)
	}
	return &CallbackBackend[T]{callbacks: callbacks, userData: userData}, nil
}

// UserData returns the value handed to every callback.
func (b *CallbackBackend[T]) UserData() T {
	return b.userData
}

func (b *CallbackBackend[T]) CreateCommandResources(ctx context.Context, u *rendergraph.UpdateContext) error {
	return b.callbacks.CreateCommandResources(ctx, u, b.userData)
}

func (b *CallbackBackend[T]) CreateResources(ctx context.Context, u *rendergraph.UpdateContext, resources []*resource.Instance) error {
	return b.callbacks.CreateResources(ctx, u, resources, b.userData)
}

// CreateHeaps gives every unbound heap the next placeholder handle. Heaps
// that already have a handle are left alone.
func (b *CallbackBackend[T]) CreateHeaps(ctx context.Context, _ *rendergraph.UpdateContext, heaps []*rendergraph.HeapInfo) error {
	logger := ctxlog.FromContext(ctx)
	for _, h := range heaps {
		if h.Bound() {
			continue
		}
		b.heapCounter++
		h.RuntimeHeap = PlaceholderHeap(b.heapCounter)
		logger.Debug("Bound placeholder heap.", "heap", h.Index, "handle", b.heapCounter, "size", h.Size)
	}
	return nil
}

// RecordCommands uses the application's recorder when one was supplied and
// falls back to dispatching each command's callback otherwise.
func (b *CallbackBackend[T]) RecordCommands(ctx context.Context, g *rendergraph.RenderGraph, info rendergraph.RecordCommandInfo) error {
	if b.callbacks.RecordCommands != nil {
		return b.callbacks.RecordCommands(ctx, g, info, b.userData)
	}
	return DispatchCommands(ctx, g, info)
}

func (b *CallbackBackend[T]) DestroyRuntimeResourceDeferred(ctx context.Context, res *resource.Instance) {
	b.callbacks.DestroyRuntimeResourceDeferred(ctx, res, b.userData)
}

// BuiltInNodes lists the clear nodes whose callbacks were supplied.
func (b *CallbackBackend[T]) BuiltInNodes() []rendergraph.BuiltInNode {
	var nodes []rendergraph.BuiltInNode
	if b.callbacks.ClearColor != nil {
		nodes = append(nodes, rendergraph.BuiltInNode{
			Name:     NodeClearColor,
			Callback: rendergraph.CmdCallback{Fn: b.callbacks.ClearColor, UserContext: b.userData},
		})
	}
	if b.callbacks.ClearDepthStencil != nil {
		nodes = append(nodes, rendergraph.BuiltInNode{
			Name:     NodeClearDepthStencil,
			Callback: rendergraph.CmdCallback{Fn: b.callbacks.ClearDepthStencil, UserContext: b.userData},
		})
	}
	return nodes
}
