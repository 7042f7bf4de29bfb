// Package device provides CallbackDevice, the runtime device used with
// callback-driven backends. It answers resource questions from the generic
// format tables and assembles the default phase pipeline.
package device

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/inspect"
	"github.com/vk/framegraph/internal/phases"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// Option customizes a CallbackDevice.
type Option func(*CallbackDevice)

// WithPublisher sends a snapshot of every schedule to p.
func WithPublisher(p inspect.Publisher) Option {
	return func(d *CallbackDevice) { d.publisher = p }
}

// CallbackDevice implements rendergraph.RuntimeDevice for a backend that has
// no native device to query.
type CallbackDevice struct {
	backend   rendergraph.Backend
	publisher inspect.Publisher
}

// New builds a device that registers b as the final phase.
func New(b rendergraph.Backend, opts ...Option) *CallbackDevice {
	d := &CallbackDevice{backend: b}
	for _, o := range opts {
		o(d)
	}
	return d
}

// CreateRenderGraph creates a render graph on a new CallbackDevice.
func CreateRenderGraph(ctx context.Context, b rendergraph.Backend, flags rendergraph.Flags, opts ...Option) (*rendergraph.RenderGraph, error) {
	return rendergraph.Create(ctx, rendergraph.CreateInfo{Device: New(b, opts...), Flags: flags})
}

// BuildDefaultPhases registers, in order: pre-process, command print, DAG
// build, access DAG build, DAG print, DAG schedule, lifetime analysis, memory
// schedule, schedule print and the backend. Lifetime analysis is left out
// with FlagNoLifetimeAnalysis, the memory schedule is only added with
// FlagEnableMemorySchedule and the print phases are dropped with
// FlagNoDebugPrint. The backend is attached right away so its built-in nodes
// are known before the first update.
func (d *CallbackDevice) BuildDefaultPhases(_ context.Context, g *rendergraph.RenderGraph) error {
	if d.backend == nil {
		return fmt.Errorf("%w: callback device has no backend", rendergraph.ErrInvalidArguments)
	}
	if err := g.SetBackend(d.backend); err != nil {
		return err
	}
	flags := g.Flags()
	debug := !flags.Has(rendergraph.FlagNoDebugPrint)

	g.AddPhase(phases.PreProcess{})
	if debug {
		g.AddPhase(phases.CmdDebugPrint{})
	}
	g.AddPhase(phases.DAGBuilder{})
	g.AddPhase(phases.AccessDAGBuilder{})
	if debug {
		g.AddPhase(phases.DAGPrint{})
	}
	g.AddPhase(phases.DAGSchedule{})
	if !flags.Has(rendergraph.FlagNoLifetimeAnalysis) {
		g.AddPhase(phases.LifetimeAnalysis{})
	}
	if flags.Has(rendergraph.FlagEnableMemorySchedule) {
		g.AddPhase(phases.MemorySchedule{})
	}
	if debug || d.publisher != nil {
		g.AddPhase(phases.ScheduleDebugPrint{Publisher: d.publisher})
	}
	g.AddPhase(phases.Backend{Backend: d.backend})
	return nil
}

// InitializeSubresourceInfos derives the full range and subresource count of
// every instance from its descriptor.
func (d *CallbackDevice) InitializeSubresourceInfos(resources []*resource.Instance) error {
	for _, r := range resources {
		r.FullRange = resource.FullRange(r.Desc)
		r.NumSubresources = resource.SubresourceCount(r.Desc)
	}
	return nil
}

func (d *CallbackDevice) SubresourceRangeFromImageView(res *resource.Instance, acc access.Flags, view resource.ImageView) (resource.SubresourceRange, error) {
	return resource.ResolveImageViewRange(res, acc, view)
}

func (d *CallbackDevice) ImageAspectUsages(aspectMask uint32) uint32 {
	return access.ImageAspectUsages(aspectMask)
}

// MemoryTypes reports a single placeholder memory type so the memory
// schedule has somewhere to place resources.
func (d *CallbackDevice) MemoryTypes() []rendergraph.MemoryType {
	return []rendergraph.MemoryType{{DefaultHeapSize: 0, MinAlignment: 1}}
}
