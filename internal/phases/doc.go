// Package phases implements the stages of the render-graph pipeline, from
// command pre-processing through scheduling and lifetime analysis to the
// final stage that hands the schedule to the execution backend.
//
// Each phase reads and mutates the shared rendergraph.RenderGraph in place.
package phases
