// Package rendergraph owns the render-graph artifact and the contract around
// it: the ordered phase pipeline that turns declared commands and resources
// into a schedule, the capability interfaces a runtime device and execution
// backend implement, and the two-step lifecycle that hands released resources
// to the backend for deferred destruction.
//
// A RenderGraph is not safe for concurrent use. Create, Update, RecordCommands
// and Destroy are expected to run on one goroutine.
package rendergraph
