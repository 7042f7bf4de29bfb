// Package resource describes the resources a render graph references and
// derives the facts later stages rely on: subresource counts, aspect masks,
// allocation estimates and the concrete subresource range a view touches.
//
// Every function here is pure; instances only change when a pipeline phase
// or the execution backend writes to them.
package resource
