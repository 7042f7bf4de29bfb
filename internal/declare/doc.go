// Package declare translates a loaded config.Model into the
// rendergraph.Declaration and creation flags a render graph is built from.
// Resource and node references by name become slice indices, format and
// access names are parsed, and value arguments are converted to Go values.
package declare
