// Package config defines the format-agnostic model of a render-graph
// declaration file, along with the interfaces (Loader, Converter) for
// loading it and interpreting its argument values.
//
// The `config.Model` is the single input of the `declare` package, which
// turns it into a `rendergraph.Declaration`. Concrete implementations of the
// interfaces, such as for HCL, are provided in separate packages.
package config
