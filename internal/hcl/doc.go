// Package hcl reads render-graph declaration files written in HCL into the
// format-agnostic config.Model, and decodes the cty values of node
// arguments into Go values.
package hcl
