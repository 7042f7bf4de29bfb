package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Resource kinds.
const (
	KindImage  = "image"
	KindBuffer = "buffer"
)

// Model is the unified, format-agnostic representation of a render-graph
// declaration: graph options, resources and the nodes that use them.
type Model struct {
	Graph     *Graph
	Resources []*Resource
	Nodes     []*Node
}

// Graph holds graph-wide options from the `graph` block.
type Graph struct {
	Flags []string
}

// Resource is the format-agnostic representation of a `resource` block.
// Image fields are ignored for buffers and Size is ignored for images.
type Resource struct {
	Kind      string
	Name      string
	DefRange  hcl.Range
	Format    string
	Width     uint32
	Height    uint32
	Dimension string
	MipLevels uint32
	// ArrayLayers is the depth for 3D images.
	ArrayLayers uint32
	External    bool
	Size        uint64
}

// Node is the format-agnostic representation of a `node` block. Node names
// the node definition, Name the command instance.
type Node struct {
	Node      string
	Name      string
	DefRange  hcl.Range
	Tag       uint32
	DependsOn []string
	Args      []*Arg
}

// Arg is one argument of a node in source order: exactly one of View and
// Value is set.
type Arg struct {
	Name  string
	View  *View
	Value *cty.Value
}

// View is the format-agnostic representation of a `view` block.
type View struct {
	Resource    string
	Access      []string
	Format      string
	BaseMip     uint32
	MipLevels   uint32
	BaseLayer   uint32
	ArrayLayers uint32
}
