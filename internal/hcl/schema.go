package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Graphs    []*graphBlock    `hcl:"graph,block"`
	Resources []*resourceBlock `hcl:"resource,block"`
	Nodes     []*nodeBlock     `hcl:"node,block"`
}

// graphBlock is the `graph` block holding graph-wide options.
type graphBlock struct {
	Flags    []string  `hcl:"flags,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

// resourceBlock is a `resource "<kind>" "<name>"` block. Which attributes
// are meaningful depends on the kind.
type resourceBlock struct {
	Kind        string    `hcl:"kind,label"`
	Name        string    `hcl:"name,label"`
	Format      string    `hcl:"format,optional"`
	Width       uint32    `hcl:"width,optional"`
	Height      uint32    `hcl:"height,optional"`
	Dimension   string    `hcl:"dimension,optional"`
	MipLevels   uint32    `hcl:"mip_levels,optional"`
	ArrayLayers uint32    `hcl:"array_layers,optional"`
	External    bool      `hcl:"external,optional"`
	Size        uint64    `hcl:"size,optional"`
	DefRange    hcl.Range `hcl:",def_range"`
}

// nodeBlock is a `node "<node>" "<name>"` block: one command instantiating
// a node definition.
type nodeBlock struct {
	Node      string        `hcl:"node,label"`
	Name      string        `hcl:"name,label"`
	Tag       uint32        `hcl:"tag,optional"`
	DependsOn []string      `hcl:"depends_on,optional"`
	Views     []*viewBlock  `hcl:"view,block"`
	Values    []*valueBlock `hcl:"value,block"`
	DefRange  hcl.Range     `hcl:",def_range"`
}

// viewBlock is a `view "<arg>"` block inside a node.
type viewBlock struct {
	Name        string    `hcl:"name,label"`
	Resource    string    `hcl:"resource"`
	Access      []string  `hcl:"access"`
	Format      string    `hcl:"format,optional"`
	BaseMip     uint32    `hcl:"base_mip,optional"`
	MipLevels   uint32    `hcl:"mip_levels,optional"`
	BaseLayer   uint32    `hcl:"base_layer,optional"`
	ArrayLayers uint32    `hcl:"array_layers,optional"`
	DefRange    hcl.Range `hcl:",def_range"`
}

// valueBlock is a `value "<arg>"` block inside a node.
type valueBlock struct {
	Name     string    `hcl:"name,label"`
	Value    cty.Value `hcl:"value"`
	DefRange hcl.Range `hcl:",def_range"`
}
