package testutil

import (
	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/format"
	"github.com/vk/framegraph/internal/rendergraph"
	"github.com/vk/framegraph/internal/resource"
)

// Image2D declares a single-mip 2D image.
func Image2D(name string, f format.Format, width, height uint32) rendergraph.ResourceDecl {
	return rendergraph.ResourceDecl{Name: name, Desc: resource.Image(resource.TypeImage2D, f, width, height)}
}

// BufferDecl declares a buffer.
func BufferDecl(name string, size uint64) rendergraph.ResourceDecl {
	return rendergraph.ResourceDecl{Name: name, Desc: resource.Buffer(size)}
}

// ImageArg is a whole-image view argument.
func ImageArg(res int, flags access.Flags) rendergraph.Arg {
	return rendergraph.Arg{Access: flags, Image: &resource.ImageView{Resource: res}}
}

// MipArg views a single mip level of an image.
func MipArg(res int, mip uint32, flags access.Flags) rendergraph.Arg {
	return rendergraph.Arg{Access: flags, Image: &resource.ImageView{Resource: res, BaseMip: mip, MipLevels: 1}}
}

// BufferArg is a whole-buffer view argument.
func BufferArg(res int, flags access.Flags) rendergraph.Arg {
	return rendergraph.Arg{Access: flags, Buffer: &resource.BufferView{Resource: res}}
}

// Cmd declares a command instantiating node.
func Cmd(node string, args ...rendergraph.Arg) rendergraph.Cmd {
	return rendergraph.Cmd{Node: node, Name: node, Args: args}
}
