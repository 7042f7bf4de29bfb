package rendergraph

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/access"
	"github.com/vk/framegraph/internal/resource"
)

// Arg is one argument of a command: either a view into a resource, with the
// access the command performs through it, or a plain value.
type Arg struct {
	Name   string
	Access access.Flags
	Image  *resource.ImageView
	Buffer *resource.BufferView
	Value  any
}

// IsView reports whether the argument refers to a resource.
func (a Arg) IsView() bool {
	return a.Image != nil || a.Buffer != nil
}

// ResourceID returns the referenced resource, or -1 for value arguments.
func (a Arg) ResourceID() int {
	switch {
	case a.Image != nil:
		return a.Image.Resource
	case a.Buffer != nil:
		return a.Buffer.Resource
	}
	return -1
}

// CmdCallbackFunc records one command. A non-nil error stops recording.
type CmdCallbackFunc func(ctx context.Context, c *CmdCallbackContext) error

// CmdCallback pairs a callback with the user context handed back to it.
type CmdCallback struct {
	Fn          CmdCallbackFunc
	UserContext any
}

// IsSet reports whether the callback has a function.
func (cb CmdCallback) IsSet() bool {
	return cb.Fn != nil
}

// Cmd is a command as declared upstream. Node names the node definition the
// command instantiates and is the key callbacks are bound under.
type Cmd struct {
	Node      string
	Name      string
	Callback  CmdCallback
	Args      []Arg
	Tag       uint32
	DependsOn []int
}

// Label returns Name, or Node when the command is unnamed.
func (c *Cmd) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Node
}

// CmdAccess is one resolved resource access of a command.
type CmdAccess struct {
	Arg      int
	Resource int
	Access   access.Flags
	Range    resource.SubresourceRange
}

// CmdInfo is a declared command plus what the pipeline learns about it.
type CmdInfo struct {
	ID       int
	Cmd      Cmd
	Accesses []CmdAccess
	BuiltIn  bool
}

// Transition describes a resource state change between two scheduled
// commands.
type Transition struct {
	Resource int
	Range    resource.SubresourceRange
	Before   access.Flags
	After    access.Flags
}

// RuntimeCmdInfo is one slot of the final schedule. It either names a
// declared command or is a synthetic transition with no callback.
type RuntimeCmdInfo struct {
	CmdID        int
	IsTransition bool
	Transition   Transition
}

func (r RuntimeCmdInfo) String() string {
	if r.IsTransition {
		t := r.Transition
		return fmt.Sprintf("transition res=%d %s %s -> %s", t.Resource, t.Range, t.Before, t.After)
	}
	return fmt.Sprintf("cmd %d", r.CmdID)
}

// CmdCallbackContext is what a command callback sees while it records.
type CmdCallbackContext struct {
	Graph             *RenderGraph
	Cmd               *CmdInfo
	CmdID             int
	RuntimeIndex      int
	Args              []Arg
	Tag               uint32
	UserContext       any
	CommandBuffer     any
	UserRecordContext any
	FrameIndex        uint64
}

// Resource returns the instance the argument at index i refers to.
func (c *CmdCallbackContext) Resource(i int) (*resource.Instance, error) {
	if i < 0 || i >= len(c.Args) {
		return nil, fmt.Errorf("%w: argument %d of %d", ErrIndexOutOfBounds, i, len(c.Args))
	}
	id := c.Args[i].ResourceID()
	if id < 0 {
		return nil, fmt.Errorf("%w: argument %d is not a view", ErrInvalidArguments, i)
	}
	return c.Graph.Resource(id)
}
