package rendergraph

import (
	"fmt"

	"github.com/vk/framegraph/internal/resource"
)

// ResourceDecl declares one resource. External resources are owned by the
// application, which supplies their handle directly.
type ResourceDecl struct {
	Name     string
	Desc     resource.Desc
	External bool
	Handle   any
}

// Declaration is the upstream program: resources plus commands. Views and
// explicit dependencies refer to resources and commands by slice index.
type Declaration struct {
	Resources []ResourceDecl
	Cmds      []Cmd
}

// Validate checks the declaration's internal references.
func (d *Declaration) Validate() error {
	names := make(map[string]int, len(d.Resources))
	for i, r := range d.Resources {
		if r.Name == "" {
			return fmt.Errorf("%w: resource %d has no name", ErrInvalidArguments, i)
		}
		if prev, dup := names[r.Name]; dup {
			return fmt.Errorf("%w: resource %q declared at %d and %d", ErrInvalidArguments, r.Name, prev, i)
		}
		names[r.Name] = i
		if err := r.Desc.Validate(); err != nil {
			return fmt.Errorf("%w: resource %q: %v", ErrInvalidArguments, r.Name, err)
		}
	}

	for i, c := range d.Cmds {
		for j, a := range c.Args {
			if a.Image != nil && a.Buffer != nil {
				return fmt.Errorf("%w: command %d argument %d is both an image and a buffer view", ErrInvalidArguments, i, j)
			}
			if !a.IsView() {
				continue
			}
			id := a.ResourceID()
			if id < 0 || id >= len(d.Resources) {
				return fmt.Errorf("%w: command %d argument %d refers to resource %d", ErrIndexOutOfBounds, i, j, id)
			}
			isBuffer := d.Resources[id].Desc.IsBuffer()
			if a.Image != nil && isBuffer {
				return fmt.Errorf("%w: command %d argument %d uses an image view on buffer %q", ErrInvalidArguments, i, j, d.Resources[id].Name)
			}
			if a.Buffer != nil && !isBuffer {
				return fmt.Errorf("%w: command %d argument %d uses a buffer view on image %q", ErrInvalidArguments, i, j, d.Resources[id].Name)
			}
		}
		for _, dep := range c.DependsOn {
			if dep < 0 || dep >= len(d.Cmds) {
				return fmt.Errorf("%w: command %d depends on command %d", ErrIndexOutOfBounds, i, dep)
			}
		}
	}
	return nil
}
