package inspect

import (
	"github.com/vk/framegraph/internal/rendergraph"
)

// Snapshot is the viewer-facing picture of one update.
type Snapshot struct {
	Frame     uint64     `json:"frame"`
	Resources []Resource `json:"resources"`
	Commands  []Command  `json:"commands"`
	Schedule  []Entry    `json:"schedule"`
	Heaps     []Heap     `json:"heaps"`
}

// Resource summarizes one instance.
type Resource struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Desc          string `json:"desc"`
	External      bool   `json:"external"`
	Subresources  uint32 `json:"subresources"`
	AllocSize     uint64 `json:"alloc_size"`
	LifetimeFirst int    `json:"lifetime_first"`
	LifetimeLast  int    `json:"lifetime_last"`
	HeapIndex     int    `json:"heap_index"`
	HeapOffset    uint64 `json:"heap_offset"`
}

// Command summarizes one declared command.
type Command struct {
	ID           int    `json:"id"`
	Node         string `json:"node"`
	Name         string `json:"name"`
	BuiltIn      bool   `json:"built_in"`
	Bound        bool   `json:"bound"`
	Dependencies []int  `json:"dependencies"`
}

// Entry is one schedule slot.
type Entry struct {
	Index      int    `json:"index"`
	CmdID      int    `json:"cmd_id"`
	Transition bool   `json:"transition"`
	Resource   int    `json:"resource"`
	Range      string `json:"range,omitempty"`
	Before     string `json:"before,omitempty"`
	After      string `json:"after,omitempty"`
}

// Heap summarizes one scheduled heap.
type Heap struct {
	Index           int    `json:"index"`
	MemoryTypeIndex uint32 `json:"memory_type_index"`
	Size            uint64 `json:"size"`
	Alignment       uint64 `json:"alignment"`
	Bound           bool   `json:"bound"`
}

// Build captures g as it stands.
func Build(g *rendergraph.RenderGraph) Snapshot {
	s := Snapshot{
		Frame:     g.FrameIndex(),
		Resources: make([]Resource, 0, len(g.Resources)),
		Commands:  make([]Command, 0, len(g.Cmds)),
		Schedule:  make([]Entry, 0, len(g.Schedule)),
		Heaps:     make([]Heap, 0, len(g.Heaps)),
	}
	for _, r := range g.Resources {
		s.Resources = append(s.Resources, Resource{
			ID:            r.ID,
			Name:          r.Name,
			Desc:          r.Desc.String(),
			External:      r.IsExternal,
			Subresources:  r.NumSubresources,
			AllocSize:     r.AllocSize,
			LifetimeFirst: r.Lifetime.First,
			LifetimeLast:  r.Lifetime.Last,
			HeapIndex:     r.HeapIndex,
			HeapOffset:    r.HeapOffset,
		})
	}
	for _, c := range g.Cmds {
		deps, _ := g.DAG.Dependencies(c.ID)
		s.Commands = append(s.Commands, Command{
			ID:           c.ID,
			Node:         c.Cmd.Node,
			Name:         c.Cmd.Label(),
			BuiltIn:      c.BuiltIn,
			Bound:        c.Cmd.Callback.IsSet(),
			Dependencies: deps,
		})
	}
	for i, rc := range g.Schedule {
		e := Entry{Index: i, CmdID: rc.CmdID, Transition: rc.IsTransition}
		if rc.IsTransition {
			e.CmdID = -1
			e.Resource = rc.Transition.Resource
			e.Range = rc.Transition.Range.String()
			e.Before = rc.Transition.Before.String()
			e.After = rc.Transition.After.String()
		}
		s.Schedule = append(s.Schedule, e)
	}
	for _, h := range g.Heaps {
		s.Heaps = append(s.Heaps, Heap{
			Index:           h.Index,
			MemoryTypeIndex: h.MemoryTypeIndex,
			Size:            h.Size,
			Alignment:       h.Alignment,
			Bound:           h.Bound(),
		})
	}
	return s
}
