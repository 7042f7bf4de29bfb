package resource

import "fmt"

// NoHeap marks an instance that is not placed in a scheduled heap.
const NoHeap = -1

// Lifetime is the span of scheduled command indices that touch a resource.
type Lifetime struct {
	First int
	Last  int
}

// Valid reports whether the lifetime has been populated.
func (l Lifetime) Valid() bool {
	return l.First >= 0 && l.Last >= l.First
}

// Overlaps reports whether two lifetimes share a scheduled index.
func (l Lifetime) Overlaps(o Lifetime) bool {
	return l.Valid() && o.Valid() && l.First <= o.Last && o.First <= l.Last
}

// Instance is one declared resource plus everything derived from or
// attached to it while the graph is built and executed.
type Instance struct {
	ID   int
	Name string
	Desc Desc
	Facts

	// IsExternal instances are owned by the application. The backend never
	// creates or destroys them.
	IsExternal bool

	// RuntimeHandle is the backend's native object. The render graph never
	// interprets it.
	RuntimeHandle any

	Lifetime      Lifetime
	HeapIndex     int
	HeapOffset    uint64
	LastUsedFrame uint64

	released bool
}

// NewInstance registers desc under id and derives its facts.
func NewInstance(id int, name string, desc Desc) *Instance {
	return &Instance{
		ID:        id,
		Name:      name,
		Desc:      desc,
		Facts:     Analyze(desc),
		Lifetime:  Lifetime{First: -1, Last: -1},
		HeapIndex: NoHeap,
	}
}

// Released reports whether the instance has been handed off for deferred
// destruction.
func (i *Instance) Released() bool {
	return i.released
}

// MarkReleased records the hand-off for deferred destruction. It returns
// false if the instance was already released, in which case the caller must
// not hand it off again.
func (i *Instance) MarkReleased() bool {
	if i.released {
		return false
	}
	i.released = true
	return true
}

// NeedsCreation reports whether the backend still has to create the native
// object for this instance.
func (i *Instance) NeedsCreation() bool {
	return !i.IsExternal && !i.released && i.RuntimeHandle == nil
}

func (i *Instance) String() string {
	return fmt.Sprintf("#%d %s %s", i.ID, i.Name, i.Desc)
}
