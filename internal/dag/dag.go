package dag

import (
	"container/heap"
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id int) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[int]*node),
		dependents: make(map[int]*node),
	}
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. Adding an existing
// edge again is a no-op. An error is returned if either node does not exist
// or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID int) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %d -> %d", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %d", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %d", toID)
	}

	if _, exists := toNode.deps[fromID]; exists {
		return nil
	}
	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode
	g.edges++

	return nil
}

// HasEdge reports whether toID directly depends on fromID.
func (g *Graph) HasEdge(fromID, toID int) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[toID]
	if !ok {
		return false
	}
	_, ok = n.deps[fromID]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.edges
}

// Nodes returns every node ID in ascending order.
func (g *Graph) Nodes() []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Dependencies returns the IDs the given node depends on, in ascending order.
func (g *Graph) Dependencies(id int) ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return sortedKeys(n.deps), nil
}

// Dependents returns the IDs that depend on the given node, in ascending order.
func (g *Graph) Dependents(id int) ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return sortedKeys(n.dependents), nil
}

func sortedKeys(m map[int]*node) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, naming the first node found on it. Nodes are visited
// in ascending ID order so the reported node is stable.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// permanent: fully visited, not part of a cycle.
	// temporary: on the current recursion stack.
	permanent := make(map[int]bool)
	temporary := make(map[int]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("cycle detected involving node '%d'", n.id)
		}

		temporary[n.id] = true

		for _, id := range sortedKeys(n.dependents) {
			if err := visit(n.dependents[id]); err != nil {
				return err
			}
		}

		delete(temporary, n.id)
		permanent[n.id] = true

		return nil
	}

	for _, id := range sortedKeys(g.nodes) {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}

	return nil
}

// TopologicalOrder linearizes the graph. Among nodes whose dependencies are
// all satisfied, the lowest ID goes first, so declaration order is kept
// wherever the edges allow it. A cycle yields an error.
func (g *Graph) TopologicalOrder() ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	inDegree := make(map[int]int, len(g.nodes))
	ready := &minQueue{}
	for id, n := range g.nodes {
		inDegree[id] = len(n.deps)
		if len(n.deps) == 0 {
			heap.Push(ready, id)
		}
	}

	order := make([]int, 0, len(g.nodes))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(int)
		order = append(order, id)
		for depID := range g.nodes[id].dependents {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				heap.Push(ready, depID)
			}
		}
	}

	if len(order) != len(g.nodes) {
		for _, id := range sortedKeys(g.nodes) {
			if inDegree[id] > 0 {
				return nil, fmt.Errorf("cycle detected involving node '%d'", id)
			}
		}
	}
	return order, nil
}

// minQueue is a min-heap of node IDs.
type minQueue []int

func (q minQueue) Len() int           { return len(q) }
func (q minQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q minQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *minQueue) Push(x any)        { *q = append(*q, x.(int)) }
func (q *minQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
