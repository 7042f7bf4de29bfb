package dag

import "sync"

// Graph is a collection of nodes and their dependencies, representing a DAG.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by command ID.
	nodes map[int]*node
	// edges counts the directed edges.
	edges int
}

// node represents a single vertex in the graph.
type node struct {
	id int
	// deps holds the set of nodes that this node depends on (predecessors).
	deps map[int]*node
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[int]*node
}
