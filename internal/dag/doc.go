// Package dag holds the command dependency graph of a render graph. Nodes are
// command IDs; an edge from A to B means B must be scheduled after A.
package dag
