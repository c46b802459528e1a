// Package connect analyzes the connectivity structure of a dependency
// graph: strongly connected components (mutual-dependency cycles that must
// deploy atomically), weakly connected components (isolated islands of the
// inventory), and the acyclic condensation that the wave partitioner
// schedules over.
//
// All algorithms are iterative - Tarjan's SCC search runs on an explicit
// tagged work stack - so graphs with dependency chains deeper than the
// goroutine stack are handled without issue. Every result is deterministic:
// nodes are visited in sorted order, component members are sorted, and
// components are ordered by their minimum member.
package connect
