// Package graph provides the directed dependency graph at the heart of
// waveplan: nodes are migration objects (tables, packages, ETL mappings),
// and an edge (caller, referenced) records that the caller cannot be
// deployed before the referenced object.
//
// # Semantics
//
// Edges have set semantics - duplicates collapse and self-references are
// dropped on insertion - so repeated ingestion of the same inventory is
// idempotent. Node identity is generic over any totally ordered key type,
// which keeps every query deterministic: all slice-returning methods sort
// their results.
//
// # Basic Usage
//
//	g := graph.New[string]()
//	g.AddEdge("ORDERS_VIEW", "ORDERS")     // ORDERS_VIEW depends on ORDERS
//	g.SetInfo("ORDERS", graph.Info{Category: "TABLE"})
//
//	g.DirectDependencies("ORDERS_VIEW")    // ["ORDERS"]
//	g.Roots()                              // ["ORDERS_VIEW"]
//	g.Leaves()                             // ["ORDERS"]
//
// Transitive queries run a breadth-first search in O(V+E); an optional
// depth bound keeps them cheap on very large graphs.
//
// # Concurrency
//
// A Graph is built once and is immutable thereafter by convention. Mutation
// is not synchronized; concurrent reads of a fully built graph are safe.
//
// # Related Packages
//
// The [connect] subpackage derives strongly and weakly connected
// components and the acyclic condensation used by the wave partitioner.
//
// [connect]: github.com/mbeckers/waveplan/pkg/graph/connect
package graph
