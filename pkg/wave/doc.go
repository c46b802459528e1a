// Package wave partitions the acyclic condensation of a dependency graph
// into an ordered deployment schedule.
//
// # Overview
//
// A wave is a group of objects that can be deployed together because every
// dependency of every member is already satisfied by an earlier wave (or by
// the wave itself, for cyclic units that deploy atomically). The package
// guarantees the no-forward-dependency invariant: for every edge (a, b),
// partition(a) >= partition(b), with strongly connected components never
// split across waves.
//
// # Partitioning
//
// [Partitioner.Run] works in two phases. Phase 1 (category leveling, when
// enabled) sweeps an ordered list of simple object categories - TABLE,
// VIEW, and the like - and collects every ready unit of a category into one
// uncapped simple-object wave, iterating to a fixed point so chains across
// simple categories resolve. Phase 2 bin-packs the remaining units: the
// ready set is sorted by admission tier (user-prioritized, regular, ETL),
// then by dependent count, transitive dependency count, unit size and
// minimum member, and waves are filled greedily between the configured
// minimum and maximum sizes.
//
// # Merging and Analysis
//
// [Merge] folds undersized waves into dependency-safe same-type neighbors
// and renumbers the result. [Analyze] then fills per-wave statistics
// (global roots and leaves, internal versus external dependency counts,
// category histograms) and produces the sparse inter-partition dependency
// matrix. [Partitioner.Ranking] exposes the raw priority signals of every
// unit for diagnostics.
//
// All of this is deterministic: identical inputs and configuration yield
// byte-identical schedules across runs.
package wave
