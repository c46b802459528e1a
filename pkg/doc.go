// Package pkg provides the core libraries for waveplan deployment scheduling.
//
// # Overview
//
// Waveplan turns an inventory of database and ETL objects plus their
// reference edges into an ordered sequence of deployment waves, where every
// dependency of an object is deployed in an earlier wave (or the same wave,
// for cyclic units). The pkg directory is organized into five areas:
//
//  1. [graph] - Generic dependency graph with metadata and traversal queries
//  2. [graph/connect] - Strong/weak connectivity and SCC condensation
//  3. [wave] - Wave partitioning, merging and statistics
//  4. [plan] - Orchestration (build → connect → partition → merge → analyze)
//  5. [cache], [errors], [export] - Memoization, error taxonomy, DOT diagnostics
//
// # Architecture
//
// The typical data flow through waveplan:
//
//	Edge records + object metadata
//	         ↓
//	    [graph] package (dependency graph)
//	         ↓
//	    [graph/connect] package (SCCs + acyclic condensation)
//	         ↓
//	    [wave] package (partition, merge, analyze)
//	         ↓
//	    Ordered waves, dependency matrix, priority ranking
//
// # Quick Start
//
// Plan a deployment schedule from edge records:
//
//	import (
//	    "context"
//	    "github.com/mbeckers/waveplan/pkg/plan"
//	)
//
//	runner := plan.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), records, infos, plan.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for _, wave := range result.Partitions {
//	    deploy(wave.Nodes)
//	}
//
// See the individual package documentation for details.
package pkg
