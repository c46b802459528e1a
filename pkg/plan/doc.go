// Package plan provides the planning pipeline for waveplan.
//
// This package wires the graph, connectivity and wave packages into the
// complete build → connect → partition → merge → analyze pipeline that
// embedding tools consume. Centralizing the staging here keeps behavior
// identical no matter how the inventory was extracted.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := plan.NewRunner(cache.NewMemoryCache(), logger)
//	opts := plan.DefaultOptions()
//	opts.PrioritizePatterns = []string{"PKG_*"}
//	result, err := runner.Execute(ctx, records, infos, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range result.Partitions {
//	    fmt.Println(p.Number, p.Type, len(p.Nodes))
//	}
//
// Options can also come from a TOML config file via [LoadConfig].
//
// # Scope
//
// Parsing inventory file formats, CLI surfaces and report rendering belong
// to the embedding tools. The pipeline consumes pre-filtered edge records
// plus node metadata and produces structured partition data only.
package plan
