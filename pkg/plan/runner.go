package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mbeckers/waveplan/internal/logging"
	"github.com/mbeckers/waveplan/pkg/cache"
	"github.com/mbeckers/waveplan/pkg/graph"
	"github.com/mbeckers/waveplan/pkg/graph/connect"
	"github.com/mbeckers/waveplan/pkg/wave"
)

// EdgeRecord is one reference edge from an upstream inventory extractor:
// Caller depends on Referenced. Relation carries the extractor's relation
// type verbatim; the planner has no opinion on it, so rows to exclude
// (foreign keys and the like) must be filtered upstream.
type EdgeRecord struct {
	Caller     string `json:"caller"`
	Referenced string `json:"referenced"`
	Relation   string `json:"relation,omitempty"`
}

// Stats contains planning execution statistics.
type Stats struct {
	NodeCount   int `json:"node_count"`
	EdgeCount   int `json:"edge_count"`
	UnitCount   int `json:"unit_count"`
	CycleCount  int `json:"cycle_count"`
	IslandCount int `json:"island_count"` // weakly connected components

	BuildTime     time.Duration `json:"build_time"`
	ConnectTime   time.Duration `json:"connect_time"`
	PartitionTime time.Duration `json:"partition_time"`
	MergeTime     time.Duration `json:"merge_time"`
	AnalyzeTime   time.Duration `json:"analyze_time"`
}

// Result contains the outputs of a planning run: the ordered deployment
// waves with their statistics, the sparse inter-partition dependency
// matrix, the full unit priority ranking, and the detected cycles.
type Result struct {
	// RunID uniquely identifies this execution for log correlation.
	// It is regenerated on cache hits.
	RunID string `json:"run_id"`

	Partitions []wave.Partition[string] `json:"partitions"`
	Matrix     []wave.MatrixEntry       `json:"matrix"`
	Ranking    []wave.UnitRank[string]  `json:"ranking"`
	Cycles     [][]string               `json:"cycles,omitempty"`
	Stats      Stats                    `json:"stats"`

	// CacheHit reports whether the result was replayed from the cache.
	CacheHit bool `json:"-"`
}

// BuildGraph constructs the dependency graph from edge records and node
// metadata. Metadata-only nodes (no edges) are registered too, so isolated
// objects still appear in the schedule.
func BuildGraph(records []EdgeRecord, infos map[string]graph.Info) *graph.Graph[string] {
	g := graph.New[string]()
	for _, rec := range records {
		g.AddEdge(rec.Caller, rec.Referenced)
	}
	for n, info := range infos {
		g.SetInfo(n, info)
	}
	return g
}

// Runner executes the planning pipeline with result memoization.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner; each
// Execute owns its own graph and partition state.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (memoization disabled); if logger is nil,
// an info-level stderr logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// logger resolves the logger for one execution: a logger attached to the
// context wins over the runner's own.
func (r *Runner) logger(ctx context.Context) *log.Logger {
	if l, ok := logging.FromContext(ctx); ok {
		return l
	}
	return r.Logger
}

// Execute runs the complete build → connect → partition → merge → analyze
// pipeline. Identical records, metadata and options yield byte-identical
// plans, so results are memoized in the cache keyed by a content hash of
// the inputs. Empty inputs yield a result with zero partitions, not an
// error. The context is only consulted between stages; the algorithms
// themselves have no suspension points.
func (r *Runner) Execute(ctx context.Context, records []EdgeRecord, infos map[string]graph.Info, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger := r.logger(ctx)

	key := cache.Key("plan", records, infos, opts)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var result Result
		if err := json.Unmarshal(data, &result); err == nil {
			result.RunID = uuid.NewString()
			result.CacheHit = true
			logger.Debug("plan cache hit", "key", key, "run_id", result.RunID)
			return &result, nil
		}
	}

	result, err := r.compute(ctx, logger, records, infos, opts)
	if err != nil {
		return result, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := r.Cache.Set(ctx, key, data); err != nil {
			logger.Debug("plan cache store failed", "error", err)
		}
	}
	return result, nil
}

func (r *Runner) compute(ctx context.Context, logger *log.Logger, records []EdgeRecord, infos map[string]graph.Info, opts Options) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	logger = logger.With("run_id", result.RunID)

	// Stage 1: build the dependency graph
	buildStart := time.Now()
	g := BuildGraph(records, infos)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("built dependency graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Stage 2: connectivity analysis and condensation
	connectStart := time.Now()
	cond := connect.Condense(g)
	for _, comp := range cond.Members {
		if len(comp) > 1 {
			result.Cycles = append(result.Cycles, comp)
		}
	}
	result.Stats.IslandCount = len(connect.WeaklyConnected(g))
	result.Stats.ConnectTime = time.Since(connectStart)
	result.Stats.UnitCount = cond.UnitCount()
	result.Stats.CycleCount = len(result.Cycles)

	logger.Info("condensed graph",
		"units", cond.UnitCount(),
		"cycles", len(result.Cycles),
		"islands", result.Stats.IslandCount,
		"duration", result.Stats.ConnectTime)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Stage 3: wave partitioning
	partitionStart := time.Now()
	partitioner, err := wave.NewPartitioner(g, cond, opts.waveConfig())
	if err != nil {
		return result, fmt.Errorf("partitioner: %w", err)
	}
	parts, err := partitioner.Run()
	result.Stats.PartitionTime = time.Since(partitionStart)
	if err != nil {
		// Partitions produced before the failure are still valid; hand
		// them back so the caller can report rather than silently drop
		// unassigned objects.
		result.Partitions = parts
		return result, fmt.Errorf("partition: %w", err)
	}

	logger.Info("partitioned into waves",
		"waves", len(parts),
		"duration", result.Stats.PartitionTime)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Stage 4: merge undersized waves
	mergeStart := time.Now()
	merged := wave.Merge(g, parts, opts.MinSize, opts.MaxSize)
	result.Stats.MergeTime = time.Since(mergeStart)

	if len(merged) != len(parts) {
		logger.Info("merged undersized waves",
			"before", len(parts),
			"after", len(merged),
			"duration", result.Stats.MergeTime)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Stage 5: statistics, matrix and ranking
	analyzeStart := time.Now()
	result.Matrix = wave.Analyze(g, merged)
	result.Ranking = partitioner.Ranking(merged)
	result.Partitions = merged
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	logger.Info("analyzed partitions",
		"waves", len(merged),
		"matrix_entries", len(result.Matrix),
		"duration", result.Stats.AnalyzeTime)

	return result, nil
}
