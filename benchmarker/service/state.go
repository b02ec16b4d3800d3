package service

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/benchnet-io/benchmarker/types"
)

// SharedState holds the benchmarks and proofs produced by the benchmarking
// pipeline, keyed by benchmark id. Many submission jobs read it
// concurrently; the mutex is only ever held for synchronous map access,
// never across a network call.
type SharedState struct {
	mu         sync.Mutex
	benchmarks map[string]*types.Benchmark
	proofs     map[string]*types.Proof
	logger     *zap.Logger
}

func NewSharedState(logger *zap.Logger) *SharedState {
	return &SharedState{
		benchmarks: make(map[string]*types.Benchmark),
		proofs:     make(map[string]*types.Proof),
		logger:     logger.With(zap.String("module", "shared_state")),
	}
}

func (s *SharedState) withLock(action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action()
}

func (s *SharedState) UpsertBenchmark(benchmarkID string, b *types.Benchmark) {
	s.withLock(func() {
		s.benchmarks[benchmarkID] = b
	})
}

func (s *SharedState) UpsertProof(benchmarkID string, p *types.Proof) {
	s.withLock(func() {
		s.proofs[benchmarkID] = p
	})
}

func (s *SharedState) RemoveBenchmark(benchmarkID string) {
	s.withLock(func() {
		delete(s.benchmarks, benchmarkID)
		delete(s.proofs, benchmarkID)
	})
}

// TakeSubmissionMaterials extracts everything needed to build a submission
// request for the given benchmark: a copy of the settings, the moved
// solutions metadata and a clone of the first proof solution entry.
//
// The metadata transition is checked: once taken, a second call fails with
// types.ErrMetaDataConsumed until the benchmark entry is repopulated. The
// consumption is not rolled back if the surrounding submission is cancelled
// later; repopulating the entry is the producer's responsibility.
func (s *SharedState) TakeSubmissionMaterials(benchmarkID string) (
	types.BenchmarkSettings,
	[]types.SolutionMetaData,
	types.SolutionData,
	error,
) {
	var (
		settings     types.BenchmarkSettings
		metaData     []types.SolutionMetaData
		solutionData types.SolutionData
		err          error
	)

	s.withLock(func() {
		benchmark, ok := s.benchmarks[benchmarkID]
		if !ok {
			err = fmt.Errorf("benchmark %s: %w", benchmarkID, ErrBenchmarkNotFound)

			return
		}

		proof, ok := s.proofs[benchmarkID]
		if !ok {
			err = fmt.Errorf("benchmark %s: %w", benchmarkID, ErrProofNotFound)

			return
		}

		// resolve the proof entry before consuming the metadata so a bad
		// proof does not leave the benchmark half-extracted
		solutionData, err = proof.FirstSolutionData()
		if err != nil {
			err = fmt.Errorf("benchmark %s: %w", benchmarkID, err)

			return
		}

		metaData, err = benchmark.SolutionsMetaData.Take()
		if err != nil {
			err = fmt.Errorf("benchmark %s: %w", benchmarkID, err)

			return
		}

		settings = benchmark.Settings.Clone()
	})

	if err != nil {
		return types.BenchmarkSettings{}, nil, types.SolutionData{}, err
	}

	s.logger.Debug("extracted submission materials",
		zap.String("benchmark_id", benchmarkID),
		zap.Int("num_solutions_meta_data", len(metaData)))

	return settings, metaData, solutionData, nil
}
