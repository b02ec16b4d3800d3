package types

import (
	"context"
)

// BenchmarkSubmitter defines the interface for submitting computed benchmark
// results. The implementation handles all retry logic internally.
type BenchmarkSubmitter interface {

	// Execute extracts the submission materials for the job's benchmark,
	// submits them and reconciles the outcome against the retry budget.
	// Returns the benchmark id confirmed by the service.
	Execute(ctx context.Context, job *Job) (string, error)
}
