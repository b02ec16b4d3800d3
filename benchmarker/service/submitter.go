package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	bmcfg "github.com/benchnet-io/benchmarker/benchmarker/config"
	"github.com/benchnet-io/benchmarker/clientcontroller"
	"github.com/benchnet-io/benchmarker/metrics"
	"github.com/benchnet-io/benchmarker/types"
)

var _ types.BenchmarkSubmitter = (*DefaultBenchmarkSubmitter)(nil)

const submissionOpLabel = "benchmark"

type SubmitterConfig struct {
	MaxSubmissionRetries uint32
}

func NewSubmitterConfig(maxSubmissionRetries uint32) *SubmitterConfig {
	return &SubmitterConfig{
		MaxSubmissionRetries: maxSubmissionRetries,
	}
}

func NewSubmitterConfigFromAppConfig(cfg *bmcfg.Config) *SubmitterConfig {
	return NewSubmitterConfig(cfg.MaxSubmissionRetries)
}

// DefaultBenchmarkSubmitter drives one benchmark submission end to end:
// extract the materials from shared state, establish the baseline height and
// run the bounded retry loop against the benchmark service.
type DefaultBenchmarkSubmitter struct {
	state      *SharedState
	cc         clientcontroller.ClientController
	classifier RetryClassifier
	cfg        *SubmitterConfig
	logger     *zap.Logger
	metrics    *metrics.SubmitterMetrics
}

func NewDefaultBenchmarkSubmitter(
	state *SharedState,
	cc clientcontroller.ClientController,
	classifier RetryClassifier,
	cfg *SubmitterConfig,
	logger *zap.Logger,
	metrics *metrics.SubmitterMetrics,
) *DefaultBenchmarkSubmitter {
	return &DefaultBenchmarkSubmitter{
		state:      state,
		cc:         cc,
		classifier: classifier,
		cfg:        cfg,
		logger:     logger.With(zap.String("module", "benchmark_submitter")),
		metrics:    metrics,
	}
}

// Execute submits the job's benchmark and returns the benchmark id confirmed
// by the service.
//
// Outcomes are terminal in exactly one of three ways: the service verified
// the submission (success), the service flagged it as fraud (never retried),
// or the transport kept failing until the retry budget ran out or the
// classifier declined a further attempt. Precondition failures from shared
// state surface before any network call and are never retried. Every exit
// path returns from inside the attempt loop.
func (ds *DefaultBenchmarkSubmitter) Execute(ctx context.Context, job *types.Job) (string, error) {
	ds.metrics.IncrementRunningJobs()
	defer ds.metrics.DecrementRunningJobs()

	settings, solutionsMetaData, solutionData, err := ds.state.TakeSubmissionMaterials(job.BenchmarkID)
	if err != nil {
		ds.metrics.IncrementFailedSubmissions()

		return "", fmt.Errorf("failed to build the submission request: %w", err)
	}
	req := types.NewSubmitBenchmarkRequest(settings, solutionsMetaData, solutionData)

	currentHeight, err := ds.cc.QueryLatestHeight(ctx)
	if err != nil {
		ds.metrics.IncrementFailedSubmissions()

		return "", fmt.Errorf("failed to query the baseline height: %w", err)
	}

	maxRetries := ds.cfg.MaxSubmissionRetries
	for attempt := uint32(1); ; attempt++ {
		ds.logger.Info("submitting benchmark",
			zap.String("benchmark_id", job.BenchmarkID),
			zap.Uint32("attempt", attempt),
			zap.Uint32("max_attempts", maxRetries))

		resp, err := ds.cc.SubmitBenchmark(ctx, req)
		if err == nil {
			if reason, fraud := resp.Verified.FraudReason(); fraud {
				ds.metrics.IncrementFraudFlagged()
				ds.logger.Warn("benchmark flagged as fraud",
					zap.String("benchmark_id", resp.BenchmarkID),
					zap.String("reason", reason))

				return "", fmt.Errorf("benchmark flagged as fraud: %s", reason)
			}

			ds.metrics.RecordSubmissionSuccess(currentHeight, attempt)
			ds.logger.Info("benchmark submitted",
				zap.String("benchmark_id", resp.BenchmarkID),
				zap.Uint32("attempt", attempt))

			return resp.BenchmarkID, nil
		}

		ds.logger.Debug("failed to submit benchmark",
			zap.String("benchmark_id", job.BenchmarkID),
			zap.Uint32("attempt", attempt),
			zap.Error(err))

		if attempt == maxRetries {
			ds.metrics.IncrementFailedSubmissions()

			return "", fmt.Errorf("failed to submit benchmark after %d attempts: %w", attempt, err)
		}

		if !ds.classifier.ShouldRetry(ctx, err, submissionOpLabel, &currentHeight) {
			ds.metrics.IncrementFailedSubmissions()

			return "", fmt.Errorf("failed to submit benchmark after %d attempts: %w", attempt, err)
		}

		ds.metrics.IncrementSubmissionRetries()
	}
}
