package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	bmcfg "github.com/benchnet-io/benchmarker/benchmarker/config"
	"github.com/benchnet-io/benchmarker/clientcontroller"
	"github.com/benchnet-io/benchmarker/types"
)

// RetryClassifier decides whether a failed submission attempt is worth
// retrying. It may refresh *height as a side effect; updates are visible to
// subsequent calls within the same submission.
type RetryClassifier interface {
	// ShouldRetry returns true if the operation labelled op should be
	// attempted again after err, false to abort regardless of the remaining
	// retry budget.
	ShouldRetry(ctx context.Context, err error, op string, height *types.Height) bool
}

var _ RetryClassifier = (*HeightRetryClassifier)(nil)

// HeightRetryClassifier allows retries for transport errors as long as the
// chain has not advanced too far past the height the submission was prepared
// against. A submission that outlived the tolerance is stale: the service
// would reject it anyway, so burning the remaining budget is pointless.
type HeightRetryClassifier struct {
	cc             clientcontroller.ClientController
	retryInterval  time.Duration
	driftTolerance uint64
	logger         *zap.Logger
}

func NewHeightRetryClassifier(
	cc clientcontroller.ClientController,
	retryInterval time.Duration,
	driftTolerance uint64,
	logger *zap.Logger,
) *HeightRetryClassifier {
	return &HeightRetryClassifier{
		cc:             cc,
		retryInterval:  retryInterval,
		driftTolerance: driftTolerance,
		logger:         logger.With(zap.String("module", "retry_classifier")),
	}
}

// NewHeightRetryClassifierFromConfig wires the classifier from the daemon
// config.
func NewHeightRetryClassifierFromConfig(
	cc clientcontroller.ClientController,
	cfg *bmcfg.Config,
	logger *zap.Logger,
) *HeightRetryClassifier {
	return NewHeightRetryClassifier(cc, cfg.SubmissionRetryInterval, cfg.HeightDriftTolerance, logger)
}

func (hc *HeightRetryClassifier) ShouldRetry(ctx context.Context, err error, op string, height *types.Height) bool {
	latest, queryErr := hc.cc.QueryLatestHeight(ctx)
	if queryErr != nil {
		// keep the recorded height; the retry itself may still go through
		hc.logger.Debug("failed to refresh the latest height",
			zap.String("op", op),
			zap.Error(queryErr))
	} else {
		if uint64(latest) > uint64(*height)+hc.driftTolerance {
			hc.logger.Warn("the chain has moved past the prepared submission, aborting",
				zap.String("op", op),
				zap.Uint64("prepared_height", uint64(*height)),
				zap.Uint64("latest_height", uint64(latest)),
				zap.Error(err))

			return false
		}
		if latest > *height {
			*height = latest
		}
	}

	select {
	case <-time.After(hc.retryInterval):
		return true
	case <-ctx.Done():
		hc.logger.Debug("submission cancelled while waiting to retry",
			zap.String("op", op))

		return false
	}
}
