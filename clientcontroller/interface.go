package clientcontroller

import (
	"context"

	"github.com/benchnet-io/benchmarker/types"
)

// ClientController is the gateway to the remote benchmark service. Both
// calls suspend on network I/O; their timeout behaviour is owned by the
// concrete controller.
type ClientController interface {
	// SubmitBenchmark transmits a benchmark submission and returns the
	// service's verification outcome. A non-nil error is a transport
	// failure; a fraud-flagged submission is reported inside the response,
	// not as an error.
	SubmitBenchmark(ctx context.Context, req *types.SubmitBenchmarkRequest) (*types.SubmitBenchmarkResponse, error)

	// QueryLatestHeight returns the current chain height of the service.
	QueryLatestHeight(ctx context.Context) (types.Height, error)

	// Close shuts the controller down; subsequent calls fail.
	Close() error
}
