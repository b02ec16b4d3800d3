package clientcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/benchnet-io/benchmarker/benchmarker/config"
	"github.com/benchnet-io/benchmarker/types"
	"github.com/benchnet-io/benchmarker/version"
)

var (
	RtyAttNum = uint(5)
	RtyAtt    = retry.Attempts(RtyAttNum)
	RtyDel    = retry.Delay(time.Millisecond * 400)
	RtyErr    = retry.LastErrorOnly(true)
)

var _ ClientController = (*BenchNetController)(nil)

// APIError is a transport-level failure reported by the benchmark service:
// any non-2xx status. It is distinct from a fraud flag, which arrives in a
// successful response body.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d from %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// BenchNetController talks to the benchmark service over its JSON API.
type BenchNetController struct {
	isClosed *atomic.Bool

	cfg        *config.BenchNetConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewBenchNetController(cfg *config.BenchNetConfig, logger *zap.Logger) (*BenchNetController, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config for benchnet controller")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &BenchNetController{
		isClosed:   atomic.NewBool(false),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(zap.String("module", "benchnet_controller")),
	}, nil
}

// SubmitBenchmark posts the submission request. The attempt is not retried
// here; the submitter owns the retry budget for submissions.
func (bc *BenchNetController) SubmitBenchmark(ctx context.Context, req *types.SubmitBenchmarkRequest) (*types.SubmitBenchmarkResponse, error) {
	if bc.isClosed.Load() {
		return nil, fmt.Errorf("the benchnet controller is closed")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission request: %w", err)
	}

	body, err := bc.post(ctx, "/submit-benchmark", payload)
	if err != nil {
		return nil, err
	}

	var resp types.SubmitBenchmarkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode submission response: %w", err)
	}

	return &resp, nil
}

type latestBlockResponse struct {
	Block struct {
		Details struct {
			Height uint64 `json:"height"`
		} `json:"details"`
	} `json:"block"`
}

// QueryLatestHeight queries the latest block and returns its height. The
// query itself is wrapped in a short bounded retry; callers see only the
// final error.
func (bc *BenchNetController) QueryLatestHeight(ctx context.Context) (types.Height, error) {
	if bc.isClosed.Load() {
		return 0, fmt.Errorf("the benchnet controller is closed")
	}

	var height types.Height
	if err := retry.Do(func() error {
		body, err := bc.get(ctx, "/get-block")
		if err != nil {
			return err
		}

		var resp latestBlockResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("failed to decode block response: %w", err)
		}
		height = types.Height(resp.Block.Details.Height)

		return nil
	}, retry.Context(ctx), RtyAtt, RtyDel, RtyErr, retry.OnRetry(func(n uint, err error) {
		bc.logger.Debug(
			"failed to query the latest block",
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", RtyAttNum),
			zap.Error(err),
		)
	})); err != nil {
		return 0, fmt.Errorf("failed to query the latest height: %w", err)
	}

	return height, nil
}

func (bc *BenchNetController) Close() error {
	if bc.isClosed.Swap(true) {
		return fmt.Errorf("the benchnet controller is already closed")
	}

	bc.httpClient.CloseIdleConnections()

	return nil
}

func (bc *BenchNetController) post(ctx context.Context, endpoint string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, bc.cfg.APIAddress+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if bc.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", bc.cfg.APIKey)
	}

	return bc.send(req, endpoint)
}

func (bc *BenchNetController) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bc.cfg.APIAddress+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	if bc.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", bc.cfg.APIKey)
	}

	return bc.send(req, endpoint)
}

func (bc *BenchNetController) send(req *http.Request, endpoint string) ([]byte, error) {
	resp, err := bc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
