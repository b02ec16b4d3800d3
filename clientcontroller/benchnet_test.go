package clientcontroller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/benchnet-io/benchmarker/benchmarker/config"
	"github.com/benchnet-io/benchmarker/clientcontroller"
	"github.com/benchnet-io/benchmarker/testutil"
	"github.com/benchnet-io/benchmarker/types"
)

func newTestController(t *testing.T, handler http.Handler) *clientcontroller.BenchNetController {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.BenchNetConfig{
		APIAddress: server.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
	}

	bc, err := clientcontroller.NewBenchNetController(cfg, testutil.GetTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bc.Close() })

	return bc
}

func TestSubmitBenchmarkVerifiedOK(t *testing.T) {
	t.Parallel()

	var gotAPIKey string
	bc := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/submit-benchmark", r.URL.Path)
		gotAPIKey = r.Header.Get("X-Api-Key")

		var req types.SubmitBenchmarkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_, _ = w.Write([]byte(`{"benchmark_id":"b1","verified":{"Ok":null}}`))
	}))

	resp, err := bc.SubmitBenchmark(context.Background(), &types.SubmitBenchmarkRequest{})
	require.NoError(t, err)
	require.Equal(t, "b1", resp.BenchmarkID)
	require.Equal(t, "test-key", gotAPIKey)

	_, fraud := resp.Verified.FraudReason()
	require.False(t, fraud)
}

func TestSubmitBenchmarkFraudFlagged(t *testing.T) {
	t.Parallel()

	bc := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"benchmark_id":"b1","verified":{"Err":"solution does not satisfy difficulty"}}`))
	}))

	resp, err := bc.SubmitBenchmark(context.Background(), &types.SubmitBenchmarkRequest{})
	require.NoError(t, err)

	reason, fraud := resp.Verified.FraudReason()
	require.True(t, fraud)
	require.Equal(t, "solution does not satisfy difficulty", reason)
}

func TestSubmitBenchmarkTransportError(t *testing.T) {
	t.Parallel()

	bc := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))

	_, err := bc.SubmitBenchmark(context.Background(), &types.SubmitBenchmarkRequest{})
	require.Error(t, err)

	var apiErr *clientcontroller.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestQueryLatestHeight(t *testing.T) {
	t.Parallel()

	bc := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/get-block", r.URL.Path)

		_, _ = w.Write([]byte(`{"block":{"details":{"height":1042}}}`))
	}))

	height, err := bc.QueryLatestHeight(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.Height(1042), height)
}

func TestClosedControllerRejectsCalls(t *testing.T) {
	t.Parallel()

	bc := newTestController(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	require.NoError(t, bc.Close())

	_, err := bc.SubmitBenchmark(context.Background(), &types.SubmitBenchmarkRequest{})
	require.Error(t, err)

	_, err = bc.QueryLatestHeight(context.Background())
	require.Error(t, err)

	require.Error(t, bc.Close())
}
