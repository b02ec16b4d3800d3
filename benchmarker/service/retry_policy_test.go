package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bmcfg "github.com/benchnet-io/benchmarker/benchmarker/config"
	"github.com/benchnet-io/benchmarker/benchmarker/service"
	"github.com/benchnet-io/benchmarker/testutil"
	"github.com/benchnet-io/benchmarker/testutil/mocks"
	"github.com/benchnet-io/benchmarker/types"
)

const (
	testRetryInterval  = 10 * time.Millisecond
	testDriftTolerance = uint64(3)
)

var errTransport = errors.New("connection refused")

func TestHeightRetryClassifierAllowsFreshSubmission(t *testing.T) {
	t.Parallel()

	mockClientController := testutil.PrepareMockedClientController(t, 105)
	classifier := service.NewHeightRetryClassifier(
		mockClientController, testRetryInterval, 10, testutil.GetTestLogger(t))

	height := types.Height(100)
	require.True(t, classifier.ShouldRetry(context.Background(), errTransport, "benchmark", &height))
	// the refreshed height is visible to the next attempt
	require.Equal(t, types.Height(105), height)
}

func TestHeightRetryClassifierAbortsOnDrift(t *testing.T) {
	t.Parallel()

	mockClientController := testutil.PrepareMockedClientController(t, 110)
	classifier := service.NewHeightRetryClassifier(
		mockClientController, testRetryInterval, testDriftTolerance, testutil.GetTestLogger(t))

	height := types.Height(100)
	require.False(t, classifier.ShouldRetry(context.Background(), errTransport, "benchmark", &height))
	// aborting leaves the recorded height untouched
	require.Equal(t, types.Height(100), height)
}

func TestHeightRetryClassifierRetriesWhenProbeFails(t *testing.T) {
	t.Parallel()

	ctl := gomock.NewController(t)
	mockClientController := mocks.NewMockClientController(ctl)
	mockClientController.EXPECT().
		QueryLatestHeight(gomock.Any()).
		Return(types.Height(0), errors.New("probe unreachable")).
		Times(1)

	classifier := service.NewHeightRetryClassifier(
		mockClientController, testRetryInterval, testDriftTolerance, testutil.GetTestLogger(t))

	height := types.Height(100)
	require.True(t, classifier.ShouldRetry(context.Background(), errTransport, "benchmark", &height))
	require.Equal(t, types.Height(100), height)
}

func TestHeightRetryClassifierFromConfig(t *testing.T) {
	t.Parallel()

	cfg := bmcfg.DefaultConfig()
	mockClientController := testutil.PrepareMockedClientController(t, 200)
	classifier := service.NewHeightRetryClassifierFromConfig(
		mockClientController, &cfg, testutil.GetTestLogger(t))

	// well past the default drift tolerance, aborts before waiting
	height := types.Height(100)
	require.False(t, classifier.ShouldRetry(context.Background(), errTransport, "benchmark", &height))
}

func TestHeightRetryClassifierHonoursCancellation(t *testing.T) {
	t.Parallel()

	mockClientController := testutil.PrepareMockedClientController(t, 100)
	classifier := service.NewHeightRetryClassifier(
		mockClientController, time.Hour, testDriftTolerance, testutil.GetTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	height := types.Height(100)
	require.False(t, classifier.ShouldRetry(ctx, errTransport, "benchmark", &height))
}
