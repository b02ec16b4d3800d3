package testutil

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/benchnet-io/benchmarker/testutil/mocks"
	"github.com/benchnet-io/benchmarker/types"
)

// PrepareMockedClientController returns a mocked client controller that
// reports the given latest height and closes cleanly.
func PrepareMockedClientController(t *testing.T, height types.Height) *mocks.MockClientController {
	ctl := gomock.NewController(t)
	mockClientController := mocks.NewMockClientController(ctl)

	mockClientController.EXPECT().QueryLatestHeight(gomock.Any()).Return(height, nil).AnyTimes()
	mockClientController.EXPECT().Close().Return(nil).AnyTimes()

	return mockClientController
}
