package service

import (
	"testing"

	"github.com/dlchamp/channel-lock-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockGuildRepo   *mocks.MockGuildRepo
	mockChannelRepo *mocks.MockChannelRepo
	mockDiscord     *mocks.MockDiscord
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	guildRepo := mocks.NewMockGuildRepo(ctrl)
	dm.EXPECT().Guild().Return(guildRepo).AnyTimes()

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	discord := mocks.NewMockDiscord(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockGuildRepo:   guildRepo,
		mockChannelRepo: channelRepo,
		mockDiscord:     discord,
	}

	// validate instance creation
	instance := NewInstance(dm, discord, zap.NewNop())
	require.NotNil(t, instance)

	return
}
