package service

import (
	"context"
	"testing"

	"github.com/dlchamp/channel-lock-bot/internal/domain"
	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestConfig(m allMocks) *ConfigService {
	return newConfig(m.mockDataManager, m.mockDiscord, zap.NewNop())
}

// expectTransaction makes WithTransaction run its callback against the same
// mocked repositories.
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

func Test_ConfigService_SetTimezone(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	m.mockGuildRepo.EXPECT().UpdateTimezone("g1", "America/New_York").Return(nil)

	err := svc.SetTimezone("g1", "America/New_York")
	require.NoError(t, err)
}

func Test_ConfigService_SetTimezone_Unknown(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	// No repository expectation: nothing may be persisted.
	err := svc.SetTimezone("g1", "Not/AZone")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTimezone)

	err = svc.SetTimezone("g1", "")
	assert.ErrorIs(t, err, domain.ErrUnknownTimezone)
}

func Test_ConfigService_UpsertChannel_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		lock   string
		unlock string
		days   string
	}{
		{name: "bad lock time", lock: "25:00"},
		{name: "bad unlock time", unlock: "12:99"},
		{name: "lock time missing minutes", lock: "12"},
		{name: "bad day selector", days: "1,9"},
		{name: "non-numeric day selector", days: "mon-wed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			svc := newTestConfig(m)

			// No WithTransaction expectation: malformed input never reaches
			// the store.
			_, _, err := svc.UpsertChannel(context.Background(), "g1", "c1", tt.lock, tt.unlock, tt.days)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidScheduleFormat)
		})
	}
}

func Test_ConfigService_UpsertChannel_CreatesNewSchedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	expectTransaction(m)
	m.mockGuildRepo.EXPECT().Ensure("g1").Return(nil)
	m.mockChannelRepo.EXPECT().GetByGuildAndChannel("g1", "c1").Return(nil, nil)
	m.mockChannelRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(channel *entity.Channel) error {
		channel.ID = 1
		return nil
	})

	created, channel, err := svc.UpsertChannel(context.Background(), "g1", "c1", "21:00", "07:00", "0-4")
	require.NoError(t, err)

	assert.True(t, created)
	require.NotNil(t, channel)
	assert.Equal(t, "g1", channel.GuildID)
	assert.Equal(t, "c1", channel.ChannelID)
	require.NotNil(t, channel.LockTime)
	assert.Equal(t, "21:00", channel.LockTime.String())
	require.NotNil(t, channel.UnlockTime)
	assert.Equal(t, "07:00", channel.UnlockTime.String())
	require.NotNil(t, channel.Days)
	assert.Equal(t, "0-4", channel.Days.String())
	assert.True(t, channel.Unlocked, "new schedules start unlocked")
}

func Test_ConfigService_UpsertChannel_PartialUpdate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	existing := &entity.Channel{
		ID:        7,
		GuildID:   "g1",
		ChannelID: "c1",
		LockTime:  timeOfDay(t, "20:00"),
		Days:      dayRule(t, "0,2"),
		Unlocked:  false,
	}

	expectTransaction(m)
	m.mockGuildRepo.EXPECT().Ensure("g1").Return(nil)
	m.mockChannelRepo.EXPECT().GetByGuildAndChannel("g1", "c1").Return(existing, nil)
	m.mockChannelRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(channel *entity.Channel) error {
		// Only the supplied field changes; the rest carries over.
		assert.Equal(t, "20:00", channel.LockTime.String())
		assert.Equal(t, "06:30", channel.UnlockTime.String())
		assert.Equal(t, "0,2", channel.Days.String())
		return nil
	})

	created, channel, err := svc.UpsertChannel(context.Background(), "g1", "c1", "", "06:30", "")
	require.NoError(t, err)

	assert.False(t, created)
	require.NotNil(t, channel)
	assert.False(t, channel.Unlocked, "upsert must not touch lock state")
}

func Test_ConfigService_RemoveChannel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	m.mockChannelRepo.EXPECT().Delete("c1").Return(nil)

	require.NoError(t, svc.RemoveChannel("c1"))
}

func Test_ConfigService_GuildConfig(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	want := &entity.Guild{GuildID: "g1", Timezone: "Europe/Berlin"}

	m.mockGuildRepo.EXPECT().Ensure("g1").Return(nil)
	m.mockGuildRepo.EXPECT().GetByGuildID("g1").Return(want, nil)

	guild, err := svc.GuildConfig("g1")
	require.NoError(t, err)
	assert.Equal(t, want, guild)
}

func Test_ConfigService_SyncGuilds(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newTestConfig(m)

	m.mockDiscord.EXPECT().GuildIDs().Return([]string{"g1", "g2"})
	m.mockGuildRepo.EXPECT().Ensure("g1").Return(nil)
	m.mockGuildRepo.EXPECT().Ensure("g2").Return(nil)

	svc.SyncGuilds()
}
