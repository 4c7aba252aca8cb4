package database

import (
	"testing"

	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()

	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustDayRule(t *testing.T, s string) *schedule.DayRule {
	t.Helper()

	rule, err := schedule.ParseDayRule(s)
	require.NoError(t, err)
	return rule
}

func createTestGuild(t *testing.T, db *DB, guildID string) {
	t.Helper()

	require.NoError(t, newGuildRepo(db.conn).Ensure(guildID))
}

func TestChannelRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	repo := newChannelRepo(db.conn)

	lock := mustTimeOfDay(t, "21:30")
	unlock := mustTimeOfDay(t, "07:15")

	channel := &entity.Channel{
		GuildID:    "g1",
		ChannelID:  "c1",
		LockTime:   &lock,
		UnlockTime: &unlock,
		Days:       mustDayRule(t, "0,2,4"),
		Unlocked:   true,
	}

	err := repo.Create(channel)
	require.NoError(t, err)
	assert.NotZero(t, channel.ID, "Expected channel ID to be set after creation")

	found, err := repo.GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "g1", found.GuildID)
	assert.Equal(t, "c1", found.ChannelID)
	require.NotNil(t, found.LockTime)
	assert.Equal(t, "21:30", found.LockTime.String())
	require.NotNil(t, found.UnlockTime)
	assert.Equal(t, "07:15", found.UnlockTime.String())
	require.NotNil(t, found.Days)
	assert.Equal(t, "0,2,4", found.Days.String())
	assert.True(t, found.Unlocked)
}

func TestChannelRepo_Get_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)

	found, err := repo.GetByGuildAndChannel("g1", "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestChannelRepo_DuplicatePairRejected(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	repo := newChannelRepo(db.conn)

	err := repo.Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true})
	require.NoError(t, err)

	err = repo.Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true})
	assert.Error(t, err, "second schedule for the same guild+channel must be rejected")
}

func TestChannelRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	repo := newChannelRepo(db.conn)

	lock := mustTimeOfDay(t, "20:00")
	channel := &entity.Channel{
		GuildID:   "g1",
		ChannelID: "c1",
		LockTime:  &lock,
		Unlocked:  true,
	}
	require.NoError(t, repo.Create(channel))

	// Add an unlock time and a day rule, change the lock time
	newLock := mustTimeOfDay(t, "22:00")
	unlock := mustTimeOfDay(t, "06:00")
	channel.LockTime = &newLock
	channel.UnlockTime = &unlock
	channel.Days = mustDayRule(t, "1-3")

	require.NoError(t, repo.Update(channel))

	found, err := repo.GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "22:00", found.LockTime.String())
	assert.Equal(t, "06:00", found.UnlockTime.String())
	assert.Equal(t, "1-3", found.Days.String())
	assert.True(t, found.Unlocked, "Update must not touch lock state")
}

func TestChannelRepo_SetUnlocked(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true}
	require.NoError(t, repo.Create(channel))

	require.NoError(t, repo.SetUnlocked("c1", false))

	found, err := repo.GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	assert.False(t, found.Unlocked)

	require.NoError(t, repo.SetUnlocked("c1", true))

	found, err = repo.GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	assert.True(t, found.Unlocked)
}

func TestChannelRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	repo := newChannelRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true}))
	require.NoError(t, repo.Delete("c1"))

	found, err := repo.GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestChannelRepo_ListIDsByGuild(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestGuild(t, db, "g1")
	createTestGuild(t, db, "g2")
	repo := newChannelRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true}))
	require.NoError(t, repo.Create(&entity.Channel{GuildID: "g1", ChannelID: "c2", Unlocked: true}))
	require.NoError(t, repo.Create(&entity.Channel{GuildID: "g2", ChannelID: "c3", Unlocked: true}))

	ids, err := repo.ListIDsByGuild("g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)

	ids, err = repo.ListIDsByGuild("g3")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
