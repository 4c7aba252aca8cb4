package database

import (
	"context"
	"errors"
	"testing"

	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Guild().Ensure("g1"); err != nil {
			return err
		}
		return tx.Channel().Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true})
	})
	require.NoError(t, err)

	channel, err := dm.Channel().GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	assert.NotNil(t, channel)
}

func TestInstance_WithTransaction_RollbackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	wantErr := errors.New("boom")
	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Guild().Ensure("g1"); err != nil {
			return err
		}
		if err := tx.Channel().Create(&entity.Channel{GuildID: "g1", ChannelID: "c1", Unlocked: true}); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// Nothing from the failed transaction is visible.
	guild, err := dm.Guild().GetByGuildID("g1")
	require.NoError(t, err)
	assert.Nil(t, guild)

	channel, err := dm.Channel().GetByGuildAndChannel("g1", "c1")
	require.NoError(t, err)
	assert.Nil(t, channel)
}
