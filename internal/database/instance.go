package database

import (
	"context"
	"fmt"

	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	guildRepo   contract.GuildRepo
	channelRepo contract.ChannelRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:          db,
		guildRepo:   newGuildRepo(db.conn),
		channelRepo: newChannelRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		guildRepo:   newGuildRepo(db),
		channelRepo: newChannelRepo(db),
	}
}

// Guild returns the guild repository
func (i *instance) Guild() contract.GuildRepo {
	return i.guildRepo
}

// Channel returns the channel-schedule repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
