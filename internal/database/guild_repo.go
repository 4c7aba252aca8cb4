package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
)

type guildRepo struct {
	db dbConn
}

func newGuildRepo(db dbConn) contract.GuildRepo {
	return &guildRepo{db: db}
}

func (r *guildRepo) Ensure(guildID string) error {
	query := `INSERT OR IGNORE INTO guilds (guild_id) VALUES (?)`

	if _, err := r.db.Exec(query, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild: %w", err)
	}

	return nil
}

func (r *guildRepo) GetByGuildID(guildID string) (*entity.Guild, error) {
	guild := &entity.Guild{}
	query := `
		SELECT id, guild_id, timezone, created_at, updated_at
		FROM guilds
		WHERE guild_id = ?
	`

	var timezone sql.NullString
	err := r.db.QueryRow(query, guildID).Scan(
		&guild.ID,
		&guild.GuildID,
		&timezone,
		&guild.CreatedAt,
		&guild.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}
	guild.Timezone = timezone.String

	channels, err := newChannelRepo(r.db).ListByGuild(guildID)
	if err != nil {
		return nil, err
	}
	guild.Channels = channels

	return guild, nil
}

// GetAll returns every guild with its channel schedules attached. Channels
// are fetched in a single query and grouped in memory.
func (r *guildRepo) GetAll() ([]*entity.Guild, error) {
	query := `
		SELECT id, guild_id, timezone, created_at, updated_at
		FROM guilds
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get guilds: %w", err)
	}
	defer rows.Close()

	var guilds []*entity.Guild
	byGuildID := make(map[string]*entity.Guild)
	for rows.Next() {
		guild := &entity.Guild{}
		var timezone sql.NullString
		err := rows.Scan(
			&guild.ID,
			&guild.GuildID,
			&timezone,
			&guild.CreatedAt,
			&guild.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guild: %w", err)
		}
		guild.Timezone = timezone.String
		guilds = append(guilds, guild)
		byGuildID[guild.GuildID] = guild
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guilds: %w", err)
	}

	channelRows, err := r.db.Query(`
		SELECT id, guild_id, channel_id, lock_time, unlock_time, days, unlocked, created_at, updated_at
		FROM channels
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}
	defer channelRows.Close()

	for channelRows.Next() {
		channel, err := scanChannel(channelRows.Scan)
		if err != nil {
			return nil, err
		}
		if guild, ok := byGuildID[channel.GuildID]; ok {
			guild.Channels = append(guild.Channels, channel)
		}
	}
	if err := channelRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return guilds, nil
}

func (r *guildRepo) UpdateTimezone(guildID, timezone string) error {
	if err := r.Ensure(guildID); err != nil {
		return err
	}

	query := `
		UPDATE guilds SET
			timezone = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	if _, err := r.db.Exec(query, timezone, time.Now(), guildID); err != nil {
		return fmt.Errorf("failed to update guild timezone: %w", err)
	}

	return nil
}
