package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

const channelColumns = `id, guild_id, channel_id, lock_time, unlock_time, days, unlocked, created_at, updated_at`

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (guild_id, channel_id, lock_time, unlock_time, days, unlocked)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		channel.GuildID,
		channel.ChannelID,
		timeOfDayString(channel.LockTime),
		timeOfDayString(channel.UnlockTime),
		dayRuleString(channel.Days),
		channel.Unlocked,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepo) GetByGuildAndChannel(guildID, channelID string) (*entity.Channel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM channels
		WHERE guild_id = ? AND channel_id = ?
	`

	row := r.db.QueryRow(query, guildID, channelID)
	channel, err := scanChannel(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return channel, nil
}

func (r *channelRepo) Update(channel *entity.Channel) error {
	query := `
		UPDATE channels SET
			lock_time = ?,
			unlock_time = ?,
			days = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		timeOfDayString(channel.LockTime),
		timeOfDayString(channel.UnlockTime),
		dayRuleString(channel.Days),
		time.Now(),
		channel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

func (r *channelRepo) Delete(channelID string) error {
	query := `DELETE FROM channels WHERE channel_id = ?`

	if _, err := r.db.Exec(query, channelID); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}

func (r *channelRepo) SetUnlocked(channelID string, unlocked bool) error {
	query := `
		UPDATE channels SET
			unlocked = ?,
			updated_at = ?
		WHERE channel_id = ?
	`

	if _, err := r.db.Exec(query, unlocked, time.Now(), channelID); err != nil {
		return fmt.Errorf("failed to set channel lock state: %w", err)
	}

	return nil
}

func (r *channelRepo) ListByGuild(guildID string) ([]*entity.Channel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM channels
		WHERE guild_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		channel, err := scanChannel(rows.Scan)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return channels, nil
}

func (r *channelRepo) ListIDsByGuild(guildID string) ([]string, error) {
	query := `SELECT channel_id FROM channels WHERE guild_id = ? ORDER BY id`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan channel id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channel ids: %w", err)
	}

	return ids, nil
}

// scanChannel scans one channel row, converting the stored time and
// day-selector strings to their typed forms. Values are validated at write
// time, so a parse failure here means the row was tampered with.
func scanChannel(scan func(dest ...any) error) (*entity.Channel, error) {
	channel := &entity.Channel{}
	var lockTime, unlockTime, days sql.NullString

	err := scan(
		&channel.ID,
		&channel.GuildID,
		&channel.ChannelID,
		&lockTime,
		&unlockTime,
		&days,
		&channel.Unlocked,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan channel: %w", err)
	}

	if lockTime.Valid {
		t, err := schedule.ParseTimeOfDay(lockTime.String)
		if err != nil {
			return nil, fmt.Errorf("stored lock time is invalid: %w", err)
		}
		channel.LockTime = &t
	}

	if unlockTime.Valid {
		t, err := schedule.ParseTimeOfDay(unlockTime.String)
		if err != nil {
			return nil, fmt.Errorf("stored unlock time is invalid: %w", err)
		}
		channel.UnlockTime = &t
	}

	if days.Valid {
		rule, err := schedule.ParseDayRule(days.String)
		if err != nil {
			return nil, fmt.Errorf("stored day selector is invalid: %w", err)
		}
		channel.Days = rule
	}

	return channel, nil
}

func timeOfDayString(t *schedule.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.String()
}

func dayRuleString(r *schedule.DayRule) any {
	if r == nil {
		return nil
	}
	return r.String()
}
