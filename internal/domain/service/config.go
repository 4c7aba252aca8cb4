package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain"
	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
	"go.uber.org/zap"
)

// ConfigService backs the admin command surface. All admin input is
// validated here, before anything is persisted; the scheduler never sees a
// malformed time or day selector.
type ConfigService struct {
	dm      contract.DataManager
	discord contract.Discord
	log     *zap.Logger
}

func newConfig(dm contract.DataManager, discord contract.Discord, log *zap.Logger) *ConfigService {
	return &ConfigService{
		dm:      dm,
		discord: discord,
		log:     log,
	}
}

// SyncGuilds ensures every guild the session participates in exists in the
// store, picking up guilds that joined while the bot was offline.
func (s *ConfigService) SyncGuilds() {
	for _, guildID := range s.discord.GuildIDs() {
		if err := s.dm.Guild().Ensure(guildID); err != nil {
			s.log.Error("failed to register guild", zap.String("guild_id", guildID), zap.Error(err))
		}
	}
}

// EnsureGuild registers a newly observed guild.
func (s *ConfigService) EnsureGuild(guildID string) error {
	return s.dm.Guild().Ensure(guildID)
}

// SetTimezone validates and stores the guild's timezone.
func (s *ConfigService) SetTimezone(guildID, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, timezone)
	}

	return s.dm.Guild().UpdateTimezone(guildID, timezone)
}

// UpsertChannel adds or updates a channel schedule. Empty strings mean "not
// supplied": on update they leave the stored value untouched. Returns
// whether a new schedule was created and the resulting schedule.
func (s *ConfigService) UpsertChannel(ctx context.Context, guildID, channelID, lockTime, unlockTime, days string) (bool, *entity.Channel, error) {
	var update entity.ChannelUpdate

	if lockTime != "" {
		t, err := schedule.ParseTimeOfDay(lockTime)
		if err != nil {
			return false, nil, err
		}
		update.LockTime = &t
	}

	if unlockTime != "" {
		t, err := schedule.ParseTimeOfDay(unlockTime)
		if err != nil {
			return false, nil, err
		}
		update.UnlockTime = &t
	}

	if days != "" {
		rule, err := schedule.ParseDayRule(days)
		if err != nil {
			return false, nil, err
		}
		update.Days = rule
	}

	var (
		created bool
		result  *entity.Channel
	)

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Guild().Ensure(guildID); err != nil {
			return err
		}

		channel, err := dm.Channel().GetByGuildAndChannel(guildID, channelID)
		if err != nil {
			return err
		}

		if channel == nil {
			channel = &entity.Channel{
				GuildID:    guildID,
				ChannelID:  channelID,
				LockTime:   update.LockTime,
				UnlockTime: update.UnlockTime,
				Days:       update.Days,
				Unlocked:   true,
			}
			if err := dm.Channel().Create(channel); err != nil {
				return err
			}
			created = true
			result = channel
			return nil
		}

		if update.LockTime != nil {
			channel.LockTime = update.LockTime
		}
		if update.UnlockTime != nil {
			channel.UnlockTime = update.UnlockTime
		}
		if update.Days != nil {
			channel.Days = update.Days
		}

		if err := dm.Channel().Update(channel); err != nil {
			return err
		}
		result = channel
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	return created, result, nil
}

// RemoveChannel deletes a channel schedule.
func (s *ConfigService) RemoveChannel(channelID string) error {
	return s.dm.Channel().Delete(channelID)
}

// GuildConfig returns the guild's configuration with its channel schedules,
// registering the guild first if it was never seen.
func (s *ConfigService) GuildConfig(guildID string) (*entity.Guild, error) {
	if err := s.dm.Guild().Ensure(guildID); err != nil {
		return nil, err
	}

	return s.dm.Guild().GetByGuildID(guildID)
}

// ListChannelIDs returns the configured channel ids for a guild.
func (s *ConfigService) ListChannelIDs(guildID string) ([]string, error) {
	return s.dm.Channel().ListIDsByGuild(guildID)
}
