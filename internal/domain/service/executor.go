package service

import (
	"fmt"

	"github.com/dlchamp/channel-lock-bot/internal/domain"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
	"go.uber.org/zap"
)

// apply performs one decided transition: permission overwrite, name marker,
// then persist. The new lock state is only written after both Discord calls
// succeed; a failed call leaves the stored state untouched so the next tick
// retries inside the tolerance window.
func (s *Scheduler) apply(guild *entity.Guild, channel *entity.Channel, transition schedule.Transition) error {
	dGuild, err := s.discord.Guild(guild.GuildID)
	if err != nil {
		return fmt.Errorf("%w: guild lookup: %v", domain.ErrExternalActionFailed, err)
	}

	dChannel, err := s.discord.GuildChannel(guild.GuildID, channel.ChannelID)
	if err != nil {
		return fmt.Errorf("%w: channel lookup: %v", domain.ErrExternalActionFailed, err)
	}

	// The @everyone role shares the guild's id.
	everyoneID := dGuild.ID

	switch transition {
	case schedule.TransitionLock:
		if err := s.discord.DenySend(dChannel.ID, everyoneID); err != nil {
			return fmt.Errorf("%w: deny send: %v", domain.ErrExternalActionFailed, err)
		}
		if err := s.discord.Rename(dChannel.ID, domain.LockedName(dChannel.Name)); err != nil {
			return fmt.Errorf("%w: rename: %v", domain.ErrExternalActionFailed, err)
		}
		if err := s.dm.Channel().SetUnlocked(channel.ChannelID, false); err != nil {
			return err
		}
		channel.Unlocked = false

	case schedule.TransitionUnlock:
		if err := s.discord.ClearSendOverwrite(dChannel.ID, everyoneID); err != nil {
			return fmt.Errorf("%w: clear overwrite: %v", domain.ErrExternalActionFailed, err)
		}
		if err := s.discord.Rename(dChannel.ID, domain.UnlockedName(dChannel.Name)); err != nil {
			return fmt.Errorf("%w: rename: %v", domain.ErrExternalActionFailed, err)
		}
		if err := s.dm.Channel().SetUnlocked(channel.ChannelID, true); err != nil {
			return err
		}
		channel.Unlocked = true
	}

	s.log.Info("channel transitioned",
		zap.String("guild_id", guild.GuildID),
		zap.String("channel_id", channel.ChannelID),
		zap.Stringer("transition", transition),
	)

	return nil
}
