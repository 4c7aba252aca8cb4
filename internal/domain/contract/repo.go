package contract

import (
	"context"

	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Guild() GuildRepo
	Channel() ChannelRepo
}

// GuildRepo defines the contract for the guild repository
type GuildRepo interface {
	// Ensure inserts the guild if it does not exist yet.
	Ensure(guildID string) error
	GetByGuildID(guildID string) (*entity.Guild, error)
	// GetAll returns every guild with its channel schedules attached.
	GetAll() ([]*entity.Guild, error)
	UpdateTimezone(guildID, timezone string) error
}

// ChannelRepo defines the contract for the channel-schedule repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetByGuildAndChannel(guildID, channelID string) (*entity.Channel, error)
	// Update writes the schedule fields (lock/unlock/days) of an existing row.
	Update(channel *entity.Channel) error
	Delete(channelID string) error
	// SetUnlocked writes the lock state. Only the scheduler calls this.
	SetUnlocked(channelID string, unlocked bool) error
	ListByGuild(guildID string) ([]*entity.Channel, error)
	ListIDsByGuild(guildID string) ([]string, error)
}
