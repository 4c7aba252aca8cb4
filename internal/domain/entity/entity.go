package entity

import (
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
)

// Guild is a guild's stored configuration. Timezone is empty when the guild
// has not configured one, in which case UTC applies.
type Guild struct {
	ID        int64
	GuildID   string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Channels  []*Channel
}

// Channel is one channel's lock/unlock schedule. LockTime, UnlockTime and
// Days are nil when unconfigured; a nil Days rule runs every day. Unlocked
// reflects the last transition the executor successfully applied and is only
// written by the scheduler or an explicit removal.
type Channel struct {
	ID         int64
	GuildID    string
	ChannelID  string
	LockTime   *schedule.TimeOfDay
	UnlockTime *schedule.TimeOfDay
	Days       *schedule.DayRule
	Unlocked   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ChannelUpdate carries the fields of a channel upsert. A nil field leaves
// the stored value untouched.
type ChannelUpdate struct {
	LockTime   *schedule.TimeOfDay
	UnlockTime *schedule.TimeOfDay
	Days       *schedule.DayRule
}
