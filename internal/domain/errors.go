package domain

import "errors"

var (
	// ErrInvalidScheduleFormat means an admin supplied a malformed time or
	// day-selector string. It is returned before anything is persisted.
	ErrInvalidScheduleFormat = errors.New("invalid schedule format")

	// ErrUnknownTimezone means the supplied timezone name is not present in
	// the zoneinfo database.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrExternalActionFailed means a Discord call (permission overwrite,
	// rename, guild/channel lookup) failed or the target no longer exists.
	ErrExternalActionFailed = errors.New("external action failed")

	// ErrChannelNotFound means no schedule exists for the given channel.
	ErrChannelNotFound = errors.New("channel not found")
)
