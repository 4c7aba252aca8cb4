package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain"
)

// TimeOfDay is a wall-clock time without a date. It is always interpreted
// against a guild's timezone and the current date when matched.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: time must be in 24-hour HH:MM format, got %q", domain.ErrInvalidScheduleFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid hour %q", domain.ErrInvalidScheduleFormat, parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid minute %q", domain.ErrInvalidScheduleFormat, parts[1])
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hours must be 0-23, got %d", domain.ErrInvalidScheduleFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minutes must be 0-59, got %d", domain.ErrInvalidScheduleFormat, minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// At combines the wall-clock time with the date of ref in loc, producing the
// concrete instant the time refers to on that day.
func (t TimeOfDay) At(ref time.Time, loc *time.Location) time.Time {
	year, month, day := ref.In(loc).Date()
	return time.Date(year, month, day, t.Hour, t.Minute, 0, 0, loc)
}
