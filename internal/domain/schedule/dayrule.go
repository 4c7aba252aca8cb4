package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain"
)

type ruleKind int

const (
	kindList ruleKind = iota
	kindRange
)

// DayRule is a parsed weekday selector. A nil rule matches every day.
//
// Selectors are either an explicit list ("0,2,4") or a range ("1-3"), each
// value in 0-6 with 0=Monday. Range matching is exclusive of the end value,
// so "1-3" covers Tuesday and Wednesday only.
type DayRule struct {
	kind  ruleKind
	days  []int
	start int
	end   int
}

// ParseDayRule parses a day-selector string. Malformed input (non-numeric
// token, value outside 0-6, empty selector) fails with
// domain.ErrInvalidScheduleFormat so callers can reject admin input before
// persisting it.
func ParseDayRule(s string) (*DayRule, error) {
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: range selector must be start-end, got %q", domain.ErrInvalidScheduleFormat, s)
		}

		start, err := parseWeekday(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parseWeekday(parts[1])
		if err != nil {
			return nil, err
		}

		return &DayRule{kind: kindRange, start: start, end: end}, nil
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		day, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: empty day selector", domain.ErrInvalidScheduleFormat)
	}

	return &DayRule{kind: kindList, days: days}, nil
}

func parseWeekday(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: day %q is not a number", domain.ErrInvalidScheduleFormat, s)
	}
	if day < 0 || day > 6 {
		return 0, fmt.Errorf("%w: days must be 0-6 (0=Monday), got %d", domain.ErrInvalidScheduleFormat, day)
	}
	return day, nil
}

// Matches reports whether the rule is active on the given weekday index
// (0=Monday). A nil rule runs every day.
func (r *DayRule) Matches(weekday int) bool {
	if r == nil {
		return true
	}

	if r.kind == kindRange {
		return weekday >= r.start && weekday < r.end
	}

	for _, day := range r.days {
		if day == weekday {
			return true
		}
	}
	return false
}

// String returns the canonical selector form, suitable for storage.
func (r *DayRule) String() string {
	if r == nil {
		return ""
	}

	if r.kind == kindRange {
		return fmt.Sprintf("%d-%d", r.start, r.end)
	}

	parts := make([]string, len(r.days))
	for i, day := range r.days {
		parts[i] = strconv.Itoa(day)
	}
	return strings.Join(parts, ",")
}

// WeekdayIndex converts a time's weekday to the 0=Monday index used by day
// selectors (Go's time.Weekday starts at Sunday).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
