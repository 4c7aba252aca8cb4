package domain

import "strings"

// Weekday indexes follow the 0=Monday convention used by day selectors.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// WeekdayNames maps day-selector indexes to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DefaultTimezone is used when a guild has no timezone configured.
const DefaultTimezone = "UTC"

// Status glyphs wrapped around a channel name to show its lock state.
const (
	LockedGlyph   = "🔴"
	UnlockedGlyph = "🟢"
)

// StripStatusGlyphs removes any lock-state glyphs from a channel name.
func StripStatusGlyphs(name string) string {
	name = strings.ReplaceAll(name, LockedGlyph, "")
	return strings.ReplaceAll(name, UnlockedGlyph, "")
}

// LockedName returns the channel name wrapped with the locked glyph pair.
func LockedName(name string) string {
	return LockedGlyph + StripStatusGlyphs(name) + LockedGlyph
}

// UnlockedName returns the channel name wrapped with the unlocked glyph pair.
func UnlockedName(name string) string {
	return UnlockedGlyph + StripStatusGlyphs(name) + UnlockedGlyph
}
