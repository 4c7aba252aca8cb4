package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeOfDay(hour, minute int) *TimeOfDay {
	return &TimeOfDay{Hour: hour, Minute: minute}
}

func TestDecide(t *testing.T) {
	// 2024-01-01 is a Monday.
	day := func(hour, min, sec int) time.Time {
		return time.Date(2024, 1, 1, hour, min, sec, 0, time.UTC)
	}

	type args struct {
		now      time.Time
		lock     *TimeOfDay
		unlock   *TimeOfDay
		unlocked bool
	}
	tests := []struct {
		name string
		args args
		want Transition
	}{
		{
			name: "lock at exact instant",
			args: args{
				now:      day(13, 0, 0),
				lock:     timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionLock,
		},
		{
			name: "lock within tolerance window",
			args: args{
				now:      day(13, 0, 5),
				lock:     timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionLock,
		},
		{
			name: "lock at inclusive upper bound",
			args: args{
				now:      day(13, 0, 30),
				lock:     timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionLock,
		},
		{
			name: "no lock just past the window",
			args: args{
				now:      day(13, 0, 30).Add(time.Millisecond),
				lock:     timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionNone,
		},
		{
			name: "no lock before the instant",
			args: args{
				now:      day(12, 59, 59),
				lock:     timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionNone,
		},
		{
			name: "already locked channel never re-locks",
			args: args{
				now:      day(13, 0, 5),
				lock:     timeOfDay(13, 0),
				unlocked: false,
			},
			want: TransitionNone,
		},
		{
			name: "unlock within window when locked",
			args: args{
				now:      day(8, 0, 10),
				unlock:   timeOfDay(8, 0),
				unlocked: false,
			},
			want: TransitionUnlock,
		},
		{
			name: "already unlocked channel never re-unlocks",
			args: args{
				now:      day(8, 0, 10),
				unlock:   timeOfDay(8, 0),
				unlocked: true,
			},
			want: TransitionNone,
		},
		{
			name: "absent lock time never fires",
			args: args{
				now:      day(13, 0, 5),
				unlocked: true,
			},
			want: TransitionNone,
		},
		{
			name: "absent unlock time never fires",
			args: args{
				now:      day(8, 0, 5),
				lock:     timeOfDay(13, 0),
				unlocked: false,
			},
			want: TransitionNone,
		},
		{
			name: "lock wins when both windows overlap",
			args: args{
				now:      day(13, 0, 10),
				lock:     timeOfDay(13, 0),
				unlock:   timeOfDay(13, 0),
				unlocked: true,
			},
			want: TransitionLock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.args.now, tt.args.lock, tt.args.unlock, tt.args.unlocked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_GuildTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 18:00 UTC is 13:00 in New York (EST).
	now := time.Date(2024, 1, 1, 18, 0, 10, 0, time.UTC).In(loc)

	got := Decide(now, timeOfDay(13, 0), nil, true)
	assert.Equal(t, TransitionLock, got)

	// The same wall-clock config does not fire at 13:00 UTC.
	utcNow := time.Date(2024, 1, 1, 18, 0, 10, 0, time.UTC)
	got = Decide(utcNow, timeOfDay(13, 0), nil, true)
	assert.Equal(t, TransitionNone, got)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid time", input: "13:05", want: "13:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "missing minutes", input: "13", wantErr: true},
		{name: "hour too large", input: "24:00", wantErr: true},
		{name: "minute too large", input: "12:60", wantErr: true},
		{name: "not numeric", input: "ab:cd", wantErr: true},
		{name: "too many parts", input: "1:2:3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDay_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	ref := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC) // already June 16 in Berlin
	at := TimeOfDay{Hour: 9, Minute: 15}.At(ref, loc)

	assert.Equal(t, time.Date(2024, 6, 16, 9, 15, 0, 0, loc), at)
}
