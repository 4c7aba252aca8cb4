package schedule

import "time"

// Transition is a decided state change for one channel on one tick.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionLock
	TransitionUnlock
)

func (t Transition) String() string {
	switch t {
	case TransitionLock:
		return "lock"
	case TransitionUnlock:
		return "unlock"
	default:
		return "none"
	}
}

// ToleranceWindow is the span after a scheduled instant during which a tick
// is still considered on time for a transition. The tick cadence must not
// exceed it, or transitions can be skipped entirely.
const ToleranceWindow = 30 * time.Second

// Decide reports whether a channel should transition at now, given its
// configured lock/unlock times and current state. The instants are built
// from now's date in now's location, so now must already be localized to the
// guild timezone. An absent time never fires its half of the decision, and
// the current state gates idempotence: a locked channel never re-locks.
//
// Lock and unlock windows are evaluated independently; configuring them
// within ToleranceWindow of each other is a misconfiguration the caller must
// avoid (lock wins within a single tick).
func Decide(now time.Time, lock, unlock *TimeOfDay, unlocked bool) Transition {
	loc := now.Location()

	if lock != nil && unlocked && inWindow(now, lock.At(now, loc)) {
		return TransitionLock
	}

	if unlock != nil && !unlocked && inWindow(now, unlock.At(now, loc)) {
		return TransitionUnlock
	}

	return TransitionNone
}

// inWindow reports whether now falls in [at, at+ToleranceWindow], both
// bounds inclusive.
func inWindow(now, at time.Time) bool {
	return !now.Before(at) && !now.After(at.Add(ToleranceWindow))
}
