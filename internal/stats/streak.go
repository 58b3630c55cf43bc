package stats

import (
	"time"

	"github.com/2beens/calisthenix/pkg"
)

// NextStreak advances a streak for a workout logged on workoutDate, using only
// the previous streak and last workout date. Days are calendar days in loc.
//
//	no previous workout  -> 1
//	same day             -> unchanged
//	next day             -> previous + 1
//	gap of 2+ days       -> 1
//
// A workout dated before the previous one leaves both values untouched.
func NextStreak(prevStreak int, prevLast *time.Time, workoutDate time.Time, loc *time.Location) (int, time.Time) {
	if prevLast == nil || prevLast.IsZero() {
		return 1, workoutDate
	}

	switch days := pkg.CalendarDaysBetween(*prevLast, workoutDate, loc); {
	case days < 0:
		return prevStreak, *prevLast
	case days == 0:
		if prevStreak < 1 {
			return 1, workoutDate
		}
		return prevStreak, workoutDate
	case days == 1:
		return prevStreak + 1, workoutDate
	default:
		return 1, workoutDate
	}
}

// CurrentStreak is the streak as seen on `now`: it is only still alive when the
// last workout was today or yesterday.
func CurrentStreak(streak int, lastWorkout *time.Time, now time.Time, loc *time.Location) int {
	if lastWorkout == nil || lastWorkout.IsZero() {
		return 0
	}
	if pkg.CalendarDaysBetween(*lastWorkout, now, loc) > 1 {
		return 0
	}
	return streak
}
