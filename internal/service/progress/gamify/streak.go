package gamify

import (
	"github.com/vocabloom/progress-engine/internal/domain"
)

// UpdateStreak applies the daily streak rule for a qualifying activity on
// the given day and reports whether the streak counter changed.
//
// Rules, in order:
//   - Same day as the last activity: nothing changes (a second activity on
//     one day never inflates the streak).
//   - The day after the last activity: streak grows by one.
//   - Exactly one day missed and a streak freeze in stock: the freeze is
//     consumed and silently bridges that single day, so the streak still
//     grows by one. A freeze never bridges more than one missing day.
//   - Anything else (longer gap, no freeze, or a fresh profile): the streak
//     restarts at 1 with today as its first day.
//
// LastActiveDay is always advanced to today.
func UpdateStreak(stats domain.UserStats, today domain.Day) (domain.UserStats, bool) {
	if !stats.LastActiveDay.IsZero() && stats.LastActiveDay.Equal(today) {
		return stats, false
	}
	// A today before the last recorded activity means the wall clock moved
	// backwards (or a sync overwrote the ledger). Leave the streak alone.
	if !stats.LastActiveDay.IsZero() && today.Before(stats.LastActiveDay) {
		return stats, false
	}

	switch {
	case stats.LastActiveDay.IsZero():
		stats.Streak = 1
	case today.Sub(stats.LastActiveDay) == 1:
		stats.Streak++
	case today.Sub(stats.LastActiveDay) == 2 && stats.StreakFreezes > 0:
		stats.StreakFreezes--
		stats.Streak++
	default:
		stats.Streak = 1
	}

	stats.LastActiveDay = today
	return stats, true
}
