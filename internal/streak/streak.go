// Package streak derives the current and best consecutive-day streaks
// from the set of completed days.
//
// Two strategies are provided and must agree: Advance applies a single
// completion event incrementally, Recompute rebuilds the state from
// the full completed-date set. Recompute is the source of truth;
// Advance is the cheap path taken on every save, and deletion or
// import always falls back to Recompute.
package streak

import (
	"sort"

	"dailycheck/internal/dates"
	"dailycheck/internal/models"
)

// Advance returns the streak state after recording a completion for
// day. Day gaps use the local calendar difference, never a fixed
// millisecond window, so a DST transition cannot break a run.
func Advance(prev models.StreakState, day string) models.StreakState {
	next := prev

	switch {
	case prev.LastCompletedDate == nil:
		next.CurrentStreak = 1
	case *prev.LastCompletedDate == day:
		// Re-saving the same day never moves the counters.
		return prev
	case isNextDay(*prev.LastCompletedDate, day):
		next.CurrentStreak++
	default:
		// A gap, or a completion recorded for an earlier day.
		next.CurrentStreak = 1
	}

	if next.CurrentStreak > next.BestStreak {
		next.BestStreak = next.CurrentStreak
	}
	// Saving a past date never retreats the last completed date.
	if prev.LastCompletedDate == nil || *prev.LastCompletedDate < day {
		d := day
		next.LastCompletedDate = &d
	}
	return next
}

// Recompute rebuilds the streak state from the complete completed-day
// set, anchoring the current-streak walk at today. The empty set is a
// valid input and yields the zero state.
func Recompute(completed []string, today string) models.StreakState {
	if len(completed) == 0 {
		return models.StreakState{}
	}

	set := make(map[string]struct{}, len(completed))
	days := make([]string, 0, len(completed))
	for _, day := range completed {
		if _, dup := set[day]; dup {
			continue
		}
		set[day] = struct{}{}
		days = append(days, day)
	}
	sort.Strings(days)

	// Longest run anywhere in history.
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if isNextDay(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	// Current run: walk backward day by day from today. If neither
	// today nor yesterday is completed the streak is broken, not
	// merely frozen.
	cursor := today
	if _, ok := set[cursor]; !ok {
		if prev, err := dates.Previous(today); err == nil {
			cursor = prev
		}
	}
	current := 0
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		current++
		prev, err := dates.Previous(cursor)
		if err != nil {
			break
		}
		cursor = prev
	}

	if current > best {
		best = current
	}

	last := days[len(days)-1]
	return models.StreakState{
		CurrentStreak:     current,
		BestStreak:        best,
		LastCompletedDate: &last,
	}
}

func isNextDay(prev, day string) bool {
	n, err := dates.DaysBetween(prev, day)
	return err == nil && n == 1
}
