// Package stats computes windowed completion statistics over the
// day-entry store. Every snapshot is built fresh from the entries it
// is handed; nothing is cached between calls.
package stats

import (
	"fmt"
	"math"
	"sort"

	"dailycheck/internal/models"
)

// Window selects the date range a snapshot covers.
type Window string

const (
	Last7    Window = "last-7"
	Last30   Window = "last-30"
	Lifetime Window = "lifetime"
)

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Last7, Last30, Lifetime:
		return Window(s), nil
	default:
		return "", fmt.Errorf("invalid window %q (use last-7, last-30 or lifetime)", s)
	}
}

// limit returns how many most-recent completed days the window keeps;
// 0 means unbounded.
func (w Window) limit() int {
	switch w {
	case Last7:
		return 7
	case Last30:
		return 30
	default:
		return 0
	}
}

// HabitStat is the completion tally for one yes/no question.
type HabitStat struct {
	Field   models.HabitField
	Label   string
	Count   int
	Percent int // rounded, 0-100; 0 when the window is empty
}

// Snapshot is a freshly computed statistics view. Empty windows yield
// all-zero values, never NaN.
type Snapshot struct {
	Window    Window
	TotalDays int
	Habits    []HabitStat

	AvgSleepHours float64
	AvgRating     float64

	MinSleepHours float64
	MaxSleepHours float64
	MinRating     int
	MaxRating     int

	// RecentDays lists the completed day keys in the window, most
	// recent first.
	RecentDays []string
}

// Compute builds a snapshot from the completed entries. The last-7 and
// last-30 windows take the N most recently dated completed entries;
// lifetime takes everything.
func Compute(entries map[string]models.DayEntry, w Window) Snapshot {
	days := make([]string, 0, len(entries))
	for day, entry := range entries {
		if entry.Completed {
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	if limit := w.limit(); limit > 0 && len(days) > limit {
		days = days[:limit]
	}

	snap := Snapshot{
		Window:     w,
		TotalDays:  len(days),
		Habits:     make([]HabitStat, 0, len(models.HabitFields)),
		RecentDays: days,
	}

	if snap.TotalDays == 0 {
		for _, f := range models.HabitFields {
			snap.Habits = append(snap.Habits, HabitStat{Field: f, Label: models.HabitLabels[f]})
		}
		return snap
	}

	counts := make(map[models.HabitField]int, len(models.HabitFields))
	var sumSleep, sumRating float64
	for i, day := range days {
		entry := entries[day]
		sumSleep += entry.SleepHours
		sumRating += float64(entry.Rating)

		if i == 0 {
			snap.MinSleepHours, snap.MaxSleepHours = entry.SleepHours, entry.SleepHours
			snap.MinRating, snap.MaxRating = entry.Rating, entry.Rating
		} else {
			snap.MinSleepHours = math.Min(snap.MinSleepHours, entry.SleepHours)
			snap.MaxSleepHours = math.Max(snap.MaxSleepHours, entry.SleepHours)
			if entry.Rating < snap.MinRating {
				snap.MinRating = entry.Rating
			}
			if entry.Rating > snap.MaxRating {
				snap.MaxRating = entry.Rating
			}
		}

		for _, f := range models.HabitFields {
			if entry.Habit(f) {
				counts[f]++
			}
		}
	}

	total := float64(snap.TotalDays)
	snap.AvgSleepHours = sumSleep / total
	snap.AvgRating = sumRating / total

	for _, f := range models.HabitFields {
		snap.Habits = append(snap.Habits, HabitStat{
			Field:   f,
			Label:   models.HabitLabels[f],
			Count:   counts[f],
			Percent: int(math.Round(float64(counts[f]) / total * 100)),
		})
	}
	return snap
}
