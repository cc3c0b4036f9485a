package validation

import (
	"fmt"
	"strings"

	"dailycheck/internal/constants"
	"dailycheck/internal/dates"
	"dailycheck/internal/models"
)

type ConflictType string

const (
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictFutureDate       ConflictType = "future_date"
	ConflictRatingOutOfRange ConflictType = "rating_out_of_range"
	ConflictSleepOutOfRange  ConflictType = "sleep_out_of_range"
)

type Conflict struct {
	Type    ConflictType
	Message string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  - [%s] %s\n", c.Type, c.Message)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateEntry checks a day's answers before they are recorded.
func (v *Validator) ValidateEntry(day string, entry models.DayEntry) ValidationResult {
	var result ValidationResult

	if !dates.IsValid(day) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:    ConflictInvalidDate,
			Message: fmt.Sprintf("date %q is not a valid YYYY-MM-DD day", day),
		})
	} else if day > dates.Today() {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:    ConflictFutureDate,
			Message: fmt.Sprintf("date %s is in the future", day),
		})
	}

	if entry.Rating < constants.RatingMin || entry.Rating > constants.RatingMax {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictRatingOutOfRange,
			Message: fmt.Sprintf("rating %d is outside %d-%d",
				entry.Rating, constants.RatingMin, constants.RatingMax),
		})
	}

	if entry.SleepHours < 0 || entry.SleepHours > constants.SleepHoursMax {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictSleepOutOfRange,
			Message: fmt.Sprintf("sleep hours %.1f is outside 0-%d",
				entry.SleepHours, constants.SleepHoursMax),
		})
	}

	return result
}
