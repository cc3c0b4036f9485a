package validation

import (
	"strings"
	"testing"

	"dailycheck/internal/dates"
	"dailycheck/internal/models"
)

func hasConflictType(result ValidationResult, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func TestValidateEntry_Valid(t *testing.T) {
	validator := New()

	result := validator.ValidateEntry(dates.Today(), models.DayEntry{SleepHours: 7.5, Rating: 8})
	if result.HasConflicts() {
		t.Errorf("unexpected conflicts: %s", result.FormatReport())
	}
}

func TestValidateEntry_InvalidDate(t *testing.T) {
	validator := New()

	result := validator.ValidateEntry("2025-3-1", models.DayEntry{Rating: 5})
	if !hasConflictType(result, ConflictInvalidDate) {
		t.Error("expected invalid_date conflict")
	}
}

func TestValidateEntry_FutureDate(t *testing.T) {
	validator := New()

	future, err := dates.Next(dates.Today())
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	result := validator.ValidateEntry(future, models.DayEntry{Rating: 5})
	if !hasConflictType(result, ConflictFutureDate) {
		t.Error("expected future_date conflict")
	}
}

func TestValidateEntry_RatingOutOfRange(t *testing.T) {
	validator := New()

	for _, rating := range []int{0, -1, 11} {
		result := validator.ValidateEntry(dates.Today(), models.DayEntry{Rating: rating})
		if !hasConflictType(result, ConflictRatingOutOfRange) {
			t.Errorf("rating %d: expected rating_out_of_range conflict", rating)
		}
	}
}

func TestValidateEntry_SleepOutOfRange(t *testing.T) {
	validator := New()

	for _, hours := range []float64{-1, 25} {
		result := validator.ValidateEntry(dates.Today(), models.DayEntry{Rating: 5, SleepHours: hours})
		if !hasConflictType(result, ConflictSleepOutOfRange) {
			t.Errorf("sleep %.0f: expected sleep_out_of_range conflict", hours)
		}
	}
}

func TestFormatReport(t *testing.T) {
	validator := New()

	result := validator.ValidateEntry("bogus", models.DayEntry{Rating: 99})
	report := result.FormatReport()
	if !strings.Contains(report, "2 conflict(s)") {
		t.Errorf("report did not count conflicts: %q", report)
	}
	if !strings.Contains(report, string(ConflictInvalidDate)) {
		t.Errorf("report missing conflict type: %q", report)
	}
}
