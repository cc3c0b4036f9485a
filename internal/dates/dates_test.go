package dates

import "testing"

func TestIsValid(t *testing.T) {
	valid := []string{"2025-01-01", "2024-02-29", "1999-12-31"}
	for _, day := range valid {
		if !IsValid(day) {
			t.Errorf("IsValid(%q) = false, want true", day)
		}
	}

	invalid := []string{"", "2025-1-1", "2025/01/01", "2025-13-01", "2025-02-30", "20250101", "2025-01-01T00:00:00Z"}
	for _, day := range invalid {
		if IsValid(day) {
			t.Errorf("IsValid(%q) = true, want false", day)
		}
	}
}

func TestNextPrevious(t *testing.T) {
	next, err := Next("2025-02-28")
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if next != "2025-03-01" {
		t.Errorf("Next(2025-02-28) = %s, want 2025-03-01", next)
	}

	// Leap year
	next, err = Next("2024-02-28")
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if next != "2024-02-29" {
		t.Errorf("Next(2024-02-28) = %s, want 2024-02-29", next)
	}

	prev, err := Previous("2025-01-01")
	if err != nil {
		t.Fatalf("Previous failed: %v", err)
	}
	if prev != "2024-12-31" {
		t.Errorf("Previous(2025-01-01) = %s, want 2024-12-31", prev)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-03-01", "2025-03-02", 1},
		{"2025-03-01", "2025-03-01", 0},
		{"2025-03-02", "2025-03-01", -1},
		{"2025-02-28", "2025-03-02", 2},
		{"2024-12-31", "2025-01-01", 1},
		// Spans the US spring DST transition; must still be exact days.
		{"2025-03-08", "2025-03-10", 2},
	}
	for _, tc := range tests {
		got, err := DaysBetween(tc.from, tc.to)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s) failed: %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}

	if _, err := DaysBetween("bogus", "2025-03-01"); err == nil {
		t.Error("expected error for invalid day key")
	}
}
