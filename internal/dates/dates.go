package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical day-key format. Keys in this form sort
// lexicographically in chronological order.
const Layout = "2006-01-02"

// Today returns the current local calendar day as a day key.
func Today() string {
	return time.Now().Format(Layout)
}

// IsValid reports whether s is a well-formed, zero-padded day key.
func IsValid(s string) bool {
	if len(s) != len(Layout) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// parse maps a day key onto midnight UTC. Day arithmetic happens in
// UTC so a DST transition in the local zone can never shift a day
// boundary by an hour and break the exactly-one-day determination.
func parse(day string) (time.Time, error) {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", day, err)
	}
	return t, nil
}

// Next returns the calendar day after day.
func Next(day string) (string, error) {
	t, err := parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format(Layout), nil
}

// Previous returns the calendar day before day.
func Previous(day string) (string, error) {
	t, err := parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(Layout), nil
}

// DaysBetween returns the calendar-day difference to - from. Negative
// when to is earlier than from.
func DaysBetween(from, to string) (int, error) {
	a, err := parse(from)
	if err != nil {
		return 0, err
	}
	b, err := parse(to)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}
