package models

// StreakState is the derived streak record persisted alongside the
// day entries. LastCompletedDate is nil until the first completion and
// marshals as JSON null, matching the backup format.
type StreakState struct {
	CurrentStreak     int     `json:"currentStreak"`
	BestStreak        int     `json:"bestStreak"`
	LastCompletedDate *string `json:"lastCompletedDate"`
}

// Equal reports whether two streak states are identical, comparing the
// last completed date by value.
func (s StreakState) Equal(o StreakState) bool {
	if s.CurrentStreak != o.CurrentStreak || s.BestStreak != o.BestStreak {
		return false
	}
	if (s.LastCompletedDate == nil) != (o.LastCompletedDate == nil) {
		return false
	}
	return s.LastCompletedDate == nil || *s.LastCompletedDate == *o.LastCompletedDate
}
