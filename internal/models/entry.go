package models

import "time"

// DayEntry is one day's recorded answers, keyed externally by the
// local calendar day (YYYY-MM-DD). Only entries with Completed set
// count toward streaks and statistics; partially filled form state
// never reaches the store.
type DayEntry struct {
	Completed bool `json:"completed"`

	Water          bool   `json:"water"`
	WaterNote      string `json:"water_note,omitempty"`
	Steps          bool   `json:"steps"`
	StepsNote      string `json:"steps_note,omitempty"`
	Exercise       bool   `json:"exercise"`
	ExerciseNote   string `json:"exercise_note,omitempty"`
	Stretching     bool   `json:"stretching"`
	StretchingNote string `json:"stretching_note,omitempty"`
	Supplements    bool   `json:"supplements"`
	Reading        bool   `json:"reading"`
	ReadingNote    string `json:"reading_note,omitempty"`
	SkillBuilding  bool   `json:"skill_building"`
	SkillNote      string `json:"skill_note,omitempty"`

	SleepHours float64 `json:"sleep_hours"`
	Rating     int     `json:"rating"`

	// SavedAt is informational only; computations never read it.
	SavedAt time.Time `json:"saved_at"`
}

// HabitField identifies one of the yes/no habit questions.
type HabitField string

const (
	HabitWater         HabitField = "water"
	HabitSteps         HabitField = "steps"
	HabitExercise      HabitField = "exercise"
	HabitStretching    HabitField = "stretching"
	HabitSupplements   HabitField = "supplements"
	HabitReading       HabitField = "reading"
	HabitSkillBuilding HabitField = "skill_building"
)

// HabitFields lists the yes/no questions in display order.
var HabitFields = []HabitField{
	HabitWater, HabitSteps, HabitExercise, HabitStretching,
	HabitSupplements, HabitReading, HabitSkillBuilding,
}

// HabitLabels maps habit fields to their display labels.
var HabitLabels = map[HabitField]string{
	HabitWater:         "Water (min. 2L)",
	HabitSteps:         "Steps (min. 5000)",
	HabitExercise:      "Exercise",
	HabitStretching:    "Stretching + core",
	HabitSupplements:   "Supplements/vitamins",
	HabitReading:       "Reading",
	HabitSkillBuilding: "Skill building",
}

// Habit returns the answer recorded for the given yes/no question.
func (e DayEntry) Habit(f HabitField) bool {
	switch f {
	case HabitWater:
		return e.Water
	case HabitSteps:
		return e.Steps
	case HabitExercise:
		return e.Exercise
	case HabitStretching:
		return e.Stretching
	case HabitSupplements:
		return e.Supplements
	case HabitReading:
		return e.Reading
	case HabitSkillBuilding:
		return e.SkillBuilding
	default:
		return false
	}
}

// HabitNote returns the free-text detail attached to the given
// question, or "" for questions that carry no note.
func (e DayEntry) HabitNote(f HabitField) string {
	switch f {
	case HabitWater:
		return e.WaterNote
	case HabitSteps:
		return e.StepsNote
	case HabitExercise:
		return e.ExerciseNote
	case HabitStretching:
		return e.StretchingNote
	case HabitReading:
		return e.ReadingNote
	case HabitSkillBuilding:
		return e.SkillNote
	default:
		return ""
	}
}
