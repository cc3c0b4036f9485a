package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"dailycheck/internal/constants"
	"dailycheck/internal/models"
)

// EntryFormModel backs the daily-questions form. Sleep hours is kept
// as text because huh inputs are string-valued; Entry parses it.
type EntryFormModel struct {
	Water          bool
	WaterNote      string
	Steps          bool
	StepsNote      string
	Exercise       bool
	ExerciseNote   string
	Stretching     bool
	StretchingNote string
	Supplements    bool
	Reading        bool
	ReadingNote    string
	SkillBuilding  bool
	SkillNote      string
	SleepHours     string
	Rating         int
}

// NewEntryFormModel pre-fills the form from an existing entry, so
// re-saving a day starts from what was recorded.
func NewEntryFormModel(entry models.DayEntry) *EntryFormModel {
	fm := &EntryFormModel{
		Water:          entry.Water,
		WaterNote:      entry.WaterNote,
		Steps:          entry.Steps,
		StepsNote:      entry.StepsNote,
		Exercise:       entry.Exercise,
		ExerciseNote:   entry.ExerciseNote,
		Stretching:     entry.Stretching,
		StretchingNote: entry.StretchingNote,
		Supplements:    entry.Supplements,
		Reading:        entry.Reading,
		ReadingNote:    entry.ReadingNote,
		SkillBuilding:  entry.SkillBuilding,
		SkillNote:      entry.SkillNote,
		Rating:         entry.Rating,
	}
	if entry.SleepHours > 0 {
		fm.SleepHours = strconv.FormatFloat(entry.SleepHours, 'f', -1, 64)
	}
	if fm.Rating == 0 {
		fm.Rating = 5
	}
	return fm
}

// Entry converts the form state into a day entry.
func (fm *EntryFormModel) Entry() (models.DayEntry, error) {
	entry := models.DayEntry{
		Water:          fm.Water,
		WaterNote:      strings.TrimSpace(fm.WaterNote),
		Steps:          fm.Steps,
		StepsNote:      strings.TrimSpace(fm.StepsNote),
		Exercise:       fm.Exercise,
		ExerciseNote:   strings.TrimSpace(fm.ExerciseNote),
		Stretching:     fm.Stretching,
		StretchingNote: strings.TrimSpace(fm.StretchingNote),
		Supplements:    fm.Supplements,
		Reading:        fm.Reading,
		ReadingNote:    strings.TrimSpace(fm.ReadingNote),
		SkillBuilding:  fm.SkillBuilding,
		SkillNote:      strings.TrimSpace(fm.SkillNote),
		Rating:         fm.Rating,
	}

	if s := strings.TrimSpace(fm.SleepHours); s != "" {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.DayEntry{}, fmt.Errorf("invalid sleep hours %q: %w", s, err)
		}
		entry.SleepHours = hours
	}
	return entry, nil
}

func validateSleepHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	if hours < 0 || hours > constants.SleepHoursMax {
		return fmt.Errorf("sleep hours must be 0-%d", constants.SleepHoursMax)
	}
	return nil
}

// NewEntryForm builds the nine-question daily form.
func NewEntryForm(fm *EntryFormModel, day string) *huh.Form {
	ratingOptions := make([]huh.Option[int], 0, constants.RatingMax)
	for i := constants.RatingMin; i <= constants.RatingMax; i++ {
		ratingOptions = append(ratingOptions, huh.NewOption(strconv.Itoa(i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Daily check for %s", day)),
			huh.NewConfirm().
				Title("Did you drink enough water? (min. 2L)").
				Value(&fm.Water),
			huh.NewInput().
				Title("Water details").
				Value(&fm.WaterNote),
			huh.NewConfirm().
				Title("Did you hit your steps? (min. 5000)").
				Value(&fm.Steps),
			huh.NewInput().
				Title("Steps details").
				Value(&fm.StepsNote),
			huh.NewConfirm().
				Title("Did you exercise?").
				Value(&fm.Exercise),
			huh.NewInput().
				Title("Exercise details").
				Value(&fm.ExerciseNote),
			huh.NewConfirm().
				Title("Did you stretch / do core work?").
				Value(&fm.Stretching),
			huh.NewInput().
				Title("Stretching details").
				Value(&fm.StretchingNote),
			huh.NewConfirm().
				Title("Did you take your supplements?").
				Value(&fm.Supplements),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("How many hours did you sleep?").
				Value(&fm.SleepHours).
				Validate(validateSleepHours),
			huh.NewConfirm().
				Title("Did you read?").
				Value(&fm.Reading),
			huh.NewInput().
				Title("Reading details").
				Value(&fm.ReadingNote),
			huh.NewConfirm().
				Title("Did you work on a skill?").
				Value(&fm.SkillBuilding),
			huh.NewInput().
				Title("Skill details").
				Value(&fm.SkillNote),
			huh.NewSelect[int]().
				Title("Rate your day (1-10)").
				Options(ratingOptions...).
				Value(&fm.Rating),
		),
	)
}
