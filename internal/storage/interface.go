package storage

import "dailycheck/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Day entries
	PutEntry(day string, entry models.DayEntry) error
	GetEntry(day string) (models.DayEntry, error)
	DeleteEntry(day string) (bool, error)
	AllEntries() (map[string]models.DayEntry, error)
	CompletedDates() ([]string, error)

	// Streak state
	GetStreak() (models.StreakState, error)
	SaveStreak(models.StreakState) error

	// ReplaceAll atomically discards everything and installs the given
	// entries and streak state. Used only by import.
	ReplaceAll(entries map[string]models.DayEntry, streak models.StreakState) error

	// Utils
	GetConfigPath() string
}
