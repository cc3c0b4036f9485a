package constants

const (
	// Rating bounds for the 1-10 day rating slider.
	RatingMin = 1
	RatingMax = 10

	// SleepHoursMax caps the recorded sleep value; a day has 24 hours.
	SleepHoursMax = 24

	// StoreVersion is the on-disk storage format understood by this build.
	StoreVersion = 1

	// DefaultMaxBackups is how many exported backup files are kept
	// before rotation removes the oldest.
	DefaultMaxBackups = 14
)
