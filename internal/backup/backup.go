// Package backup encodes the store and streak state into a versioned
// JSON payload and validates external payloads before import.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"dailycheck/internal/models"
)

// SchemaVersion is the backup payload schema understood by this build.
const SchemaVersion = 1

// Payload is the backup file format: a full store snapshot plus the
// streak state, stamped with the schema version and export time.
type Payload struct {
	SchemaVersion int                        `json:"schemaVersion"`
	ExportedAt    string                     `json:"exportedAt"`
	Data          map[string]models.DayEntry `json:"data"`
	Streak        models.StreakState         `json:"streak"`
}

// ValidationError reports a malformed or schema-incompatible payload.
// Validation is all-or-nothing: a payload that fails here is never
// applied, not even partially.
type ValidationError struct {
	Field  string
	Reason string
	// Parse marks input that was not valid JSON at all.
	Parse bool
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid backup: %s", e.Reason)
	}
	return fmt.Sprintf("invalid backup: field %q %s", e.Field, e.Reason)
}

// Encode snapshots the given entries and streak state into payload
// bytes, stamped with now.
func Encode(entries map[string]models.DayEntry, streak models.StreakState, now time.Time) ([]byte, error) {
	p := Payload{
		SchemaVersion: SchemaVersion,
		ExportedAt:    now.UTC().Format(time.RFC3339),
		Data:          entries,
		Streak:        streak,
	}
	if p.Data == nil {
		p.Data = map[string]models.DayEntry{}
	}
	return json.MarshalIndent(p, "", "  ")
}

// Decode validates raw payload bytes and returns the decoded payload.
// The data and streak members must both be present and be JSON
// objects; anything else rejects the whole import. There is no lenient
// mode: a payload without a streak record is not a backup.
func Decode(raw []byte) (Payload, error) {
	if !json.Valid(raw) {
		return Payload{}, &ValidationError{Reason: "not valid JSON", Parse: true}
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return Payload{}, &ValidationError{Reason: "not a JSON object"}
	}
	if err := requireObject(shape, "data"); err != nil {
		return Payload{}, err
	}
	if err := requireObject(shape, "streak"); err != nil {
		return Payload{}, err
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, &ValidationError{Reason: err.Error()}
	}
	if p.SchemaVersion != SchemaVersion {
		return Payload{}, &ValidationError{
			Field:  "schemaVersion",
			Reason: fmt.Sprintf("unsupported version %d (want %d)", p.SchemaVersion, SchemaVersion),
		}
	}
	if p.Streak.CurrentStreak < 0 || p.Streak.BestStreak < 0 {
		return Payload{}, &ValidationError{Field: "streak", Reason: "has negative counters"}
	}
	if p.Data == nil {
		p.Data = map[string]models.DayEntry{}
	}
	return p, nil
}

func requireObject(shape map[string]json.RawMessage, field string) error {
	raw, ok := shape[field]
	if !ok {
		return &ValidationError{Field: field, Reason: "is missing"}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &ValidationError{Field: field, Reason: "is missing"}
	}
	if trimmed[0] != '{' {
		return &ValidationError{Field: field, Reason: "must be an object"}
	}
	return nil
}
