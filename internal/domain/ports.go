package domain

import "github.com/google/uuid"

// SnapshotRepository persists the task tree snapshot.
type SnapshotRepository interface {
	// Load reads and validates the snapshot.
	// Returns ErrSnapshotNotFound if none exists and an error wrapping
	// ErrInvalidSnapshot if it cannot be parsed or is missing fields.
	Load() (*Snapshot, error)

	// Save replaces the stored snapshot with s.
	Save(s *Snapshot) error

	// Path returns the snapshot location, for messages.
	Path() string
}

// RecoveryChoice is the outcome of a corruption-recovery decision.
type RecoveryChoice string

// Recovery choices.
const (
	RecoveryRecreate RecoveryChoice = "recreate" // Discard and reinitialize
	RecoveryInspect  RecoveryChoice = "inspect"  // Leave the file untouched, do not load
)

// RecoveryPolicy decides what to do with a snapshot that failed to load.
type RecoveryPolicy interface {
	// Decide returns the choice for the snapshot at path that failed with cause.
	// An error means no decision could be obtained.
	Decide(path string, cause error) (RecoveryChoice, error)
}

// RecoveryFunc adapts a function to RecoveryPolicy.
type RecoveryFunc func(path string, cause error) (RecoveryChoice, error)

// Decide calls f.
func (f RecoveryFunc) Decide(path string, cause error) (RecoveryChoice, error) {
	return f(path, cause)
}

// Logger writes operational log entries.
// taskID is "" for entries not tied to a task.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Info(string, string, string)  {}
func (NopLogger) Debug(string, string, string) {}
func (NopLogger) Warn(string, string, string)  {}
func (NopLogger) Error(string, string, string) {}

// IDGenerator produces node IDs.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
