package storage

import "errors"

// Well-known state keys. Values are JSON-encoded.
const (
	KeyTeamMembers    = "teamMembers"
	KeyAttendanceData = "attendanceData"
	KeyExceptions     = "attendanceExceptions"
)

var (
	// ErrUnavailable means the backing store cannot be reached at all.
	// Callers keep working against in-memory state only.
	ErrUnavailable = errors.New("persistent storage is not available")

	// ErrWriteFailed means a single write was lost. The in-memory mutation
	// stands; only durability is affected.
	ErrWriteFailed = errors.New("failed to write to persistent storage")
)

// Store is synchronous string-keyed, string-valued persistence. Get reports
// a missing key via the bool, not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error

	// Available reports whether writes have any chance of persisting.
	// Checked once at startup.
	Available() bool
}
