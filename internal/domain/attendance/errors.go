package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnknownField  = errors.New("unknown attendance field")
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrDateLocked is returned when the active date is changed away from
	// today without exception mode enabled.
	ErrDateLocked = errors.New("date is locked to today; enable exception mode to backdate")
)
