package attendance

// Service defines business logic for attendance entry. All derivation rules
// that keep status and clock fields mutually consistent live behind SetField;
// the presentation layer only ever hands over raw field edits.
type Service interface {
	// SetField applies one field edit to the (date, member id) entry,
	// creating the default entry first when none exists, then runs the
	// derivation rules. The returned flag tells the caller whether the
	// change affects displayed state beyond the edited cell (status and
	// clock edits do, notes do not).
	SetField(date, memberID string, field Field, value string) (Entry, bool, error)

	// CheckIn stamps the current wall-clock time as check-in on the active
	// date and forces status to present. It does not guard against an
	// existing time; gating the button is the presentation layer's job.
	CheckIn(memberID string) (Entry, error)

	// CheckOut stamps the current wall-clock time as check-out on the
	// active date.
	CheckOut(memberID string) (Entry, error)

	// EntryFor returns the entry for (date, member id), falling back to
	// the explicit default-present record when none is stored.
	EntryFor(date, memberID string) Entry

	// ActiveDate returns the date attendance entry currently targets.
	ActiveDate() string

	// SetActiveDate moves the active date. Dates other than today require
	// exception mode and return ErrDateLocked otherwise.
	SetActiveDate(date string) error

	// ResetToToday snaps the active date back to the current day.
	ResetToToday()

	// EnableExceptionMode unlocks backdating; entries made while the
	// active date differs from today are recorded in the audit trail.
	EnableExceptionMode()

	// DisableExceptionMode locks the date again and resets to today.
	DisableExceptionMode()

	// ExceptionMode reports whether backdating is currently unlocked.
	ExceptionMode() bool
}
