package attendance

// Repository holds the attendance map and the exception trail for the
// session and writes them through to persistent storage after every
// mutation.
type Repository interface {
	// Snapshot returns a deep copy of the full attendance map.
	Snapshot() Map

	// Day returns the stored record for one date and whether any record
	// exists for that date at all.
	Day(date string) (DayRecord, bool)

	// Entry returns the stored entry for (date, member id) and whether one
	// exists. Callers wanting default-present semantics go through the
	// service accessor instead.
	Entry(date, memberID string) (Entry, bool)

	// SetEntry stores the entry for (date, member id) and persists the
	// whole map.
	SetEntry(date, memberID string, e Entry) error

	// PurgeMember removes every entry for the member across all dates and
	// persists. Dates left with no entries are dropped entirely.
	PurgeMember(memberID string) error

	// ReplaceAll swaps the whole attendance map, used by backup restore.
	ReplaceAll(m Map) error

	// MergeDays performs the per-date shallow merge of the attendance-sync
	// import: for each imported date, imported member entries overwrite
	// colliding ids, new ids are added, and members absent from the import
	// keep their existing entries. Dates absent from the import are
	// untouched.
	MergeDays(m Map) error

	// Exceptions returns the audit trail in append order.
	Exceptions() []ExceptionRecord

	// AppendException adds one audit record and persists the trail.
	AppendException(rec ExceptionRecord) error
}
