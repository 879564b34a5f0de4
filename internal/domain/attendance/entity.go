package attendance

// Status of a member on a given day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// Entry is one member's attendance record for one day. Clock fields hold
// zero-padded "HH:MM" strings, empty when not recorded.
type Entry struct {
	Status       Status `json:"status"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
	Notes        string `json:"notes"`
}

// DefaultEntry is the record implied for a member with no stored entry:
// assumed present, nothing recorded yet. Absence of a record is not absence
// of the member.
func DefaultEntry() Entry {
	return Entry{Status: StatusPresent}
}

// DayRecord maps member id to that member's entry for a single date.
type DayRecord map[string]Entry

// Map is the full attendance state: ISO "YYYY-MM-DD" date -> member id -> entry.
type Map map[string]DayRecord

// Clone returns a deep copy. Snapshots handed to callers must not alias the
// repository's live state.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for date, day := range m {
		dayCopy := make(DayRecord, len(day))
		for id, entry := range day {
			dayCopy[id] = entry
		}
		out[date] = dayCopy
	}
	return out
}

// Field names accepted by SetField. The strings match the JSON keys of Entry.
type Field string

const (
	FieldStatus       Field = "status"
	FieldCheckInTime  Field = "checkInTime"
	FieldCheckOutTime Field = "checkOutTime"
	FieldNotes        Field = "notes"
)

// ExceptionRecord is one line of the backdating audit trail, appended when a
// mutation happens while the active date has been moved off today. The trail
// is append-only.
type ExceptionRecord struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	MemberName string `json:"memberName"`
	MemberID   string `json:"memberId"`
	Action     string `json:"action"`
	Details    string `json:"details"`
	Timestamp  string `json:"timestamp"`
	ActualDate string `json:"actualDate"`
}
