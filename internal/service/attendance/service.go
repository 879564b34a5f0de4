package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	records       attendance.Repository
	members       member.Repository
	clock         func() time.Time
	activeDate    string
	exceptionMode bool
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	memberRepo member.Repository,
	clock func() time.Time,
) *AttendanceServiceImpl {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceServiceImpl{
		records:    attendanceRepo,
		members:    memberRepo,
		clock:      clock,
		activeDate: timeutil.ISODate(clock()),
	}
}

// SetField implements attendance.Service. The derivation rules run in a
// fixed order after the raw field is applied; only one raw field changes per
// call, so the absent-clears-times rule never races the auto check-in rule.
func (s *AttendanceServiceImpl) SetField(date, memberID string, field attendance.Field, value string) (attendance.Entry, bool, error) {
	entry, ok := s.records.Entry(date, memberID)
	if !ok {
		entry = attendance.DefaultEntry()
	}

	switch field {
	case attendance.FieldStatus:
		status := attendance.Status(value)
		if !status.Valid() {
			return entry, false, attendance.ErrInvalidStatus
		}
		entry.Status = status
	case attendance.FieldCheckInTime:
		entry.CheckInTime = value
	case attendance.FieldCheckOutTime:
		entry.CheckOutTime = value
	case attendance.FieldNotes:
		entry.Notes = value
	default:
		return entry, false, attendance.ErrUnknownField
	}

	// Switching to present or late stamps the clock unless a check-in is
	// already recorded.
	if field == attendance.FieldStatus &&
		(entry.Status == attendance.StatusPresent || entry.Status == attendance.StatusLate) &&
		entry.CheckInTime == "" {
		entry.CheckInTime = timeutil.Clock(s.clock())
	}

	// An absent member has no clock times.
	if field == attendance.FieldStatus && entry.Status == attendance.StatusAbsent {
		entry.CheckInTime = ""
		entry.CheckOutTime = ""
	}

	// A manual check-in contradicts absent, so flip to present.
	if field == attendance.FieldCheckInTime && value != "" && entry.Status == attendance.StatusAbsent {
		entry.Status = attendance.StatusPresent
	}

	// A check-out with no check-in gets one backfilled an hour earlier.
	if field == attendance.FieldCheckOutTime && value != "" && entry.CheckInTime == "" {
		entry.CheckInTime = timeutil.BackfillCheckIn(value)
	}

	err := s.records.SetEntry(date, memberID, entry)

	s.auditBackdated(date, memberID, string(field), value)

	// Notes edits do not change any derived display state.
	refresh := field != attendance.FieldNotes
	return entry, refresh, err
}

// CheckIn implements attendance.Service. An explicit check-in always stamps
// the current time, even over an existing one.
func (s *AttendanceServiceImpl) CheckIn(memberID string) (attendance.Entry, error) {
	now := timeutil.Clock(s.clock())

	entry, ok := s.records.Entry(s.activeDate, memberID)
	if !ok {
		entry = attendance.DefaultEntry()
	}
	entry.CheckInTime = now
	entry.Status = attendance.StatusPresent

	err := s.records.SetEntry(s.activeDate, memberID, entry)

	s.auditBackdated(s.activeDate, memberID, "check_in", now)

	return entry, err
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(memberID string) (attendance.Entry, error) {
	now := timeutil.Clock(s.clock())

	entry, ok := s.records.Entry(s.activeDate, memberID)
	if !ok {
		entry = attendance.DefaultEntry()
	}
	entry.CheckOutTime = now

	err := s.records.SetEntry(s.activeDate, memberID, entry)

	s.auditBackdated(s.activeDate, memberID, "check_out", now)

	return entry, err
}

// EntryFor implements attendance.Service.
func (s *AttendanceServiceImpl) EntryFor(date, memberID string) attendance.Entry {
	entry, ok := s.records.Entry(date, memberID)
	if !ok {
		return attendance.DefaultEntry()
	}
	return entry
}

// ActiveDate implements attendance.Service.
func (s *AttendanceServiceImpl) ActiveDate() string {
	return s.activeDate
}

// SetActiveDate implements attendance.Service.
func (s *AttendanceServiceImpl) SetActiveDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if date != timeutil.ISODate(s.clock()) && !s.exceptionMode {
		return attendance.ErrDateLocked
	}
	s.activeDate = date
	return nil
}

// ResetToToday implements attendance.Service.
func (s *AttendanceServiceImpl) ResetToToday() {
	s.activeDate = timeutil.ISODate(s.clock())
}

// EnableExceptionMode implements attendance.Service.
func (s *AttendanceServiceImpl) EnableExceptionMode() {
	s.exceptionMode = true
}

// DisableExceptionMode implements attendance.Service.
func (s *AttendanceServiceImpl) DisableExceptionMode() {
	s.exceptionMode = false
	s.ResetToToday()
}

// ExceptionMode implements attendance.Service.
func (s *AttendanceServiceImpl) ExceptionMode() bool {
	return s.exceptionMode
}

// auditBackdated appends an exception record when the mutated date is not
// today. The trail is best-effort: a failed append never blocks the entry
// itself.
func (s *AttendanceServiceImpl) auditBackdated(date, memberID, action, details string) {
	now := s.clock()
	today := timeutil.ISODate(now)
	if date == today {
		return
	}

	memberName := "Unknown"
	if m, ok := s.members.Find(memberID); ok {
		memberName = m.Name
	}

	_ = s.records.AppendException(attendance.ExceptionRecord{
		ID:         uuid.NewString(),
		Date:       date,
		MemberName: memberName,
		MemberID:   memberID,
		Action:     action,
		Details:    details,
		Timestamp:  now.Format(time.RFC3339),
		ActualDate: today,
	})
}
