package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-go/internal/repository/kvstore"
)

const testDate = "2025-03-10"

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*AttendanceServiceImpl, *kvstore.AttendanceRepository, *kvstore.RosterRepository) {
	store := storage.NewMemoryStore()
	memberRepo, err := kvstore.NewRosterRepository(store)
	require.NoError(t, err)
	attendanceRepo, err := kvstore.NewAttendanceRepository(store)
	require.NoError(t, err)

	require.NoError(t, memberRepo.Append(member.Member{ID: "m1", Name: "Alice", DateAdded: fixedClock()}))

	return NewAttendanceService(attendanceRepo, memberRepo, fixedClock), attendanceRepo, memberRepo
}

func TestAttendanceService_EntryFor_DefaultsToPresent(t *testing.T) {
	svc, _, _ := newTestService(t)

	e := svc.EntryFor(testDate, "m1")
	assert.Equal(t, attendance.StatusPresent, e.Status)
	assert.Empty(t, e.CheckInTime)
	assert.Empty(t, e.CheckOutTime)
	assert.Empty(t, e.Notes)
}

func TestAttendanceService_SetStatus_StampsCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, refresh, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "late")
	require.NoError(t, err)
	assert.True(t, refresh)
	assert.Equal(t, attendance.StatusLate, e.Status)
	assert.Equal(t, "09:05", e.CheckInTime)
}

func TestAttendanceService_SetStatus_KeepsManualCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckInTime, "08:00")
	require.NoError(t, err)

	e, _, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "present")
	require.NoError(t, err)
	assert.Equal(t, "08:00", e.CheckInTime)
}

func TestAttendanceService_AbsentClearsTimes(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckInTime, "08:00")
	require.NoError(t, err)
	_, _, err = svc.SetField(testDate, "m1", attendance.FieldCheckOutTime, "17:00")
	require.NoError(t, err)

	e, _, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "absent")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, e.Status)
	assert.Empty(t, e.CheckInTime)
	assert.Empty(t, e.CheckOutTime)
}

// The absent-implies-no-times invariant must hold after any call sequence
// ending in an absent status, and a later check-in must flip it back.
func TestAttendanceService_AbsentThenCheckInForcesPresent(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "absent")
	require.NoError(t, err)

	e, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckInTime, "10:30")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, e.Status)
	assert.Equal(t, "10:30", e.CheckInTime)
}

func TestAttendanceService_CheckOutBackfillsCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckOutTime, "17:30")
	require.NoError(t, err)
	assert.Equal(t, "16:30", e.CheckInTime)
	assert.Equal(t, "17:30", e.CheckOutTime)
}

func TestAttendanceService_CheckOutBackfillFloorsAtMidnight(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckOutTime, "00:45")
	require.NoError(t, err)
	assert.Equal(t, "00:45", e.CheckInTime)
}

func TestAttendanceService_NotesDoNotRefresh(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, refresh, err := svc.SetField(testDate, "m1", attendance.FieldNotes, "working remote")
	require.NoError(t, err)
	assert.False(t, refresh)
	assert.Equal(t, "working remote", e.Notes)
	// Notes edits leave derived state alone.
	assert.Equal(t, attendance.StatusPresent, e.Status)
	assert.Empty(t, e.CheckInTime)
}

func TestAttendanceService_RejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "vacation")
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)

	_, _, err = svc.SetField(testDate, "m1", attendance.Field("mood"), "happy")
	assert.ErrorIs(t, err, attendance.ErrUnknownField)
}

func TestAttendanceService_QuickCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldStatus, "absent")
	require.NoError(t, err)

	e, err := svc.CheckIn("m1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, e.Status)
	assert.Equal(t, "09:05", e.CheckInTime)
}

// An explicit quick check-in overwrites an existing time; the presentation
// layer is the only guard.
func TestAttendanceService_QuickCheckInOverwrites(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SetField(testDate, "m1", attendance.FieldCheckInTime, "07:00")
	require.NoError(t, err)

	e, err := svc.CheckIn("m1")
	require.NoError(t, err)
	assert.Equal(t, "09:05", e.CheckInTime)
}

func TestAttendanceService_QuickCheckOut(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, err := svc.CheckOut("m1")
	require.NoError(t, err)
	assert.Equal(t, "09:05", e.CheckOutTime)
}

func TestAttendanceService_DateLockedWithoutExceptionMode(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.Equal(t, testDate, svc.ActiveDate())

	err := svc.SetActiveDate("2025-03-07")
	assert.ErrorIs(t, err, attendance.ErrDateLocked)

	// Today is always allowed.
	require.NoError(t, svc.SetActiveDate(testDate))
}

func TestAttendanceService_BackdatedEntryRecordsException(t *testing.T) {
	svc, repo, _ := newTestService(t)

	svc.EnableExceptionMode()
	require.NoError(t, svc.SetActiveDate("2025-03-07"))

	_, err := svc.CheckIn("m1")
	require.NoError(t, err)

	trail := repo.Exceptions()
	require.Len(t, trail, 1)
	assert.Equal(t, "2025-03-07", trail[0].Date)
	assert.Equal(t, testDate, trail[0].ActualDate)
	assert.Equal(t, "Alice", trail[0].MemberName)
	assert.Equal(t, "m1", trail[0].MemberID)
	assert.Equal(t, "check_in", trail[0].Action)
	assert.NotEmpty(t, trail[0].ID)

	svc.DisableExceptionMode()
	assert.Equal(t, testDate, svc.ActiveDate())
	assert.False(t, svc.ExceptionMode())
}

func TestAttendanceService_TodayEntriesLeaveNoTrail(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.CheckIn("m1")
	require.NoError(t, err)
	_, _, err = svc.SetField(testDate, "m1", attendance.FieldNotes, "n")
	require.NoError(t, err)

	assert.Empty(t, repo.Exceptions())
}
