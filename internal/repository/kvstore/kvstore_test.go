package kvstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
)

func TestRosterRepository_SurvivesReload(t *testing.T) {
	store := storage.NewMemoryStore()

	repo, err := NewRosterRepository(store)
	require.NoError(t, err)

	added := member.Member{ID: "m1", Name: "Alice", Role: "Eng", DateAdded: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Append(added))

	// A fresh repository over the same store sees the persisted roster.
	reloaded, err := NewRosterRepository(store)
	require.NoError(t, err)
	members := reloaded.List()
	require.Len(t, members, 1)
	assert.Equal(t, "m1", members[0].ID)
	assert.Equal(t, "Alice", members[0].Name)
	assert.True(t, added.DateAdded.Equal(members[0].DateAdded))
}

func TestRosterRepository_ListIsACopy(t *testing.T) {
	repo, err := NewRosterRepository(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, repo.Append(member.Member{ID: "m1", Name: "Alice"}))

	list := repo.List()
	list[0].Name = "Mallory"

	fresh, _ := repo.Find("m1")
	assert.Equal(t, "Alice", fresh.Name)
}

func TestRosterRepository_UpdateMissing(t *testing.T) {
	repo, err := NewRosterRepository(storage.NewMemoryStore())
	require.NoError(t, err)

	err = repo.Update(member.Member{ID: "ghost"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestAttendanceRepository_SurvivesReload(t *testing.T) {
	store := storage.NewMemoryStore()

	repo, err := NewAttendanceRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.SetEntry("2025-03-10", "m1", attendance.Entry{
		Status: attendance.StatusLate, CheckInTime: "09:30", Notes: "traffic",
	}))

	reloaded, err := NewAttendanceRepository(store)
	require.NoError(t, err)
	e, ok := reloaded.Entry("2025-03-10", "m1")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusLate, e.Status)
	assert.Equal(t, "09:30", e.CheckInTime)
	assert.Equal(t, "traffic", e.Notes)
}

func TestAttendanceRepository_PurgeMemberDropsEmptyDates(t *testing.T) {
	repo, err := NewAttendanceRepository(storage.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, repo.SetEntry("2025-03-09", "m1", attendance.Entry{Status: attendance.StatusPresent}))
	require.NoError(t, repo.SetEntry("2025-03-10", "m1", attendance.Entry{Status: attendance.StatusPresent}))
	require.NoError(t, repo.SetEntry("2025-03-10", "m2", attendance.Entry{Status: attendance.StatusAbsent}))

	require.NoError(t, repo.PurgeMember("m1"))

	snapshot := repo.Snapshot()
	// 03-09 only held m1 and disappears with it; 03-10 keeps m2.
	_, ok := snapshot["2025-03-09"]
	assert.False(t, ok)
	require.Contains(t, snapshot, "2025-03-10")
	_, ok = snapshot["2025-03-10"]["m1"]
	assert.False(t, ok)
	_, ok = snapshot["2025-03-10"]["m2"]
	assert.True(t, ok)
}

func TestAttendanceRepository_SnapshotIsACopy(t *testing.T) {
	repo, err := NewAttendanceRepository(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, repo.SetEntry("2025-03-10", "m1", attendance.Entry{Status: attendance.StatusPresent}))

	snapshot := repo.Snapshot()
	snapshot["2025-03-10"]["m1"] = attendance.Entry{Status: attendance.StatusAbsent}

	e, _ := repo.Entry("2025-03-10", "m1")
	assert.Equal(t, attendance.StatusPresent, e.Status)
}

func TestAttendanceRepository_ExceptionTrail(t *testing.T) {
	store := storage.NewMemoryStore()
	repo, err := NewAttendanceRepository(store)
	require.NoError(t, err)

	rec := attendance.ExceptionRecord{
		ID: "x1", Date: "2025-03-07", MemberID: "m1", MemberName: "Alice",
		Action: "check_in", Details: "09:05", ActualDate: "2025-03-10",
	}
	require.NoError(t, repo.AppendException(rec))

	reloaded, err := NewAttendanceRepository(store)
	require.NoError(t, err)
	trail := reloaded.Exceptions()
	require.Len(t, trail, 1)
	assert.Equal(t, rec, trail[0])
}
