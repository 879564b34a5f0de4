package interchange

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/interchange"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/timeutil"
)

const teamDataDescription = "Team member data for user attendance tracking"

type InterchangeServiceImpl struct {
	members    member.Repository
	attendance attendance.Repository
	clock      func() time.Time
}

func NewInterchangeService(
	memberRepo member.Repository,
	attendanceRepo attendance.Repository,
	clock func() time.Time,
) interchange.Service {
	if clock == nil {
		clock = time.Now
	}
	return &InterchangeServiceImpl{
		members:    memberRepo,
		attendance: attendanceRepo,
		clock:      clock,
	}
}

// ExportBackup implements interchange.Service.
func (s *InterchangeServiceImpl) ExportBackup(dir string) (string, error) {
	backup := interchange.Backup{
		Members:    s.members.List(),
		Attendance: s.attendance.Snapshot(),
		ExportDate: s.clock().Format(time.RFC3339),
	}

	name := fmt.Sprintf("attendance_backup_%s.json", timeutil.ISODate(s.clock()))
	return s.writeJSON(dir, name, backup)
}

// ImportBackup implements interchange.Service. Both stores are overwritten
// wholesale; a file missing either key aborts with no change at all.
func (s *InterchangeServiceImpl) ImportBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	// Decode into a raw map first so absent keys can be told apart from
	// empty ones.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return interchange.ErrInvalidFormat
	}
	if raw["members"] == nil || raw["attendance"] == nil {
		return interchange.ErrInvalidFormat
	}

	var backup interchange.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return interchange.ErrInvalidFormat
	}

	if err := s.members.ReplaceAll(backup.Members); err != nil {
		return fmt.Errorf("failed to restore roster: %w", err)
	}
	if backup.Attendance == nil {
		backup.Attendance = attendance.Map{}
	}
	if err := s.attendance.ReplaceAll(backup.Attendance); err != nil {
		return fmt.Errorf("failed to restore attendance data: %w", err)
	}

	return nil
}

// ExportTeamData implements interchange.Service.
func (s *InterchangeServiceImpl) ExportTeamData(dir string) (string, error) {
	members := s.members.List()
	if len(members) == 0 {
		return "", interchange.ErrNoDataToExport
	}

	teamData := interchange.TeamData{
		Members:     members,
		ExportDate:  s.clock().Format(time.RFC3339),
		Version:     "1.0",
		Description: teamDataDescription,
	}

	name := fmt.Sprintf("team_data_%s.json", timeutil.ISODate(s.clock()))
	return s.writeJSON(dir, name, teamData)
}

// ImportTeamData implements interchange.Service.
func (s *InterchangeServiceImpl) ImportTeamData(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read team data file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, interchange.ErrInvalidFormat
	}
	if raw["members"] == nil {
		return 0, interchange.ErrInvalidFormat
	}

	var teamData interchange.TeamData
	if err := json.Unmarshal(data, &teamData); err != nil {
		return 0, interchange.ErrInvalidFormat
	}

	if err := s.members.ReplaceAll(teamData.Members); err != nil {
		return 0, fmt.Errorf("failed to save imported roster: %w", err)
	}

	return len(teamData.Members), nil
}

// ExportAttendance implements interchange.Service.
func (s *InterchangeServiceImpl) ExportAttendance(dir string) (string, error) {
	records := s.attendance.Snapshot()
	if len(records) == 0 {
		return "", interchange.ErrNoDataToExport
	}

	payload := interchange.AttendanceData{
		Attendance:   records,
		ExportDate:   s.clock().Format(time.RFC3339),
		TotalRecords: len(records),
	}

	name := fmt.Sprintf("attendance_data_%s.json", timeutil.ISODate(s.clock()))
	return s.writeJSON(dir, name, payload)
}

// ImportAttendance implements interchange.Service. Collisions resolve in
// favour of the imported entry, member-day granular; everything else stays.
func (s *InterchangeServiceImpl) ImportAttendance(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read attendance data file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, interchange.ErrInvalidFormat
	}
	if raw["attendance"] == nil {
		return 0, interchange.ErrInvalidFormat
	}

	var payload interchange.AttendanceData
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, interchange.ErrInvalidFormat
	}

	if err := s.attendance.MergeDays(payload.Attendance); err != nil {
		return 0, fmt.Errorf("failed to merge imported attendance data: %w", err)
	}

	return len(payload.Attendance), nil
}

func (s *InterchangeServiceImpl) writeJSON(dir, name string, payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return path, nil
}
