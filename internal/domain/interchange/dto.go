package interchange

import (
	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
)

// Backup round-trips both stores. Import overwrites both wholesale.
type Backup struct {
	Members    []member.Member `json:"members"`
	Attendance attendance.Map  `json:"attendance"`
	ExportDate string          `json:"exportDate"`
}

// TeamData is the roster-only hand-off from the admin to users.
type TeamData struct {
	Members     []member.Member `json:"members"`
	ExportDate  string          `json:"exportDate"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
}

// AttendanceData is the attendance-only hand-off from a user back to the
// admin. TotalRecords counts dates, not entries. Import merges per date.
type AttendanceData struct {
	Attendance   attendance.Map `json:"attendance"`
	ExportDate   string         `json:"exportDate"`
	TotalRecords int            `json:"totalRecords"`
}
