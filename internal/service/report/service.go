package report

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/interchange"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/domain/report"
	"github.com/teamtrack/teamtrack-go/internal/pkg/spreadsheet"
	"github.com/teamtrack/teamtrack-go/internal/pkg/timeutil"
)

const reportSheet = "Attendance Report"

type ReportServiceImpl struct {
	members    member.Repository
	attendance attendance.Repository
	clock      func() time.Time
}

func NewReportService(
	memberRepo member.Repository,
	attendanceRepo attendance.Repository,
	clock func() time.Time,
) report.Service {
	if clock == nil {
		clock = time.Now
	}
	return &ReportServiceImpl{
		members:    memberRepo,
		attendance: attendanceRepo,
		clock:      clock,
	}
}

// DailyStats implements report.Service.
func (s *ReportServiceImpl) DailyStats(date string) report.DailyStats {
	members := s.members.List()
	stats := report.DailyStats{Total: len(members)}

	day, ok := s.attendance.Day(date)
	if !ok {
		// No record for the day means nobody has been marked yet, and
		// everyone is assumed present.
		stats.Present = stats.Total
		return stats
	}

	for _, m := range members {
		status := attendance.StatusPresent
		if e, ok := day[m.ID]; ok {
			status = e.Status
		}
		if status == attendance.StatusPresent || status == attendance.StatusLate {
			stats.Present++
		} else {
			stats.Absent++
		}
	}

	return stats
}

// MonthlySummary implements report.Service. Every date of the month that has
// any record counts toward totalDays for every member, with default-present
// filling the gaps.
func (s *ReportServiceImpl) MonthlySummary(date string) []report.MemberSummary {
	records := s.attendance.Snapshot()

	var monthDates []string
	for d := range records {
		if timeutil.SameMonth(d, date) {
			monthDates = append(monthDates, d)
		}
	}

	members := s.members.List()
	summary := make([]report.MemberSummary, 0, len(members))

	for _, m := range members {
		presentDays := 0
		for _, d := range monthDates {
			status := attendance.StatusPresent
			if e, ok := records[d][m.ID]; ok {
				status = e.Status
			}
			if status == attendance.StatusPresent || status == attendance.StatusLate {
				presentDays++
			}
		}

		totalDays := len(monthDates)
		percentage := 100.0
		if totalDays > 0 {
			percentage = math.Round(float64(presentDays)/float64(totalDays)*1000) / 10
		}

		summary = append(summary, report.MemberSummary{
			Member:      m,
			PresentDays: presentDays,
			AbsentDays:  totalDays - presentDays,
			Percentage:  percentage,
		})
	}

	return summary
}

// BuildReportRows implements report.Service. Column layout: member and role,
// then a status column per date, a check-in column per date, a check-out
// column per date and an hours column per date, dates ascending, then the
// totals. Unlike MonthlySummary, the totals only count dates where the
// member has an explicit entry.
func (s *ReportServiceImpl) BuildReportRows() ([][]any, error) {
	members := s.members.List()
	if len(members) == 0 {
		return nil, interchange.ErrNoDataToExport
	}

	records := s.attendance.Snapshot()
	dates := make([]string, 0, len(records))
	for d := range records {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	header := []any{"Team Member", "Role"}
	for _, d := range dates {
		header = append(header, d+" Status")
	}
	for _, d := range dates {
		header = append(header, d+" Check-in")
	}
	for _, d := range dates {
		header = append(header, d+" Check-out")
	}
	for _, d := range dates {
		header = append(header, d+" Hours")
	}
	header = append(header, "Total Present", "Total Absent", "Attendance %")

	rows := [][]any{header}

	for _, m := range members {
		row := []any{m.Name, m.Role}
		totalPresent := 0
		totalDays := 0

		for _, d := range dates {
			entry, ok := records[d][m.ID]
			status := attendance.StatusPresent
			if ok {
				status = entry.Status
			}
			row = append(row, capitalize(string(status)))

			if ok {
				totalDays++
				if status == attendance.StatusPresent || status == attendance.StatusLate {
					totalPresent++
				}
			}
		}
		for _, d := range dates {
			row = append(row, records[d][m.ID].CheckInTime)
		}
		for _, d := range dates {
			row = append(row, records[d][m.ID].CheckOutTime)
		}
		for _, d := range dates {
			entry := records[d][m.ID]
			row = append(row, timeutil.WorkingHours(entry.CheckInTime, entry.CheckOutTime))
		}

		percentage := "100%"
		if totalDays > 0 {
			percentage = fmt.Sprintf("%.1f%%", float64(totalPresent)/float64(totalDays)*100)
		}
		row = append(row, totalPresent, totalDays-totalPresent, percentage)

		rows = append(rows, row)
	}

	return rows, nil
}

// WriteReport implements report.Service.
func (s *ReportServiceImpl) WriteReport(dir string) (string, error) {
	rows, err := s.BuildReportRows()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("Attendance_Report_%s.xlsx", timeutil.ISODate(s.clock())))
	if err := spreadsheet.WriteRows(path, reportSheet, rows); err != nil {
		return "", fmt.Errorf("failed to write attendance report: %w", err)
	}

	return path, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
