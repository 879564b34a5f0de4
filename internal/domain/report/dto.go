package report

import "github.com/teamtrack/teamtrack-go/internal/domain/member"

// DailyStats are the headline counters for one date. Late counts as
// present; members without a stored entry default to present.
type DailyStats struct {
	Total   int `json:"total"`
	Present int `json:"presentToday"`
	Absent  int `json:"absentToday"`
}

// MemberSummary is one row of the monthly summary, in roster order.
// TotalDays here counts every date of the month that has any record at all,
// whether or not it mentions this member; missing entries fall back to
// present.
type MemberSummary struct {
	Member      member.Member `json:"member"`
	PresentDays int           `json:"presentDays"`
	AbsentDays  int           `json:"absentDays"`
	Percentage  float64       `json:"percentage"`
}
