package report

// Service defines the aggregation engine.
type Service interface {
	// DailyStats counts present/absent members for one date. A date with
	// no record at all counts every member as present.
	DailyStats(date string) DailyStats

	// MonthlySummary aggregates per member over every recorded date in the
	// calendar month and year of the given date, one row per roster member
	// in roster order. Percentage is rounded to one decimal and is 100.0
	// when the month has no recorded dates.
	MonthlySummary(date string) []MemberSummary

	// BuildReportRows assembles the tabular spreadsheet report: one row
	// per member, per-date status/check-in/check-out/hours columns across
	// all recorded dates, then explicit-entry-only totals. Note the totals
	// deliberately skip the default-present fallback that MonthlySummary
	// applies; the two counting rules shipped differently and both are
	// kept.
	BuildReportRows() ([][]any, error)

	// WriteReport encodes the report rows into an .xlsx file under dir and
	// returns the written path.
	WriteReport(dir string) (string, error)
}
