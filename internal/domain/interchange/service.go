package interchange

// Service serializes and restores state through dated JSON files. Exports
// return the written path; imports are all-or-nothing and leave state
// untouched on any parse or validation failure.
type Service interface {
	// ExportBackup writes attendance_backup_<date>.json with both stores.
	ExportBackup(dir string) (string, error)

	// ImportBackup overwrites both stores from a backup file. Both the
	// members and attendance keys must be present.
	ImportBackup(path string) error

	// ExportTeamData writes team_data_<date>.json with the roster, for
	// hand-off to user installations. Fails when the roster is empty.
	ExportTeamData(dir string) (string, error)

	// ImportTeamData overwrites the roster from a team-data file.
	ImportTeamData(path string) (int, error)

	// ExportAttendance writes attendance_data_<date>.json with the
	// attendance map, for hand-off back to the admin. Fails when there is
	// no attendance data.
	ExportAttendance(dir string) (string, error)

	// ImportAttendance merges an attendance-sync file into the existing
	// map, date by date, and returns the number of merged dates.
	ImportAttendance(path string) (int, error)
}
