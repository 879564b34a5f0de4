// Command admin is the administrator front end: full roster management,
// attendance entry, reporting and the complete export menu. All logic lives
// in the core services; this binary only parses lines and prints state.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/teamtrack/teamtrack-go/internal/config"
	domainAttendance "github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/interchange"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-go/internal/pkg/timeutil"
	"github.com/teamtrack/teamtrack-go/internal/repository/kvstore"
	attendanceService "github.com/teamtrack/teamtrack-go/internal/service/attendance"
	interchangeService "github.com/teamtrack/teamtrack-go/internal/service/interchange"
	reportService "github.com/teamtrack/teamtrack-go/internal/service/report"
	rosterService "github.com/teamtrack/teamtrack-go/internal/service/roster"
)

type adminApp struct {
	roster      member.RosterService
	attendance  *attendanceService.AttendanceServiceImpl
	interchange interchange.Service
	exportDir   string
	trail       domainAttendance.Repository
	in          *bufio.Scanner
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	store := openStore(cfg)
	if !store.Available() {
		log.Warn().Msg("persistent storage unavailable; changes will not survive this session")
		store = storage.NewMemoryStore()
	}

	memberRepo, err := kvstore.NewRosterRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load roster")
	}
	attendanceRepo, err := kvstore.NewAttendanceRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load attendance data")
	}

	app := &adminApp{
		roster:      rosterService.NewRosterService(memberRepo, attendanceRepo, nil),
		attendance:  attendanceService.NewAttendanceService(attendanceRepo, memberRepo, nil),
		interchange: interchangeService.NewInterchangeService(memberRepo, attendanceRepo, nil),
		exportDir:   cfg.Storage.ExportDir,
		trail:       attendanceRepo,
		in:          bufio.NewScanner(os.Stdin),
	}
	reports := reportService.NewReportService(memberRepo, attendanceRepo, nil)

	fmt.Println("teamtrack admin - type 'help' for commands")
	for {
		fmt.Printf("[%s]> ", app.attendance.ActiveDate())
		if !app.in.Scan() {
			return
		}
		line := strings.TrimSpace(app.in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "list":
			app.printRoster()
		case "add":
			app.addMember()
		case "edit":
			app.editMember(arg)
		case "delete":
			app.deleteMember(arg)
		case "status", "in", "out", "note":
			app.attendanceEdit(cmd, arg)
		case "stats":
			s := reports.DailyStats(app.attendance.ActiveDate())
			fmt.Printf("Members: %d  Present: %d  Absent: %d\n", s.Total, s.Present, s.Absent)
		case "summary":
			for _, row := range reports.MonthlySummary(app.attendance.ActiveDate()) {
				fmt.Printf("%-24s present %2d  absent %2d  %5.1f%%\n",
					row.Member.Name, row.PresentDays, row.AbsentDays, row.Percentage)
			}
		case "date":
			if err := app.attendance.SetActiveDate(arg); err != nil {
				warn(err)
			}
		case "today":
			app.attendance.ResetToToday()
		case "exception":
			app.toggleException()
		case "trail":
			for _, rec := range app.trail.Exceptions() {
				fmt.Printf("%s  %s %s on %s (actual %s): %s\n",
					rec.Timestamp, rec.MemberName, rec.Action, rec.Date, rec.ActualDate, rec.Details)
			}
		case "export-backup":
			app.export(app.interchange.ExportBackup)
		case "export-team":
			app.export(app.interchange.ExportTeamData)
		case "export-report":
			path, err := reports.WriteReport(app.exportDir)
			if err != nil {
				warn(err)
				continue
			}
			fmt.Println("report written to", path)
		case "import-backup":
			if err := app.interchange.ImportBackup(arg); err != nil {
				warn(err)
				continue
			}
			fmt.Println("backup restored")
		case "import-attendance":
			days, err := app.interchange.ImportAttendance(arg)
			if err != nil {
				warn(err)
				continue
			}
			fmt.Printf("merged %d day(s) of attendance data\n", days)
		default:
			fmt.Println("unknown command; type 'help'")
		}
	}
}

func openStore(cfg *config.Config) storage.Store {
	switch cfg.Storage.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		store, err := storage.NewPostgresStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize postgres storage")
		}
		return store
	default:
		store, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize file storage")
		}
		return store
	}
}

func (a *adminApp) printRoster() {
	members := a.roster.Members()
	if len(members) == 0 {
		fmt.Println("no team members added yet")
		return
	}
	date := a.attendance.ActiveDate()
	for i, m := range members {
		e := a.attendance.EntryFor(date, m.ID)
		hours := timeutil.WorkingHours(e.CheckInTime, e.CheckOutTime)
		fmt.Printf("%2d. %-24s %-16s %-8s in:%-5s out:%-5s %-8s %s\n",
			i+1, m.Name, m.Role, e.Status, e.CheckInTime, e.CheckOutTime, hours, e.Notes)
	}
}

func (a *adminApp) addMember() {
	name := a.prompt("Name: ")
	role := a.prompt("Role: ")
	m, err := a.roster.AddMember(name, role)
	if err != nil {
		warn(err)
		return
	}
	fmt.Printf("%s has been added to the team\n", m.Name)
}

func (a *adminApp) editMember(arg string) {
	m, ok := a.memberAt(arg)
	if !ok {
		return
	}
	name := a.prompt(fmt.Sprintf("Name [%s]: ", m.Name))
	if name == "" {
		name = m.Name
	}
	role := a.prompt(fmt.Sprintf("Role [%s]: ", m.Role))
	if role == "" {
		role = m.Role
	}
	if err := a.roster.UpdateMember(m.ID, name, role); err != nil {
		warn(err)
		return
	}
	fmt.Println("member updated")
}

func (a *adminApp) deleteMember(arg string) {
	m, ok := a.memberAt(arg)
	if !ok {
		return
	}
	answer := a.prompt(fmt.Sprintf(
		"Delete %s and all their attendance records? [y/N] ", m.Name))
	if !strings.EqualFold(answer, "y") {
		return
	}
	if err := a.roster.DeleteMember(m.ID); err != nil {
		warn(err)
		return
	}
	fmt.Printf("%s has been removed from the team\n", m.Name)
}

func (a *adminApp) attendanceEdit(cmd, arg string) {
	idx, rest, _ := strings.Cut(arg, " ")
	m, ok := a.memberAt(idx)
	if !ok {
		return
	}

	var err error
	switch cmd {
	case "status":
		_, _, err = a.attendance.SetField(a.attendance.ActiveDate(), m.ID, domainAttendance.FieldStatus, rest)
	case "note":
		_, _, err = a.attendance.SetField(a.attendance.ActiveDate(), m.ID, domainAttendance.FieldNotes, rest)
	case "in":
		var e domainAttendance.Entry
		if e, err = a.attendance.CheckIn(m.ID); err == nil {
			fmt.Printf("%s checked in at %s\n", m.Name, e.CheckInTime)
		}
	case "out":
		var e domainAttendance.Entry
		if e, err = a.attendance.CheckOut(m.ID); err == nil {
			fmt.Printf("%s checked out at %s\n", m.Name, e.CheckOutTime)
		}
	}
	if err != nil {
		warn(err)
	}
}

func (a *adminApp) toggleException() {
	if a.attendance.ExceptionMode() {
		a.attendance.DisableExceptionMode()
		fmt.Println("exception mode disabled; date locked to today")
		return
	}
	answer := a.prompt(
		"Exception mode allows backdated entries and records them in the audit trail. Continue? [y/N] ")
	if strings.EqualFold(answer, "y") {
		a.attendance.EnableExceptionMode()
		fmt.Println("exception mode enabled; use 'date YYYY-MM-DD' to backdate")
	}
}

func (a *adminApp) export(fn func(string) (string, error)) {
	path, err := fn(a.exportDir)
	if err != nil {
		warn(err)
		return
	}
	fmt.Println("written to", path)
}

func (a *adminApp) memberAt(arg string) (member.Member, bool) {
	members := a.roster.Members()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(members) {
		fmt.Println("give a member number from 'list'")
		return member.Member{}, false
	}
	return members[n-1], true
}

func (a *adminApp) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func warn(err error) {
	switch {
	case errors.Is(err, storage.ErrWriteFailed):
		fmt.Println("warning: change kept in memory only; storage write failed")
	case errors.Is(err, interchange.ErrNoDataToExport),
		errors.Is(err, interchange.ErrInvalidFormat),
		errors.Is(err, member.ErrEmptyName),
		errors.Is(err, member.ErrDuplicateName),
		errors.Is(err, member.ErrMemberNotFound),
		errors.Is(err, domainAttendance.ErrDateLocked),
		errors.Is(err, domainAttendance.ErrInvalidStatus):
		fmt.Println(err)
	default:
		fmt.Println("error:", err)
	}
}

func printHelp() {
	fmt.Print(`roster:      list | add | edit <#> | delete <#>
attendance:  status <#> <present|absent|late> | in <#> | out <#> | note <#> <text>
reports:     stats | summary
dates:       date <YYYY-MM-DD> | today | exception | trail
interchange: export-backup | export-team | export-report
             import-backup <path> | import-attendance <path>
other:       help | quit
`)
}
