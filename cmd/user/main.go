// Command user is the restricted front end: attendance entry against a
// roster imported from the administrator, plus the attendance-sync export
// back. No roster editing, no reporting.
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
	"github.com/teamtrack/teamtrack-go/internal/domain/report"
	"github.com/teamtrack/teamtrack-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-go/internal/pkg/timeutil"
	"github.com/teamtrack/teamtrack-go/internal/repository/kvstore"
	attendanceService "github.com/teamtrack/teamtrack-go/internal/service/attendance"
	interchangeService "github.com/teamtrack/teamtrack-go/internal/service/interchange"
	reportService "github.com/teamtrack/teamtrack-go/internal/service/report"
)

type userApp struct {
	members     member.Repository
	attendance  *attendanceService.AttendanceServiceImpl
	reports     report.Service
	interchange interchange.Service
	exportDir   string
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

	app := &userApp{
		members:     memberRepo,
		attendance:  attendanceService.NewAttendanceService(attendanceRepo, memberRepo, nil),
		reports:     reportService.NewReportService(memberRepo, attendanceRepo, nil),
		interchange: interchangeService.NewInterchangeService(memberRepo, attendanceRepo, nil),
		exportDir:   cfg.Storage.ExportDir,
		in:          bufio.NewScanner(os.Stdin),
	}

	fmt.Println("teamtrack - type 'help' for commands")
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
		case "status", "in", "out", "note":
			app.attendanceEdit(cmd, arg)
		case "stats":
			s := app.reports.DailyStats(app.attendance.ActiveDate())
			fmt.Printf("Members: %d  Present: %d  Absent: %d\n", s.Total, s.Present, s.Absent)
		case "date":
			if err := app.attendance.SetActiveDate(arg); err != nil {
				warn(err)
			}
		case "today":
			app.attendance.ResetToToday()
		case "exception":
			if app.attendance.ExceptionMode() {
				app.attendance.DisableExceptionMode()
				fmt.Println("exception mode disabled; date locked to today")
			} else {
				app.attendance.EnableExceptionMode()
				fmt.Println("exception mode enabled; use 'date YYYY-MM-DD' to backdate")
			}
		case "import-team":
			count, err := app.interchange.ImportTeamData(arg)
			if err != nil {
				warn(err)
				continue
			}
			fmt.Printf("imported %d team member(s)\n", count)
		case "export-attendance":
			path, err := app.interchange.ExportAttendance(app.exportDir)
			if err != nil {
				warn(err)
				continue
			}
			fmt.Println("attendance data exported for admin review:", path)
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

func (a *userApp) printRoster() {
	members := a.members.List()
	if len(members) == 0 {
		fmt.Println("no team data loaded; ask the administrator for a team_data file and run 'import-team <path>'")
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

func (a *userApp) attendanceEdit(cmd, arg string) {
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

func (a *userApp) memberAt(arg string) (member.Member, bool) {
	members := a.members.List()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(members) {
		fmt.Println("give a member number from 'list'")
		return member.Member{}, false
	}
	return members[n-1], true
}

func warn(err error) {
	switch {
	case errors.Is(err, storage.ErrWriteFailed):
		fmt.Println("warning: change kept in memory only; storage write failed")
	case errors.Is(err, interchange.ErrNoDataToExport),
		errors.Is(err, interchange.ErrInvalidFormat),
		errors.Is(err, domainAttendance.ErrDateLocked),
		errors.Is(err, domainAttendance.ErrInvalidStatus):
		fmt.Println(err)
	default:
		fmt.Println("error:", err)
	}
}

func printHelp() {
	fmt.Print(`attendance:  list | status <#> <present|absent|late> | in <#> | out <#> | note <#> <text>
reports:     stats
dates:       date <YYYY-MM-DD> | today | exception
interchange: import-team <path> | export-attendance
other:       help | quit
`)
}
