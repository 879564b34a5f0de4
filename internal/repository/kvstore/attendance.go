package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
)

type AttendanceRepository struct {
	store      storage.Store
	records    attendance.Map
	exceptions []attendance.ExceptionRecord
}

func NewAttendanceRepository(store storage.Store) (*AttendanceRepository, error) {
	repo := &AttendanceRepository{
		store:   store,
		records: attendance.Map{},
	}

	raw, ok, err := store.Get(storage.KeyAttendanceData)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance data: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &repo.records); err != nil {
			return nil, fmt.Errorf("failed to decode stored attendance data: %w", err)
		}
	}

	raw, ok, err = store.Get(storage.KeyExceptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load exception trail: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &repo.exceptions); err != nil {
			return nil, fmt.Errorf("failed to decode stored exception trail: %w", err)
		}
	}

	return repo, nil
}

func (r *AttendanceRepository) Snapshot() attendance.Map {
	return r.records.Clone()
}

func (r *AttendanceRepository) Day(date string) (attendance.DayRecord, bool) {
	day, ok := r.records[date]
	if !ok {
		return nil, false
	}

	out := make(attendance.DayRecord, len(day))
	for id, e := range day {
		out[id] = e
	}
	return out, true
}

func (r *AttendanceRepository) Entry(date, memberID string) (attendance.Entry, bool) {
	day, ok := r.records[date]
	if !ok {
		return attendance.Entry{}, false
	}
	e, ok := day[memberID]
	return e, ok
}

func (r *AttendanceRepository) SetEntry(date, memberID string, e attendance.Entry) error {
	day, ok := r.records[date]
	if !ok {
		day = attendance.DayRecord{}
		r.records[date] = day
	}
	day[memberID] = e
	return r.persistRecords()
}

func (r *AttendanceRepository) PurgeMember(memberID string) error {
	for date, day := range r.records {
		delete(day, memberID)
		if len(day) == 0 {
			delete(r.records, date)
		}
	}
	return r.persistRecords()
}

func (r *AttendanceRepository) ReplaceAll(m attendance.Map) error {
	r.records = m.Clone()
	return r.persistRecords()
}

func (r *AttendanceRepository) MergeDays(m attendance.Map) error {
	for date, imported := range m {
		day, ok := r.records[date]
		if !ok {
			day = attendance.DayRecord{}
			r.records[date] = day
		}
		for id, e := range imported {
			day[id] = e
		}
	}
	return r.persistRecords()
}

func (r *AttendanceRepository) Exceptions() []attendance.ExceptionRecord {
	out := make([]attendance.ExceptionRecord, len(r.exceptions))
	copy(out, r.exceptions)
	return out
}

func (r *AttendanceRepository) AppendException(rec attendance.ExceptionRecord) error {
	r.exceptions = append(r.exceptions, rec)

	data, err := json.Marshal(r.exceptions)
	if err != nil {
		return fmt.Errorf("failed to encode exception trail: %w", err)
	}

	if err := r.store.Set(storage.KeyExceptions, string(data)); err != nil {
		log.Warn().Err(err).Msg("exception record kept in memory only")
		return err
	}

	return nil
}

func (r *AttendanceRepository) persistRecords() error {
	data, err := json.Marshal(r.records)
	if err != nil {
		return fmt.Errorf("failed to encode attendance data: %w", err)
	}

	if err := r.store.Set(storage.KeyAttendanceData, string(data)); err != nil {
		log.Warn().Err(err).Msg("attendance change kept in memory only")
		return err
	}

	return nil
}
