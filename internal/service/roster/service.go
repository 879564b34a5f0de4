package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-go/internal/domain/member"
)

type RosterServiceImpl struct {
	members    member.Repository
	attendance attendance.Repository
	clock      func() time.Time
}

func NewRosterService(
	memberRepo member.Repository,
	attendanceRepo attendance.Repository,
	clock func() time.Time,
) member.RosterService {
	if clock == nil {
		clock = time.Now
	}
	return &RosterServiceImpl{
		members:    memberRepo,
		attendance: attendanceRepo,
		clock:      clock,
	}
}

// AddMember implements member.RosterService.
func (s *RosterServiceImpl) AddMember(name, role string) (member.Member, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)

	if name == "" {
		return member.Member{}, member.ErrEmptyName
	}
	if s.nameTaken(name, "") {
		return member.Member{}, member.ErrDuplicateName
	}

	m := member.Member{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		DateAdded: s.clock(),
	}

	if err := s.members.Append(m); err != nil {
		return m, fmt.Errorf("failed to save new member: %w", err)
	}

	return m, nil
}

// UpdateMember implements member.RosterService.
func (s *RosterServiceImpl) UpdateMember(id, name, role string) error {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)

	if name == "" {
		return member.ErrEmptyName
	}
	if s.nameTaken(name, id) {
		return member.ErrDuplicateName
	}

	m, ok := s.members.Find(id)
	if !ok {
		return member.ErrMemberNotFound
	}

	m.Name = name
	m.Role = role

	if err := s.members.Update(m); err != nil {
		return fmt.Errorf("failed to save member update: %w", err)
	}

	return nil
}

// DeleteMember implements member.RosterService. The member removal and the
// purge of its attendance entries happen against the same in-memory session,
// so callers observe them together.
func (s *RosterServiceImpl) DeleteMember(id string) error {
	if _, ok := s.members.Find(id); !ok {
		return member.ErrMemberNotFound
	}

	if err := s.members.Remove(id); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if err := s.attendance.PurgeMember(id); err != nil {
		return fmt.Errorf("failed to purge attendance entries: %w", err)
	}

	return nil
}

// Members implements member.RosterService.
func (s *RosterServiceImpl) Members() []member.Member {
	return s.members.List()
}

// ImportRoster implements member.RosterService.
func (s *RosterServiceImpl) ImportRoster(members []member.Member) error {
	if err := s.members.ReplaceAll(members); err != nil {
		return fmt.Errorf("failed to save imported roster: %w", err)
	}
	return nil
}

// nameTaken checks case-insensitive uniqueness, optionally skipping one id
// so a member can keep its own name on update.
func (s *RosterServiceImpl) nameTaken(name, excludeID string) bool {
	for _, m := range s.members.List() {
		if m.ID == excludeID {
			continue
		}
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}
