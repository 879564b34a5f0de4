// Package kvstore implements the domain repositories on top of a
// string-keyed persistent store. State is loaded once at startup, mutated in
// memory, and written back whole after every mutation. A failed write keeps
// the in-memory change; only durability is lost.
package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/teamtrack/teamtrack-go/internal/domain/member"
	"github.com/teamtrack/teamtrack-go/internal/pkg/storage"
)

type RosterRepository struct {
	store   storage.Store
	members []member.Member
}

func NewRosterRepository(store storage.Store) (*RosterRepository, error) {
	repo := &RosterRepository{store: store}

	raw, ok, err := store.Get(storage.KeyTeamMembers)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &repo.members); err != nil {
			return nil, fmt.Errorf("failed to decode stored roster: %w", err)
		}
	}

	return repo, nil
}

func (r *RosterRepository) List() []member.Member {
	out := make([]member.Member, len(r.members))
	copy(out, r.members)
	return out
}

func (r *RosterRepository) Find(id string) (member.Member, bool) {
	for _, m := range r.members {
		if m.ID == id {
			return m, true
		}
	}
	return member.Member{}, false
}

func (r *RosterRepository) Append(m member.Member) error {
	r.members = append(r.members, m)
	return r.persist()
}

func (r *RosterRepository) Update(m member.Member) error {
	for i := range r.members {
		if r.members[i].ID == m.ID {
			r.members[i] = m
			return r.persist()
		}
	}
	return member.ErrMemberNotFound
}

func (r *RosterRepository) Remove(id string) error {
	kept := r.members[:0]
	for _, m := range r.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.members = kept
	return r.persist()
}

func (r *RosterRepository) ReplaceAll(members []member.Member) error {
	r.members = make([]member.Member, len(members))
	copy(r.members, members)
	return r.persist()
}

// persist writes the whole roster back. The in-memory state is already
// mutated; a storage failure is surfaced but never rolled back.
func (r *RosterRepository) persist() error {
	data, err := json.Marshal(r.members)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if err := r.store.Set(storage.KeyTeamMembers, string(data)); err != nil {
		log.Warn().Err(err).Msg("roster change kept in memory only")
		return err
	}

	return nil
}
