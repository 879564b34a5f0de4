package member

// RosterService defines business logic for roster management.
type RosterService interface {
	// AddMember validates and appends a new member. The name is trimmed,
	// must be non-empty and case-insensitively unique.
	AddMember(name, role string) (Member, error)

	// UpdateMember applies the same validation, excluding the member's own
	// id from the duplicate check.
	UpdateMember(id, name, role string) error

	// DeleteMember removes the member and every attendance entry recorded
	// under its id across all dates. Confirmation is a presentation concern.
	DeleteMember(id string) error

	// Members returns the roster in display order.
	Members() []Member

	// ImportRoster replaces the roster wholesale (team-data hand-off).
	ImportRoster(members []Member) error
}
