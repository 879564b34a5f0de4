package member

// Repository holds the ordered roster for the session and writes it through
// to persistent storage after every mutation.
type Repository interface {
	// List returns the roster in insertion order.
	List() []Member

	// Find returns the member with the given id.
	Find(id string) (Member, bool)

	// Append adds a member at the end of the roster and persists.
	Append(m Member) error

	// Update replaces the member with the same id in place and persists.
	Update(m Member) error

	// Remove deletes the member with the given id and persists.
	Remove(id string) error

	// ReplaceAll swaps the whole roster, used by team-data import.
	ReplaceAll(members []Member) error
}
