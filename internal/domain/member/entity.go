package member

import "time"

// Member is one tracked person on the roster. Roster position is display
// order, so members are kept as an ordered slice, not a map.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	DateAdded time.Time `json:"dateAdded"`
}
