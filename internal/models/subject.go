package models

// Subject is one entry in a user's subject list. Names are unique per user
// (case-insensitive). Assignments is a free-form list of assignment titles.
type Subject struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Assignments []string `json:"assignments"`
	Status      string   `json:"status"` // active | archived
	Position    int      `json:"-"`
}
