package models

// HR defines a corporate interviewer account, created by admin
type HR struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Company      string `json:"company" db:"company"`

	// AllocatedVolunteers holds the volunteers assigned to this HR
	// (populated when needed)
	AllocatedVolunteers []VolunteerSummary `json:"allocatedVolunteers"`
}

// VolunteerSummary is the reduced volunteer view embedded in HR responses
type VolunteerSummary struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
}
