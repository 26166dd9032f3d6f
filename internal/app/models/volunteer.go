package models

// Volunteer defines a student-allocation staff account, created by admin
type Volunteer struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`

	// AssignedHRs is the reverse side of the HR allocation mapping,
	// derived from hr_volunteers (populated when needed)
	AssignedHRs []HRSummary `json:"assignedHRs,omitempty"`
}

// HRSummary is the reduced HR view embedded in volunteer and student responses
type HRSummary struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Company string `json:"company" db:"company"`
}
