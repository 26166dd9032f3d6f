package models

// Student defines a student record in the shared pool. Records are seeded
// at startup; the API mutates them only through allocation, resume-link
// edits and report submission.
type Student struct {
	ID             int64   `json:"id" db:"id"`
	RegisterNumber string  `json:"registerNumber" db:"register_number"`
	Name           string  `json:"name" db:"name"`
	Department     string  `json:"department" db:"department"`
	AptitudeScore  float64 `json:"aptitudeScore" db:"aptitude_score"`
	GDScore        float64 `json:"gdScore" db:"gd_score"`
	ResumeLink     *string `json:"resumeLink,omitempty" db:"resume_link"`

	// Relations (populated when needed)
	AllocatedHRs    []HRSummary      `json:"allocatedHRs"`
	PersonalReports []PersonalReport `json:"personalReport"`
}
