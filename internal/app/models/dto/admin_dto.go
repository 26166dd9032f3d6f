package dto

import "github.com/placementcell/online-mocks-api/internal/app/models"

// AddVolunteerRequest creates a volunteer account
type AddVolunteerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
}

// AddHRRequest creates an HR account
type AddHRRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	Company  string `json:"company" binding:"required"`
}

// AllocateVolunteerRequest records a Volunteer->HR allocation edge
type AllocateVolunteerRequest struct {
	VolunteerID int64 `json:"volunteerId" binding:"required"`
	HRID        int64 `json:"hrId" binding:"required"`
}

// DeallocateVolunteerRequest removes a Volunteer->HR allocation edge
type DeallocateVolunteerRequest struct {
	HRID        int64 `json:"hrId" binding:"required"`
	VolunteerID int64 `json:"volunteerId" binding:"required"`
}

// AllocateStudentRequest allocates a student to an HR by register number
type AllocateStudentRequest struct {
	RegisterNumber string `json:"registerNumber" binding:"required"`
	HRID           int64  `json:"hrId" binding:"required"`
}

// DeallocateHRFromStudentRequest removes a Student->HR allocation edge
type DeallocateHRFromStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	HRID      int64 `json:"hrId" binding:"required"`
}

// UpdateStudentRequest edits the one mutable student field
type UpdateStudentRequest struct {
	ResumeLink string `json:"resumeLink" binding:"required,url"`
}

// StudentPageResponse is the paginated student listing
type StudentPageResponse struct {
	Students    []*models.Student `json:"students"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// DeallocateVolunteerResponse returns the HR record after edge removal
type DeallocateVolunteerResponse struct {
	Message   string     `json:"message"`
	UpdatedHR *models.HR `json:"updatedHR"`
}
