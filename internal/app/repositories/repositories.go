package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	VolunteerRepository *VolunteerRepository
	HRRepository        *HRRepository
	StudentRepository   *StudentRepository
	ReportRepository    *ReportRepository
	FeedbackRepository  *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		VolunteerRepository: NewVolunteerRepository(db),
		HRRepository:        NewHRRepository(db),
		StudentRepository:   NewStudentRepository(db),
		ReportRepository:    NewReportRepository(db),
		FeedbackRepository:  NewFeedbackRepository(db),
	}
}
