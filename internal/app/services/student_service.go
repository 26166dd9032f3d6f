package services

import (
	"context"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// StudentListStore is the student listing and update surface
type StudentListStore interface {
	ListPage(ctx context.Context, offset, limit int, search, sortField, sortOrder string) ([]*models.Student, int64, error)
	GetByHR(ctx context.Context, hrID int64) ([]*models.Student, error)
	UpdateResumeLink(ctx context.Context, id int64, resumeLink string) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// StudentService handles student listing, search and the resume-link edit
type StudentService struct {
	studentStore StudentListStore
	logger       zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(studentStore StudentListStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		logger:       logger,
	}
}

// ListStudents returns one fixed-size page of students with allocated HRs
// and reports populated
func (s *StudentService) ListStudents(ctx context.Context, page int, search, sortField, sortOrder string) (*dto.StudentPageResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, helpers.StudentPageSize)

	students, total, err := s.studentStore.ListPage(ctx, offset, limit, search, sortField, sortOrder)
	if err != nil {
		return nil, err
	}

	if students == nil {
		students = []*models.Student{}
	}

	return &dto.StudentPageResponse{
		Students:    students,
		TotalPages:  helpers.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// GetStudentsByHR returns all students allocated to one HR
func (s *StudentService) GetStudentsByHR(ctx context.Context, hrID int64) ([]*models.Student, error) {
	students, err := s.studentStore.GetByHR(ctx, hrID)
	if err != nil {
		return nil, err
	}

	if students == nil {
		students = []*models.Student{}
	}

	return students, nil
}

// UpdateResumeLink edits the one mutable student field and returns the
// updated record
func (s *StudentService) UpdateResumeLink(ctx context.Context, id int64, resumeLink string) (*models.Student, error) {
	if err := s.studentStore.UpdateResumeLink(ctx, id, resumeLink); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Resume link updated")
	return s.studentStore.GetByID(ctx, id)
}
