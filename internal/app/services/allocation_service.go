package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// AllocationVolunteerStore is the volunteer lookup surface the allocation
// service needs
type AllocationVolunteerStore interface {
	GetByID(ctx context.Context, id int64) (*models.Volunteer, error)
}

// AllocationHRStore is the HR and volunteer-edge surface the allocation
// service needs
type AllocationHRStore interface {
	GetByID(ctx context.Context, id int64) (*models.HR, error)
	GetAllocatedVolunteers(ctx context.Context, hrID int64) ([]models.VolunteerSummary, error)
	AddVolunteer(ctx context.Context, hrID, volunteerID int64) error
	RemoveVolunteer(ctx context.Context, hrID, volunteerID int64) error
	IsVolunteerAllocated(ctx context.Context, hrID, volunteerID int64) (bool, error)
}

// AllocationStudentStore is the student and HR-edge surface the allocation
// service needs
type AllocationStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Student, error)
	AllocateHR(ctx context.Context, studentID, hrID int64) error
	DeallocateHR(ctx context.Context, studentID, hrID int64) error
	GetByHR(ctx context.Context, hrID int64) ([]*models.Student, error)
}

// AllocationReportStore answers whether a review exists for a pairing
type AllocationReportStore interface {
	HasReport(ctx context.Context, studentID, hrID int64) (bool, error)
}

// AllocationService mediates every allocation and deallocation between
// volunteers, HRs and students, and enforces the relationship invariants.
type AllocationService struct {
	volunteerStore AllocationVolunteerStore
	hrStore        AllocationHRStore
	studentStore   AllocationStudentStore
	reportStore    AllocationReportStore
	logger         zerolog.Logger
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	volunteerStore AllocationVolunteerStore,
	hrStore AllocationHRStore,
	studentStore AllocationStudentStore,
	reportStore AllocationReportStore,
	logger zerolog.Logger,
) *AllocationService {
	return &AllocationService{
		volunteerStore: volunteerStore,
		hrStore:        hrStore,
		studentStore:   studentStore,
		reportStore:    reportStore,
		logger:         logger,
	}
}

// AllocateVolunteerToHR records a Volunteer->HR allocation edge
func (s *AllocationService) AllocateVolunteerToHR(ctx context.Context, volunteerID, hrID int64) error {
	if _, err := s.hrStore.GetByID(ctx, hrID); err != nil {
		return err
	}

	if _, err := s.volunteerStore.GetByID(ctx, volunteerID); err != nil {
		return err
	}

	if err := s.hrStore.AddVolunteer(ctx, hrID, volunteerID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyAllocated) {
			return apperrors.NewCustomError(err, "Volunteer already allocated to this HR")
		}
		return err
	}

	s.logger.Info().Int64("hrId", hrID).Int64("volunteerId", volunteerID).Msg("Volunteer allocated to HR")
	return nil
}

// DeallocateVolunteerFromHR removes a Volunteer->HR edge and returns the
// updated HR record. Removal is idempotent: an absent edge is not an error.
func (s *AllocationService) DeallocateVolunteerFromHR(ctx context.Context, hrID, volunteerID int64) (*models.HR, error) {
	hr, err := s.hrStore.GetByID(ctx, hrID)
	if err != nil {
		return nil, err
	}

	if err := s.hrStore.RemoveVolunteer(ctx, hrID, volunteerID); err != nil {
		return nil, err
	}

	volunteers, err := s.hrStore.GetAllocatedVolunteers(ctx, hrID)
	if err != nil {
		return nil, err
	}
	hr.AllocatedVolunteers = volunteers

	s.logger.Info().Int64("hrId", hrID).Int64("volunteerId", volunteerID).Msg("Volunteer deallocated from HR")
	return hr, nil
}

// AllocateStudentToHR allocates a student (looked up by register number)
// to an HR. When callerVolunteerID is non-nil the caller is a volunteer
// and the HR must be one of the volunteer's own allocated HRs. At most
// three HRs may be allocated per student.
func (s *AllocationService) AllocateStudentToHR(ctx context.Context, registerNumber string, hrID int64, callerVolunteerID *int64) (*models.Student, error) {
	student, err := s.studentStore.GetByRegisterNumber(ctx, registerNumber)
	if err != nil {
		return nil, apperrors.NewCustomError(err,
			fmt.Sprintf("Student with register number %s not found", registerNumber))
	}

	hr, err := s.hrStore.GetByID(ctx, hrID)
	if err != nil {
		return nil, err
	}

	if callerVolunteerID != nil {
		allocated, err := s.hrStore.IsVolunteerAllocated(ctx, hrID, *callerVolunteerID)
		if err != nil {
			return nil, err
		}
		if !allocated {
			return nil, apperrors.NewCustomError(apperrors.ErrNotAllocatedToHR,
				"You are not authorized to allocate students to this HR")
		}
	}

	if err := s.studentStore.AllocateHR(ctx, student.ID, hrID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyAllocated) {
			return nil, apperrors.NewCustomError(err,
				fmt.Sprintf("Student is already allocated to %s", hr.Name))
		}
		return nil, err
	}

	s.logger.Info().
		Str("registerNumber", registerNumber).
		Int64("hrId", hrID).
		Msg("Student allocated to HR")

	// Return the student with HR details populated
	return s.studentStore.GetByID(ctx, student.ID)
}

// GetStudentsForVolunteerHR lists the students allocated to one HR,
// after checking the HR belongs to the calling volunteer's allocated set.
func (s *AllocationService) GetStudentsForVolunteerHR(ctx context.Context, volunteerID, hrID int64) ([]*models.Student, error) {
	if _, err := s.hrStore.GetByID(ctx, hrID); err != nil {
		return nil, err
	}

	allocated, err := s.hrStore.IsVolunteerAllocated(ctx, hrID, volunteerID)
	if err != nil {
		return nil, err
	}
	if !allocated {
		return nil, apperrors.NewCustomError(apperrors.ErrNotAllocatedToHR,
			"You are not authorized to view students for this HR")
	}

	return s.studentStore.GetByHR(ctx, hrID)
}

// DeallocateStudentFromHR removes a Student->HR edge. The reviewed-pair
// protection is a single explicit policy flag: the admin-facing route
// protects pairs the HR has already reviewed, the volunteer-facing route
// does not.
func (s *AllocationService) DeallocateStudentFromHR(ctx context.Context, studentID, hrID int64, protectReviewed bool) error {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return err
	}

	if protectReviewed {
		reviewed, err := s.reportStore.HasReport(ctx, studentID, hrID)
		if err != nil {
			return err
		}
		if reviewed {
			return apperrors.ErrReviewSubmitted
		}
	}

	if err := s.studentStore.DeallocateHR(ctx, studentID, hrID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("hrId", hrID).
		Bool("protectReviewed", protectReviewed).
		Msg("Student deallocated from HR")
	return nil
}
