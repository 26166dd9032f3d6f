package services

import (
	"context"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// DirectoryVolunteerStore is the volunteer account surface for admin
// directory management
type DirectoryVolunteerStore interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id int64) (*models.Volunteer, error)
	GetAll(ctx context.Context) ([]*models.Volunteer, error)
	GetAssignedHRs(ctx context.Context, volunteerID int64) ([]models.HRSummary, error)
	Delete(ctx context.Context, id int64) error
}

// DirectoryHRStore is the HR account surface for admin directory management
type DirectoryHRStore interface {
	Create(ctx context.Context, hr *models.HR) error
	GetAll(ctx context.Context) ([]*models.HR, error)
	Delete(ctx context.Context, id int64) error
}

// DirectoryService manages the volunteer and HR account roster. Accounts
// are created and hard-deleted by admin only.
type DirectoryService struct {
	volunteerStore DirectoryVolunteerStore
	hrStore        DirectoryHRStore
	logger         zerolog.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(volunteerStore DirectoryVolunteerStore, hrStore DirectoryHRStore, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		volunteerStore: volunteerStore,
		hrStore:        hrStore,
		logger:         logger,
	}
}

// AddVolunteer creates a volunteer account with a hashed password
func (s *DirectoryService) AddVolunteer(ctx context.Context, req *dto.AddVolunteerRequest) (*models.Volunteer, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	volunteer := &models.Volunteer{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.volunteerStore.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("volunteerId", volunteer.ID).Str("username", volunteer.Username).Msg("Volunteer created")
	return volunteer, nil
}

// AddHR creates an HR account with a hashed password
func (s *DirectoryService) AddHR(ctx context.Context, req *dto.AddHRRequest) (*models.HR, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hr := &models.HR{
		Name:                req.Name,
		Username:            req.Username,
		PasswordHash:        hash,
		Company:             req.Company,
		AllocatedVolunteers: []models.VolunteerSummary{},
	}

	if err := s.hrStore.Create(ctx, hr); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("hrId", hr.ID).Str("username", hr.Username).Msg("HR created")
	return hr, nil
}

// ListVolunteers returns all volunteers with their assigned HRs
func (s *DirectoryService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	return s.volunteerStore.GetAll(ctx)
}

// ListHRs returns all HRs with allocated volunteers populated
func (s *DirectoryService) ListHRs(ctx context.Context) ([]*models.HR, error) {
	return s.hrStore.GetAll(ctx)
}

// DeleteVolunteer hard-deletes a volunteer; allocation edges cascade
func (s *DirectoryService) DeleteVolunteer(ctx context.Context, id int64) error {
	if err := s.volunteerStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("volunteerId", id).Msg("Volunteer deleted")
	return nil
}

// DeleteHR hard-deletes an HR; allocation edges and reports cascade
func (s *DirectoryService) DeleteHR(ctx context.Context, id int64) error {
	if err := s.hrStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("hrId", id).Msg("HR deleted")
	return nil
}

// GetVolunteerProfile returns one volunteer without credentials
func (s *DirectoryService) GetVolunteerProfile(ctx context.Context, id int64) (*models.Volunteer, error) {
	volunteer, err := s.volunteerStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.PasswordHash = ""

	hrs, err := s.volunteerStore.GetAssignedHRs(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.AssignedHRs = hrs

	return volunteer, nil
}

// GetAssignedHRs returns the HRs allocated to one volunteer
func (s *DirectoryService) GetAssignedHRs(ctx context.Context, volunteerID int64) ([]models.HRSummary, error) {
	return s.volunteerStore.GetAssignedHRs(ctx, volunteerID)
}
