package services

import (
	"context"
	"crypto/subtle"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/placementcell/online-mocks-api/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AdminCredentials holds the configured admin login, checked outside the
// entity store since admin is not a stored account
type AdminCredentials struct {
	Username string
	Password string
}

// AuthVolunteerStore looks volunteers up by username for login
type AuthVolunteerStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Volunteer, error)
}

// AuthHRStore looks HRs up by username for login
type AuthHRStore interface {
	GetByUsername(ctx context.Context, username string) (*models.HR, error)
}

// AuthService issues role-scoped bearer tokens for the three actor roles
type AuthService struct {
	volunteerStore AuthVolunteerStore
	hrStore        AuthHRStore
	jwtService     *auth.JWTService
	adminCreds     AdminCredentials
	logger         zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	volunteerStore AuthVolunteerStore,
	hrStore AuthHRStore,
	jwtService *auth.JWTService,
	adminCreds AdminCredentials,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		volunteerStore: volunteerStore,
		hrStore:        hrStore,
		jwtService:     jwtService,
		adminCreds:     adminCreds,
		logger:         logger,
	}
}

// LoginAdmin authenticates the configured admin account
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminCreds.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminCreds.Password)) == 1
	if !usernameOK || !passwordOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(string(models.RoleAdmin), 0, "", "")
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", string(models.RoleAdmin)).Msg("Admin logged in")
	return &dto.LoginResponse{
		Token:     token,
		Role:      string(models.RoleAdmin),
		ExpiresIn: expiresIn,
	}, nil
}

// LoginHR authenticates an HR account against its stored bcrypt hash
func (s *AuthService) LoginHR(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	hr, err := s.hrStore.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(hr.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(string(models.RoleHR), hr.ID, hr.Name, hr.Company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("hrId", hr.ID).Msg("HR logged in")
	return &dto.LoginResponse{
		Token:     token,
		Role:      string(models.RoleHR),
		ExpiresIn: expiresIn,
		ID:        hr.ID,
		Name:      hr.Name,
		Company:   hr.Company,
	}, nil
}

// LoginVolunteer authenticates a volunteer account against its stored bcrypt hash
func (s *AuthService) LoginVolunteer(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	volunteer, err := s.volunteerStore.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(volunteer.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(string(models.RoleVolunteer), volunteer.ID, volunteer.Name, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("volunteerId", volunteer.ID).Msg("Volunteer logged in")
	return &dto.LoginResponse{
		Token:     token,
		Role:      string(models.RoleVolunteer),
		ExpiresIn: expiresIn,
		ID:        volunteer.ID,
		Name:      volunteer.Name,
	}, nil
}
