package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/placementcell/online-mocks-api/internal/pkg/auth"
)

// mockAuthVolunteerStore implements AuthVolunteerStore for testing
type mockAuthVolunteerStore struct {
	volunteers map[string]*models.Volunteer
}

func (m *mockAuthVolunteerStore) GetByUsername(ctx context.Context, username string) (*models.Volunteer, error) {
	if v, ok := m.volunteers[username]; ok {
		return v, nil
	}
	return nil, apperrors.ErrVolunteerNotFound
}

// mockAuthHRStore implements AuthHRStore for testing
type mockAuthHRStore struct {
	hrs map[string]*models.HR
}

func (m *mockAuthHRStore) GetByUsername(ctx context.Context, username string) (*models.HR, error) {
	if hr, ok := m.hrs[username]; ok {
		return hr, nil
	}
	return nil, apperrors.ErrHRNotFound
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	hrHash, err := auth.HashPassword("hr-secret")
	require.NoError(t, err)
	volunteerHash, err := auth.HashPassword("vol-secret")
	require.NoError(t, err)

	volunteerStore := &mockAuthVolunteerStore{volunteers: map[string]*models.Volunteer{
		"priya": {ID: 10, Name: "Priya", Username: "priya", PasswordHash: volunteerHash},
	}}
	hrStore := &mockAuthHRStore{hrs: map[string]*models.HR{
		"anita": {ID: 1, Name: "Anita Rao", Username: "anita", Company: "Acme", PasswordHash: hrHash},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "online-mocks.test",
	})

	return NewAuthService(volunteerStore, hrStore, jwtService,
		AdminCredentials{Username: "admin", Password: "admin-secret"}, zerolog.Nop())
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)

	t.Run("valid credentials issue a role-only token", func(t *testing.T) {
		response, err := service.LoginAdmin(ctx, &dto.LoginRequest{Username: "admin", Password: "admin-secret"})
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleAdmin), response.Role)
		assert.Zero(t, response.ID)
		assert.NotEmpty(t, response.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.LoginAdmin(ctx, &dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := service.LoginAdmin(ctx, &dto.LoginRequest{Username: "root", Password: "admin-secret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestLoginHR(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)

	t.Run("valid credentials carry identity and company", func(t *testing.T) {
		response, err := service.LoginHR(ctx, &dto.LoginRequest{Username: "anita", Password: "hr-secret"})
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleHR), response.Role)
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, "Anita Rao", response.Name)
		assert.Equal(t, "Acme", response.Company)
	})

	t.Run("unknown username maps to invalid credentials", func(t *testing.T) {
		_, err := service.LoginHR(ctx, &dto.LoginRequest{Username: "ghost", Password: "hr-secret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.LoginHR(ctx, &dto.LoginRequest{Username: "anita", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestLoginVolunteer(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)

	t.Run("valid credentials carry identity", func(t *testing.T) {
		response, err := service.LoginVolunteer(ctx, &dto.LoginRequest{Username: "priya", Password: "vol-secret"})
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleVolunteer), response.Role)
		assert.Equal(t, int64(10), response.ID)
		assert.Equal(t, "Priya", response.Name)
		assert.Empty(t, response.Company)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.LoginVolunteer(ctx, &dto.LoginRequest{Username: "priya", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
