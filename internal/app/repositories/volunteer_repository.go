package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/placementcell/online-mocks-api/internal/pkg/dberrors"
)

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	db *pgxpool.Pool
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{
		db: db,
	}
}

// Create inserts a new volunteer account
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, volunteer.Name, volunteer.Username, volunteer.PasswordHash).Scan(&volunteer.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "volunteers_username_key") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("error creating volunteer: %w", err)
	}

	return nil
}

// GetByID retrieves a volunteer by ID
func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	query := `
		SELECT id, name, username, password_hash
		FROM volunteers
		WHERE id = $1
	`

	var volunteer models.Volunteer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&volunteer.ID,
		&volunteer.Name,
		&volunteer.Username,
		&volunteer.PasswordHash,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error retrieving volunteer: %w", err)
	}

	return &volunteer, nil
}

// GetByUsername retrieves a volunteer by its unique username
func (r *VolunteerRepository) GetByUsername(ctx context.Context, username string) (*models.Volunteer, error) {
	query := `
		SELECT id, name, username, password_hash
		FROM volunteers
		WHERE username = $1
	`

	var volunteer models.Volunteer
	err := r.db.QueryRow(ctx, query, username).Scan(
		&volunteer.ID,
		&volunteer.Name,
		&volunteer.Username,
		&volunteer.PasswordHash,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error retrieving volunteer by username: %w", err)
	}

	return &volunteer, nil
}

// GetAll retrieves all volunteers with their assigned HRs populated
func (r *VolunteerRepository) GetAll(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT id, name, username
		FROM volunteers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []*models.Volunteer
	byID := make(map[int64]*models.Volunteer)
	for rows.Next() {
		var volunteer models.Volunteer
		if err := rows.Scan(&volunteer.ID, &volunteer.Name, &volunteer.Username); err != nil {
			return nil, err
		}
		volunteer.AssignedHRs = []models.HRSummary{}
		volunteers = append(volunteers, &volunteer)
		byID[volunteer.ID] = &volunteer
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	hrRows, err := r.db.Query(ctx, `
		SELECT hv.volunteer_id, h.id, h.name, h.company
		FROM hr_volunteers hv
		JOIN hrs h ON h.id = hv.hr_id
		ORDER BY h.name
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing volunteer assignments: %w", err)
	}
	defer hrRows.Close()

	for hrRows.Next() {
		var volunteerID int64
		var hr models.HRSummary
		if err := hrRows.Scan(&volunteerID, &hr.ID, &hr.Name, &hr.Company); err != nil {
			return nil, err
		}
		if volunteer, ok := byID[volunteerID]; ok {
			volunteer.AssignedHRs = append(volunteer.AssignedHRs, hr)
		}
	}

	if err := hrRows.Err(); err != nil {
		return nil, err
	}

	return volunteers, nil
}

// GetAssignedHRs retrieves the HRs a volunteer has been allocated to
func (r *VolunteerRepository) GetAssignedHRs(ctx context.Context, volunteerID int64) ([]models.HRSummary, error) {
	query := `
		SELECT h.id, h.name, h.company
		FROM hr_volunteers hv
		JOIN hrs h ON h.id = hv.hr_id
		WHERE hv.volunteer_id = $1
		ORDER BY h.name
	`

	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("error listing assigned HRs: %w", err)
	}
	defer rows.Close()

	hrs := []models.HRSummary{}
	for rows.Next() {
		var hr models.HRSummary
		if err := rows.Scan(&hr.ID, &hr.Name, &hr.Company); err != nil {
			return nil, err
		}
		hrs = append(hrs, hr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hrs, nil
}

// Delete hard-deletes a volunteer. Allocation edges are removed by the
// ON DELETE CASCADE constraint on hr_volunteers, so no HR keeps a
// dangling volunteer id.
func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting volunteer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}
