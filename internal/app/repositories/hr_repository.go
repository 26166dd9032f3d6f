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

// HRRepository handles database operations for HR accounts and their
// volunteer allocation edges
type HRRepository struct {
	db *pgxpool.Pool
}

// NewHRRepository creates a new HR repository
func NewHRRepository(db *pgxpool.Pool) *HRRepository {
	return &HRRepository{
		db: db,
	}
}

// Create inserts a new HR account
func (r *HRRepository) Create(ctx context.Context, hr *models.HR) error {
	query := `
		INSERT INTO hrs (name, username, password_hash, company)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, hr.Name, hr.Username, hr.PasswordHash, hr.Company).Scan(&hr.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hrs_username_key") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("error creating HR: %w", err)
	}

	return nil
}

// GetByID retrieves an HR by ID
func (r *HRRepository) GetByID(ctx context.Context, id int64) (*models.HR, error) {
	query := `
		SELECT id, name, username, password_hash, company
		FROM hrs
		WHERE id = $1
	`

	var hr models.HR
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hr.ID,
		&hr.Name,
		&hr.Username,
		&hr.PasswordHash,
		&hr.Company,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHRNotFound
		}
		return nil, fmt.Errorf("error retrieving HR: %w", err)
	}

	return &hr, nil
}

// GetByUsername retrieves an HR by its unique username
func (r *HRRepository) GetByUsername(ctx context.Context, username string) (*models.HR, error) {
	query := `
		SELECT id, name, username, password_hash, company
		FROM hrs
		WHERE username = $1
	`

	var hr models.HR
	err := r.db.QueryRow(ctx, query, username).Scan(
		&hr.ID,
		&hr.Name,
		&hr.Username,
		&hr.PasswordHash,
		&hr.Company,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHRNotFound
		}
		return nil, fmt.Errorf("error retrieving HR by username: %w", err)
	}

	return &hr, nil
}

// GetAll retrieves all HRs with allocated volunteers populated
func (r *HRRepository) GetAll(ctx context.Context) ([]*models.HR, error) {
	query := `
		SELECT id, name, username, company
		FROM hrs
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing HRs: %w", err)
	}
	defer rows.Close()

	var hrs []*models.HR
	byID := make(map[int64]*models.HR)
	for rows.Next() {
		var hr models.HR
		if err := rows.Scan(&hr.ID, &hr.Name, &hr.Username, &hr.Company); err != nil {
			return nil, err
		}
		hr.AllocatedVolunteers = []models.VolunteerSummary{}
		hrs = append(hrs, &hr)
		byID[hr.ID] = &hr
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	volunteerRows, err := r.db.Query(ctx, `
		SELECT hv.hr_id, v.id, v.name, v.username
		FROM hr_volunteers hv
		JOIN volunteers v ON v.id = hv.volunteer_id
		ORDER BY v.name
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing HR allocations: %w", err)
	}
	defer volunteerRows.Close()

	for volunteerRows.Next() {
		var hrID int64
		var volunteer models.VolunteerSummary
		if err := volunteerRows.Scan(&hrID, &volunteer.ID, &volunteer.Name, &volunteer.Username); err != nil {
			return nil, err
		}
		if hr, ok := byID[hrID]; ok {
			hr.AllocatedVolunteers = append(hr.AllocatedVolunteers, volunteer)
		}
	}

	if err := volunteerRows.Err(); err != nil {
		return nil, err
	}

	return hrs, nil
}

// GetAllocatedVolunteers retrieves the volunteers allocated to one HR
func (r *HRRepository) GetAllocatedVolunteers(ctx context.Context, hrID int64) ([]models.VolunteerSummary, error) {
	query := `
		SELECT v.id, v.name, v.username
		FROM hr_volunteers hv
		JOIN volunteers v ON v.id = hv.volunteer_id
		WHERE hv.hr_id = $1
		ORDER BY v.name
	`

	rows, err := r.db.Query(ctx, query, hrID)
	if err != nil {
		return nil, fmt.Errorf("error listing allocated volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := []models.VolunteerSummary{}
	for rows.Next() {
		var volunteer models.VolunteerSummary
		if err := rows.Scan(&volunteer.ID, &volunteer.Name, &volunteer.Username); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, volunteer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return volunteers, nil
}

// AddVolunteer records a volunteer allocation edge. The insert is
// conditional on the composite primary key, so a concurrent duplicate
// allocation loses instead of producing a second row.
func (r *HRRepository) AddVolunteer(ctx context.Context, hrID, volunteerID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO hr_volunteers (hr_id, volunteer_id)
		VALUES ($1, $2)
		ON CONFLICT (hr_id, volunteer_id) DO NOTHING
	`, hrID, volunteerID)
	if err != nil {
		return fmt.Errorf("error allocating volunteer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyAllocated
	}

	return nil
}

// RemoveVolunteer removes a volunteer allocation edge. Removal is
// idempotent: deallocating an absent edge is not an error.
func (r *HRRepository) RemoveVolunteer(ctx context.Context, hrID, volunteerID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM hr_volunteers
		WHERE hr_id = $1 AND volunteer_id = $2
	`, hrID, volunteerID)
	if err != nil {
		return fmt.Errorf("error deallocating volunteer: %w", err)
	}

	return nil
}

// IsVolunteerAllocated reports whether the volunteer is allocated to the HR
func (r *HRRepository) IsVolunteerAllocated(ctx context.Context, hrID, volunteerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM hr_volunteers WHERE hr_id = $1 AND volunteer_id = $2)
	`, hrID, volunteerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking volunteer allocation: %w", err)
	}

	return exists, nil
}

// Delete hard-deletes an HR. Volunteer edges, student allocations and
// reports referencing it are removed by ON DELETE CASCADE.
func (r *HRRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hrs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting HR: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHRNotFound
	}

	return nil
}
