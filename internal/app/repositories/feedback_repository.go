package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/online-mocks-api/internal/app/models"
)

// FeedbackRepository handles database operations for event feedback
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a feedback entry. Feedback is write-once: there is no
// update or delete path.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (
			company_name, hr_name,
			technical_knowledge, service_and_coordination, communication_skills,
			future_participation, punctuality_and_interest,
			suggestions, issues_faced, improvement_suggestions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.CompanyName,
		feedback.HRName,
		feedback.TechnicalKnowledge,
		feedback.ServiceAndCoordination,
		feedback.CommunicationSkills,
		feedback.FutureParticipation,
		feedback.PunctualityAndInterest,
		feedback.Suggestions,
		feedback.IssuesFaced,
		feedback.ImprovementSuggestions,
	).Scan(&feedback.ID, &feedback.SubmittedAt)
	if err != nil {
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// GetAll retrieves all feedback entries, newest first
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	query := `
		SELECT id, company_name, hr_name,
			technical_knowledge, service_and_coordination, communication_skills,
			future_participation, punctuality_and_interest,
			suggestions, issues_faced, improvement_suggestions, submitted_at
		FROM feedback
		ORDER BY submitted_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.CompanyName,
			&feedback.HRName,
			&feedback.TechnicalKnowledge,
			&feedback.ServiceAndCoordination,
			&feedback.CommunicationSkills,
			&feedback.FutureParticipation,
			&feedback.PunctualityAndInterest,
			&feedback.Suggestions,
			&feedback.IssuesFaced,
			&feedback.ImprovementSuggestions,
			&feedback.SubmittedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
