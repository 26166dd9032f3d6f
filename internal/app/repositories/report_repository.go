package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/online-mocks-api/internal/app/models"
)

// ReportRepository handles database operations for personal reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

func scanReport(row pgx.Row, report *models.PersonalReport) error {
	return row.Scan(
		&report.ID,
		&report.StudentID,
		&report.HRID,
		&report.ProfessionalAppearance,
		&report.ManagerialAptitude,
		&report.GeneralIntelligence,
		&report.TechnicalKnowledge,
		&report.CommunicationSkills,
		&report.AchievementsAmbition,
		&report.SelfConfidence,
		&report.OverallScore,
		&report.Strengths,
		&report.PointsToImprove,
		&report.Comments,
		&report.InterviewerName,
		&report.InterviewerCompany,
		&report.UpdatedAt,
	)
}

const reportColumns = `
	id, student_id, hr_id,
	professional_appearance, managerial_aptitude, general_intelligence,
	technical_knowledge, communication_skills, achievements_ambition,
	self_confidence, overall_score, strengths, points_to_improve, comments,
	interviewer_name, interviewer_company, updated_at
`

// Upsert inserts the report for (student, HR) or merges it into the
// existing one. The unique constraint makes a second report for the same
// pair impossible regardless of what the client claims, and COALESCE
// keeps stored fields that the edit did not supply.
func (r *ReportRepository) Upsert(ctx context.Context, report *models.PersonalReport) error {
	query := `
		INSERT INTO personal_reports (
			student_id, hr_id,
			professional_appearance, managerial_aptitude, general_intelligence,
			technical_knowledge, communication_skills, achievements_ambition,
			self_confidence, overall_score, strengths, points_to_improve, comments,
			interviewer_name, interviewer_company
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT ON CONSTRAINT personal_reports_student_hr_key DO UPDATE SET
			professional_appearance = COALESCE(EXCLUDED.professional_appearance, personal_reports.professional_appearance),
			managerial_aptitude     = COALESCE(EXCLUDED.managerial_aptitude, personal_reports.managerial_aptitude),
			general_intelligence    = COALESCE(EXCLUDED.general_intelligence, personal_reports.general_intelligence),
			technical_knowledge     = COALESCE(EXCLUDED.technical_knowledge, personal_reports.technical_knowledge),
			communication_skills    = COALESCE(EXCLUDED.communication_skills, personal_reports.communication_skills),
			achievements_ambition   = COALESCE(EXCLUDED.achievements_ambition, personal_reports.achievements_ambition),
			self_confidence         = COALESCE(EXCLUDED.self_confidence, personal_reports.self_confidence),
			overall_score           = COALESCE(EXCLUDED.overall_score, personal_reports.overall_score),
			strengths               = COALESCE(EXCLUDED.strengths, personal_reports.strengths),
			points_to_improve       = COALESCE(EXCLUDED.points_to_improve, personal_reports.points_to_improve),
			comments                = COALESCE(EXCLUDED.comments, personal_reports.comments),
			interviewer_name        = EXCLUDED.interviewer_name,
			interviewer_company     = EXCLUDED.interviewer_company,
			updated_at              = now()
		RETURNING ` + reportColumns

	err := scanReport(r.db.QueryRow(ctx, query,
		report.StudentID,
		report.HRID,
		report.ProfessionalAppearance,
		report.ManagerialAptitude,
		report.GeneralIntelligence,
		report.TechnicalKnowledge,
		report.CommunicationSkills,
		report.AchievementsAmbition,
		report.SelfConfidence,
		report.OverallScore,
		report.Strengths,
		report.PointsToImprove,
		report.Comments,
		report.InterviewerName,
		report.InterviewerCompany,
	), report)
	if err != nil {
		return fmt.Errorf("error upserting personal report: %w", err)
	}

	return nil
}

// GetByStudentAndHR retrieves the report one HR wrote for one student,
// or nil when none exists
func (r *ReportRepository) GetByStudentAndHR(ctx context.Context, studentID, hrID int64) (*models.PersonalReport, error) {
	query := `SELECT ` + reportColumns + `
		FROM personal_reports
		WHERE student_id = $1 AND hr_id = $2
	`

	var report models.PersonalReport
	err := scanReport(r.db.QueryRow(ctx, query, studentID, hrID), &report)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving personal report: %w", err)
	}

	return &report, nil
}

// HasReport reports whether the HR already reviewed the student
func (r *ReportRepository) HasReport(ctx context.Context, studentID, hrID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personal_reports WHERE student_id = $1 AND hr_id = $2)
	`, studentID, hrID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking personal report: %w", err)
	}

	return exists, nil
}
