package services

import (
	"context"
	"fmt"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ReportStudentStore looks students up for report submission
type ReportStudentStore interface {
	GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Student, error)
}

// ReportStore persists personal reports
type ReportStore interface {
	Upsert(ctx context.Context, report *models.PersonalReport) error
}

// HRIdentity is the authenticated HR stamped onto every report
type HRIdentity struct {
	ID      int64
	Name    string
	Company string
}

// ReportService handles HR interview reviews. Create-vs-edit is derived
// from the stored state, never from the client, so at most one report
// exists per (student, HR) pair.
type ReportService struct {
	studentStore ReportStudentStore
	reportStore  ReportStore
	logger       zerolog.Logger
}

// NewReportService creates a new report service
func NewReportService(studentStore ReportStudentStore, reportStore ReportStore, logger zerolog.Logger) *ReportService {
	return &ReportService{
		studentStore: studentStore,
		reportStore:  reportStore,
		logger:       logger,
	}
}

// SubmitPersonalReport creates or merges the caller's review of the
// student identified by register number. Interviewer fields come from the
// authenticated identity only.
func (s *ReportService) SubmitPersonalReport(ctx context.Context, req *dto.PersonalReportRequest, caller HRIdentity) (*models.PersonalReport, error) {
	student, err := s.studentStore.GetByRegisterNumber(ctx, req.RegisterNumber)
	if err != nil {
		return nil, apperrors.NewCustomError(err,
			fmt.Sprintf("Student with register number %s not found", req.RegisterNumber))
	}

	report := &models.PersonalReport{
		StudentID:              student.ID,
		HRID:                   caller.ID,
		ProfessionalAppearance: req.ProfessionalAppearanceAndAttitude,
		ManagerialAptitude:     req.ManagerialAptitude,
		GeneralIntelligence:    req.GeneralIntelligenceAndAwareness,
		TechnicalKnowledge:     req.TechnicalKnowledge,
		CommunicationSkills:    req.CommunicationSkills,
		AchievementsAmbition:   req.AchievementsAndAmbition,
		SelfConfidence:         req.SelfConfidence,
		OverallScore:           req.OverallScore,
		Strengths:              req.Strengths,
		PointsToImprove:        req.PointsToImproveOn,
		Comments:               req.Comments,
		InterviewerName:        caller.Name,
		InterviewerCompany:     caller.Company,
	}

	if err := s.reportStore.Upsert(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Int64("hrId", caller.ID).
		Msg("Personal report submitted")
	return report, nil
}
