package services

import (
	"context"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// FeedbackStore persists and lists event feedback
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetAll(ctx context.Context) ([]*models.Feedback, error)
}

// FeedbackService handles write-once event feedback from HRs
type FeedbackService struct {
	feedbackStore FeedbackStore
	logger        zerolog.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackStore FeedbackStore, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackStore: feedbackStore,
		logger:        logger,
	}
}

// SubmitFeedback stores one feedback entry
func (s *FeedbackService) SubmitFeedback(ctx context.Context, req *dto.FeedbackRequest) (*models.Feedback, error) {
	feedback := &models.Feedback{
		CompanyName:            req.CompanyName,
		HRName:                 req.HRName,
		TechnicalKnowledge:     req.TechnicalKnowledge,
		ServiceAndCoordination: req.ServiceAndCoordination,
		CommunicationSkills:    req.CommunicationSkills,
		FutureParticipation:    req.FutureParticipation,
		PunctualityAndInterest: req.PunctualityAndInterest,
		Suggestions:            req.Suggestions,
		IssuesFaced:            req.IssuesFaced,
		ImprovementSuggestions: req.ImprovementSuggestions,
	}

	if err := s.feedbackStore.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info().Str("company", feedback.CompanyName).Msg("Feedback submitted")
	return feedback, nil
}

// ListFeedback returns all feedback entries, newest first
func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*models.Feedback, error) {
	entries, err := s.feedbackStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []*models.Feedback{}
	}

	return entries, nil
}
