package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
)

// mockReportStudentStore implements ReportStudentStore for testing
type mockReportStudentStore struct {
	students map[string]*models.Student
}

func (m *mockReportStudentStore) GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Student, error) {
	if s, ok := m.students[registerNumber]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

// mockUpsertReportStore implements ReportStore, recording the last upsert
type mockUpsertReportStore struct {
	upserted  []*models.PersonalReport
	upsertErr error
}

func (m *mockUpsertReportStore) Upsert(ctx context.Context, report *models.PersonalReport) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, report)
	return nil
}

func ratingPtr(v int16) *int16 { return &v }

func TestSubmitPersonalReport(t *testing.T) {
	ctx := context.Background()
	caller := HRIdentity{ID: 7, Name: "Anita Rao", Company: "Acme"}

	newService := func() (*ReportService, *mockUpsertReportStore) {
		studentStore := &mockReportStudentStore{students: map[string]*models.Student{
			"URK21CS1001": {ID: 100, RegisterNumber: "URK21CS1001", Name: "Aarav"},
		}}
		reportStore := &mockUpsertReportStore{}
		return NewReportService(studentStore, reportStore, zerolog.Nop()), reportStore
	}

	t.Run("interviewer identity comes from the caller", func(t *testing.T) {
		service, reportStore := newService()

		report, err := service.SubmitPersonalReport(ctx, &dto.PersonalReportRequest{
			RegisterNumber:     "URK21CS1001",
			TechnicalKnowledge: ratingPtr(8),
			OverallScore:       ratingPtr(7),
		}, caller)
		require.NoError(t, err)

		assert.Equal(t, int64(100), report.StudentID)
		assert.Equal(t, int64(7), report.HRID)
		assert.Equal(t, "Anita Rao", report.InterviewerName)
		assert.Equal(t, "Acme", report.InterviewerCompany)
		require.Len(t, reportStore.upserted, 1)
		assert.Equal(t, int16(8), *reportStore.upserted[0].TechnicalKnowledge)
	})

	t.Run("absent ratings stay nil for store-side merge", func(t *testing.T) {
		service, reportStore := newService()

		_, err := service.SubmitPersonalReport(ctx, &dto.PersonalReportRequest{
			RegisterNumber: "URK21CS1001",
			OverallScore:   ratingPtr(9),
		}, caller)
		require.NoError(t, err)

		stored := reportStore.upserted[0]
		assert.Nil(t, stored.TechnicalKnowledge)
		assert.Nil(t, stored.CommunicationSkills)
		assert.Equal(t, int16(9), *stored.OverallScore)
	})

	t.Run("unknown register number", func(t *testing.T) {
		service, _ := newService()

		_, err := service.SubmitPersonalReport(ctx, &dto.PersonalReportRequest{
			RegisterNumber: "URK99XX0000",
		}, caller)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, "Student with register number URK99XX0000 not found", err.Error())
	})
}
