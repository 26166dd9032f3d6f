package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
)

// mockStudentListStore implements StudentListStore for testing
type mockStudentListStore struct {
	students []*models.Student
	total    int64

	lastOffset    int
	lastLimit     int
	lastSearch    string
	lastSortField string
	lastSortOrder string
}

func (m *mockStudentListStore) ListPage(ctx context.Context, offset, limit int, search, sortField, sortOrder string) ([]*models.Student, int64, error) {
	m.lastOffset = offset
	m.lastLimit = limit
	m.lastSearch = search
	m.lastSortField = sortField
	m.lastSortOrder = sortOrder
	return m.students, m.total, nil
}

func (m *mockStudentListStore) GetByHR(ctx context.Context, hrID int64) ([]*models.Student, error) {
	return m.students, nil
}

func (m *mockStudentListStore) UpdateResumeLink(ctx context.Context, id int64, resumeLink string) error {
	for _, s := range m.students {
		if s.ID == id {
			s.ResumeLink = &resumeLink
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (m *mockStudentListStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func TestListStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("pages are fifty wide and one-based", func(t *testing.T) {
		store := &mockStudentListStore{total: 120}
		service := NewStudentService(store, zerolog.Nop())

		response, err := service.ListStudents(ctx, 3, "rao", "aptitudeScore", "desc")
		require.NoError(t, err)

		assert.Equal(t, 100, store.lastOffset)
		assert.Equal(t, 50, store.lastLimit)
		assert.Equal(t, "rao", store.lastSearch)
		assert.Equal(t, "aptitudeScore", store.lastSortField)
		assert.Equal(t, "desc", store.lastSortOrder)
		assert.Equal(t, 3, response.TotalPages)
		assert.Equal(t, 3, response.CurrentPage)
	})

	t.Run("empty result serializes as an empty list", func(t *testing.T) {
		service := NewStudentService(&mockStudentListStore{}, zerolog.Nop())

		response, err := service.ListStudents(ctx, 1, "", "name", "asc")
		require.NoError(t, err)
		assert.NotNil(t, response.Students)
		assert.Empty(t, response.Students)
		assert.Equal(t, 0, response.TotalPages)
	})
}

func TestUpdateResumeLink(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the updated record", func(t *testing.T) {
		store := &mockStudentListStore{students: []*models.Student{
			{ID: 100, RegisterNumber: "URK21CS1001", Name: "Aarav"},
		}}
		service := NewStudentService(store, zerolog.Nop())

		student, err := service.UpdateResumeLink(ctx, 100, "https://drive.example.com/new.pdf")
		require.NoError(t, err)
		require.NotNil(t, student.ResumeLink)
		assert.Equal(t, "https://drive.example.com/new.pdf", *student.ResumeLink)
	})

	t.Run("unknown student", func(t *testing.T) {
		service := NewStudentService(&mockStudentListStore{}, zerolog.Nop())

		_, err := service.UpdateResumeLink(ctx, 999, "https://drive.example.com/new.pdf")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
