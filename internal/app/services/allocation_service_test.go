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

// mockVolunteerStore implements AllocationVolunteerStore for testing
type mockVolunteerStore struct {
	volunteers map[int64]*models.Volunteer
}

func (m *mockVolunteerStore) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	if v, ok := m.volunteers[id]; ok {
		return v, nil
	}
	return nil, apperrors.ErrVolunteerNotFound
}

type hrVolunteerEdge struct {
	hrID, volunteerID int64
}

// mockHRStore implements AllocationHRStore with an in-memory edge set
type mockHRStore struct {
	hrs   map[int64]*models.HR
	edges map[hrVolunteerEdge]bool
}

func newMockHRStore(hrs ...*models.HR) *mockHRStore {
	store := &mockHRStore{
		hrs:   make(map[int64]*models.HR),
		edges: make(map[hrVolunteerEdge]bool),
	}
	for _, hr := range hrs {
		store.hrs[hr.ID] = hr
	}
	return store
}

func (m *mockHRStore) GetByID(ctx context.Context, id int64) (*models.HR, error) {
	if hr, ok := m.hrs[id]; ok {
		copied := *hr
		return &copied, nil
	}
	return nil, apperrors.ErrHRNotFound
}

func (m *mockHRStore) GetAllocatedVolunteers(ctx context.Context, hrID int64) ([]models.VolunteerSummary, error) {
	var summaries []models.VolunteerSummary
	for edge := range m.edges {
		if edge.hrID == hrID {
			summaries = append(summaries, models.VolunteerSummary{ID: edge.volunteerID})
		}
	}
	return summaries, nil
}

func (m *mockHRStore) AddVolunteer(ctx context.Context, hrID, volunteerID int64) error {
	edge := hrVolunteerEdge{hrID, volunteerID}
	if m.edges[edge] {
		return apperrors.ErrAlreadyAllocated
	}
	m.edges[edge] = true
	return nil
}

func (m *mockHRStore) RemoveVolunteer(ctx context.Context, hrID, volunteerID int64) error {
	delete(m.edges, hrVolunteerEdge{hrID, volunteerID})
	return nil
}

func (m *mockHRStore) IsVolunteerAllocated(ctx context.Context, hrID, volunteerID int64) (bool, error) {
	return m.edges[hrVolunteerEdge{hrID, volunteerID}], nil
}

type studentHREdge struct {
	studentID, hrID int64
}

// mockStudentStore implements AllocationStudentStore, enforcing the same
// duplicate and capacity contract as the SQL repository
type mockStudentStore struct {
	students map[int64]*models.Student
	byRegNo  map[string]*models.Student
	edges    map[studentHREdge]bool
}

func newMockStudentStore(students ...*models.Student) *mockStudentStore {
	store := &mockStudentStore{
		students: make(map[int64]*models.Student),
		byRegNo:  make(map[string]*models.Student),
		edges:    make(map[studentHREdge]bool),
	}
	for _, s := range students {
		store.students[s.ID] = s
		store.byRegNo[s.RegisterNumber] = s
	}
	return store
}

func (m *mockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Student, error) {
	if s, ok := m.byRegNo[registerNumber]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) AllocateHR(ctx context.Context, studentID, hrID int64) error {
	edge := studentHREdge{studentID, hrID}
	if m.edges[edge] {
		return apperrors.ErrAlreadyAllocated
	}
	if m.allocationCount(studentID) >= 3 {
		return apperrors.ErrCapacityExceeded
	}
	m.edges[edge] = true
	return nil
}

func (m *mockStudentStore) DeallocateHR(ctx context.Context, studentID, hrID int64) error {
	delete(m.edges, studentHREdge{studentID, hrID})
	return nil
}

func (m *mockStudentStore) GetByHR(ctx context.Context, hrID int64) ([]*models.Student, error) {
	var students []*models.Student
	for edge := range m.edges {
		if edge.hrID == hrID {
			copied := *m.students[edge.studentID]
			students = append(students, &copied)
		}
	}
	return students, nil
}

func (m *mockStudentStore) allocationCount(studentID int64) int {
	count := 0
	for edge := range m.edges {
		if edge.studentID == studentID {
			count++
		}
	}
	return count
}

// mockReportStore implements AllocationReportStore
type mockReportStore struct {
	reports map[studentHREdge]bool
}

func (m *mockReportStore) HasReport(ctx context.Context, studentID, hrID int64) (bool, error) {
	return m.reports[studentHREdge{studentID, hrID}], nil
}

func newTestAllocationService() (*AllocationService, *mockVolunteerStore, *mockHRStore, *mockStudentStore, *mockReportStore) {
	volunteerStore := &mockVolunteerStore{volunteers: map[int64]*models.Volunteer{
		10: {ID: 10, Name: "Priya", Username: "priya"},
	}}
	hrStore := newMockHRStore(
		&models.HR{ID: 1, Name: "Anita Rao", Username: "anita", Company: "Acme"},
		&models.HR{ID: 2, Name: "Vikram Shah", Username: "vikram", Company: "Globex"},
		&models.HR{ID: 3, Name: "Meera Nair", Username: "meera", Company: "Initech"},
		&models.HR{ID: 4, Name: "Karthik Iyer", Username: "karthik", Company: "Umbrella"},
	)
	studentStore := newMockStudentStore(
		&models.Student{ID: 100, RegisterNumber: "URK21CS1001", Name: "Aarav"},
	)
	reportStore := &mockReportStore{reports: make(map[studentHREdge]bool)}

	service := NewAllocationService(volunteerStore, hrStore, studentStore, reportStore, zerolog.Nop())
	return service, volunteerStore, hrStore, studentStore, reportStore
}

func TestAllocateVolunteerToHR(t *testing.T) {
	ctx := context.Background()

	t.Run("records the edge", func(t *testing.T) {
		service, _, hrStore, _, _ := newTestAllocationService()

		err := service.AllocateVolunteerToHR(ctx, 10, 1)
		require.NoError(t, err)
		assert.True(t, hrStore.edges[hrVolunteerEdge{1, 10}])
	})

	t.Run("rejects a duplicate edge", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		require.NoError(t, service.AllocateVolunteerToHR(ctx, 10, 1))
		err := service.AllocateVolunteerToHR(ctx, 10, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAllocated)
		assert.Equal(t, "Volunteer already allocated to this HR", err.Error())
	})

	t.Run("fails for unknown HR", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		err := service.AllocateVolunteerToHR(ctx, 10, 999)
		assert.ErrorIs(t, err, apperrors.ErrHRNotFound)
	})

	t.Run("fails for unknown volunteer", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		err := service.AllocateVolunteerToHR(ctx, 999, 1)
		assert.ErrorIs(t, err, apperrors.ErrVolunteerNotFound)
	})
}

func TestDeallocateVolunteerFromHR(t *testing.T) {
	ctx := context.Background()

	t.Run("allocate then deallocate restores the original set", func(t *testing.T) {
		service, _, hrStore, _, _ := newTestAllocationService()

		require.NoError(t, service.AllocateVolunteerToHR(ctx, 10, 1))
		hr, err := service.DeallocateVolunteerFromHR(ctx, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, hr.AllocatedVolunteers)
		assert.Empty(t, hrStore.edges)
	})

	t.Run("removing an absent edge is not an error", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		hr, err := service.DeallocateVolunteerFromHR(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), hr.ID)
	})
}

func TestAllocateStudentToHR(t *testing.T) {
	ctx := context.Background()

	t.Run("admin caller allocates without ownership check", func(t *testing.T) {
		service, _, _, studentStore, _ := newTestAllocationService()

		student, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(100), student.ID)
		assert.True(t, studentStore.edges[studentHREdge{100, 1}])
	})

	t.Run("volunteer caller needs the HR in their allocated set", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()
		volunteerID := int64(10)

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, &volunteerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotAllocatedToHR)
		assert.Equal(t, "You are not authorized to allocate students to this HR", err.Error())
	})

	t.Run("volunteer caller allocates to their own HR", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()
		volunteerID := int64(10)

		require.NoError(t, service.AllocateVolunteerToHR(ctx, volunteerID, 1))
		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, &volunteerID)
		assert.NoError(t, err)
	})

	t.Run("duplicate allocation leaves the set unchanged", func(t *testing.T) {
		service, _, _, studentStore, _ := newTestAllocationService()

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)

		_, err = service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAllocated)
		assert.Equal(t, "Student is already allocated to Anita Rao", err.Error())
		assert.Equal(t, 1, studentStore.allocationCount(100))
	})

	t.Run("fourth allocation exceeds capacity", func(t *testing.T) {
		service, _, _, studentStore, _ := newTestAllocationService()

		for _, hrID := range []int64{1, 2, 3} {
			_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", hrID, nil)
			require.NoError(t, err)
		}

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 4, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
		assert.Equal(t, 3, studentStore.allocationCount(100))
	})

	t.Run("unknown register number", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		_, err := service.AllocateStudentToHR(ctx, "URK99XX0000", 1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, "Student with register number URK99XX0000 not found", err.Error())
	})
}

func TestDeallocateStudentFromHR(t *testing.T) {
	ctx := context.Background()

	t.Run("protected path refuses a reviewed pair", func(t *testing.T) {
		service, _, _, studentStore, reportStore := newTestAllocationService()

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)
		reportStore.reports[studentHREdge{100, 1}] = true

		err = service.DeallocateStudentFromHR(ctx, 100, 1, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrReviewSubmitted)
		assert.True(t, studentStore.edges[studentHREdge{100, 1}], "allocation must survive the refused removal")
	})

	t.Run("unprotected path removes a reviewed pair", func(t *testing.T) {
		service, _, _, studentStore, reportStore := newTestAllocationService()

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)
		reportStore.reports[studentHREdge{100, 1}] = true

		err = service.DeallocateStudentFromHR(ctx, 100, 1, false)
		require.NoError(t, err)
		assert.False(t, studentStore.edges[studentHREdge{100, 1}])
	})

	t.Run("protected path removes an unreviewed pair", func(t *testing.T) {
		service, _, _, studentStore, _ := newTestAllocationService()

		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)

		err = service.DeallocateStudentFromHR(ctx, 100, 1, true)
		require.NoError(t, err)
		assert.False(t, studentStore.edges[studentHREdge{100, 1}])
	})

	t.Run("unknown student", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		err := service.DeallocateStudentFromHR(ctx, 999, 1, true)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestGetStudentsForVolunteerHR(t *testing.T) {
	ctx := context.Background()

	t.Run("lists students for an owned HR", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		require.NoError(t, service.AllocateVolunteerToHR(ctx, 10, 1))
		_, err := service.AllocateStudentToHR(ctx, "URK21CS1001", 1, nil)
		require.NoError(t, err)

		students, err := service.GetStudentsForVolunteerHR(ctx, 10, 1)
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "URK21CS1001", students[0].RegisterNumber)
	})

	t.Run("refuses an HR outside the caller's set", func(t *testing.T) {
		service, _, _, _, _ := newTestAllocationService()

		_, err := service.GetStudentsForVolunteerHR(ctx, 10, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotAllocatedToHR)
	})
}
