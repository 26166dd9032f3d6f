package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/db"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
)

// MaxHRAllocations caps how many HRs one student can be allocated to
const MaxHRAllocations = 3

// sortColumns whitelists the sortable student listing fields
var sortColumns = map[string]string{
	"name":           "LOWER(name)",
	"registerNumber": "LOWER(register_number)",
	"department":     "LOWER(department)",
	"aptitudeScore":  "aptitude_score",
	"gdScore":        "gd_score",
}

// StudentRepository handles database operations for students, their HR
// allocation edges and listing queries
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row, student *models.Student) error {
	return row.Scan(
		&student.ID,
		&student.RegisterNumber,
		&student.Name,
		&student.Department,
		&student.AptitudeScore,
		&student.GDScore,
		&student.ResumeLink,
	)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, register_number, name, department, aptitude_score, gd_score, resume_link
		FROM students
		WHERE id = $1
	`

	var student models.Student
	if err := scanStudent(r.db.QueryRow(ctx, query, id), &student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByRegisterNumber retrieves a student by its immutable business key
func (r *StudentRepository) GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Student, error) {
	query := `
		SELECT id, register_number, name, department, aptitude_score, gd_score, resume_link
		FROM students
		WHERE register_number = $1
	`

	var student models.Student
	if err := scanStudent(r.db.QueryRow(ctx, query, registerNumber), &student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by register number: %w", err)
	}

	return &student, nil
}

// ListPage retrieves one page of students matching the search term,
// sorted by a whitelisted field. The search is a case-insensitive
// substring match across name, register number and allocated-HR name.
func (r *StudentRepository) ListPage(ctx context.Context, offset, limit int, search, sortField, sortOrder string) ([]*models.Student, int64, error) {
	orderColumn, ok := sortColumns[sortField]
	if !ok {
		orderColumn = sortColumns["name"]
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}

	where := `
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'
			OR register_number ILIKE '%' || $1 || '%'
			OR EXISTS (
				SELECT 1 FROM student_allocations sa
				JOIN hrs h ON h.id = sa.hr_id
				WHERE sa.student_id = students.id AND h.name ILIKE '%' || $1 || '%'
			))
	`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students `+where, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, register_number, name, department, aptitude_score, gd_score, resume_link
		FROM students
		%s
		ORDER BY %s %s
		OFFSET $2 LIMIT $3
	`, where, orderColumn, direction)

	rows, err := r.db.Query(ctx, query, search, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, 0, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.populateRelations(ctx, students); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByHR retrieves all students allocated to one HR, relations populated
func (r *StudentRepository) GetByHR(ctx context.Context, hrID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.register_number, s.name, s.department, s.aptitude_score, s.gd_score, s.resume_link
		FROM students s
		JOIN student_allocations sa ON sa.student_id = s.id
		WHERE sa.hr_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, hrID)
	if err != nil {
		return nil, fmt.Errorf("error listing students for HR: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.populateRelations(ctx, students); err != nil {
		return nil, err
	}

	return students, nil
}

// populateRelations attaches allocated HRs and personal reports to the
// given students in two batch queries.
func (r *StudentRepository) populateRelations(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(students))
	byID := make(map[int64]*models.Student, len(students))
	for _, student := range students {
		student.AllocatedHRs = []models.HRSummary{}
		student.PersonalReports = []models.PersonalReport{}
		ids = append(ids, student.ID)
		byID[student.ID] = student
	}

	hrRows, err := r.db.Query(ctx, `
		SELECT sa.student_id, h.id, h.name, h.company
		FROM student_allocations sa
		JOIN hrs h ON h.id = sa.hr_id
		WHERE sa.student_id = ANY($1)
		ORDER BY h.name
	`, ids)
	if err != nil {
		return fmt.Errorf("error loading student allocations: %w", err)
	}
	defer hrRows.Close()

	for hrRows.Next() {
		var studentID int64
		var hr models.HRSummary
		if err := hrRows.Scan(&studentID, &hr.ID, &hr.Name, &hr.Company); err != nil {
			return err
		}
		byID[studentID].AllocatedHRs = append(byID[studentID].AllocatedHRs, hr)
	}

	if err := hrRows.Err(); err != nil {
		return err
	}

	reportRows, err := r.db.Query(ctx, `
		SELECT id, student_id, hr_id,
			professional_appearance, managerial_aptitude, general_intelligence,
			technical_knowledge, communication_skills, achievements_ambition,
			self_confidence, overall_score, strengths, points_to_improve, comments,
			interviewer_name, interviewer_company, updated_at
		FROM personal_reports
		WHERE student_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("error loading personal reports: %w", err)
	}
	defer reportRows.Close()

	for reportRows.Next() {
		var report models.PersonalReport
		if err := scanReport(reportRows, &report); err != nil {
			return err
		}
		student := byID[report.StudentID]
		student.PersonalReports = append(student.PersonalReports, report)
	}

	return reportRows.Err()
}

// AllocateHR records a student allocation edge. The student row is locked
// for the duration of the transaction so the capacity check and the
// insert cannot interleave with a concurrent allocation.
func (r *StudentRepository) AllocateHR(ctx context.Context, studentID, hrID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM students WHERE id = $1 FOR UPDATE`, studentID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locking student: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO student_allocations (student_id, hr_id)
			VALUES ($1, $2)
			ON CONFLICT (student_id, hr_id) DO NOTHING
		`, studentID, hrID)
		if err != nil {
			return fmt.Errorf("error allocating student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrAlreadyAllocated
		}

		var count int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM student_allocations WHERE student_id = $1
		`, studentID).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting allocations: %w", err)
		}

		if count > MaxHRAllocations {
			// Rolls the insert back
			return apperrors.ErrCapacityExceeded
		}

		return nil
	})
}

// DeallocateHR removes a student allocation edge. Removal is idempotent.
func (r *StudentRepository) DeallocateHR(ctx context.Context, studentID, hrID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM student_allocations
		WHERE student_id = $1 AND hr_id = $2
	`, studentID, hrID)
	if err != nil {
		return fmt.Errorf("error deallocating student: %w", err)
	}

	return nil
}

// UpdateResumeLink updates the one mutable student field
func (r *StudentRepository) UpdateResumeLink(ctx context.Context, id int64, resumeLink string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students SET resume_link = $1 WHERE id = $2
	`, resumeLink, id)
	if err != nil {
		return fmt.Errorf("error updating resume link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the number of student records
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CreateBatch inserts imported student records, skipping register numbers
// that already exist
func (r *StudentRepository) CreateBatch(ctx context.Context, students []*models.Student) (int64, error) {
	var inserted int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, student := range students {
			cmdTag, err := tx.Exec(ctx, `
				INSERT INTO students (register_number, name, department, aptitude_score, gd_score, resume_link)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (register_number) DO NOTHING
			`, student.RegisterNumber, student.Name, student.Department,
				student.AptitudeScore, student.GDScore, student.ResumeLink)
			if err != nil {
				return fmt.Errorf("error inserting student %s: %w", student.RegisterNumber, err)
			}
			inserted += cmdTag.RowsAffected()
		}
		return nil
	})

	return inserted, err
}
