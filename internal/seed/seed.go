// Package seed imports initial student records at startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/app/repositories"
)

// studentRecord is the on-disk shape of one imported student. Field names
// match the export format of the registration sheet.
type studentRecord struct {
	RegisterNumber string  `json:"registerNumber"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	AptitudeScore  float64 `json:"aptitudeScore"`
	GDScore        float64 `json:"gdScore"`
	ResumeLink     string  `json:"resumeLink"`
}

// ImportStudents loads student records from the given JSON file into the
// students table. The import only runs when the table is empty, so restarting
// the service never duplicates or resets records that admins have since
// edited. A missing file is not an error: deployments may load students
// through other means.
func ImportStudents(ctx context.Context, dbPool *pgxpool.Pool, path string, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)

	count, err := studentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting students: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Students already present, skipping import")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Warn().Str("path", path).Msg("Student seed file not found, skipping import")
			return nil
		}
		return fmt.Errorf("reading student seed file: %w", err)
	}

	var records []studentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing student seed file: %w", err)
	}
	if len(records) == 0 {
		lgr.Warn().Str("path", path).Msg("Student seed file is empty, nothing to import")
		return nil
	}

	students := make([]*models.Student, 0, len(records))
	for _, rec := range records {
		if rec.RegisterNumber == "" || rec.Name == "" {
			lgr.Warn().Str("registerNumber", rec.RegisterNumber).Str("name", rec.Name).Msg("Skipping incomplete student record")
			continue
		}
		student := &models.Student{
			RegisterNumber: rec.RegisterNumber,
			Name:           rec.Name,
			Department:     rec.Department,
			AptitudeScore:  rec.AptitudeScore,
			GDScore:        rec.GDScore,
		}
		if rec.ResumeLink != "" {
			link := rec.ResumeLink
			student.ResumeLink = &link
		}
		students = append(students, student)
	}

	inserted, err := studentRepo.CreateBatch(ctx, students)
	if err != nil {
		return fmt.Errorf("inserting students: %w", err)
	}

	lgr.Info().Int64("inserted", inserted).Int("total", len(records)).Str("path", path).Msg("Student import finished")
	return nil
}
