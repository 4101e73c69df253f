package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

const applicationSelect = `
	SELECT
		a.id, a.job_id, a.student_id, a.student_profile_id, a.employer_id,
		a.cover_letter, a.status, a.employer_notes, a.applied_at, a.status_updated_at,
		j.id, j.title, j.company_name, j.category, j.job_type,
		j.location_city, j.location_state, j.location_country,
		j.salary_min, j.salary_max, j.salary_currency, j.salary_period,
		j.status, j.application_deadline,
		s.email
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN accounts s ON s.id = a.student_id`

type applicationRepo struct {
	db DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app   domain.Application
		job   domain.JobSummary
		email string
	)
	err := row.Scan(
		&app.ID, &app.JobID, &app.StudentID, &app.StudentProfileID, &app.EmployerID,
		&app.CoverLetter, &app.Status, &app.EmployerNotes, &app.AppliedAt, &app.StatusUpdatedAt,
		&job.ID, &job.Title, &job.CompanyName, &job.Category, &job.JobType,
		&job.Location.City, &job.Location.State, &job.Location.Country,
		&job.Salary.Min, &job.Salary.Max, &job.Salary.Currency, &job.Salary.Period,
		&job.Status, &job.ApplicationDeadline,
		&email,
	)
	if err != nil {
		return nil, err
	}
	app.Job = &job
	app.StudentEmail = &email
	return &app, nil
}

// Submit inserts the application and bumps the job's counter in one transaction.
// The counter write applies lazy expiry to the job row as of now.
func (r *applicationRepo) Submit(ctx context.Context, app *domain.Application, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	app.AppliedAt = now

	insert := `
		INSERT INTO applications (job_id, student_id, student_profile_id, employer_id, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = tx.QueryRow(ctx, insert,
		app.JobID, app.StudentID, app.StudentProfileID, app.EmployerID,
		app.CoverLetter, app.Status, app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err, "applications_job_student_key") {
			return apperror.Conflict("You have already applied for this job")
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}

	bump := `
		UPDATE jobs
		SET applications_count = applications_count + 1,
		    status = CASE WHEN status = 'active' AND application_deadline <= $2 THEN 'expired' ELSE status END,
		    updated_at = $2
		WHERE id = $1`
	tag, err := tx.Exec(ctx, bump, app.JobID, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

// Decide only succeeds while the stored status is still Pending.
func (r *applicationRepo) Decide(ctx context.Context, app *domain.Application) error {
	query := `
		UPDATE applications
		SET status = $2, employer_notes = $3, status_updated_at = $4
		WHERE id = $1 AND status = 'Pending'`

	tag, err := r.db.Exec(ctx, query, app.ID, app.Status, app.EmployerNotes, app.StatusUpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStaleState
	}
	return nil
}

func (r *applicationRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Application, error) {
	return r.List(ctx, domain.ApplicationFilter{StudentID: studentID})
}

// ListByJob returns the job's applications with each applicant's profile attached.
func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := r.List(ctx, domain.ApplicationFilter{JobID: jobID})
	if err != nil || len(apps) == 0 {
		return apps, err
	}

	ids := make([]int64, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.StudentProfileID)
	}

	query := `SELECT ` + studentProfileColumns + ` FROM student_profiles sp WHERE sp.id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make(map[int64]*domain.StudentProfile, len(ids))
	for rows.Next() {
		p, err := scanStudentProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range apps {
		apps[i].StudentProfile = profiles[apps[i].StudentProfileID]
	}
	return apps, nil
}

// List returns applications newest first.
func (r *applicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("a.status = ?", filter.Status)
	}
	if filter.JobID != 0 {
		where.add("a.job_id = ?", filter.JobID)
	}
	if filter.StudentID != "" {
		where.add("a.student_id = ?", filter.StudentID)
	}
	if filter.EmployerID != "" {
		where.add("a.employer_id = ?", filter.EmployerID)
	}

	rows, err := r.db.Query(ctx, applicationSelect+where.String()+` ORDER BY a.applied_at DESC`, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}
