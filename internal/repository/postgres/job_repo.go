package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"
)

const jobColumns = `
	j.id, j.title, j.description, j.category, j.job_type, j.working_hours,
	j.location_city, j.location_state, j.location_country,
	j.salary_min, j.salary_max, j.salary_currency, j.salary_period,
	j.requirements, j.responsibilities, j.skills, j.vacancies, j.application_deadline,
	j.posted_by, j.company_name, j.status, j.applications_count, j.created_at, j.updated_at,
	pa.email`

// jobPosterJoin attaches the posting account so poster email can be reported.
const jobPosterJoin = ` LEFT JOIN accounts pa ON pa.id = j.posted_by`

type jobRepo struct {
	db DB
}

func NewJobRepository(db DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Category, &job.JobType, &job.WorkingHours,
		&job.Location.City, &job.Location.State, &job.Location.Country,
		&job.Salary.Min, &job.Salary.Max, &job.Salary.Currency, &job.Salary.Period,
		&job.Requirements, &job.Responsibilities, &job.Skills, &job.Vacancies, &job.ApplicationDeadline,
		&job.PostedBy, &job.CompanyName, &job.Status, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt,
		&job.PosterEmail,
	)
	if err != nil {
		return nil, err
	}
	job.Requirements = nonNilStrings(job.Requirements)
	job.Responsibilities = nonNilStrings(job.Responsibilities)
	job.Skills = nonNilStrings(job.Skills)
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			title, description, category, job_type, working_hours,
			location_city, location_state, location_country,
			salary_min, salary_max, salary_currency, salary_period,
			requirements, responsibilities, skills, vacancies, application_deadline,
			posted_by, company_name, status, applications_count, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Category, job.JobType, job.WorkingHours,
		job.Location.City, job.Location.State, job.Location.Country,
		job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.Period,
		nonNilStrings(job.Requirements), nonNilStrings(job.Responsibilities), nonNilStrings(job.Skills),
		job.Vacancies, job.ApplicationDeadline,
		job.PostedBy, job.CompanyName, job.Status, job.ApplicationsCount, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j` + jobPosterJoin + ` WHERE j.id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return job, nil
}

// Update persists the editable fields and status. applications_count is owned by the ledger.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, category = $4, job_type = $5, working_hours = $6,
		    location_city = $7, location_state = $8, location_country = $9,
		    salary_min = $10, salary_max = $11, salary_currency = $12, salary_period = $13,
		    requirements = $14, responsibilities = $15, skills = $16, vacancies = $17,
		    application_deadline = $18, status = $19, updated_at = $20
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Category, job.JobType, job.WorkingHours,
		job.Location.City, job.Location.State, job.Location.Country,
		job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.Period,
		nonNilStrings(job.Requirements), nonNilStrings(job.Responsibilities), nonNilStrings(job.Skills),
		job.Vacancies, job.ApplicationDeadline, job.Status, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM saved_jobs WHERE job_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

// List returns jobs matching filter, newest first.
func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("j.status = ?", filter.Status)
	}
	if filter.PostedBy != "" {
		where.add("j.posted_by = ?", filter.PostedBy)
	}
	if filter.OpenAt != nil {
		where.add("j.application_deadline > ?", *filter.OpenAt)
	}
	if filter.Category != "" {
		where.add("j.category = ?", filter.Category)
	}
	if filter.JobType != "" {
		where.add("j.job_type = ?", filter.JobType)
	}
	if filter.WorkingHours != "" {
		where.add("j.working_hours = ?", filter.WorkingHours)
	}
	if filter.City != "" {
		where.add("j.location_city ILIKE ?", likePattern(filter.City))
	}
	if filter.MinSalary != nil {
		where.add("j.salary_min >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		where.add("j.salary_max <= ?", *filter.MaxSalary)
	}
	if filter.Search != "" {
		if filter.SearchCompany {
			where.add("(j.title ILIKE ? OR j.description ILIKE ? OR j.company_name ILIKE ?)", likePattern(filter.Search))
		} else {
			where.add("(j.title ILIKE ? OR j.description ILIKE ?)", likePattern(filter.Search))
		}
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j` + jobPosterJoin + where.String() + ` ORDER BY j.created_at DESC`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) EmployerStats(ctx context.Context, employerID string) (*domain.EmployerStats, error) {
	var stats domain.EmployerStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM jobs WHERE posted_by = $1`, employerID,
	).Scan(&stats.TotalJobs, &stats.ActiveJobs)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Pending')
		FROM applications WHERE employer_id = $1`, employerID,
	).Scan(&stats.TotalApplications, &stats.PendingApplications)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
