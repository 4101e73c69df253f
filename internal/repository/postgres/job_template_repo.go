package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

const jobTemplateColumns = `
	id, title, description, category, job_type, working_hours,
	salary_min, salary_max, salary_currency, salary_period,
	requirements, responsibilities, skills, is_active, times_activated, created_at, updated_at`

type jobTemplateRepo struct {
	db DB
}

// NewJobTemplateRepository creates a new job template repository
func NewJobTemplateRepository(db DB) domain.JobTemplateRepository {
	return &jobTemplateRepo{db: db}
}

func scanJobTemplate(row rowScanner) (*domain.JobTemplate, error) {
	var t domain.JobTemplate
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.JobType, &t.WorkingHours,
		&t.SuggestedSalary.Min, &t.SuggestedSalary.Max, &t.SuggestedSalary.Currency, &t.SuggestedSalary.Period,
		&t.Requirements, &t.Responsibilities, &t.Skills, &t.IsActive, &t.TimesActivated,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Requirements = nonNilStrings(t.Requirements)
	t.Responsibilities = nonNilStrings(t.Responsibilities)
	t.Skills = nonNilStrings(t.Skills)
	return &t, nil
}

func (r *jobTemplateRepo) Create(ctx context.Context, tmpl *domain.JobTemplate) error {
	query := `
		INSERT INTO job_templates (
			title, description, category, job_type, working_hours,
			salary_min, salary_max, salary_currency, salary_period,
			requirements, responsibilities, skills, is_active, times_activated, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		tmpl.Title, tmpl.Description, tmpl.Category, tmpl.JobType, tmpl.WorkingHours,
		tmpl.SuggestedSalary.Min, tmpl.SuggestedSalary.Max, tmpl.SuggestedSalary.Currency, tmpl.SuggestedSalary.Period,
		nonNilStrings(tmpl.Requirements), nonNilStrings(tmpl.Responsibilities), nonNilStrings(tmpl.Skills),
		tmpl.IsActive, tmpl.TimesActivated, tmpl.CreatedAt, tmpl.UpdatedAt,
	).Scan(&tmpl.ID)
	if err != nil {
		if isUniqueViolation(err, "job_templates_title_key") {
			return apperror.Conflict("A template with this title already exists")
		}
		return err
	}
	return nil
}

func (r *jobTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.JobTemplate, error) {
	query := `SELECT ` + jobTemplateColumns + ` FROM job_templates WHERE id = $1`
	t, err := scanJobTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *jobTemplateRepo) Update(ctx context.Context, tmpl *domain.JobTemplate) error {
	query := `
		UPDATE job_templates
		SET title = $2, description = $3, category = $4, job_type = $5, working_hours = $6,
		    salary_min = $7, salary_max = $8, salary_currency = $9, salary_period = $10,
		    requirements = $11, responsibilities = $12, skills = $13, is_active = $14, updated_at = $15
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		tmpl.ID, tmpl.Title, tmpl.Description, tmpl.Category, tmpl.JobType, tmpl.WorkingHours,
		tmpl.SuggestedSalary.Min, tmpl.SuggestedSalary.Max, tmpl.SuggestedSalary.Currency, tmpl.SuggestedSalary.Period,
		nonNilStrings(tmpl.Requirements), nonNilStrings(tmpl.Responsibilities), nonNilStrings(tmpl.Skills),
		tmpl.IsActive, tmpl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "job_templates_title_key") {
			return apperror.Conflict("A template with this title already exists")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobTemplateRepo) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE job_templates SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List orders templates by popularity, then newest first.
func (r *jobTemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	var where whereBuilder
	if filter.ActiveOnly {
		where.add("is_active = ?", true)
	}
	if filter.Category != "" {
		where.add("category = ?", filter.Category)
	}
	if filter.WorkingHours != "" {
		where.add("working_hours = ?", filter.WorkingHours)
	}
	if filter.JobType != "" {
		where.add("job_type = ?", filter.JobType)
	}
	if filter.Search != "" {
		where.add("(title ILIKE ? OR description ILIKE ?)", likePattern(filter.Search))
	}

	query := `SELECT ` + jobTemplateColumns + ` FROM job_templates` + where.String() +
		` ORDER BY times_activated DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []domain.JobTemplate{}
	for rows.Next() {
		t, err := scanJobTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

func (r *jobTemplateRepo) IncrementActivations(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE job_templates SET times_activated = times_activated + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
